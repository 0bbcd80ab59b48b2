package application

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/bnema/splitcalc/internal/domain"
	splitlog "github.com/bnema/splitcalc/internal/log"
	"github.com/bnema/splitcalc/internal/ports"
)

type Service struct {
	repo           ports.SessionRepository
	codec          ports.TransferCodec
	clock          ports.Clock
	ids            ports.IDGenerator
	notifier       ports.SessionNotifier
	logger         *splitlog.Logger
	defaultCountry string

	mu      sync.Mutex
	imports ImportGuard
}

type Option func(*Service)

func WithNotifier(notifier ports.SessionNotifier) Option {
	return func(s *Service) {
		if notifier != nil {
			s.notifier = notifier
		}
	}
}

func WithIDGenerator(ids ports.IDGenerator) Option {
	return func(s *Service) {
		if ids != nil {
			s.ids = ids
		}
	}
}

func WithLogger(logger *splitlog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger.WithComponent(splitlog.ComponentSession)
		}
	}
}

// WithDefaultCountry sets the country of a session created on first use.
func WithDefaultCountry(code string) Option {
	return func(s *Service) {
		if code = strings.ToLower(strings.TrimSpace(code)); code != "" {
			s.defaultCountry = code
		}
	}
}

func NewService(repo ports.SessionRepository, codec ports.TransferCodec, clock ports.Clock, opts ...Option) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	s := &Service{
		repo:           repo,
		codec:          codec,
		clock:          clock,
		ids:            ports.UUIDGenerator{},
		notifier:       ports.NopNotifier{},
		logger:         splitlog.Nop(),
		defaultCountry: domain.DefaultCountryCode,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Current returns the stored session. On first use a fresh session is created
// and saved so its IDs stay stable across calls.
func (s *Service) Current(ctx context.Context) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx)
}

func (s *Service) Summary(ctx context.Context) (Summary, error) {
	session, err := s.Current(ctx)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Session:    session,
		Country:    session.Country(),
		Allocation: session.Allocate(),
	}, nil
}

func (s *Service) AddItem(ctx context.Context, cmd AddItemCommand) (domain.Item, error) {
	item := domain.Item{
		ID:           s.ids.NewItemID(),
		Name:         strings.TrimSpace(cmd.Name),
		UnitCost:     domain.ParseAmount(cmd.Cost),
		Quantity:     domain.ParseQuantity(cmd.Quantity),
		Participants: slices.Clone(cmd.SplitAmong),
	}

	_, err := s.update(ctx, splitlog.OpAddItem, func(session *domain.Session) error {
		if err := requireParticipants(session.Participants, item.Participants); err != nil {
			return err
		}
		session.Items = append(session.Items, item)
		return nil
	})
	if err != nil {
		return domain.Item{}, err
	}

	return item, nil
}

func (s *Service) UpdateItem(ctx context.Context, cmd UpdateItemCommand) (domain.Item, error) {
	var updated domain.Item
	_, err := s.update(ctx, splitlog.OpUpdateItem, func(session *domain.Session) error {
		index := domain.FindItem(session.Items, cmd.ID)
		if index < 0 {
			return fmt.Errorf("%w: %s", domain.ErrItemNotFound, cmd.ID)
		}

		item := session.Items[index]
		if cmd.Name != nil {
			item.Name = strings.TrimSpace(*cmd.Name)
		}
		if cmd.Cost != nil {
			item.UnitCost = domain.ParseAmount(*cmd.Cost)
		}
		if cmd.Quantity != nil {
			item.Quantity = domain.ParseQuantity(*cmd.Quantity)
		}
		session.Items[index] = item
		updated = item
		return nil
	})
	if err != nil {
		return domain.Item{}, err
	}

	return updated, nil
}

func (s *Service) RemoveItem(ctx context.Context, id domain.ItemID) error {
	_, err := s.update(ctx, splitlog.OpRemoveItem, func(session *domain.Session) error {
		index := domain.FindItem(session.Items, id)
		if index < 0 {
			return fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
		}
		session.Items = slices.Delete(session.Items, index, index+1)
		return nil
	})

	return err
}

// ToggleAssignment adds the participant to the item's split, or removes it
// when already present.
func (s *Service) ToggleAssignment(ctx context.Context, itemID domain.ItemID, participantID domain.ParticipantID) (domain.Item, error) {
	var toggled domain.Item
	_, err := s.update(ctx, splitlog.OpAssign, func(session *domain.Session) error {
		index := domain.FindItem(session.Items, itemID)
		if index < 0 {
			return fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
		}

		item := session.Items[index]
		// Stale references may always be removed, only known participants added.
		if !item.IsSharedBy(participantID) {
			if err := requireParticipants(session.Participants, []domain.ParticipantID{participantID}); err != nil {
				return err
			}
		}
		toggled = item.Toggle(participantID)
		session.Items[index] = toggled
		return nil
	})
	if err != nil {
		return domain.Item{}, err
	}

	return toggled, nil
}

// AssignItem replaces the item's split with participants. An empty list
// leaves the item unassigned.
func (s *Service) AssignItem(ctx context.Context, itemID domain.ItemID, participants []domain.ParticipantID) (domain.Item, error) {
	var assigned domain.Item
	_, err := s.update(ctx, splitlog.OpAssign, func(session *domain.Session) error {
		index := domain.FindItem(session.Items, itemID)
		if index < 0 {
			return fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
		}
		if err := requireParticipants(session.Participants, participants); err != nil {
			return err
		}

		assigned = session.Items[index]
		assigned.Participants = slices.Clone(participants)
		session.Items[index] = assigned
		return nil
	})
	if err != nil {
		return domain.Item{}, err
	}

	return assigned, nil
}

func (s *Service) AddParticipant(ctx context.Context, name string) (domain.Participant, error) {
	participant := domain.Participant{ID: s.ids.NewParticipantID(), Name: strings.TrimSpace(name)}

	_, err := s.update(ctx, splitlog.OpAddParticipant, func(session *domain.Session) error {
		session.Participants = append(session.Participants, participant)
		return nil
	})
	if err != nil {
		return domain.Participant{}, err
	}

	return participant, nil
}

// RenameParticipant keeps every item assignment, since items reference the ID.
func (s *Service) RenameParticipant(ctx context.Context, id domain.ParticipantID, name string) error {
	_, err := s.update(ctx, splitlog.OpRenameParticipant, func(session *domain.Session) error {
		index := domain.FindParticipant(session.Participants, id)
		if index < 0 {
			return fmt.Errorf("%w: %s", domain.ErrParticipantNotFound, id)
		}
		session.Participants[index].Name = strings.TrimSpace(name)
		return nil
	})

	return err
}

// RemoveParticipant drops the participant and turns their item references into
// detached references, so item divisors are unchanged and the removed share
// becomes unattributed.
func (s *Service) RemoveParticipant(ctx context.Context, id domain.ParticipantID) error {
	_, err := s.update(ctx, splitlog.OpRemoveParticipant, func(session *domain.Session) error {
		index := domain.FindParticipant(session.Participants, id)
		if index < 0 {
			return fmt.Errorf("%w: %s", domain.ErrParticipantNotFound, id)
		}

		removed := session.Participants[index]
		*session = session.DetachParticipant(removed.ID, removed.Name)
		session.Participants = slices.Delete(session.Participants, index, index+1)
		return nil
	})

	return err
}

func (s *Service) SetTaxApplied(ctx context.Context, applied bool) error {
	_, err := s.update(ctx, splitlog.OpSetTax, func(session *domain.Session) error {
		session.TaxApplied = applied
		return nil
	})

	return err
}

func (s *Service) SetCountry(ctx context.Context, code string) (domain.Country, error) {
	country, ok := domain.FindCountry(code)
	if !ok {
		return domain.Country{}, fmt.Errorf("%w: %q", domain.ErrUnknownCountry, code)
	}

	_, err := s.update(ctx, splitlog.OpSetCountry, func(session *domain.Session) error {
		session.CountryCode = country.Code
		return nil
	})
	if err != nil {
		return domain.Country{}, err
	}

	return country, nil
}

// Reset restores one empty item, one empty participant and tax off. The
// country selection is kept.
func (s *Service) Reset(ctx context.Context) (domain.Session, error) {
	return s.update(ctx, splitlog.OpReset, func(session *domain.Session) error {
		fresh := domain.NewSession(s.ids.NewItemID, s.ids.NewParticipantID)
		fresh.CountryCode = session.CountryCode
		*session = fresh
		return nil
	})
}

// BeginImport must be called when an import is initiated, before its source is
// fetched; the returned token is passed to Import once the data is available.
func (s *Service) BeginImport() ImportToken {
	return s.imports.Begin()
}

// Import replaces the session with the decoded document. Malformed data and
// superseded tokens are rejected without touching the stored session.
func (s *Service) Import(ctx context.Context, token ImportToken, data []byte) (domain.Session, error) {
	doc, err := s.codec.Decode(data)
	if err != nil {
		s.logger.WarnContext(ctx, "import rejected",
			splitlog.FieldOperation, splitlog.OpImport,
			splitlog.FieldImportToken, uint64(token),
			splitlog.FieldError, err)
		return domain.Session{}, fmt.Errorf("decode import: %w", err)
	}

	var imported domain.Session
	err = s.imports.Complete(token, func() error {
		var updateErr error
		imported, updateErr = s.update(ctx, splitlog.OpImport, func(session *domain.Session) error {
			next := doc.Session(s.ids.NewItemID, s.ids.NewParticipantID)
			next.CountryCode = session.CountryCode
			*session = next
			return nil
		})
		return updateErr
	})
	if err != nil {
		if errors.Is(err, ErrStaleImport) {
			s.logger.WarnContext(ctx, "stale import discarded",
				splitlog.FieldOperation, splitlog.OpImport,
				splitlog.FieldImportToken, uint64(token))
		}
		return domain.Session{}, err
	}

	return imported, nil
}

func (s *Service) Export(ctx context.Context) ([]byte, error) {
	session, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}

	doc := domain.NewTransferDocument(session, session.Allocate())
	data, err := s.codec.Encode(doc, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}

	s.logger.DebugContext(ctx, "session exported",
		splitlog.FieldOperation, splitlog.OpExport,
		splitlog.FieldItems, len(doc.Items),
		splitlog.FieldParticipants, len(doc.People))

	return data, nil
}

func (s *Service) load(ctx context.Context) (domain.Session, error) {
	session, found, err := s.repo.Load(ctx)
	if err != nil {
		return domain.Session{}, fmt.Errorf("load session: %w", err)
	}
	if found {
		return session, nil
	}

	session = domain.NewSession(s.ids.NewItemID, s.ids.NewParticipantID)
	session.CountryCode = s.defaultCountry
	session.UpdatedAt = s.clock.Now()
	if err := s.repo.Save(ctx, session); err != nil {
		return domain.Session{}, fmt.Errorf("save new session: %w", err)
	}

	return session, nil
}

// update runs mutate on a copy of the current session and persists the result.
// Nothing is saved when mutate fails. Notification is best effort.
func (s *Service) update(ctx context.Context, op string, mutate func(*domain.Session) error) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load(ctx)
	if err != nil {
		return domain.Session{}, err
	}

	next := current.Clone()
	if err := mutate(&next); err != nil {
		return domain.Session{}, err
	}
	next.UpdatedAt = s.clock.Now()

	if err := s.repo.Save(ctx, next); err != nil {
		return domain.Session{}, fmt.Errorf("save session: %w", err)
	}

	allocation := next.Allocate()
	s.logger.DebugContext(ctx, "session updated",
		splitlog.FieldOperation, op,
		splitlog.FieldItems, len(next.Items),
		splitlog.FieldParticipants, len(next.Participants),
		splitlog.FieldTotal, allocation.Total.StringFixed(2))

	if err := s.notifier.SessionChanged(ctx, next, allocation); err != nil {
		s.logger.WarnContext(ctx, "session change notification failed",
			splitlog.FieldOperation, op,
			splitlog.FieldError, err)
	}

	return next, nil
}

func requireParticipants(participants []domain.Participant, ids []domain.ParticipantID) error {
	for _, id := range ids {
		if domain.FindParticipant(participants, id) < 0 {
			return fmt.Errorf("%w: %s", domain.ErrParticipantNotFound, id)
		}
	}

	return nil
}
