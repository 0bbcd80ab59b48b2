package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/splitcalc/internal/domain"
	"github.com/bnema/splitcalc/internal/ports"
	"github.com/google/uuid"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	sessionPathKey    = "store.path"
	sessionFileMode   = 0o600
	sessionDirMode    = 0o700
	sessionConfigDir  = ".splitcalc"
	sessionConfigFile = "session.toml"
	tempFilePattern   = ".session-*.toml.tmp"
)

type Repository struct {
	sessionPath string
	mu          *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.SessionRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	sessionPath := cfg.GetString(sessionPathKey)
	if sessionPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		sessionPath = filepath.Join(homeDir, sessionConfigDir, sessionConfigFile)
	}

	sessionPath, err := normalizeSessionPath(sessionPath)
	if err != nil {
		return nil, err
	}

	return &Repository{sessionPath: sessionPath, mu: lockForPath(sessionPath)}, nil
}

func (r *Repository) Path() string {
	return r.sessionPath
}

func (r *Repository) Load(ctx context.Context) (domain.Session, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Session{}, false, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, found, err := r.readSchema()
	if err != nil || !found {
		return domain.Session{}, false, err
	}

	return fromSchema(file), true, nil
}

// Save replaces the whole record. The file is written to a temp file and
// renamed into place so readers never see a partial session.
func (r *Repository) Save(ctx context.Context, session domain.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(toSchema(session))
}

func (r *Repository) readSchema() (fileSchema, bool, error) {
	data, err := os.ReadFile(r.sessionPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, false, nil
		}
		return fileSchema{}, false, fmt.Errorf("read session file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, false, fmt.Errorf("decode session file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, false, err
	}
	file.applyDefaults()

	return file, true, nil
}

func normalizeSessionPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve session path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.sessionPath), sessionDirMode); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}

	data, err := toml.Marshal(file.forWrite())
	if err != nil {
		return fmt.Errorf("encode session file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.sessionPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp session file: %w", err)
	}

	if err := tempFile.Chmod(sessionFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp session file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp session file: %w", err)
	}

	if err := os.Rename(tempName, r.sessionPath); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(r.sessionPath, sessionFileMode); err != nil {
		return fmt.Errorf("chmod session file: %w", err)
	}

	return nil
}

func toSchema(session domain.Session) fileSchema {
	items := make([]itemSchema, 0, len(session.Items))
	for _, item := range session.Items {
		item = item.Normalize()
		splitAmong := make([]string, 0, len(item.Participants))
		for _, ref := range item.Participants {
			splitAmong = append(splitAmong, string(ref))
		}

		items = append(items, itemSchema{
			ID:         string(item.ID),
			Name:       item.Name,
			Cost:       item.UnitCost.String(),
			Quantity:   item.Quantity,
			SplitAmong: splitAmong,
		})
	}

	people := make([]personSchema, 0, len(session.Participants))
	for _, participant := range session.Participants {
		people = append(people, personSchema{ID: string(participant.ID), Name: participant.Name})
	}

	return fileSchema{
		Version:    currentSchemaVersion,
		Country:    session.CountryCode,
		TaxApplied: session.TaxApplied,
		UpdatedAt:  formatTime(session.UpdatedAt),
		Items:      &items,
		People:     &people,
	}
}

// fromSchema tolerates partial records: a missing items or people table falls
// back to one empty entry, a missing country to the default, and entries
// without an ID get a fresh one.
func fromSchema(file fileSchema) domain.Session {
	session := domain.Session{
		TaxApplied:  file.TaxApplied,
		CountryCode: file.Country,
		UpdatedAt:   parseTime(file.UpdatedAt),
	}
	if session.CountryCode == "" {
		session.CountryCode = domain.DefaultCountryCode
	}

	if file.Items == nil {
		session.Items = []domain.Item{{ID: newItemID()}}
	} else {
		session.Items = make([]domain.Item, 0, len(*file.Items))
		for _, entry := range *file.Items {
			refs := make([]domain.ParticipantID, 0, len(entry.SplitAmong))
			for _, ref := range entry.SplitAmong {
				refs = append(refs, domain.ParticipantID(ref))
			}

			id := domain.ItemID(entry.ID)
			if id == "" {
				id = newItemID()
			}

			session.Items = append(session.Items, domain.Item{
				ID:           id,
				Name:         entry.Name,
				UnitCost:     domain.ParseAmount(entry.Cost),
				Quantity:     max(entry.Quantity, 0),
				Participants: refs,
			})
		}
	}

	if file.People == nil {
		session.Participants = []domain.Participant{{ID: newParticipantID()}}
	} else {
		session.Participants = make([]domain.Participant, 0, len(*file.People))
		for _, entry := range *file.People {
			id := domain.ParticipantID(entry.ID)
			if id == "" {
				id = newParticipantID()
			}
			session.Participants = append(session.Participants, domain.Participant{ID: id, Name: entry.Name})
		}
	}

	return session
}

func newItemID() domain.ItemID {
	return domain.ItemID(uuid.NewString())
}

func newParticipantID() domain.ParticipantID {
	return domain.ParticipantID(uuid.NewString())
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339Nano)
}
