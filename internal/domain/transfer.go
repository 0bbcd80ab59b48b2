package domain

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// TransferDocument is the name-based shape sessions are exported to and
// imported from. Participants are referenced by display name, not by ID.
type TransferDocument struct {
	Items      []TransferItem
	People     []TransferPerson
	Total      decimal.Decimal
	TaxApplied bool
}

type TransferItem struct {
	Name       string
	Cost       decimal.Decimal
	Quantity   int64
	SplitAmong []string
}

type TransferPerson struct {
	Name string
	Owes decimal.Decimal
}

// NewTransferDocument flattens a session and its allocation into names.
// Owed amounts and the total are rounded to cents. Detached references export
// under the name they carry unless that label already belongs to a live
// participant or to another detached reference, in which case a "(removed)"
// suffix keeps them apart. References to unknown IDs export as the raw ID so
// the divisor survives a round trip.
func NewTransferDocument(session Session, allocation Allocation) TransferDocument {
	names := make(map[ParticipantID]string, len(session.Participants))
	taken := make(map[string]struct{}, len(session.Participants))
	for _, participant := range session.Participants {
		if _, ok := names[participant.ID]; !ok {
			names[participant.ID] = participant.Name
		}
		taken[participant.Name] = struct{}{}
	}
	for _, item := range session.Items {
		for _, ref := range item.Participants {
			if _, ok := names[ref]; ok {
				continue
			}
			if name, ok := ref.Detached(); ok {
				names[ref] = detachedLabel(name, taken)
			}
		}
	}

	doc := TransferDocument{
		Items:      make([]TransferItem, 0, len(session.Items)),
		People:     make([]TransferPerson, 0, len(session.Participants)),
		Total:      allocation.Total,
		TaxApplied: session.TaxApplied,
	}

	for _, item := range session.Items {
		item = item.Normalize()
		splitAmong := make([]string, 0, len(item.Participants))
		for _, ref := range item.Participants {
			splitAmong = append(splitAmong, referenceName(ref, names))
		}

		doc.Items = append(doc.Items, TransferItem{
			Name:       item.Name,
			Cost:       item.UnitCost,
			Quantity:   item.Quantity,
			SplitAmong: splitAmong,
		})
	}

	for _, participant := range session.Participants {
		doc.People = append(doc.People, TransferPerson{
			Name: participant.Name,
			Owes: allocation.RoundedOwed(participant.ID),
		})
	}

	return doc
}

func referenceName(ref ParticipantID, names map[ParticipantID]string) string {
	if name, ok := names[ref]; ok {
		return name
	}

	return string(ref)
}

// detachedLabel picks the first free label for a detached name and reserves it.
func detachedLabel(name string, taken map[string]struct{}) string {
	label := name
	for n := 1; ; n++ {
		if _, ok := taken[label]; !ok {
			break
		}
		suffix := " (removed)"
		if n > 1 {
			suffix = " (removed " + strconv.Itoa(n) + ")"
		}
		label = strings.TrimSpace(name + suffix)
	}

	taken[label] = struct{}{}
	return label
}

// Session rebuilds a session with fresh IDs. splitAmong names resolve to the
// first participant with that name; unmatched names become detached
// references, one per distinct name. Owes and Total are ignored since the
// engine recomputes them.
func (d TransferDocument) Session(newItemID func() ItemID, newParticipantID func() ParticipantID) Session {
	session := Session{
		Items:        make([]Item, 0, len(d.Items)),
		Participants: make([]Participant, 0, len(d.People)),
		TaxApplied:   d.TaxApplied,
	}

	for _, person := range d.People {
		session.Participants = append(session.Participants, Participant{
			ID:   newParticipantID(),
			Name: person.Name,
		})
	}

	detached := make(map[string]ParticipantID)
	for _, entry := range d.Items {
		refs := make([]ParticipantID, 0, len(entry.SplitAmong))
		for _, name := range entry.SplitAmong {
			if participant, ok := ParticipantByName(session.Participants, name); ok {
				refs = append(refs, participant.ID)
				continue
			}
			ref, ok := detached[name]
			if !ok {
				ref = DetachedParticipantID(newParticipantID(), name)
				detached[name] = ref
			}
			refs = append(refs, ref)
		}

		item := Item{
			ID:           newItemID(),
			Name:         entry.Name,
			UnitCost:     entry.Cost,
			Quantity:     entry.Quantity,
			Participants: refs,
		}
		session.Items = append(session.Items, item.Normalize())
	}

	return session
}
