package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/bnema/splitcalc/internal/domain"
	"github.com/bnema/splitcalc/internal/ports"
	"github.com/shopspring/decimal"
)

const (
	exportVersion = "1.0"
	generatedBy   = "Split Calculator"
)

var (
	// ErrUnparseable means the bytes are not JSON at all.
	ErrUnparseable = errors.New("document is not valid JSON")
	// ErrInvalidDocument means the JSON lacks the expected fields or types.
	ErrInvalidDocument = errors.New("invalid split document")
)

type Codec struct{}

var _ ports.TransferCodec = Codec{}

func NewCodec() Codec {
	return Codec{}
}

type itemJSON struct {
	Name       string      `json:"name"`
	Cost       json.Number `json:"cost"`
	Quantity   int64       `json:"quantity"`
	SplitAmong []string    `json:"splitAmong"`
}

type personJSON struct {
	Name string      `json:"name"`
	Owes json.Number `json:"owes"`
}

type calculationJSON struct {
	Items      []itemJSON   `json:"items"`
	People     []personJSON `json:"people"`
	Total      json.Number  `json:"total"`
	TaxApplied bool         `json:"taxApplied"`
}

type exportInfoJSON struct {
	Version     string `json:"version"`
	ExportedAt  string `json:"exportedAt"`
	GeneratedBy string `json:"generatedBy"`
}

type metadataJSON struct {
	ItemCount        int `json:"itemCount"`
	ParticipantCount int `json:"participantCount"`
}

// documentJSON repeats the calculation at top level so both the plain shape
// and the wrapped shape read back.
type documentJSON struct {
	calculationJSON
	ExportInfo  exportInfoJSON  `json:"exportInfo"`
	Calculation calculationJSON `json:"calculation"`
	Metadata    metadataJSON    `json:"metadata"`
}

// Encode writes the export document. Owed amounts and the total are rounded
// to cents; participantCount counts named participants only.
func (Codec) Encode(doc domain.TransferDocument, exportedAt time.Time) ([]byte, error) {
	calculation := calculationJSON{
		Items:      make([]itemJSON, 0, len(doc.Items)),
		People:     make([]personJSON, 0, len(doc.People)),
		Total:      number(domain.RoundCents(doc.Total)),
		TaxApplied: doc.TaxApplied,
	}

	for _, item := range doc.Items {
		splitAmong := item.SplitAmong
		if splitAmong == nil {
			splitAmong = []string{}
		}
		calculation.Items = append(calculation.Items, itemJSON{
			Name:       item.Name,
			Cost:       number(item.Cost),
			Quantity:   item.Quantity,
			SplitAmong: splitAmong,
		})
	}

	named := 0
	for _, person := range doc.People {
		if person.Name != "" {
			named++
		}
		calculation.People = append(calculation.People, personJSON{
			Name: person.Name,
			Owes: number(domain.RoundCents(person.Owes)),
		})
	}

	data, err := json.MarshalIndent(documentJSON{
		calculationJSON: calculation,
		ExportInfo: exportInfoJSON{
			Version:     exportVersion,
			ExportedAt:  exportedAt.UTC().Format(time.RFC3339),
			GeneratedBy: generatedBy,
		},
		Calculation: calculation,
		Metadata: metadataJSON{
			ItemCount:        len(doc.Items),
			ParticipantCount: named,
		},
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export document: %w", err)
	}

	return append(data, '\n'), nil
}

// Decode accepts the four calculation fields either at the top level or under
// "calculation". Structural problems fail with ErrInvalidDocument; individual
// numeric values are coerced instead, negatives and non-numbers becoming 0.
func (Codec) Decode(data []byte) (domain.TransferDocument, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var root any
	if err := decoder.Decode(&root); err != nil {
		return domain.TransferDocument{}, fmt.Errorf("%w: %v", ErrUnparseable, err)
	}
	if decoder.More() {
		return domain.TransferDocument{}, fmt.Errorf("%w: trailing data after document", ErrUnparseable)
	}

	if _, ok := root.(map[string]any); !ok {
		return domain.TransferDocument{}, fmt.Errorf("%w: top level is not an object", ErrInvalidDocument)
	}

	base := "$"
	if _, err := jsonpath.Get("$.items", root); err != nil {
		if calculation, err := jsonpath.Get("$.calculation", root); err == nil {
			if _, ok := calculation.(map[string]any); ok {
				base = "$.calculation"
			}
		}
	}

	rawItems, err := lookup[[]any](root, base+".items", "items must be an array")
	if err != nil {
		return domain.TransferDocument{}, err
	}
	rawPeople, err := lookup[[]any](root, base+".people", "people must be an array")
	if err != nil {
		return domain.TransferDocument{}, err
	}
	total, err := lookup[json.Number](root, base+".total", "total must be a number")
	if err != nil {
		return domain.TransferDocument{}, err
	}
	taxApplied, err := lookup[bool](root, base+".taxApplied", "taxApplied must be a boolean")
	if err != nil {
		return domain.TransferDocument{}, err
	}

	doc := domain.TransferDocument{
		Items:      make([]domain.TransferItem, 0, len(rawItems)),
		People:     make([]domain.TransferPerson, 0, len(rawPeople)),
		Total:      amount(total),
		TaxApplied: taxApplied,
	}

	for _, raw := range rawItems {
		fields, _ := raw.(map[string]any)
		doc.Items = append(doc.Items, domain.TransferItem{
			Name:       stringField(fields, "name"),
			Cost:       amount(fields["cost"]),
			Quantity:   quantity(fields["quantity"]),
			SplitAmong: names(fields["splitAmong"]),
		})
	}

	for _, raw := range rawPeople {
		fields, _ := raw.(map[string]any)
		doc.People = append(doc.People, domain.TransferPerson{
			Name: stringField(fields, "name"),
			Owes: amount(fields["owes"]),
		})
	}

	return doc, nil
}

func lookup[T any](root any, path, problem string) (T, error) {
	var zero T

	value, err := jsonpath.Get(path, root)
	if err != nil {
		return zero, fmt.Errorf("%w: %s", ErrInvalidDocument, problem)
	}

	typed, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s", ErrInvalidDocument, problem)
	}

	return typed, nil
}

func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

func amount(raw any) decimal.Decimal {
	switch value := raw.(type) {
	case json.Number:
		return domain.ParseAmount(value.String())
	case string:
		return domain.ParseAmount(value)
	default:
		return decimal.Zero
	}
}

func quantity(raw any) int64 {
	switch value := raw.(type) {
	case json.Number:
		if whole, err := value.Int64(); err == nil {
			return max(whole, 0)
		}
		parsed, err := strconv.ParseFloat(value.String(), 64)
		if err != nil {
			return 0
		}
		return domain.QuantityFromFloat(parsed)
	case string:
		return domain.ParseQuantity(value)
	default:
		return 0
	}
}

func stringField(fields map[string]any, key string) string {
	value, _ := fields[key].(string)
	return value
}

func names(raw any) []string {
	list, ok := raw.([]any)
	if !ok {
		return []string{}
	}

	out := make([]string, 0, len(list))
	for _, entry := range list {
		if name, ok := entry.(string); ok {
			out = append(out, name)
		}
	}

	return out
}
