package toml

import "fmt"

const currentSchemaVersion = 1

// fileSchema is the on-disk session record. Items and People are pointers so
// an absent table can be told apart from an empty one.
type fileSchema struct {
	Version    int             `toml:"version"`
	Country    string          `toml:"country,omitempty"`
	TaxApplied bool            `toml:"tax_applied"`
	UpdatedAt  string          `toml:"updated_at,omitempty"`
	Items      *[]itemSchema   `toml:"items"`
	People     *[]personSchema `toml:"people"`
}

// fileWriteSchema mirrors fileSchema with plain slices so the encoder emits
// [[items]] and [[people]] array tables instead of inline arrays.
type fileWriteSchema struct {
	Version    int            `toml:"version"`
	Country    string         `toml:"country,omitempty"`
	TaxApplied bool           `toml:"tax_applied"`
	UpdatedAt  string         `toml:"updated_at,omitempty"`
	Items      []itemSchema   `toml:"items"`
	People     []personSchema `toml:"people"`
}

func (s fileSchema) forWrite() fileWriteSchema {
	out := fileWriteSchema{
		Version:    s.Version,
		Country:    s.Country,
		TaxApplied: s.TaxApplied,
		UpdatedAt:  s.UpdatedAt,
		Items:      []itemSchema{},
		People:     []personSchema{},
	}
	if s.Items != nil {
		out.Items = *s.Items
	}
	if s.People != nil {
		out.People = *s.People
	}

	return out
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported session schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type itemSchema struct {
	ID         string   `toml:"id"`
	Name       string   `toml:"name"`
	Cost       string   `toml:"cost"`
	Quantity   int64    `toml:"quantity"`
	SplitAmong []string `toml:"split_among"`
}

type personSchema struct {
	ID   string `toml:"id"`
	Name string `toml:"name"`
}
