package location

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Category classifies a gazetteer entry.
type Category string

const (
	CategoryCity     Category = "city"
	CategoryLocality Category = "locality"
	CategoryArea     Category = "area"
	CategoryDistrict Category = "district"
	CategorySuburb   Category = "suburb"
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryCity, CategoryLocality, CategoryArea, CategoryDistrict, CategorySuburb:
		return true
	default:
		return false
	}
}

// Coordinates is a WGS84 latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// Valid reports whether the coordinates are within WGS84 bounds.
func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// DefaultCoordinates is used when neither the caller nor the gazetteer can
// supply a position (New Delhi).
var DefaultCoordinates = Coordinates{Lat: 28.6139, Lng: 77.2090}

// Entry is a known locality. Entries are never mutated after the gazetteer
// is built.
type Entry struct {
	Name        string      `json:"name" yaml:"name"`
	ParentCity  string      `json:"parentCity" yaml:"parent_city"`
	State       string      `json:"state" yaml:"state"`
	Coordinates Coordinates `json:"coordinates" yaml:"coordinates"`
	Category    Category    `json:"category" yaml:"category"`
	Aliases     []string    `json:"aliases,omitempty" yaml:"aliases,omitempty"`
}

// DisplayName formats the entry as "Name, ParentCity", or just the name for
// an entry that is its own parent city.
func (e Entry) DisplayName() string {
	if e.ParentCity == "" || e.ParentCity == e.Name {
		return e.Name
	}
	return e.Name + ", " + e.ParentCity
}

// Gazetteer is an immutable, ordered table of entries. Table order is the
// tie-break order for equally scored search results.
type Gazetteer struct {
	entries []Entry
}

// NewGazetteer builds a gazetteer from a deep copy of entries.
func NewGazetteer(entries []Entry) *Gazetteer {
	return &Gazetteer{entries: cloneEntries(entries)}
}

// DefaultGazetteer returns the built-in table of Indian localities.
func DefaultGazetteer() *Gazetteer {
	return NewGazetteer(builtinEntries)
}

// Entries returns a deep copy of the table in order.
func (g *Gazetteer) Entries() []Entry {
	return cloneEntries(g.entries)
}

// clone copies e so the result shares no memory with the table.
func (e Entry) clone() Entry {
	if e.Aliases != nil {
		e.Aliases = append([]string(nil), e.Aliases...)
	}
	return e
}

func cloneEntries(entries []Entry) []Entry {
	cp := make([]Entry, len(entries))
	for i, e := range entries {
		cp[i] = e.clone()
	}
	return cp
}

// Len returns the number of entries.
func (g *Gazetteer) Len() int {
	return len(g.entries)
}

type extensionFile struct {
	Entries []Entry `yaml:"entries"`
}

// WithExtensionFile returns a new gazetteer with the entries of a YAML file
// appended after the built-in ones. An empty path returns g unchanged.
func (g *Gazetteer) WithExtensionFile(path string) (*Gazetteer, error) {
	if path == "" {
		return g, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading gazetteer extension: %w", err)
	}

	var ext extensionFile
	if err := yaml.Unmarshal(data, &ext); err != nil {
		return nil, fmt.Errorf("parsing gazetteer extension: %w", err)
	}

	entries := g.Entries()
	for i, e := range ext.Entries {
		if e.Name == "" {
			return nil, fmt.Errorf("gazetteer extension entry %d: name is required", i)
		}
		if e.Category == "" {
			e.Category = CategoryLocality
		}
		if !e.Category.Valid() {
			return nil, fmt.Errorf("gazetteer extension entry %q: unknown category %q", e.Name, e.Category)
		}
		if !e.Coordinates.Valid() {
			return nil, fmt.Errorf("gazetteer extension entry %q: coordinates out of range", e.Name)
		}
		if e.ParentCity == "" {
			e.ParentCity = e.Name
		}
		entries = append(entries, e)
	}

	return NewGazetteer(entries), nil
}
