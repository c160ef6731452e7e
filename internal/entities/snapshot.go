package entities

import (
	"bytes"
	"encoding/json"
	"math"
)

// Snapshot is the derived-statistics object returned by the rules service.
// Raw is kept verbatim for clients; only the spellcasting block is read here.
type Snapshot struct {
	Raw          json.RawMessage
	Spellcasting *Spellcasting
}

// Spellcasting is the subset of the derived spellcasting block the editor uses
type Spellcasting struct {
	Class       string
	PreparedMax *float64
}

type snapshotShape struct {
	Spellcasting *struct {
		Class       json.RawMessage `json:"class"`
		PreparedMax json.RawMessage `json:"prepared_max"`
	} `json:"spellcasting"`
}

// MarshalJSON writes the snapshot exactly as received
func (s Snapshot) MarshalJSON() ([]byte, error) {
	if len(s.Raw) == 0 {
		return []byte("null"), nil
	}
	return s.Raw, nil
}

// UnmarshalJSON keeps the raw object and reads the spellcasting fields.
// A prepared_max that is not a finite number is treated as absent.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var compact bytes.Buffer
	if err := json.Compact(&compact, data); err != nil {
		return err
	}

	var shape snapshotShape
	if err := json.Unmarshal(compact.Bytes(), &shape); err != nil {
		return err
	}

	*s = Snapshot{Raw: json.RawMessage(compact.Bytes())}
	if shape.Spellcasting == nil {
		return nil
	}

	sc := &Spellcasting{}
	_ = json.Unmarshal(shape.Spellcasting.Class, &sc.Class) // nolint:errcheck // non-string class reads as ""

	var capValue float64
	raw := shape.Spellcasting.PreparedMax
	if len(raw) > 0 && !isNull(raw) && json.Unmarshal(raw, &capValue) == nil && !math.IsInf(capValue, 0) {
		sc.PreparedMax = &capValue
	}

	s.Spellcasting = sc
	return nil
}

// PreparedMax returns the prepared-spell capacity, or nil when absent
func (s *Snapshot) PreparedMax() *float64 {
	if s == nil || s.Spellcasting == nil {
		return nil
	}
	return s.Spellcasting.PreparedMax
}

// Class returns the spellcasting class, or "" when absent
func (s *Snapshot) Class() string {
	if s == nil || s.Spellcasting == nil {
		return ""
	}
	return s.Spellcasting.Class
}

// ParseSnapshot decodes a rules service reply
func ParseSnapshot(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := snap.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return &snap, nil
}
