package external

// SpellData represents spell information from the SRD
type SpellData struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Level       *int     `json:"level,omitempty"`
	School      string   `json:"school,omitempty"`
	CastingTime string   `json:"casting_time,omitempty"`
	Range       string   `json:"range,omitempty"`
	Duration    string   `json:"duration,omitempty"`
	Properties  []string `json:"properties,omitempty"`
	Classes     []string `json:"classes,omitempty"`
	Description string   `json:"description,omitempty"`
}

// ListSpellsInput filters the SRD spell list
type ListSpellsInput struct {
	// Level 0 lists cantrips; nil lists every level
	Level *int
	// Class restricts to one spellcasting class, e.g. "wizard"
	Class string
}
