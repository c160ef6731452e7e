package suggest

// SuggestInput holds the partial spell name and its filters
type SuggestInput struct {
	SessionID string
	Query     string
	// Module is the document's rule module
	Module string
	// Class is the derived spellcasting class, empty when unknown
	Class string
	// Level narrows SRD results; 0 means cantrips, nil any level
	Level *int
}

// Suggestion is one candidate spell name
type Suggestion struct {
	Name   string `json:"name"`
	Level  *int   `json:"level,omitempty"`
	Source string `json:"source"`
}

// SuggestOutput lists ranked suggestions
type SuggestOutput struct {
	Suggestions []*Suggestion
}
