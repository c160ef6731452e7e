package rules

// Log levels accepted by the log endpoint
const (
	LevelError = "error"
	LevelWarn  = "warn"
	LevelInfo  = "info"
)

// Module describes one rule module
type Module struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Version     string `json:"version,omitempty"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// NewCharacterInput selects the module and initial name
type NewCharacterInput struct {
	ModuleID string `json:"module_id,omitempty"`
	Name     string `json:"name,omitempty"`
}

// SearchSpellsInput filters spell autocomplete. Empty fields are omitted.
type SearchSpellsInput struct {
	Module string
	Name   string
	Class  string
}

// Spell is one autocomplete hit
type Spell struct {
	Name    string   `json:"name"`
	Level   *int     `json:"level,omitempty"`
	School  string   `json:"school,omitempty"`
	Classes []string `json:"classes,omitempty"`
}

// LogEntry is a remote log record
type LogEntry struct {
	Level   string `json:"level"`
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

type listModulesResponse struct {
	Modules []*Module `json:"modules"`
}

type validateResponse struct {
	Issues []string `json:"issues"`
}

type searchSpellsResponse struct {
	Spells []*Spell `json:"spells"`
}
