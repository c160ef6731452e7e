package sheet

// DefaultModuleID is preferred when no module is chosen
const DefaultModuleID = "fivee_stock"

// DefaultCharacterName names characters created without a name
const DefaultCharacterName = "New Hero"

// Notice texts shown to the user
const (
	NoticeSaved             = "Saved"
	NoticeNothingToSave     = "Nothing to save"
	NoticeInvalidProps      = "Invalid props JSON"
	NoticeFeatNameRequired  = "Feat name required"
	NoticeSpellNameRequired = "Spell name required"
	NoticeModulesFailed     = "Failed to load modules"
)
