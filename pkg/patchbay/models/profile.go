package models

// PriorityGroup classifies a device for profile work.
type PriorityGroup string

const (
	PrioritySynth   PriorityGroup = "synth"
	PriorityFX      PriorityGroup = "fx"
	PriorityRouting PriorityGroup = "routing"
)

// Control is one front-panel control of a device.
type Control struct {
	NameEN  string `json:"name_en"`
	Type    string `json:"type"`
	NotesDE string `json:"notes_de"`
}

// ProfileMeta holds provenance and review state for a device profile.
type ProfileMeta struct {
	GeneratedAtUTC       string `json:"generated_at_utc,omitempty"`
	Language             string `json:"language,omitempty"`
	Source               string `json:"source,omitempty"`
	ManualEnrichedAtUTC  string `json:"manual_enriched_at_utc,omitempty"`
	ManualEnrichError    string `json:"manual_enrich_error,omitempty"`
	ControlsCompleteness string `json:"controls_completeness,omitempty"`
	ManualVerified       bool   `json:"manual_verified,omitempty"`
	PanelVerified        bool   `json:"panel_verified,omitempty"`
}

// CategoriesDE keeps the German inventory categories verbatim.
type CategoriesDE struct {
	Hauptkategorie string `json:"Hauptkategorie"`
	Unterkategorie string `json:"Unterkategorie"`
	KategorieTyp   string `json:"Kategorie-Typ"`
}

// DeviceProfile is the skeleton record generated per device and later enriched.
type DeviceProfile struct {
	Meta                    ProfileMeta   `json:"meta"`
	ID                      string        `json:"id"`
	NameDE                  string        `json:"name_de"`
	Manufacturer            string        `json:"manufacturer"`
	Model                   string        `json:"model"`
	Count                   int           `json:"count"`
	CategoriesDE            CategoriesDE  `json:"categories_de"`
	CategoryDE              string        `json:"category_de,omitempty"`
	PriorityGroup           PriorityGroup `json:"priority_group"`
	SignalRole              []string      `json:"signal_role"`
	LevelGuess              string        `json:"level_guess"`
	IORawDE                 string        `json:"io_raw_de"`
	ControlsRawDE           string        `json:"controls_raw_de"`
	Controls                []Control     `json:"controls"`
	PowerRawDE              string        `json:"power_raw_de"`
	NotesRawDE              string        `json:"notes_raw_de"`
	TechRawDE               string        `json:"tech_raw_de"`
	PatchbayName            string        `json:"patchbay_name"`
	ManualSources           []string      `json:"manual_sources"`
	Enriched                bool          `json:"enriched"`
	BestForTags             []string      `json:"best_for_tags"`
	DangerZonesDE           []string      `json:"danger_zones_de"`
	ControlsVerifiedByImage bool          `json:"controls_verified_by_image,omitempty"`
}

// ProfileIndexEntry is one line of the profile index.
type ProfileIndexEntry struct {
	ID            string        `json:"id"`
	NameDE        string        `json:"name_de"`
	PriorityGroup PriorityGroup `json:"priority_group"`
}

// ProfileIndex lists generated profiles.
type ProfileIndex struct {
	Meta    ProfileMeta         `json:"meta"`
	Devices []ProfileIndexEntry `json:"devices"`
}
