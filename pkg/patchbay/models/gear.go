package models

// GearItem is one row of the device inventory.
type GearItem struct {
	ID           string   `json:"id"`
	MainCategory string   `json:"main_category"`
	SubCategory  string   `json:"sub_category"`
	CategoryType string   `json:"category_type"`
	Manufacturer string   `json:"manufacturer"`
	Model        string   `json:"model"`
	Count        int      `json:"count"`
	IOText       string   `json:"io_text"`
	ControlsText string   `json:"controls_text"`
	PowerText    string   `json:"power_text"`
	NotesText    string   `json:"notes_text"`
	TechText     string   `json:"tech_text"`
	Tags         []string `json:"tags"`
}

// GearDocument is the inventory export.
type GearDocument struct {
	Meta Meta       `json:"meta"`
	Gear []GearItem `json:"gear"`
}
