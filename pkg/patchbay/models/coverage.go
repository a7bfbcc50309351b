package models

// CoverageRow summarizes one device profile's completeness.
type CoverageRow struct {
	ID                   string        `json:"id"`
	NameDE               string        `json:"name_de"`
	Manufacturer         string        `json:"manufacturer"`
	Model                string        `json:"model"`
	PriorityGroup        PriorityGroup `json:"priority_group"`
	CategoryDE           string        `json:"category_de"`
	ControlsCount        int           `json:"controls_count"`
	ManualSourcesCount   int           `json:"manual_sources_count"`
	ControlsCompleteness string        `json:"controls_completeness"`
	ManualVerified       bool          `json:"manual_verified"`
	PanelVerified        bool          `json:"panel_verified"`
}

// CoverageSummary counts devices per priority group and completeness.
type CoverageSummary struct {
	PriorityGroup        PriorityGroup `json:"priority_group"`
	ControlsCompleteness string        `json:"controls_completeness"`
	Devices              int           `json:"devices"`
}
