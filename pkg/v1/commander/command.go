package commander

// RunCommand triggers one agent run. Zero-valued fields fall back to the
// agent's configured defaults. When Keyword is set the agent searches only
// that keyword instead of its gathered queries.
type RunCommand struct {
	MaxQueries         int      `json:"maxQueries,omitempty"`
	MinDiscountPercent *float64 `json:"minDiscountPercent,omitempty"`
	CreateDeals        bool     `json:"createDeals,omitempty"`
	Keyword            string   `json:"keyword,omitempty"`
	Category           string   `json:"category,omitempty"`
}
