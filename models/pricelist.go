package models

// PriceListItem is one imported row of a business price list. Rows are
// created by the server-side CSV import; this app only displays them.
type PriceListItem struct {
	ID         string  `json:"id,omitempty"`
	BusinessID string  `json:"business_id,omitempty"`
	Service    string  `json:"service"`
	Category   string  `json:"category,omitempty"`
	Price      float64 `json:"price"`
	Duration   int     `json:"duration,omitempty"` // minutes
}

type ServiceCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// KnownServiceInterval is a platform-suggested default interval for a
// service type, used to prefill new rows in the interval editor.
type KnownServiceInterval struct {
	Service        string  `json:"service"`
	IntervalMonths float64 `json:"interval_months"`
}
