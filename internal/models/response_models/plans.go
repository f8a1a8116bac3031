package response_models

type SubscriptionPlan struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Pricing     int64    `json:"pricing"` // smallest currency unit
	Currency    string   `json:"currency"`
	IsActive    bool     `json:"is_active"`
	Features    []string `json:"features,omitempty"`
}
