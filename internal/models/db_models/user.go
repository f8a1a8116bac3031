package db_models

// User carries the subscription window this service maintains. Everything
// else about the account is managed elsewhere; reconciliation is the only
// writer of PlanID/PaymentDate/ValidTill.
type User struct {
	ID    string `gorm:"primaryKey"` // user key
	Name  string
	Email string `gorm:"index"`

	PlanID      *string `gorm:"index"` // reference to the active Plan
	Plan        *Plan   `gorm:"foreignKey:PlanID"`
	PaymentDate int64   // unix seconds of the last confirmed payment
	ValidTill   int64   // unix seconds the subscription runs until

	CreatedAt int64 `gorm:"autoCreateTime"`
	UpdatedAt int64 `gorm:"autoUpdateTime"`
}
