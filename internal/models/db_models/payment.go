package db_models

import (
	"gorm.io/datatypes"
)

// Payment is the durable record of one initiation attempt. It is created
// before the gateway is contacted, so every outbound charge has local
// evidence even when the gateway call never returns.
type Payment struct {
	TransactionID string `gorm:"primaryKey"` // merchant transaction id, immutable
	Amount        int64  // snapshot of Plan.Pricing at initiation time
	Date          int64  // unix seconds of initiation
	UserID        string `gorm:"index"`
	User          User   `gorm:"foreignKey:UserID"`
	IsCompleted   bool   `gorm:"default:false;index"`

	// Raw gateway responses, kept for traceability.
	Receipt datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	CreatedAt int64 `gorm:"autoCreateTime"`
	UpdatedAt int64 `gorm:"autoUpdateTime"`
}
