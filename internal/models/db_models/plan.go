package db_models

import (
	"gorm.io/datatypes"
)

// Plan is the subscription catalog entry. Owned by the catalog management
// side; this service only reads it.
type Plan struct {
	ID          string `gorm:"primaryKey"` // plan key, e.g. "p1"
	Name        string
	Description *string
	Pricing     int64          // smallest currency unit, e.g. 49900 = INR 499.00
	Currency    string         `gorm:"size:3;default:'INR'"`
	IsActive    bool           `gorm:"default:true"`
	Features    datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	CreatedAt int64 `gorm:"autoCreateTime"`
	UpdatedAt int64 `gorm:"autoUpdateTime"`
}
