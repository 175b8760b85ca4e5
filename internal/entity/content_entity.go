package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ContentRecord holds the single live document. The table has exactly
// one row, keyed by the fixed id "main".
type ContentRecord struct {
	Id        string `gorm:"primaryKey"`
	Document  datatypes.JSON
	UpdatedAt time.Time
}

// ContentHistory keeps one snapshot per accepted write so an admin can
// roll back to an earlier version.
type ContentHistory struct {
	Id       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Document datatypes.JSON
	SavedAt  time.Time `gorm:"index"`
}
