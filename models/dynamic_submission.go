package models

import (
	"time"

	"gorm.io/datatypes"
)

// DynamicSubmission stores the finalized form definition as one opaque JSON
// document. It is never decomposed into relational columns.
type DynamicSubmission struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	FormData  datatypes.JSON `gorm:"not null" json:"form_data"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
}
