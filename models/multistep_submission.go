package models

import (
	"time"

	"gorm.io/datatypes"
)

type MultiStepSubmission struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	FirstName    string         `gorm:"size:100;not null" json:"first_name"`
	LastName     string         `gorm:"size:100;not null" json:"last_name"`
	Email        string         `gorm:"size:100;not null" json:"email"`
	AddressLine1 string         `gorm:"size:200;not null" json:"address_line1"`
	AddressLine2 *string        `gorm:"size:200" json:"address_line2"`
	City         string         `gorm:"size:100;not null" json:"city"`
	State        string         `gorm:"size:100;not null" json:"state"`
	PostalCode   string         `gorm:"size:20;not null" json:"postal_code"`
	Country      string         `gorm:"size:100;not null" json:"country"`
	Phone        *string        `gorm:"size:30" json:"phone"`
	Preferences  datatypes.JSON `gorm:"not null" json:"preferences"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (MultiStepSubmission) TableName() string {
	return "multistep_submissions"
}
