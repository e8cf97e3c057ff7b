package models

import (
	"gorm.io/gorm"
)

// Pitch is a funding request authored by a startup user. It stays pending
// until an admin decision makes it visible to investors.
type Pitch struct {
	gorm.Model
	UserID         uint        `gorm:"not null;index" json:"user_id"`
	Name           string      `gorm:"not null" json:"name"`
	PitchText      string      `gorm:"not null" json:"pitch_text"`
	MoneyRequested float64     `gorm:"not null" json:"money_requested"`
	EquityOffered  *float64    `json:"equity_offered"`
	Status         PitchStatus `gorm:"not null;index" json:"status"`
	Owner          *User       `gorm:"foreignKey:UserID" json:"owner,omitempty"`
}

// PitchStatus is the admin-controlled lifecycle state of a pitch.
type PitchStatus string

const (
	PitchStatusPending  PitchStatus = "pending"
	PitchStatusApproved PitchStatus = "approved"
	PitchStatusRejected PitchStatus = "rejected"
)
