package models

import (
	"gorm.io/gorm"
)

// Offer is an investor's proposed terms against one pitch.
//
// Lifecycle: pending -> accepted or pending -> rejected, both terminal.
// At most one offer per pitch ever reaches accepted; accepting one rejects
// its pending siblings in the same transaction.
type Offer struct {
	gorm.Model
	InvestorID      uint        `gorm:"not null;index" json:"investor_id"`
	PitchID         uint        `gorm:"not null;index" json:"pitch_id"`
	AmountOffered   float64     `gorm:"not null" json:"amount_offered"`
	EquityRequested *float64    `json:"equity_requested"`
	Status          OfferStatus `gorm:"not null;index" json:"status"`
	Investor        *User       `gorm:"foreignKey:InvestorID" json:"investor,omitempty"`
	Pitch           *Pitch      `gorm:"foreignKey:PitchID" json:"pitch,omitempty"`
}

// OfferStatus is the lifecycle state of an offer.
type OfferStatus string

const (
	OfferStatusPending  OfferStatus = "pending"
	OfferStatusAccepted OfferStatus = "accepted"
	OfferStatusRejected OfferStatus = "rejected"
)

// Decided reports whether the offer has reached a terminal state.
func (s OfferStatus) Decided() bool {
	return s == OfferStatusAccepted || s == OfferStatusRejected
}
