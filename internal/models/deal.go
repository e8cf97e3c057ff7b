package models

import (
	"gorm.io/gorm"
)

// Deal is the immutable record of an accepted offer. Exactly one deal exists
// per accepted offer; it is only ever written inside the accept transaction.
type Deal struct {
	gorm.Model
	PitchID     uint     `gorm:"not null;index" json:"pitch_id"`
	InvestorID  uint     `gorm:"not null;index" json:"investor_id"`
	AmountFinal float64  `gorm:"not null" json:"amount_final"`
	EquityFinal *float64 `json:"equity_final"`
}
