package domain

import "time"

// Investment is one investor's outstanding pledge in one campaign. The
// amount is strictly positive while the record exists: a pledge creates
// or increments it, an unpledge decrements it, and it is deleted (not
// zeroed) when the amount reaches zero or on a full refund.
type Investment struct {
	CampaignID uint64
	Investor   string
	Amount     uint64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
