package domain

import "time"

// MaxCampaignDuration is the longest allowed funding window, in ticks.
const MaxCampaignDuration uint64 = 12960

// RewardThreshold is the single-pledge amount at which a reward receipt
// is minted for the investor.
const RewardThreshold uint64 = 500

// EscrowAccount is the custody account holding all outstanding pledged
// value across campaigns. Only the engine's operations may move value
// into or out of it.
const EscrowAccount = "escrow"

// Campaign represents a funding campaign.
// Amounts are stored in integer units; times are logical tick counts.
type Campaign struct {
	ID              uint64
	Owner           string
	Title           string
	Description     string
	Link            string
	FundGoal        uint64
	StartsAt        uint64
	EndsAt          uint64
	PledgedAmount   uint64 // sum of all outstanding pledges
	PledgedCount    uint64 // distinct investors with a nonzero pledge
	Claimed         bool
	TargetReached   bool
	TargetReachedBy uint64 // tick of the first goal crossing, 0 until then
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Phase is the derived lifecycle state of a campaign. It is computed
// from ticks and never stored.
type Phase int

const (
	PhasePending Phase = iota
	PhaseActive
	PhaseEnded
)

// PhaseAt derives the campaign's phase at the given tick.
func (c *Campaign) PhaseAt(tick uint64) Phase {
	switch {
	case tick < c.StartsAt:
		return PhasePending
	case tick < c.EndsAt:
		return PhaseActive
	default:
		return PhaseEnded
	}
}
