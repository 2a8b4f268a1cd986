package port

import (
	"context"

	"clearfund/internal/core/domain"
)

// CrowdfundUseCase defines the business operations exposed by the escrow
// engine. This interface is the primary port into the application domain.
// Mock implementations can be generated from this interface for testing.
//
// Every mutating method validates before touching any state, so a failed
// call leaves the registry, the ledger and the escrow balance unchanged.
// Failures are values from the closed set in the domain package.
type CrowdfundUseCase interface {
	// Launch creates a new campaign owned by caller and returns its id.
	Launch(ctx context.Context, req LaunchReq, caller string) (uint64, error)

	// Update overwrites the campaign's display metadata. Only the owner
	// may update, and only before the campaign ends.
	Update(ctx context.Context, id uint64, req UpdateReq, caller string) error

	// Cancel deletes a campaign that has not started yet. The id is
	// never reused.
	Cancel(ctx context.Context, id uint64, caller string) error

	// Claim pays the full pledged amount out of escrow to the owner.
	// It is allowed as soon as the goal is reached, before the campaign
	// ends, and succeeds exactly once.
	Claim(ctx context.Context, id uint64, caller string) error

	// Pledge moves amount from caller into escrow and records it
	// against the campaign.
	Pledge(ctx context.Context, id uint64, amount uint64, caller string) error

	// Unpledge returns amount from escrow to caller while the campaign
	// is still running, shrinking or deleting the investment record.
	Unpledge(ctx context.Context, id uint64, amount uint64, caller string) error

	// Refund returns the caller's entire outstanding pledge after a
	// campaign has ended without reaching its goal.
	Refund(ctx context.Context, id uint64, caller string) error

	// GetCampaign returns the campaign record.
	GetCampaign(ctx context.Context, id uint64) (*domain.Campaign, error)

	// GetInvestment returns the investor's record, or nil when the
	// investor has no outstanding pledge. A missing record is not an
	// error.
	GetInvestment(ctx context.Context, id uint64, investor string) (*domain.Investment, error)
}

// LaunchReq carries the caller-supplied fields of a new campaign. It is
// a DTO used by the HTTP layer and does not contain domain behaviour.
type LaunchReq struct {
	Title       string
	Description string
	Link        string
	FundGoal    uint64
	StartsAt    uint64
	EndsAt      uint64
}

// UpdateReq carries the three mutable metadata fields.
type UpdateReq struct {
	Title       string
	Description string
	Link        string
}
