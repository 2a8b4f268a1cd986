package port

import (
	"context"

	"clearfund/internal/core/domain"
)

// EscrowStore is the persistence layer for campaigns and investments. It
// is an outbound port in hexagonal architecture. Implementations must
// make WithinTx atomic: either every mutation performed through the
// EscrowTx is applied, or none is.
type EscrowStore interface {
	// WithinTx runs fn inside a transaction. If fn returns an error the
	// transaction is rolled back and the error is returned unchanged.
	// Mutations on the same campaign serialize against each other.
	WithinTx(ctx context.Context, fn func(tx EscrowTx) error) error

	// GetCampaign returns a campaign by id, or nil when absent.
	GetCampaign(ctx context.Context, id uint64) (*domain.Campaign, error)
	// GetInvestment returns an investor's record in a campaign, or nil
	// when absent.
	GetInvestment(ctx context.Context, id uint64, investor string) (*domain.Investment, error)
}

// EscrowTx is the transactional view handed to WithinTx callbacks.
type EscrowTx interface {
	// CampaignForUpdate loads a campaign and locks it for the duration
	// of the transaction. Returns nil when absent.
	CampaignForUpdate(ctx context.Context, id uint64) (*domain.Campaign, error)
	// InsertCampaign persists a new campaign and returns its assigned
	// id. Ids are sequential from 1 and never reused, even after the
	// campaign is deleted.
	InsertCampaign(ctx context.Context, c *domain.Campaign) (uint64, error)
	// UpdateCampaign overwrites the stored campaign fields.
	UpdateCampaign(ctx context.Context, c *domain.Campaign) error
	// DeleteCampaign removes a campaign and all its investments.
	DeleteCampaign(ctx context.Context, id uint64) error

	// Investment returns the investor's record, or nil when absent.
	Investment(ctx context.Context, id uint64, investor string) (*domain.Investment, error)
	// UpsertInvestment creates or overwrites the investor's record.
	UpsertInvestment(ctx context.Context, inv *domain.Investment) error
	// DeleteInvestment removes the investor's record.
	DeleteInvestment(ctx context.Context, id uint64, investor string) error
}
