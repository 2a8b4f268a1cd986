package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"clearfund/internal/core/domain"
	"clearfund/internal/core/port"
)

const campaignColumns = `id, owner, title, description, link, fund_goal, starts_at, ends_at,
	pledged_amount, pledged_count, claimed, target_reached, target_reached_by, created_at, updated_at`

// EscrowStore implements port.EscrowStore using pgxpool for PostgreSQL.
// Transactions run at the serializable isolation level and lock the
// campaign row with FOR UPDATE, so concurrent operations on the same
// campaign serialize while different campaigns proceed independently.
type EscrowStore struct {
	pool *pgxpool.Pool
}

// NewEscrowStore returns a new store instance.
func NewEscrowStore(pool *pgxpool.Pool) *EscrowStore {
	return &EscrowStore{pool: pool}
}

// WithinTx runs fn inside a serializable transaction, rolling back when
// fn fails and committing otherwise.
func (s *EscrowStore) WithinTx(ctx context.Context, fn func(tx port.EscrowTx) error) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()
	if err = fn(&escrowTx{tx: tx}); err != nil {
		return err
	}
	err = tx.Commit(ctx)
	return err
}

// GetCampaign returns a campaign by id, or nil when absent.
func (s *EscrowStore) GetCampaign(ctx context.Context, id uint64) (*domain.Campaign, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	return scanCampaign(row)
}

// GetInvestment returns an investor's record, or nil when absent.
func (s *EscrowStore) GetInvestment(ctx context.Context, id uint64, investor string) (*domain.Investment, error) {
	row := s.pool.QueryRow(ctx, `SELECT campaign_id, investor, amount, created_at, updated_at
		FROM investments WHERE campaign_id = $1 AND investor = $2`, id, investor)
	return scanInvestment(row)
}

type escrowTx struct {
	tx pgx.Tx
}

func (t *escrowTx) CampaignForUpdate(ctx context.Context, id uint64) (*domain.Campaign, error) {
	row := t.tx.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1 FOR UPDATE`, id)
	return scanCampaign(row)
}

func (t *escrowTx) InsertCampaign(ctx context.Context, c *domain.Campaign) (uint64, error) {
	var id uint64
	err := t.tx.QueryRow(ctx, `INSERT INTO campaigns
		(owner, title, description, link, fund_goal, starts_at, ends_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id`,
		c.Owner, c.Title, c.Description, c.Link, c.FundGoal, c.StartsAt, c.EndsAt).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (t *escrowTx) UpdateCampaign(ctx context.Context, c *domain.Campaign) error {
	_, err := t.tx.Exec(ctx, `UPDATE campaigns SET
		title = $2, description = $3, link = $4,
		pledged_amount = $5, pledged_count = $6,
		claimed = $7, target_reached = $8, target_reached_by = $9,
		updated_at = now()
		WHERE id = $1`,
		c.ID, c.Title, c.Description, c.Link,
		c.PledgedAmount, c.PledgedCount,
		c.Claimed, c.TargetReached, c.TargetReachedBy)
	return err
}

func (t *escrowTx) DeleteCampaign(ctx context.Context, id uint64) error {
	// investments go with it via ON DELETE CASCADE
	_, err := t.tx.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	return err
}

func (t *escrowTx) Investment(ctx context.Context, id uint64, investor string) (*domain.Investment, error) {
	row := t.tx.QueryRow(ctx, `SELECT campaign_id, investor, amount, created_at, updated_at
		FROM investments WHERE campaign_id = $1 AND investor = $2 FOR UPDATE`, id, investor)
	return scanInvestment(row)
}

func (t *escrowTx) UpsertInvestment(ctx context.Context, inv *domain.Investment) error {
	_, err := t.tx.Exec(ctx, `INSERT INTO investments (campaign_id, investor, amount)
		VALUES ($1,$2,$3)
		ON CONFLICT (campaign_id, investor)
		DO UPDATE SET amount = EXCLUDED.amount, updated_at = now()`,
		inv.CampaignID, inv.Investor, inv.Amount)
	return err
}

func (t *escrowTx) DeleteInvestment(ctx context.Context, id uint64, investor string) error {
	_, err := t.tx.Exec(ctx, `DELETE FROM investments WHERE campaign_id = $1 AND investor = $2`, id, investor)
	return err
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(&c.ID, &c.Owner, &c.Title, &c.Description, &c.Link,
		&c.FundGoal, &c.StartsAt, &c.EndsAt,
		&c.PledgedAmount, &c.PledgedCount,
		&c.Claimed, &c.TargetReached, &c.TargetReachedBy,
		&c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanInvestment(row pgx.Row) (*domain.Investment, error) {
	var inv domain.Investment
	err := row.Scan(&inv.CampaignID, &inv.Investor, &inv.Amount, &inv.CreatedAt, &inv.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
