package reward

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Minter implements port.RewardIssuer by recording a receipt row with a
// unique token for each mint. The engine treats minting as best effort,
// so Minter does not retry.
type Minter struct {
	pool *pgxpool.Pool
}

// NewMinter returns a minter backed by the given pool.
func NewMinter(pool *pgxpool.Pool) *Minter {
	return &Minter{pool: pool}
}

// Mint issues a receipt to the recipient.
func (m *Minter) Mint(ctx context.Context, to string) error {
	_, err := m.pool.Exec(ctx, `INSERT INTO reward_receipts (token, recipient) VALUES ($1, $2)`,
		uuid.NewString(), to)
	return err
}
