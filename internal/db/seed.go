package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"clearfund/internal/core/domain"
)

// Seed inserts demo data: a funded account per demo identity, the escrow
// account, and a pair of sample campaigns. Useful for local runs against
// an empty database; idempotent so repeated startups do not fail.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	accounts := map[string]uint64{
		domain.EscrowAccount: 0,
		"alice":              1_000_000,
		"bob":                250_000,
		"carol":              250_000,
	}
	for id, balance := range accounts {
		_, err := pool.Exec(ctx, `INSERT INTO accounts (id, balance) VALUES ($1, $2)
			ON CONFLICT (id) DO NOTHING`, id, balance)
		if err != nil {
			return fmt.Errorf("seed account %s: %w", id, err)
		}
	}

	campaigns := []struct {
		owner, title, description, link string
		fundGoal, startsAt, endsAt      uint64
	}{
		{"alice", "Community Garden", "Raised beds and tools for the neighbourhood garden.", "https://example.com/garden", 10_000, 10, 2000},
		{"alice", "Open Hardware Synth", "A fully documented DIY synthesizer kit.", "https://example.com/synth", 50_000, 100, 12000},
	}
	for _, c := range campaigns {
		var exists bool
		err := pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM campaigns WHERE owner = $1 AND title = $2)`,
			c.owner, c.title).Scan(&exists)
		if err != nil {
			return fmt.Errorf("seed campaign %q: %w", c.title, err)
		}
		if exists {
			continue
		}
		_, err = pool.Exec(ctx, `INSERT INTO campaigns
			(owner, title, description, link, fund_goal, starts_at, ends_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7)`,
			c.owner, c.title, c.description, c.link, c.fundGoal, c.startsAt, c.endsAt)
		if err != nil {
			return fmt.Errorf("seed campaign %q: %w", c.title, err)
		}
	}
	return nil
}
