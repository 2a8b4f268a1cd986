package custody

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrInsufficientFunds is returned when the debited account is missing
// or holds less than the requested amount.
var ErrInsufficientFunds = errors.New("insufficient funds")

// Bank implements port.CustodyTransfer over the accounts table. It is
// the reference custody capability; in a deployment where value lives
// elsewhere this adapter is swapped out behind the same port.
type Bank struct {
	pool *pgxpool.Pool
}

// NewBank returns a bank backed by the given pool.
func NewBank(pool *pgxpool.Pool) *Bank {
	return &Bank{pool: pool}
}

// Move debits from and credits to in one serializable transaction. The
// debit is a guarded update, so the whole transfer fails without side
// effects when the balance is too low. Moving zero is a no-op.
func (b *Bank) Move(ctx context.Context, from, to string, amount uint64) (err error) {
	if amount == 0 {
		return nil
	}
	tx, err := b.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	tag, err := tx.Exec(ctx, `UPDATE accounts SET balance = balance - $2, updated_at = now()
		WHERE id = $1 AND balance >= $2`, from, amount)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		err = ErrInsufficientFunds
		return err
	}

	_, err = tx.Exec(ctx, `INSERT INTO accounts (id, balance) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET balance = accounts.balance + EXCLUDED.balance, updated_at = now()`,
		to, amount)
	if err != nil {
		return err
	}

	err = tx.Commit(ctx)
	return err
}

// Balance returns the current balance of an account; a missing account
// reads as zero.
func (b *Bank) Balance(ctx context.Context, id string) (uint64, error) {
	var balance uint64
	err := b.pool.QueryRow(ctx, `SELECT balance FROM accounts WHERE id = $1`, id).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return balance, nil
}
