package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"clearfund/internal/core/domain"
	"clearfund/internal/core/port"
)

func TestWithinTxRollback(t *testing.T) {
	store := NewEscrowStore()
	ctx := context.Background()

	var id uint64
	err := store.WithinTx(ctx, func(tx port.EscrowTx) error {
		var err error
		id, err = tx.InsertCampaign(ctx, &domain.Campaign{Owner: "alice", FundGoal: 100, StartsAt: 1, EndsAt: 10})
		return err
	})
	require.NoError(t, err)
	require.Equal(t, uint64(1), id)

	boom := errors.New("boom")
	err = store.WithinTx(ctx, func(tx port.EscrowTx) error {
		c, err := tx.CampaignForUpdate(ctx, id)
		require.NoError(t, err)
		c.PledgedAmount = 500
		require.NoError(t, tx.UpdateCampaign(ctx, c))
		require.NoError(t, tx.UpsertInvestment(ctx, &domain.Investment{CampaignID: id, Investor: "bob", Amount: 500}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	// everything the failed transaction touched is back
	c, err := store.GetCampaign(ctx, id)
	require.NoError(t, err)
	require.Zero(t, c.PledgedAmount)

	inv, err := store.GetInvestment(ctx, id, "bob")
	require.NoError(t, err)
	require.Nil(t, inv)
}

func TestIDsNeverReused(t *testing.T) {
	store := NewEscrowStore()
	ctx := context.Background()

	insert := func() uint64 {
		var id uint64
		err := store.WithinTx(ctx, func(tx port.EscrowTx) error {
			var err error
			id, err = tx.InsertCampaign(ctx, &domain.Campaign{Owner: "alice", FundGoal: 100, StartsAt: 1, EndsAt: 10})
			return err
		})
		require.NoError(t, err)
		return id
	}

	first := insert()
	require.Equal(t, uint64(1), first)

	err := store.WithinTx(ctx, func(tx port.EscrowTx) error {
		return tx.DeleteCampaign(ctx, first)
	})
	require.NoError(t, err)

	require.Equal(t, uint64(2), insert())
}

func TestDeleteCampaignCascades(t *testing.T) {
	store := NewEscrowStore()
	ctx := context.Background()

	var id uint64
	err := store.WithinTx(ctx, func(tx port.EscrowTx) error {
		var err error
		id, err = tx.InsertCampaign(ctx, &domain.Campaign{Owner: "alice", FundGoal: 100, StartsAt: 1, EndsAt: 10})
		if err != nil {
			return err
		}
		return tx.UpsertInvestment(ctx, &domain.Investment{CampaignID: id, Investor: "bob", Amount: 50})
	})
	require.NoError(t, err)

	err = store.WithinTx(ctx, func(tx port.EscrowTx) error {
		return tx.DeleteCampaign(ctx, id)
	})
	require.NoError(t, err)

	inv, err := store.GetInvestment(ctx, id, "bob")
	require.NoError(t, err)
	require.Nil(t, inv)
}

func TestReadsReturnCopies(t *testing.T) {
	store := NewEscrowStore()
	ctx := context.Background()

	var id uint64
	err := store.WithinTx(ctx, func(tx port.EscrowTx) error {
		var err error
		id, err = tx.InsertCampaign(ctx, &domain.Campaign{Owner: "alice", Title: "t", FundGoal: 100, StartsAt: 1, EndsAt: 10})
		return err
	})
	require.NoError(t, err)

	c, err := store.GetCampaign(ctx, id)
	require.NoError(t, err)
	c.Title = "mutated"

	again, err := store.GetCampaign(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "t", again.Title)
}
