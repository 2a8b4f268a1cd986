package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"clearfund/internal/core/domain"
	"clearfund/internal/core/port"
)

// CrowdfundUseCase implements the campaign lifecycle state machine and
// the pledge ledger. It orchestrates the escrow store and the external
// capabilities (clock, custody, rewards) behind the port.CrowdfundUseCase
// interface.
//
// Every mutating operation reads the tick once, then runs inside a store
// transaction: load and lock the campaign, validate, mutate, and move
// custody as the final step. Any failure aborts the transaction, so a
// failed call leaves all state and the escrow balance unchanged.
type CrowdfundUseCase struct {
	store   port.EscrowStore
	ticks   port.TickSource
	custody port.CustodyTransfer
	rewards port.RewardIssuer
	logger  *slog.Logger
}

// NewCrowdfundUseCase creates the engine with its injected capabilities.
func NewCrowdfundUseCase(store port.EscrowStore, ticks port.TickSource, custody port.CustodyTransfer, rewards port.RewardIssuer, logger *slog.Logger) *CrowdfundUseCase {
	return &CrowdfundUseCase{store: store, ticks: ticks, custody: custody, rewards: rewards, logger: logger}
}

// Launch validates and persists a new campaign owned by caller, returning
// its sequential id.
func (u *CrowdfundUseCase) Launch(ctx context.Context, req port.LaunchReq, caller string) (uint64, error) {
	if req.Title == "" || req.Description == "" || req.Link == "" {
		return 0, domain.ErrEmptyField
	}
	if req.FundGoal == 0 {
		return 0, domain.ErrInvalidGoal
	}
	tick, err := u.ticks.Current(ctx)
	if err != nil {
		return 0, fmt.Errorf("read tick: %w", err)
	}
	if req.StartsAt < tick {
		return 0, domain.ErrStartInPast
	}
	if req.EndsAt <= req.StartsAt || req.EndsAt-req.StartsAt > domain.MaxCampaignDuration {
		return 0, domain.ErrInvalidWindow
	}

	var id uint64
	err = u.store.WithinTx(ctx, func(tx port.EscrowTx) error {
		id, err = tx.InsertCampaign(ctx, &domain.Campaign{
			Owner:       caller,
			Title:       req.Title,
			Description: req.Description,
			Link:        req.Link,
			FundGoal:    req.FundGoal,
			StartsAt:    req.StartsAt,
			EndsAt:      req.EndsAt,
		})
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update overwrites the campaign's display metadata. Only the owner may
// update, and only before the campaign ends.
func (u *CrowdfundUseCase) Update(ctx context.Context, id uint64, req port.UpdateReq, caller string) error {
	tick, err := u.ticks.Current(ctx)
	if err != nil {
		return fmt.Errorf("read tick: %w", err)
	}
	return u.store.WithinTx(ctx, func(tx port.EscrowTx) error {
		c, err := tx.CampaignForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.ErrNotFound
		}
		if c.Owner != caller {
			return domain.ErrNotOwner
		}
		if tick >= c.EndsAt {
			return domain.ErrCampaignEnded
		}
		if req.Title == "" || req.Description == "" || req.Link == "" {
			return domain.ErrEmptyField
		}
		c.Title = req.Title
		c.Description = req.Description
		c.Link = req.Link
		return tx.UpdateCampaign(ctx, c)
	})
}

// Cancel deletes a campaign before it starts. The id stays burned and
// behaves as not found from then on.
func (u *CrowdfundUseCase) Cancel(ctx context.Context, id uint64, caller string) error {
	tick, err := u.ticks.Current(ctx)
	if err != nil {
		return fmt.Errorf("read tick: %w", err)
	}
	return u.store.WithinTx(ctx, func(tx port.EscrowTx) error {
		c, err := tx.CampaignForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.ErrNotFound
		}
		if c.Owner != caller {
			return domain.ErrNotOwner
		}
		if tick >= c.StartsAt {
			return domain.ErrAlreadyStarted
		}
		// No investments can exist yet: pledges require the active phase.
		return tx.DeleteCampaign(ctx, id)
	})
}

// Claim pays the full pledged amount out of escrow to the owner. It is
// allowed as soon as the goal is reached, independent of the campaign
// end, and succeeds exactly once.
func (u *CrowdfundUseCase) Claim(ctx context.Context, id uint64, caller string) error {
	return u.store.WithinTx(ctx, func(tx port.EscrowTx) error {
		c, err := tx.CampaignForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.ErrNotFound
		}
		if c.Owner != caller {
			return domain.ErrNotOwner
		}
		if !c.TargetReached {
			return domain.ErrGoalNotReached
		}
		if c.Claimed {
			return domain.ErrAlreadyClaimed
		}
		c.Claimed = true
		if err = tx.UpdateCampaign(ctx, c); err != nil {
			return err
		}
		// PledgedAmount itself is untouched by claim; the claimed flag
		// zeroes the campaign's escrow attribution.
		if err = u.custody.Move(ctx, domain.EscrowAccount, c.Owner, c.PledgedAmount); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrTransferFailed, err)
		}
		return nil
	})
}

// Pledge moves amount from caller into escrow and records it against the
// campaign, detecting the first goal crossing. A single pledge at or
// above the reward threshold mints a receipt after the transaction
// commits; mint failures never roll back the pledge.
func (u *CrowdfundUseCase) Pledge(ctx context.Context, id uint64, amount uint64, caller string) error {
	tick, err := u.ticks.Current(ctx)
	if err != nil {
		return fmt.Errorf("read tick: %w", err)
	}
	err = u.store.WithinTx(ctx, func(tx port.EscrowTx) error {
		c, err := tx.CampaignForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.ErrNotFound
		}
		switch c.PhaseAt(tick) {
		case domain.PhasePending:
			return domain.ErrNotStarted
		case domain.PhaseEnded:
			return domain.ErrCampaignEnded
		}
		if amount == 0 {
			return domain.ErrZeroAmount
		}

		inv, err := tx.Investment(ctx, id, caller)
		if err != nil {
			return err
		}
		if inv == nil {
			inv = &domain.Investment{CampaignID: id, Investor: caller, Amount: amount}
			c.PledgedCount++
		} else {
			inv.Amount += amount
		}
		if err = tx.UpsertInvestment(ctx, inv); err != nil {
			return err
		}

		c.PledgedAmount += amount
		if !c.TargetReached && c.PledgedAmount >= c.FundGoal {
			c.TargetReached = true
			c.TargetReachedBy = tick
		}
		if err = tx.UpdateCampaign(ctx, c); err != nil {
			return err
		}

		if err = u.custody.Move(ctx, caller, domain.EscrowAccount, amount); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrTransferFailed, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if amount >= domain.RewardThreshold {
		if err = u.rewards.Mint(ctx, caller); err != nil {
			u.logger.Warn("reward mint failed",
				slog.Uint64("campaign_id", id),
				slog.String("investor", caller),
				slog.Any("error", err))
		}
	}
	return nil
}

// Unpledge returns amount from escrow to caller while the campaign is
// running. The goal-crossing flags never revert, even when the pledged
// amount drops back below the goal.
func (u *CrowdfundUseCase) Unpledge(ctx context.Context, id uint64, amount uint64, caller string) error {
	tick, err := u.ticks.Current(ctx)
	if err != nil {
		return fmt.Errorf("read tick: %w", err)
	}
	return u.store.WithinTx(ctx, func(tx port.EscrowTx) error {
		c, err := tx.CampaignForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.ErrNotFound
		}
		if c.PhaseAt(tick) == domain.PhaseEnded {
			return domain.ErrCampaignEnded
		}

		inv, err := tx.Investment(ctx, id, caller)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNoInvestment
		}
		if amount > inv.Amount {
			return domain.ErrExceedsPledged
		}

		inv.Amount -= amount
		if inv.Amount == 0 {
			if err = tx.DeleteInvestment(ctx, id, caller); err != nil {
				return err
			}
			c.PledgedCount--
		} else {
			if err = tx.UpsertInvestment(ctx, inv); err != nil {
				return err
			}
		}
		c.PledgedAmount -= amount
		if err = tx.UpdateCampaign(ctx, c); err != nil {
			return err
		}

		if err = u.custody.Move(ctx, domain.EscrowAccount, caller, amount); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrTransferFailed, err)
		}
		return nil
	})
}

// Refund returns the caller's entire outstanding pledge once a campaign
// has ended without reaching its goal. Partial refunds do not exist.
func (u *CrowdfundUseCase) Refund(ctx context.Context, id uint64, caller string) error {
	tick, err := u.ticks.Current(ctx)
	if err != nil {
		return fmt.Errorf("read tick: %w", err)
	}
	return u.store.WithinTx(ctx, func(tx port.EscrowTx) error {
		c, err := tx.CampaignForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.ErrNotFound
		}
		if c.PhaseAt(tick) != domain.PhaseEnded {
			return domain.ErrStillActive
		}
		if c.TargetReached {
			return domain.ErrGoalReached
		}

		inv, err := tx.Investment(ctx, id, caller)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNoInvestment
		}

		if err = tx.DeleteInvestment(ctx, id, caller); err != nil {
			return err
		}
		c.PledgedAmount -= inv.Amount
		c.PledgedCount--
		if err = tx.UpdateCampaign(ctx, c); err != nil {
			return err
		}

		if err = u.custody.Move(ctx, domain.EscrowAccount, caller, inv.Amount); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrTransferFailed, err)
		}
		return nil
	})
}

// GetCampaign returns the campaign record.
func (u *CrowdfundUseCase) GetCampaign(ctx context.Context, id uint64) (*domain.Campaign, error) {
	c, err := u.store.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// GetInvestment returns the investor's record, or nil when the investor
// has no outstanding pledge in the campaign.
func (u *CrowdfundUseCase) GetInvestment(ctx context.Context, id uint64, investor string) (*domain.Investment, error) {
	return u.store.GetInvestment(ctx, id, investor)
}
