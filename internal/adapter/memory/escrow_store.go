package memory

import (
	"context"
	"maps"
	"sync"
	"time"

	"clearfund/internal/core/domain"
	"clearfund/internal/core/port"
)

type invKey struct {
	campaignID uint64
	investor   string
}

// EscrowStore implements port.EscrowStore on two in-process maps. A
// transaction snapshots both maps up front and restores them when the
// callback fails, so a failed call observes none of its own mutations.
// The store-level mutex serializes all transactions; reads take the
// shared lock.
type EscrowStore struct {
	mu          sync.RWMutex
	campaigns   map[uint64]domain.Campaign
	investments map[invKey]domain.Investment

	// lastID only ever grows, like a database sequence. Deleting a
	// campaign never frees its id.
	lastID uint64
}

// NewEscrowStore returns an empty store. The first assigned campaign id
// is 1.
func NewEscrowStore() *EscrowStore {
	return &EscrowStore{
		campaigns:   make(map[uint64]domain.Campaign),
		investments: make(map[invKey]domain.Investment),
	}
}

// WithinTx runs fn under the exclusive lock and rolls both maps back to
// their pre-transaction state when fn fails.
func (s *EscrowStore) WithinTx(_ context.Context, fn func(tx port.EscrowTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prevCampaigns := maps.Clone(s.campaigns)
	prevInvestments := maps.Clone(s.investments)

	if err := fn(&escrowTx{store: s}); err != nil {
		s.campaigns = prevCampaigns
		s.investments = prevInvestments
		return err
	}
	return nil
}

// GetCampaign returns a copy of the campaign, or nil when absent.
func (s *EscrowStore) GetCampaign(_ context.Context, id uint64) (*domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.campaigns[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// GetInvestment returns a copy of the investor's record, or nil when
// absent.
func (s *EscrowStore) GetInvestment(_ context.Context, id uint64, investor string) (*domain.Investment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	inv, ok := s.investments[invKey{id, investor}]
	if !ok {
		return nil, nil
	}
	return &inv, nil
}

// escrowTx mutates the live maps directly; WithinTx holds the lock and
// restores the snapshots on error.
type escrowTx struct {
	store *EscrowStore
}

func (t *escrowTx) CampaignForUpdate(_ context.Context, id uint64) (*domain.Campaign, error) {
	c, ok := t.store.campaigns[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (t *escrowTx) InsertCampaign(_ context.Context, c *domain.Campaign) (uint64, error) {
	t.store.lastID++
	now := time.Now().UTC()
	stored := *c
	stored.ID = t.store.lastID
	stored.CreatedAt = now
	stored.UpdatedAt = now
	t.store.campaigns[stored.ID] = stored
	return stored.ID, nil
}

func (t *escrowTx) UpdateCampaign(_ context.Context, c *domain.Campaign) error {
	stored := *c
	stored.UpdatedAt = time.Now().UTC()
	t.store.campaigns[c.ID] = stored
	return nil
}

func (t *escrowTx) DeleteCampaign(_ context.Context, id uint64) error {
	delete(t.store.campaigns, id)
	for k := range t.store.investments {
		if k.campaignID == id {
			delete(t.store.investments, k)
		}
	}
	return nil
}

func (t *escrowTx) Investment(_ context.Context, id uint64, investor string) (*domain.Investment, error) {
	inv, ok := t.store.investments[invKey{id, investor}]
	if !ok {
		return nil, nil
	}
	return &inv, nil
}

func (t *escrowTx) UpsertInvestment(_ context.Context, inv *domain.Investment) error {
	key := invKey{inv.CampaignID, inv.Investor}
	now := time.Now().UTC()
	stored := *inv
	if prev, ok := t.store.investments[key]; ok {
		stored.CreatedAt = prev.CreatedAt
	} else {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now
	t.store.investments[key] = stored
	return nil
}

func (t *escrowTx) DeleteInvestment(_ context.Context, id uint64, investor string) error {
	delete(t.store.investments, invKey{id, investor})
	return nil
}
