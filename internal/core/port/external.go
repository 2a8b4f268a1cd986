package port

import "context"

// TickSource exposes the monotonic logical clock used for all temporal
// gating. The engine only reads it.
type TickSource interface {
	// Current returns the current tick count.
	Current(ctx context.Context) (uint64, error)
}

// CustodyTransfer moves value between an identity and the escrow
// account. The engine calls it and trusts its result; a returned error
// aborts the surrounding operation.
type CustodyTransfer interface {
	Move(ctx context.Context, from, to string, amount uint64) error
}

// RewardIssuer mints a receipt to an identity. Mint failures are best
// effort from the engine's point of view and never roll back a pledge.
type RewardIssuer interface {
	Mint(ctx context.Context, to string) error
}
