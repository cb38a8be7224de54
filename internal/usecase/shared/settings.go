package shared

import "context"

// SettingsProvider exposes the admin-tunable platform settings. The infra
// implementation reads them from the database with a short TTL cache;
// commands must go through this interface instead of package-level state.
type SettingsProvider interface {
	// RefundPercent is the percentage of the paid total refunded on
	// cancellation.
	RefundPercent(ctx context.Context) (int, error)
	// AutoApprove reports whether admin-originated bookings skip the pending
	// step.
	AutoApprove(ctx context.Context) (bool, error)
	// Invalidate drops cached values so the next read hits the store.
	Invalidate()
}
