package settings

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"venuehub/internal/infra"
	"venuehub/internal/infra/readstore"
	"venuehub/internal/pkg/config"
	"venuehub/internal/usecase/shared"
)

const (
	keyRefundPercent = "refund_percent"
	keyAutoApprove   = "auto_approve"
)

// Provider serves admin-tunable settings from the admin_settings table with a
// short TTL cache. Missing or malformed rows fall back to configured
// defaults instead of failing the request.
type Provider struct {
	store *readstore.SettingsReadStore
	cfg   config.SettingsConfig

	mu        sync.RWMutex
	cached    values
	fetchedAt time.Time
}

type values struct {
	refundPercent int
	autoApprove   bool
}

func NewProvider(store *readstore.SettingsReadStore, cfg config.SettingsConfig) shared.SettingsProvider {
	return &Provider{store: store, cfg: cfg}
}

func (p *Provider) RefundPercent(ctx context.Context) (int, error) {
	v, err := p.load(ctx)
	if err != nil {
		return 0, err
	}
	return v.refundPercent, nil
}

func (p *Provider) AutoApprove(ctx context.Context) (bool, error) {
	v, err := p.load(ctx)
	if err != nil {
		return false, err
	}
	return v.autoApprove, nil
}

func (p *Provider) Invalidate() {
	p.mu.Lock()
	p.fetchedAt = time.Time{}
	p.mu.Unlock()
}

func (p *Provider) load(ctx context.Context) (values, error) {
	p.mu.RLock()
	if !p.fetchedAt.IsZero() && time.Since(p.fetchedAt) < p.cfg.CacheTTL {
		v := p.cached
		p.mu.RUnlock()
		return v, nil
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.fetchedAt.IsZero() && time.Since(p.fetchedAt) < p.cfg.CacheTTL {
		return p.cached, nil
	}

	v := values{
		refundPercent: p.cfg.DefaultRefundPercent,
		autoApprove:   p.cfg.DefaultAutoApprove,
	}

	if raw, err := p.store.Get(ctx, keyRefundPercent); err == nil {
		if pct, parseErr := strconv.Atoi(raw); parseErr == nil && pct >= 0 && pct <= 100 {
			v.refundPercent = pct
		} else {
			slog.Warn("ignoring malformed refund_percent setting", "value", raw)
		}
	} else if !infra.IsKind(err, infra.KindNotFound) {
		return values{}, err
	}

	if raw, err := p.store.Get(ctx, keyAutoApprove); err == nil {
		if b, parseErr := strconv.ParseBool(raw); parseErr == nil {
			v.autoApprove = b
		} else {
			slog.Warn("ignoring malformed auto_approve setting", "value", raw)
		}
	} else if !infra.IsKind(err, infra.KindNotFound) {
		return values{}, err
	}

	p.cached = v
	p.fetchedAt = time.Now()
	return v, nil
}
