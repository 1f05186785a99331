package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/itemshop/storefront/internal/metrics"
	service "github.com/itemshop/storefront/internal/services"
	"github.com/itemshop/storefront/internal/utils"
)

// Poller keeps the catalog cache warm on a fixed interval. It replaces the
// storefront's old once-per-second timer with a task whose lifetime is
// explicit: Start ties it to a context, Stop cancels and waits, nothing
// leaks.
type Poller struct {
	catalog  service.CatalogService
	interval time.Duration

	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

func New(catalog service.CatalogService, interval time.Duration) *Poller {
	return &Poller{
		catalog:  catalog,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start launches the refresh loop. The loop stops when ctx is cancelled or
// Stop is called, whichever comes first.
func (p *Poller) Start(ctx context.Context) {

	ctx, p.cancel = context.WithCancel(ctx)

	go func() {
		defer close(p.done)

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.refresh(ctx)
			}
		}
	}()
}

// Stop cancels the loop and waits for the in-flight tick to finish.
func (p *Poller) Stop() {
	p.once.Do(func() {
		if p.cancel != nil {
			p.cancel()
		}
		<-p.done
	})
}

func (p *Poller) refresh(ctx context.Context) {

	ctx, cancel := utils.WithUpstreamTimeout(ctx)
	defer cancel()

	// The refresh only reads; it can interleave with an in-flight checkout
	// without touching cart state.
	_, err := p.catalog.ListProducts(ctx)
	if err != nil {
		metrics.ObserveCatalogRefresh(false)
		slog.Warn("Catalog refresh failed", slog.String("error", err.Error()))
		return
	}

	metrics.ObserveCatalogRefresh(true)
}
