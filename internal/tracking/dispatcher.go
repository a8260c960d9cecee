package tracking

import (
	"context"
	"sync"

	"advanx_funnel_backend/internal/events"
	"advanx_funnel_backend/platform/logger"
	"advanx_funnel_backend/platform/metrics"

	"golang.org/x/sync/errgroup"
)

// Dispatcher holds the working set of pixel configurations and fans out
// tracking events to every active platform. It is owned by the composition
// root; the working set is replaced wholesale when the admin saves pixels.
//
// Dispatch never returns an error: ad attribution is best-effort and must
// never block the funnel.
type Dispatcher struct {
	mu      sync.RWMutex
	configs []PixelConfig

	sink Sink
	bus  events.Bus
	log  *logger.Logger
	met  *metrics.Metrics
}

// NewDispatcher creates a dispatcher with an empty working set.
// sink may be nil, in which case platform calls are log-only.
func NewDispatcher(sink Sink, bus events.Bus, log *logger.Logger, met *metrics.Metrics) *Dispatcher {
	return &Dispatcher{
		sink: sink,
		bus:  bus,
		log:  log,
		met:  met,
	}
}

// SetConfigurations replaces the working set wholesale. Last write wins.
func (d *Dispatcher) SetConfigurations(configs []PixelConfig) {
	copied := make([]PixelConfig, len(configs))
	copy(copied, configs)

	d.mu.Lock()
	d.configs = copied
	d.mu.Unlock()
}

// Configurations returns a copy of the current working set.
func (d *Dispatcher) Configurations() []PixelConfig {
	d.mu.RLock()
	defer d.mu.RUnlock()

	copied := make([]PixelConfig, len(d.configs))
	copy(copied, d.configs)
	return copied
}

// Dispatch fires the event for the given step across all active platforms,
// exactly once per (event, step) pair per session. The fired set belongs to
// the caller's session.
func (d *Dispatcher) Dispatch(ctx context.Context, fired *FiredSet, event Event, step int, extra map[string]interface{}) {
	if fired.Has(event, step) {
		d.log.TrackingSkipped(string(event), step)
		d.met.TrackingSkipped.Inc()
		return
	}
	fired.Mark(event, step)

	// Generic emit happens regardless of configured platforms, carrying
	// step and extra, like the original dataLayer push.
	d.met.TrackingEvents.WithLabelValues("generic", string(event)).Inc()
	d.log.TrackingEvent("generic", string(event), step, "")
	if d.bus != nil {
		d.bus.Publish(ctx, events.TrackingDispatched{
			BaseEvent: events.NewBaseEvent(),
			Event:     string(event),
			Step:      step,
			Extra:     extra,
		})
	}

	group, groupCtx := errgroup.WithContext(ctx)
	for _, cfg := range d.Configurations() {
		if !cfg.Active || cfg.PixelID == "" {
			continue
		}

		adapter, ok := AdapterFor(cfg.Platform)
		if !ok {
			// gtm: covered by the generic emit above.
			continue
		}

		call, ok := adapter(cfg.PixelID, event)
		if !ok {
			d.log.Debug("tracking platform ignores event",
				"platform", string(cfg.Platform), "event", string(event))
			continue
		}

		d.met.TrackingEvents.WithLabelValues(string(call.Platform), string(event)).Inc()
		d.log.TrackingEvent(string(call.Platform), string(event), step, call.PixelID)

		if d.sink == nil {
			continue
		}

		delivered := call
		group.Go(func() error {
			if err := d.sink.Deliver(groupCtx, delivered); err != nil {
				d.log.Warn("tracking delivery failed",
					"platform", string(delivered.Platform), "error", err)
			}
			// Delivery failures never propagate.
			return nil
		})
	}
	_ = group.Wait()
}
