package tracking

import (
	"context"
	"sync"
	"testing"

	"advanx_funnel_backend/platform/logger"
	"advanx_funnel_backend/platform/metrics"

	"github.com/google/uuid"
)

type stubSink struct {
	mu    sync.Mutex
	calls []Call
}

func (s *stubSink) Deliver(_ context.Context, call Call) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, call)
	return nil
}

func (s *stubSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func newTestDispatcher(sink Sink) *Dispatcher {
	return NewDispatcher(sink, nil, logger.New("development"), metrics.New())
}

func activeConfig(platform Platform, pixelID string) PixelConfig {
	return PixelConfig{ID: uuid.New(), Platform: platform, PixelID: pixelID, Active: true}
}

func TestDispatchDedup(t *testing.T) {
	sink := &stubSink{}
	d := newTestDispatcher(sink)
	d.SetConfigurations([]PixelConfig{activeConfig(PlatformMeta, "px-1")})

	fired := &FiredSet{}
	d.Dispatch(context.Background(), fired, EventPageView, 1, nil)
	d.Dispatch(context.Background(), fired, EventPageView, 1, nil)

	if got := sink.count(); got != 1 {
		t.Fatalf("expected 1 delivery, got %d", got)
	}
}

func TestDispatchDistinctStepsFireSeparately(t *testing.T) {
	sink := &stubSink{}
	d := newTestDispatcher(sink)
	d.SetConfigurations([]PixelConfig{activeConfig(PlatformMeta, "px-1")})

	fired := &FiredSet{}
	d.Dispatch(context.Background(), fired, EventPageView, 1, nil)
	d.Dispatch(context.Background(), fired, EventPageView, 2, nil)
	d.Dispatch(context.Background(), fired, EventLead, 2, nil)

	if got := sink.count(); got != 3 {
		t.Fatalf("expected 3 deliveries, got %d", got)
	}
}

func TestDispatchSkipsInactiveAndEmptyPixels(t *testing.T) {
	sink := &stubSink{}
	d := newTestDispatcher(sink)
	d.SetConfigurations([]PixelConfig{
		{ID: uuid.New(), Platform: PlatformMeta, PixelID: "px-1", Active: false},
		{ID: uuid.New(), Platform: PlatformTikTok, PixelID: "", Active: true},
		activeConfig(PlatformGA4, "G-1"),
	})

	fired := &FiredSet{}
	d.Dispatch(context.Background(), fired, EventPageView, 1, nil)

	if got := sink.count(); got != 1 {
		t.Fatalf("expected only the ga4 delivery, got %d", got)
	}
	if sink.calls[0].Platform != PlatformGA4 {
		t.Fatalf("expected ga4 call, got %s", sink.calls[0].Platform)
	}
}

func TestDispatchMultipleActiveConfigsSamePlatformAllFire(t *testing.T) {
	sink := &stubSink{}
	d := newTestDispatcher(sink)
	d.SetConfigurations([]PixelConfig{
		activeConfig(PlatformMeta, "px-1"),
		activeConfig(PlatformMeta, "px-2"),
	})

	fired := &FiredSet{}
	d.Dispatch(context.Background(), fired, EventLead, 5, nil)

	if got := sink.count(); got != 2 {
		t.Fatalf("expected both meta pixels to fire, got %d", got)
	}
}

func TestDispatchLeadOnlyPlatformsIgnorePageView(t *testing.T) {
	sink := &stubSink{}
	d := newTestDispatcher(sink)
	d.SetConfigurations([]PixelConfig{
		activeConfig(PlatformGoogleAds, "AW-1"),
		activeConfig(PlatformOutbrain, "OB-1"),
		activeConfig(PlatformBing, "B-1"),
	})

	fired := &FiredSet{}
	d.Dispatch(context.Background(), fired, EventPageView, 1, nil)
	if got := sink.count(); got != 0 {
		t.Fatalf("expected no deliveries for PageView, got %d", got)
	}

	d.Dispatch(context.Background(), fired, EventLead, 5, nil)
	if got := sink.count(); got != 3 {
		t.Fatalf("expected 3 deliveries for Lead, got %d", got)
	}
}

func TestDispatchNilSinkNeverPanics(t *testing.T) {
	d := newTestDispatcher(nil)
	d.SetConfigurations([]PixelConfig{activeConfig(PlatformMeta, "px-1")})

	fired := &FiredSet{}
	d.Dispatch(context.Background(), fired, EventPageView, 1, map[string]interface{}{"revenue": "5-10k"})
}

func TestSetConfigurationsReplacesWholesale(t *testing.T) {
	d := newTestDispatcher(nil)
	d.SetConfigurations([]PixelConfig{activeConfig(PlatformMeta, "px-1")})
	d.SetConfigurations([]PixelConfig{activeConfig(PlatformTikTok, "tt-1")})

	configs := d.Configurations()
	if len(configs) != 1 || configs[0].Platform != PlatformTikTok {
		t.Fatalf("expected working set replaced, got %+v", configs)
	}
}

func TestFiredSetReset(t *testing.T) {
	fired := &FiredSet{}
	fired.Mark(EventPageView, 1)
	if !fired.Has(EventPageView, 1) {
		t.Fatal("expected pair recorded")
	}
	fired.Reset()
	if fired.Has(EventPageView, 1) {
		t.Fatal("expected pair cleared after reset")
	}
}
