package service

import (
	"context"
	"fmt"

	"advanx_funnel_backend/internal/events"
	"advanx_funnel_backend/internal/tracking"
	"advanx_funnel_backend/platform/apperr"

	"github.com/google/uuid"
)

// Pixels returns the persisted pixel configuration set.
func (s *Service) Pixels(ctx context.Context) ([]tracking.PixelConfig, error) {
	return s.repo.GetPixelConfigs(ctx)
}

// PlatformOptions returns platform display metadata for the dashboard.
func (s *Service) PlatformOptions() []tracking.PlatformOption {
	return tracking.PlatformOptions()
}

// SavePixels replaces the persisted pixel set wholesale, pushes it into
// the live dispatcher and announces the change on the event bus. New
// entries without an ID get one assigned.
func (s *Service) SavePixels(ctx context.Context, configs []tracking.PixelConfig) ([]tracking.PixelConfig, error) {
	for i := range configs {
		if !configs[i].Platform.Valid() {
			return nil, apperr.New(apperr.KindValidation, fmt.Sprintf("unknown platform %q", configs[i].Platform))
		}
		if configs[i].ID == uuid.Nil {
			configs[i].ID = uuid.New()
		}
	}

	if err := s.repo.ReplacePixelConfigs(ctx, configs); err != nil {
		return nil, err
	}

	s.dispatcher.SetConfigurations(configs)
	s.bus.Publish(ctx, events.PixelConfigsUpdated{
		BaseEvent: events.NewBaseEvent(),
		Count:     len(configs),
	})
	s.log.Info("pixel configurations saved", "count", len(configs))

	return configs, nil
}
