// Package tracking fans out funnel conversion events to the configured
// ad-platform pixels, deduplicated per funnel session.
package tracking

import (
	"fmt"

	"github.com/google/uuid"
)

// Platform identifies an ad platform integration.
type Platform string

const (
	PlatformMeta      Platform = "meta"
	PlatformGoogleAds Platform = "google_ads"
	PlatformTikTok    Platform = "tiktok"
	PlatformGA4       Platform = "ga4"
	PlatformGTM       Platform = "gtm"
	PlatformTaboola   Platform = "taboola"
	PlatformOutbrain  Platform = "outbrain"
	PlatformPinterest Platform = "pinterest"
	PlatformBing      Platform = "bing"
)

// Platforms lists every supported platform in display order.
var Platforms = []Platform{
	PlatformMeta,
	PlatformGoogleAds,
	PlatformTikTok,
	PlatformGA4,
	PlatformGTM,
	PlatformTaboola,
	PlatformOutbrain,
	PlatformPinterest,
	PlatformBing,
}

// Valid reports whether p is a known platform.
func (p Platform) Valid() bool {
	for _, known := range Platforms {
		if p == known {
			return true
		}
	}
	return false
}

// Event is a tracked funnel event.
type Event string

const (
	// EventPageView fires once per step view.
	EventPageView Event = "PageView"
	// EventLead fires once on final submission.
	EventLead Event = "Lead"
)

// PixelConfig is one configured ad platform integration.
type PixelConfig struct {
	ID       uuid.UUID `json:"id"`
	Platform Platform  `json:"platform"`
	PixelID  string    `json:"pixelId"`
	Active   bool      `json:"active"`
}

// FiredSet records (event, step) pairs already dispatched in a session.
// It is owned by the funnel session and persisted alongside it, so dedup
// never leaks across sessions. Append-only except for Reset.
type FiredSet struct {
	Keys map[string]bool `json:"keys,omitempty"`
}

func firedKey(event Event, step int) string {
	return fmt.Sprintf("%s_step_%d", event, step)
}

// Has reports whether the (event, step) pair already fired.
func (s *FiredSet) Has(event Event, step int) bool {
	if s == nil || s.Keys == nil {
		return false
	}
	return s.Keys[firedKey(event, step)]
}

// Mark records the (event, step) pair as fired.
func (s *FiredSet) Mark(event Event, step int) {
	if s.Keys == nil {
		s.Keys = make(map[string]bool)
	}
	s.Keys[firedKey(event, step)] = true
}

// Reset clears all recorded pairs.
func (s *FiredSet) Reset() {
	s.Keys = nil
}
