package tracking

import "strings"

// Call is one rendered platform SDK invocation, ready for a Sink.
type Call struct {
	Platform Platform          `json:"platform"`
	PixelID  string            `json:"pixelId"`
	Name     string            `json:"name"`
	Params   map[string]string `json:"params,omitempty"`
}

// Adapter renders the platform-specific call for an event.
// A false return means the platform ignores this event (log-only no-op).
type Adapter func(pixelID string, event Event) (Call, bool)

// adapters is the per-platform dispatch table. GTM has no entry: the
// dispatcher's unconditional generic emit covers it.
var adapters = map[Platform]Adapter{
	PlatformMeta:      metaAdapter,
	PlatformGoogleAds: googleAdsAdapter,
	PlatformTikTok:    tiktokAdapter,
	PlatformGA4:       ga4Adapter,
	PlatformTaboola:   taboolaAdapter,
	PlatformOutbrain:  outbrainAdapter,
	PlatformPinterest: pinterestAdapter,
	PlatformBing:      bingAdapter,
}

// AdapterFor returns the adapter for a platform, if it has one.
func AdapterFor(platform Platform) (Adapter, bool) {
	adapter, ok := adapters[platform]
	return adapter, ok
}

// Meta forwards the event name verbatim, scoped to the pixel id.
func metaAdapter(pixelID string, event Event) (Call, bool) {
	return Call{
		Platform: PlatformMeta,
		PixelID:  pixelID,
		Name:     string(event),
		Params:   map[string]string{"method": "trackSingle"},
	}, true
}

// Google Ads only maps Lead to a conversion signal.
func googleAdsAdapter(pixelID string, event Event) (Call, bool) {
	if event != EventLead {
		return Call{}, false
	}
	return Call{
		Platform: PlatformGoogleAds,
		PixelID:  pixelID,
		Name:     "conversion",
		Params:   map[string]string{"send_to": pixelID},
	}, true
}

// TikTok forwards the event name verbatim, scoped to the pixel id.
func tiktokAdapter(pixelID string, event Event) (Call, bool) {
	return Call{
		Platform: PlatformTikTok,
		PixelID:  pixelID,
		Name:     string(event),
	}, true
}

// GA4 forwards the lower-cased event name, scoped to the measurement id.
func ga4Adapter(pixelID string, event Event) (Call, bool) {
	return Call{
		Platform: PlatformGA4,
		PixelID:  pixelID,
		Name:     strings.ToLower(string(event)),
		Params:   map[string]string{"send_to": pixelID},
	}, true
}

// Taboola notifies lead for Lead and page_view for everything else.
func taboolaAdapter(pixelID string, event Event) (Call, bool) {
	name := "page_view"
	if event == EventLead {
		name = "lead"
	}
	return Call{
		Platform: PlatformTaboola,
		PixelID:  pixelID,
		Name:     name,
		Params:   map[string]string{"notify": "event"},
	}, true
}

// Outbrain only tracks Lead.
func outbrainAdapter(pixelID string, event Event) (Call, bool) {
	if event != EventLead {
		return Call{}, false
	}
	return Call{
		Platform: PlatformOutbrain,
		PixelID:  pixelID,
		Name:     "Lead",
	}, true
}

// Pinterest tracks lead for Lead and pagevisit for everything else.
func pinterestAdapter(pixelID string, event Event) (Call, bool) {
	name := "pagevisit"
	if event == EventLead {
		name = "lead"
	}
	return Call{
		Platform: PlatformPinterest,
		PixelID:  pixelID,
		Name:     name,
	}, true
}

// Bing only fires the lead form submission event.
func bingAdapter(pixelID string, event Event) (Call, bool) {
	if event != EventLead {
		return Call{}, false
	}
	return Call{
		Platform: PlatformBing,
		PixelID:  pixelID,
		Name:     "submit_lead_form",
	}, true
}
