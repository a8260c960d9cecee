package tracking

import "testing"

func TestAdapterMappings(t *testing.T) {
	cases := []struct {
		platform Platform
		event    Event
		wantName string
		wantOK   bool
	}{
		{PlatformMeta, EventPageView, "PageView", true},
		{PlatformMeta, EventLead, "Lead", true},
		{PlatformGoogleAds, EventPageView, "", false},
		{PlatformGoogleAds, EventLead, "conversion", true},
		{PlatformTikTok, EventPageView, "PageView", true},
		{PlatformTikTok, EventLead, "Lead", true},
		{PlatformGA4, EventPageView, "pageview", true},
		{PlatformGA4, EventLead, "lead", true},
		{PlatformTaboola, EventPageView, "page_view", true},
		{PlatformTaboola, EventLead, "lead", true},
		{PlatformOutbrain, EventPageView, "", false},
		{PlatformOutbrain, EventLead, "Lead", true},
		{PlatformPinterest, EventPageView, "pagevisit", true},
		{PlatformPinterest, EventLead, "lead", true},
		{PlatformBing, EventPageView, "", false},
		{PlatformBing, EventLead, "submit_lead_form", true},
	}

	for _, tc := range cases {
		adapter, ok := AdapterFor(tc.platform)
		if !ok {
			t.Fatalf("no adapter for %s", tc.platform)
		}

		call, ok := adapter("px-123", tc.event)
		if ok != tc.wantOK {
			t.Errorf("%s/%s: ok = %v, want %v", tc.platform, tc.event, ok, tc.wantOK)
			continue
		}
		if !ok {
			continue
		}
		if call.Name != tc.wantName {
			t.Errorf("%s/%s: name = %q, want %q", tc.platform, tc.event, call.Name, tc.wantName)
		}
		if call.PixelID != "px-123" {
			t.Errorf("%s/%s: pixel id = %q, want px-123", tc.platform, tc.event, call.PixelID)
		}
		if call.Platform != tc.platform {
			t.Errorf("%s/%s: platform = %q", tc.platform, tc.event, call.Platform)
		}
	}
}

func TestGTMHasNoAdapter(t *testing.T) {
	if _, ok := AdapterFor(PlatformGTM); ok {
		t.Fatal("gtm must not have a platform adapter; the generic emit covers it")
	}
}

func TestGoogleAdsSendTo(t *testing.T) {
	adapter, _ := AdapterFor(PlatformGoogleAds)
	call, ok := adapter("AW-123", EventLead)
	if !ok {
		t.Fatal("expected a call for Lead")
	}
	if call.Params["send_to"] != "AW-123" {
		t.Fatalf("send_to = %q, want AW-123", call.Params["send_to"])
	}
}
