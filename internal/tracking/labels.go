package tracking

// PlatformOption describes a platform for dashboard selects.
type PlatformOption struct {
	Value       Platform `json:"value"`
	Label       string   `json:"label"`
	Placeholder string   `json:"placeholder"`
}

// PlatformOptions returns display metadata for every supported platform,
// in the order the dashboard renders them.
func PlatformOptions() []PlatformOption {
	return []PlatformOption{
		{PlatformMeta, "Meta (Facebook/Instagram)", "Ex: 123456789012345"},
		{PlatformGoogleAds, "Google Ads", "Ex: AW-123456789"},
		{PlatformTikTok, "TikTok", "Ex: C4A7B2C3D4E5F6"},
		{PlatformGA4, "Google Analytics 4", "Ex: G-XXXXXXXXXX"},
		{PlatformGTM, "Google Tag Manager", "Ex: GTM-XXXXXXX"},
		{PlatformTaboola, "Taboola", "Ex: 1234567"},
		{PlatformOutbrain, "Outbrain", "Ex: 00abcdef1234567890"},
		{PlatformPinterest, "Pinterest", "Ex: 2612345678901"},
		{PlatformBing, "Microsoft Ads (Bing)", "Ex: 12345678"},
	}
}
