package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"matching": map[string]any{
			"typeVeto": true,
		},
		"poller": map[string]any{
			"recencyWindow": "48h",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "MATCHING_TYPEVETO", want: "matching.typeVeto"},
		{envKey: "POLLER_RECENCYWINDOW", want: "poller.recencyWindow"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.Matching == nil || cfg.Poller == nil {
		t.Fatal("applyDefaults must fill absent sections")
	}
	if cfg.Matching.PremiumScoreThreshold != defaultPremiumScore {
		t.Fatalf("premium score threshold = %d, want %d", cfg.Matching.PremiumScoreThreshold, defaultPremiumScore)
	}
	if cfg.Matching.ExceptionalPriceRatio != defaultExceptionalPriceRatio {
		t.Fatalf("exceptional price ratio = %v, want %v", cfg.Matching.ExceptionalPriceRatio, defaultExceptionalPriceRatio)
	}
	if cfg.Poller.Interval != defaultPollInterval {
		t.Fatalf("poll interval = %v, want %v", cfg.Poller.Interval, defaultPollInterval)
	}
	if cfg.Poller.RecencyWindow != defaultRecencyWindow {
		t.Fatalf("recency window = %v, want %v", cfg.Poller.RecencyWindow, defaultRecencyWindow)
	}
}
