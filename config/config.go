// Package config loads the service configuration from a YAML file with
// environment-variable overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const defaultPath = "."

// Engine defaults; any of them can be overridden per deployment.
const (
	defaultPollInterval          = 3 * time.Minute
	defaultRecencyWindow         = 48 * time.Hour
	defaultPremiumScore          = 120
	defaultExceptionalPriceRatio = 0.85
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Matching configuration for the scoring engine
	Matching *MatchingConfig `json:"matching" yaml:"matching"`

	// Poller configuration for the alert dispatch loop
	Poller *PollerConfig `json:"poller" yaml:"poller"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// MatchingConfig defines scoring-engine configuration
type MatchingConfig struct {
	// GenevaContext enables the region-exclusive alias layer when resolving
	// listing locations.
	GenevaContext bool `json:"genevaContext" yaml:"genevaContext"`

	// TypeVeto controls whether a dwelling-type mismatch zeroes the score.
	// The dimension is recorded either way; only the veto is togglable.
	TypeVeto bool `json:"typeVeto" yaml:"typeVeto"`

	// PremiumScoreThreshold is the total score above which the perfect-match
	// badge is attached.
	PremiumScoreThreshold int `json:"premiumScoreThreshold" yaml:"premiumScoreThreshold"`

	// ExceptionalPriceRatio marks a listing as exceptionally priced when its
	// rent is at or below this fraction of the user's budget.
	ExceptionalPriceRatio float64 `json:"exceptionalPriceRatio" yaml:"exceptionalPriceRatio"`
}

// PollerConfig defines the alert dispatch loop configuration
type PollerConfig struct {
	// Interval between polling cycles.
	Interval time.Duration `json:"interval" yaml:"interval"`

	// RecencyWindow is the sliding window of listing creation times
	// considered by each cycle.
	RecencyWindow time.Duration `json:"recencyWindow" yaml:"recencyWindow"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: MATCHING_TYPEVETO -> matching.typeVeto (not matching.typeveto)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return cfg, nil
}

// applyDefaults fills in engine defaults for absent optional sections so the
// rest of the code never has to nil-check tuning knobs.
func (cfg *Config) applyDefaults() {
	if cfg.Matching == nil {
		cfg.Matching = &MatchingConfig{GenevaContext: true, TypeVeto: true}
	}
	if cfg.Matching.PremiumScoreThreshold == 0 {
		cfg.Matching.PremiumScoreThreshold = defaultPremiumScore
	}
	if cfg.Matching.ExceptionalPriceRatio == 0 {
		cfg.Matching.ExceptionalPriceRatio = defaultExceptionalPriceRatio
	}

	if cfg.Poller == nil {
		cfg.Poller = &PollerConfig{}
	}
	if cfg.Poller.Interval == 0 {
		cfg.Poller.Interval = defaultPollInterval
	}
	if cfg.Poller.RecencyWindow == 0 {
		cfg.Poller.RecencyWindow = defaultRecencyWindow
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
