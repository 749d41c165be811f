package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix = "APP_"

	// EnvConfigDir overrides the directory holding base.yaml and the profile
	// files. It is read by Load, never mapped onto a config key.
	EnvConfigDir = envPrefix + "CONFIG_DIR"

	defaultConfigDir = "configs"
)

// bootstrapEnv are APP_ variables that select how config is loaded rather
// than what it contains.
var bootstrapEnv = map[string]bool{
	"profile":    true,
	"config_dir": true,
}

var errReadBytesUnsupported = errors.New("defaults provider does not support ReadBytes")

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir reads the YAML files from dir, overriding APP_CONFIG_DIR and
// the default "configs" directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// Load builds the Config for profile from four layers, later ones winning:
//
//  0. built-in defaults
//  1. {configDir}/base.yaml
//  2. {configDir}/{profile}.yaml
//  3. APP_ environment variables
//
// Environment names are matched against the keys already loaded, so field
// names that contain underscores resolve unambiguously:
//
//	APP_SERVER_REQUEST_TIMEOUT         -> server.request_timeout
//	APP_RATE_LIMIT_REQUESTS_PER_SECOND -> rate_limit.requests_per_second
//	APP_AUTH_JWT_SECRET                -> auth.jwt_secret
//	APP_STORAGE_DSN                    -> storage.dsn
//
// The merged result is validated before it is returned.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		o.configDir = dir
	}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")
	if err := k.Load(defaultsProvider(defaults()), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}
	for _, name := range []string{"base", profile} {
		path := filepath.Join(o.configDir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s config %s: %w", name, path, err)
		}
	}
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        envPrefix,
		TransformFunc: envKeyMapper(k.Keys()),
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config %q: %w", profile, err)
	}
	return &cfg, nil
}

// validateProfile rejects empty names and anything that could escape the
// config directory.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`):
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	case strings.Contains(profile, ".."):
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}

// envKeyMapper returns the koanf env transform. Known keys are matched by
// their underscore form; unknown names fall back to treating every
// underscore as nesting. Bootstrap variables are dropped.
func envKeyMapper(keys []string) func(string, string) (string, any) {
	known := make(map[string]string, len(keys))
	for _, key := range keys {
		known[strings.ReplaceAll(key, ".", "_")] = key
	}

	return func(name, value string) (string, any) {
		name = strings.ToLower(strings.TrimPrefix(name, envPrefix))
		if bootstrapEnv[name] {
			return "", nil
		}
		if key, ok := known[name]; ok {
			return key, value
		}
		return strings.ReplaceAll(name, "_", "."), value
	}
}
