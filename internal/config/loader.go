// Package config loads and validates the service configuration at startup.
//
// Configuration lives in ./config/${ENVIRONMENT}.yaml. Values may reference
// environment variables with ${VAR} syntax; a .env file is loaded first when
// present. Defaults come from `default` struct tags, validation from
// go-playground/validator `validate` tags.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Recognized values of the ENVIRONMENT variable.
const (
	EnvProduction = "production"
	EnvStaging    = "staging"
	EnvDev        = "dev"
	EnvLocal      = "local"
	EnvTest       = "test"
)

// MustLoad loads, defaults and validates the configuration, exiting the
// process on any failure. Meant to be called once from main.
func MustLoad() Config {
	var cfg Config

	_ = godotenv.Load()

	env := os.Getenv("ENVIRONMENT")
	if !slices.Contains([]string{EnvProduction, EnvStaging, EnvDev, EnvLocal, EnvTest}, env) {
		slog.Error("[config]: ENVIRONMENT is not set or invalid. Choices are: production, staging, dev, local, test")
		os.Exit(1)
	}

	path := fmt.Sprintf("./config/%s.yaml", env)

	data, err := os.ReadFile(path)
	if err != nil {
		slog.Error(fmt.Sprintf("[config]: failed to read config file %s: %v", path, err))
		os.Exit(1)
	}

	data = []byte(os.ExpandEnv(string(data)))

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		slog.Error(fmt.Sprintf("[config]: failed to unmarshal %s config file: %v", env, err))
		os.Exit(1)
	}

	if err := defaults.Set(&cfg); err != nil {
		slog.Error(fmt.Sprintf("[config]: failed to set default values: %v", err))
		os.Exit(1)
	}

	validate(&cfg, env)

	return cfg
}

func validate(cfg *Config, env string) {
	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.Struct(cfg)
	if err == nil {
		return
	}

	failed := make([]string, 0)
	if errs, ok := err.(validator.ValidationErrors); ok { //nolint:errorlint // validator returns a value type
		for _, fe := range errs {
			tag := fe.Tag()
			if fe.Param() != "" {
				tag += "=" + fe.Param()
			}
			failed = append(failed, fmt.Sprintf("%s: %s", fe.Namespace(), tag))
		}
	}

	if len(failed) > 0 {
		slog.Error(fmt.Sprintf("[config]: invalid fields in %s config -> %s", env, strings.Join(failed, ",  ")))
		os.Exit(1)
	}
}
