package cmd

import (
	"errors"
	"fmt"
	"time"

	"taskwizard/internal/core/domain/services"
	"taskwizard/internal/jobs"
	"taskwizard/internal/pkg/errs"
)

// Default values for optional settings.
const (
	DefaultHTTPPort        = "8082"
	DefaultDraftIdleTTL    = 30 * time.Minute
	DefaultShutdownTimeout = 10 * time.Second
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	DraftIdleTTL          time.Duration
	DraftEvictionSchedule string
	ShutdownTimeout       time.Duration

	MultiStopPackageFees services.MultiStopPackageFees
	SubmissionPricing    services.SubmissionPricing
}

// LoadConfig reads the settings through getenv. Unset optional settings take their
// defaults; malformed ones are all reported together.
func LoadConfig(getenv func(string) string) (Config, error) {
	config := Config{
		HTTPPort:              withDefault(getenv("HTTP_PORT"), DefaultHTTPPort),
		DBHost:                getenv("DB_HOST"),
		DBPort:                getenv("DB_PORT"),
		DBUser:                getenv("DB_USER"),
		DBPassword:            getenv("DB_PASSWORD"),
		DBName:                getenv("DB_NAME"),
		DBSslMode:             withDefault(getenv("DB_SSLMODE"), "disable"),
		DraftEvictionSchedule: withDefault(getenv("DRAFT_EVICTION_SCHEDULE"), jobs.DefaultEvictionSchedule),
	}

	var err, parseErr error
	if config.DraftIdleTTL, parseErr = parseDuration("DRAFT_IDLE_TTL", getenv("DRAFT_IDLE_TTL"), DefaultDraftIdleTTL); parseErr != nil {
		err = errors.Join(err, parseErr)
	}
	if config.ShutdownTimeout, parseErr = parseDuration("SHUTDOWN_TIMEOUT", getenv("SHUTDOWN_TIMEOUT"), DefaultShutdownTimeout); parseErr != nil {
		err = errors.Join(err, parseErr)
	}
	if config.MultiStopPackageFees, parseErr = parsePackageFees(getenv("MULTISTOP_PACKAGE_FEES")); parseErr != nil {
		err = errors.Join(err, parseErr)
	}
	if config.SubmissionPricing, parseErr = parseSubmissionPricing(getenv("SUBMISSION_PRICING")); parseErr != nil {
		err = errors.Join(err, parseErr)
	}
	for name, value := range map[string]string{
		"DB_HOST": config.DBHost,
		"DB_PORT": config.DBPort,
		"DB_USER": config.DBUser,
		"DB_NAME": config.DBName,
	} {
		if value == "" {
			err = errors.Join(err, errs.NewValueIsRequiredError(name))
		}
	}

	if err != nil {
		return Config{}, err
	}
	return config, nil
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func parseDuration(name, raw string, fallback time.Duration) (time.Duration, error) {
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	if d <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%s is not greater than 0", d))
	}
	return d, nil
}

func parsePackageFees(raw string) (services.MultiStopPackageFees, error) {
	switch raw {
	case "", services.SelectorPackageFees.String():
		return services.SelectorPackageFees, nil
	case services.PerStopPackageFees.String():
		return services.PerStopPackageFees, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"MULTISTOP_PACKAGE_FEES", fmt.Errorf("%q is not selector or per_stop", raw),
		)
	}
}

func parseSubmissionPricing(raw string) (services.SubmissionPricing, error) {
	switch raw {
	case "", services.UnifiedPricing.String():
		return services.UnifiedPricing, nil
	case services.LegacyFlatPricing.String():
		return services.LegacyFlatPricing, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"SUBMISSION_PRICING", fmt.Errorf("%q is not unified or legacy", raw),
		)
	}
}
