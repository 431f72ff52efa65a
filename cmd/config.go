package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosteel/internal/criteria"
)

// Environment variables read at startup. A .env file in the working
// directory is loaded first; variables already set win over it.
const (
	envMethod   = "GOSTEEL_METHOD"
	envOmega    = "GOSTEEL_OMEGA"
	envPhi      = "GOSTEEL_PHI"
	envWorkers  = "GOSTEEL_WORKERS"
	envLogLevel = "GOSTEEL_LOG_LEVEL"
)

var (
	// Global options, defaults from the environment
	designMethod  string
	safetyOmega   float64
	resistancePhi float64
	majorBuckling bool
	logLevel      string
)

// loadEnv loads .env and sets the defaults of the global flags
func loadEnv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: reading .env: %v\n", err)
	}
	designMethod = envString(envMethod, criteria.ASD.String())
	defaults := criteria.DefaultFactors()
	safetyOmega = envFloat(envOmega, defaults.Omega)
	resistancePhi = envFloat(envPhi, defaults.Phi)
	logLevel = envString(envLogLevel, "warn")
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %s=%q is not a number, using %g\n", key, v, def)
		return def
	}
	return f
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %s=%q is not an integer, using %d\n", key, v, def)
		return def
	}
	return n
}

// setupLogging installs a text logger on stderr at the configured level
func setupLogging() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return nil
}

// designConfig builds the analysis configuration from the global flags
func designConfig() (criteria.Config, error) {
	cfg := criteria.Default()
	d, err := criteria.ParseDesignType(designMethod)
	if err != nil {
		return cfg, err
	}
	cfg.Design = d
	cfg.Factors = criteria.Factors{Omega: safetyOmega, Phi: resistancePhi}
	cfg.IncludeMajorBuckling = majorBuckling
	if err := cfg.Factors.Validate(); err != nil {
		return cfg, err
	}
	slog.Debug("design configuration", "method", cfg.Design, "omega", cfg.Factors.Omega,
		"phi", cfg.Factors.Phi, "major_buckling", cfg.IncludeMajorBuckling)
	return cfg, nil
}

func addGlobalFlags(cmd *cobra.Command) {
	loadEnv()
	f := cmd.PersistentFlags()
	f.StringVarP(&designMethod, "method", "m", designMethod, "Design method: ASD or LRFD [$"+envMethod+"]")
	f.Float64Var(&safetyOmega, "omega", safetyOmega, "ASD safety factor Ω [$"+envOmega+"]")
	f.Float64Var(&resistancePhi, "phi", resistancePhi, "LRFD resistance factor φ [$"+envPhi+"]")
	f.BoolVar(&majorBuckling, "major-buckling", false, "Include major axis flexural buckling in the governing compression strength")
	f.StringVar(&logLevel, "log-level", logLevel, "Log level: debug, info, warn, error [$"+envLogLevel+"]")
}
