package cmd

import (
	"testing"

	"github.com/alexiusacademia/gosteel/internal/criteria"
)

func TestEnvValues(t *testing.T) {
	t.Setenv(envOmega, " 2.0 ")
	t.Setenv(envWorkers, "eight")
	t.Setenv(envMethod, "")

	if got := envFloat(envOmega, 1.67); got != 2.0 {
		t.Errorf("envFloat = %v, want 2", got)
	}
	if got := envInt(envWorkers, 4); got != 4 {
		t.Errorf("envInt with bad value = %v, want default 4", got)
	}
	if got := envString(envMethod, "ASD"); got != "ASD" {
		t.Errorf("envString with empty value = %q, want default", got)
	}
}

func TestDesignConfigFromEnv(t *testing.T) {
	t.Setenv(envMethod, "lrfd")
	t.Setenv(envPhi, "0.85")
	t.Setenv(envOmega, "")
	loadEnv()

	cfg, err := designConfig()
	if err != nil {
		t.Fatalf("designConfig: %v", err)
	}
	if cfg.Design != criteria.LRFD {
		t.Errorf("Design = %v, want LRFD", cfg.Design)
	}
	if cfg.Factors.Phi != 0.85 || cfg.Factors.Omega != criteria.DefaultFactors().Omega {
		t.Errorf("Factors = %+v", cfg.Factors)
	}
}

func TestDesignConfigRejects(t *testing.T) {
	loadEnv()
	t.Cleanup(loadEnv)

	designMethod = "LSD"
	if _, err := designConfig(); err == nil {
		t.Error("unknown design method accepted")
	}

	designMethod = "ASD"
	safetyOmega = 0
	if _, err := designConfig(); err == nil {
		t.Error("zero omega accepted")
	}
}
