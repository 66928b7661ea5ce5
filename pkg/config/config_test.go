package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

const minimalConfig = `
accounts:
  - person: Louis
    account: Invest
    key_id_env: LOUIS_INVEST_ID
    secret_env: LOUIS_INVEST_SECRET
  - person: Johnny
    account: Invest
    currency: USD
    key_id_env: JOHNNY_INVEST_ID
    secret_env: JOHNNY_INVEST_SECRET
aliases:
  Johnny: Louis
`

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Environment != "production" {
		t.Fatalf("environment: %q", cfg.Environment)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("port: %d", cfg.Server.Port)
	}
	if cfg.Trading212.Timeout != 20*time.Second {
		t.Fatalf("t212 timeout: %v", cfg.Trading212.Timeout)
	}
	if cfg.FX.LookbackDays != 7 || cfg.FX.ReportBase != "GBP" {
		t.Fatalf("fx defaults: %+v", cfg.FX)
	}
	if len(cfg.FX.ReportTargets) != 2 || cfg.FX.ReportTargets[0] != "USD" || cfg.FX.ReportTargets[1] != "HKD" {
		t.Fatalf("report targets: %v", cfg.FX.ReportTargets)
	}
	if cfg.Accounts[0].Currency != "GBP" {
		t.Fatalf("currency default: %q", cfg.Accounts[0].Currency)
	}
	if cfg.Accounts[1].Currency != "USD" {
		t.Fatalf("explicit currency lost: %q", cfg.Accounts[1].Currency)
	}
}

func TestLoadWithEnvResolvesCredentials(t *testing.T) {
	t.Setenv("LOUIS_INVEST_ID", "key-123")
	t.Setenv("LOUIS_INVEST_SECRET", "sec-456")
	t.Setenv("SERVER_PORT", "9090")
	// JOHNNY_* deliberately unset

	cfg, err := LoadWithEnv(writeConfig(t, minimalConfig))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Fatalf("port override: %d", cfg.Server.Port)
	}
	if cfg.Accounts[0].KeyID != "key-123" || cfg.Accounts[0].Secret != "sec-456" {
		t.Fatalf("credentials: %+v", cfg.Accounts[0])
	}
	// absent env vars resolve to empty strings, not a failure
	if cfg.Accounts[1].KeyID != "" || cfg.Accounts[1].Secret != "" {
		t.Fatalf("missing creds should be empty: %+v", cfg.Accounts[1])
	}
}

func TestAliasResolution(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := cfg.Alias("Johnny"); got != "Louis" {
		t.Fatalf("alias: %q", got)
	}
	if got := cfg.Alias("Rebecca"); got != "Rebecca" {
		t.Fatalf("identity alias: %q", got)
	}
}

func TestLoadRejectsEmptyAccounts(t *testing.T) {
	if _, err := Load(writeConfig(t, "environment: dev\n")); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestLoadRejectsUnknownCurrency(t *testing.T) {
	body := `
accounts:
  - person: Louis
    account: Invest
    currency: EUR
    key_id_env: A
    secret_env: B
`
	if _, err := Load(writeConfig(t, body)); err == nil {
		t.Fatalf("expected currency validation error")
	}
}

func TestLoadRejectsDuplicateAccount(t *testing.T) {
	body := `
accounts:
  - person: Louis
    account: Invest
    key_id_env: A
    secret_env: B
  - person: Louis
    account: Invest
    key_id_env: C
    secret_env: D
`
	if _, err := Load(writeConfig(t, body)); err == nil {
		t.Fatalf("expected duplicate account error")
	}
}
