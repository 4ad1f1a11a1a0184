// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
	"time"
)

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 8501 {
		t.Errorf("expected default port 8501, got %d", cfg.Port)
	}
	if cfg.UsersFile != "users.json" {
		t.Errorf("expected default users file users.json, got %s", cfg.UsersFile)
	}
	if cfg.DataFile != "yoka_data.csv" {
		t.Errorf("expected default data file yoka_data.csv, got %s", cfg.DataFile)
	}
	if cfg.SessionTTL != 720*time.Minute {
		t.Errorf("expected default session TTL 720m, got %s", cfg.SessionTTL)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	// Set env vars
	os.Setenv("PORT", "9000")
	os.Setenv("USERS_FILE", "/tmp/u.json")
	os.Setenv("DATA_FILE", "/tmp/d.csv")
	os.Setenv("SESSION_TTL_MINUTES", "30")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.UsersFile != "/tmp/u.json" {
		t.Errorf("expected users file /tmp/u.json, got %s", cfg.UsersFile)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("expected session TTL 30m, got %s", cfg.SessionTTL)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-u", "alt.json", "-r", "alt.csv"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.UsersFile != "alt.json" {
		t.Errorf("expected users file alt.json, got %s", cfg.UsersFile)
	}
}

func TestParseFlags_InvalidEnv(t *testing.T) {
	os.Setenv("PORT", "not-a-number")
	defer os.Clearenv()

	if _, err := ParseFlags([]string{}); err == nil {
		t.Error("expected error for invalid PORT")
	}
}
