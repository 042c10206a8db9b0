package bootstrap

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestSetupReadsValues(t *testing.T) {
	path := writeConfig(t, "BOARD_SIZE=9\nKOMI=0.5\nKO_RULE=superko\n")

	cfg, err := Setup(path)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	if cfg.BoardSize != 9 {
		t.Fatalf("BoardSize = %d, want 9", cfg.BoardSize)
	}
	if cfg.Komi != 0.5 {
		t.Fatalf("Komi = %v, want 0.5", cfg.Komi)
	}
	if cfg.KoRule != "superko" {
		t.Fatalf("KoRule = %q, want superko", cfg.KoRule)
	}
}

func TestSetupFallsBackToDefaults(t *testing.T) {
	path := writeConfig(t, "KOMI=7.5\n")

	cfg, err := Setup(path)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	def := Default()
	if cfg.BoardSize != def.BoardSize {
		t.Fatalf("BoardSize = %d, want default %d", cfg.BoardSize, def.BoardSize)
	}
	if cfg.KoRule != def.KoRule {
		t.Fatalf("KoRule = %q, want default %q", cfg.KoRule, def.KoRule)
	}
	if cfg.Komi != 7.5 {
		t.Fatalf("Komi = %v, want 7.5", cfg.Komi)
	}
}

func TestSetupMissingFile(t *testing.T) {
	if _, err := Setup(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatalf("expected an error for a missing config file")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.BoardSize != 19 || cfg.Komi != 6.5 || cfg.KoRule != "simple" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}
