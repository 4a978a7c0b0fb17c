package conf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bartek5186/bwimport/internal/db"
)

func TestLoadOrCreate_WritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.json")

	cfg, first, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate: %v", err)
	}
	if !first {
		t.Fatalf("expected first run")
	}
	if cfg.Driver != db.DriverSQLite || cfg.Encoding != "utf-8" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config not written: %v", err)
	}

	again, first, err := LoadOrCreate(path)
	if err != nil || first {
		t.Fatalf("second load: first=%v err=%v", first, err)
	}
	if again.Rules.Salary("PDG") != 5000 || again.Rules.DefaultSalary != 1200 {
		t.Fatalf("rules not round-tripped: %+v", again.Rules)
	}
}

func TestLoadOrCreate_PartialRulesGetDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	raw := `{"examples_dir":"/data/ex","rules":{"sale_prefix":"V","salaries":{"Chef":4000}}}`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, first, err := LoadOrCreate(path)
	if err != nil || first {
		t.Fatalf("LoadOrCreate: first=%v err=%v", first, err)
	}
	if cfg.Driver != db.DriverSQLite {
		t.Fatalf("empty driver should default to sqlite, got %q", cfg.Driver)
	}
	if cfg.Rules.SalePrefix != "V" || cfg.Rules.ExpensePrefix != "D" {
		t.Fatalf("unexpected prefixes: %+v", cfg.Rules)
	}
	if cfg.Rules.Salary("Chef") != 4000 || cfg.Rules.Salary("PDG") != 1200 {
		t.Fatalf("salary table override not honoured: %+v", cfg.Rules.Salaries)
	}
}

func TestLoadOrCreate_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadOrCreate(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestApplyEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("BWIMPORT_EXAMPLES_DIR=/from/dotenv\nBWIMPORT_ORDERS=true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("BWIMPORT_DB_PATH", "/from/env/blackwoods.db")
	// t.Setenv przywróci stan po teście; godotenv nie nadpisuje istniejących zmiennych
	for _, k := range []string{"BWIMPORT_EXAMPLES_DIR", "BWIMPORT_ORDERS"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg := Default()
	cfg.ApplyEnv(envFile)

	if cfg.DBPath != "/from/env/blackwoods.db" {
		t.Fatalf("DBPath = %q", cfg.DBPath)
	}
	if cfg.ExamplesDir != "/from/dotenv" || !cfg.ImportOrders {
		t.Fatalf(".env values not applied: %+v", cfg)
	}
}

func TestResolve(t *testing.T) {
	cfg := Default()
	cfg.ExamplesDir = "/x"
	if err := cfg.Resolve(); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if filepath.Base(cfg.DBPath) != DBFile || filepath.Base(filepath.Dir(cfg.DBPath)) != DataFolder {
		t.Fatalf("unexpected default db path %q", cfg.DBPath)
	}
	if cfg.ExamplesDir != "/x" {
		t.Fatalf("explicit examples dir overwritten: %q", cfg.ExamplesDir)
	}
	if cfg.Target() != cfg.DBPath {
		t.Fatalf("sqlite target should be the file path")
	}

	pg := Default()
	pg.Driver = db.DriverPostgres
	pg.DSN = "host=localhost dbname=bw"
	pg.ExamplesDir = "/x"
	if err := pg.Resolve(); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if pg.DBPath != "" || pg.Target() != pg.DSN {
		t.Fatalf("postgres should use DSN, got path=%q target=%q", pg.DBPath, pg.Target())
	}
}
