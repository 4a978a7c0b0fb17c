// internal/config/config.go
package conf

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bartek5186/bwimport/internal/db"
	"github.com/bartek5186/bwimport/internal/mapping"
	"github.com/joho/godotenv"
)

// Katalog i plik bazy aplikacji księgowej w katalogu danych użytkownika
// (%APPDATA% na Windows).
const (
	AppFolder  = "BlackWoodsCompta"
	DataFolder = "Data"
	DBFile     = "blackwoods.db"
)

// Przykładowe pliki leżą w docs/Exemple obok programu.
var ExamplesRel = filepath.Join("docs", "Exemple")

// Główny config importera
type Config struct {
	DBPath       string        `json:"db_path"`       // pusty = domyślna ścieżka aplikacji
	ExamplesDir  string        `json:"examples_dir"`  // pusty = docs/Exemple obok programu
	Driver       string        `json:"driver"`        // sqlite | sqlite-pure | mysql | postgres
	DSN          string        `json:"dsn,omitempty"` // tylko mysql/postgres
	Encoding     string        `json:"encoding"`      // kodowanie plików TSV
	ImportOrders bool          `json:"import_orders"` // zamówienia z depenses.txt
	SQLDebug     bool          `json:"sql_debug"`
	Rules        mapping.Rules `json:"rules"`
}

func Default() *Config {
	return &Config{
		Driver:   db.DriverSQLite,
		Encoding: "utf-8",
		Rules:    mapping.DefaultRules(),
	}
}

func LoadOrCreate(path string) (*Config, bool, error) {
	// upewnij się, że katalog istnieje
	_ = os.MkdirAll(filepath.Dir(path), 0o755)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			if err := Save(path, cfg); err != nil {
				return nil, false, fmt.Errorf("błąd zapisu domyślnego configa: %w", err)
			}
			return cfg, true, nil
		}
		return nil, false, fmt.Errorf("błąd otwierania configa: %w", err)
	}
	defer f.Close()

	var cfg Config
	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, false, fmt.Errorf("błąd parsowania configa: %w", err)
	}
	cfg.Rules = cfg.Rules.WithDefaults()
	if cfg.Driver == "" {
		cfg.Driver = db.DriverSQLite
	}
	return &cfg, false, nil
}

func Save(path string, cfg *Config) error {
	_ = os.MkdirAll(filepath.Dir(path), 0o755)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(cfg)
}

// ApplyEnv nadpisuje pola zmiennymi BWIMPORT_*; najpierw wczytuje plik .env (jeśli jest).
// Istniejące zmienne środowiska mają pierwszeństwo przed .env.
func (c *Config) ApplyEnv(envFiles ...string) {
	_ = godotenv.Load(envFiles...)

	c.DBPath = getEnv("BWIMPORT_DB_PATH", c.DBPath)
	c.ExamplesDir = getEnv("BWIMPORT_EXAMPLES_DIR", c.ExamplesDir)
	c.Driver = getEnv("BWIMPORT_DRIVER", c.Driver)
	c.DSN = getEnv("BWIMPORT_DSN", c.DSN)
	c.Encoding = getEnv("BWIMPORT_ENCODING", c.Encoding)
	c.ImportOrders = getEnvBool("BWIMPORT_ORDERS", c.ImportOrders)
	c.SQLDebug = getEnvBool("BWIMPORT_SQL_DEBUG", c.SQLDebug)
}

// Resolve uzupełnia puste ścieżki wartościami domyślnymi.
func (c *Config) Resolve() error {
	if db.IsFileDriver(c.Driver) && c.DBPath == "" {
		p, err := DefaultDBPath()
		if err != nil {
			return err
		}
		c.DBPath = p
	}
	if c.ExamplesDir == "" {
		p, err := DefaultExamplesDir()
		if err != nil {
			return err
		}
		c.ExamplesDir = p
	}
	return nil
}

// Target zwraca to, co dostaje sterownik: ścieżkę pliku albo DSN.
func (c *Config) Target() string {
	if db.IsFileDriver(c.Driver) {
		return c.DBPath
	}
	return c.DSN
}

func DefaultDBPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, AppFolder, DataFolder, DBFile), nil
}

func DefaultExamplesDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(exe), ExamplesRel), nil
}

func getEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}
