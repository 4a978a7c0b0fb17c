package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	conf "github.com/bartek5186/bwimport/internal/config"
	"github.com/bartek5186/bwimport/internal/importer"
	"github.com/bartek5186/bwimport/internal/logs"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// wersję można nadpisać przez: -ldflags "-X 'main.ver=1.0.1'"
var ver = "1.0.0"

type cliOptions struct {
	configPath string
	dbPath     string
	examples   string
	driver     string
	dsn        string
	encoding   string
	orders     bool
	dryRun     bool
	sqlDebug   bool
	quiet      bool
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts cliOptions

	cmd := &cobra.Command{
		Use:           "bwimport",
		Short:         "Import przykładowych danych TSV do bazy BlackWoods Compta",
		Version:       ver,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "plik konfiguracji (domyślnie <katalog danych>/config.json)")
	f.StringVar(&opts.dbPath, "db", "", "ścieżka pliku bazy sqlite")
	f.StringVar(&opts.examples, "examples", "", "katalog z plikami TSV (domyślnie docs/Exemple obok programu)")
	f.StringVar(&opts.driver, "driver", "", "sterownik bazy: sqlite | sqlite-pure | mysql | postgres")
	f.StringVar(&opts.dsn, "dsn", "", "DSN dla mysql/postgres")
	f.StringVar(&opts.encoding, "encoding", "", "kodowanie plików wejściowych (np. windows-1252)")
	f.BoolVar(&opts.orders, "orders", false, "utwórz też zamówienia z depenses.txt")
	f.BoolVar(&opts.dryRun, "dry-run", false, "wykonaj import i wycofaj transakcję")
	f.BoolVar(&opts.sqlDebug, "sql-debug", false, "loguj zapytania SQL")
	f.BoolVar(&opts.quiet, "quiet", false, "logi tylko do pliku")

	return cmd
}

func run(cmd *cobra.Command, opts cliOptions) error {
	appDir, err := appDataDir("bwimport")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Błąd katalogu danych:", err)
		return err
	}

	log, closeLog, err := logs.New(filepath.Join(appDir, "app.log"), !opts.quiet, zerolog.InfoLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Błąd logów:", err)
		return err
	}
	defer closeLog()

	cfgPath := opts.configPath
	if cfgPath == "" {
		cfgPath = filepath.Join(appDir, "config.json")
	}
	cfg, firstRun, err := conf.LoadOrCreate(cfgPath)
	if err != nil {
		log.Error().Err(err).Str("config", cfgPath).Msg("config error")
		return err
	}
	if firstRun {
		log.Info().Msgf("Utworzono domyślną konfigurację: %s", cfgPath)
	}

	cfg.ApplyEnv()
	applyFlags(cmd, opts, cfg)
	if err := cfg.Resolve(); err != nil {
		log.Error().Err(err).Msg("nie można ustalić ścieżek")
		return err
	}

	rep, err := importer.Run(cmd.Context(), log, cfg, opts.dryRun)
	if rep != nil {
		rep.Print(cmd.OutOrStdout())
	}
	if err != nil {
		switch {
		case errors.Is(err, importer.ErrDatabaseMissing):
			log.Error().Str("db", cfg.DBPath).Msg("brak bazy danych – uruchom najpierw aplikację")
		case errors.Is(err, importer.ErrExamplesMissing):
			log.Error().Str("examples", cfg.ExamplesDir).Msg("brak katalogu z przykładami")
		default:
			log.Error().Err(err).Msg("import nieudany")
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Import nieudany:", err)
		return err
	}
	return nil
}

// flagi mają pierwszeństwo przed configiem i zmiennymi środowiska
func applyFlags(cmd *cobra.Command, opts cliOptions, cfg *conf.Config) {
	f := cmd.Flags()
	if f.Changed("db") {
		cfg.DBPath = opts.dbPath
	}
	if f.Changed("examples") {
		cfg.ExamplesDir = opts.examples
	}
	if f.Changed("driver") {
		cfg.Driver = opts.driver
	}
	if f.Changed("dsn") {
		cfg.DSN = opts.dsn
	}
	if f.Changed("encoding") {
		cfg.Encoding = opts.encoding
	}
	if f.Changed("orders") {
		cfg.ImportOrders = opts.orders
	}
	if f.Changed("sql-debug") {
		cfg.SQLDebug = opts.sqlDebug
	}
}

func appDataDir(name string) (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	p := filepath.Join(base, name)
	if err := os.MkdirAll(p, 0o755); err != nil {
		return "", err
	}
	return p, nil
}
