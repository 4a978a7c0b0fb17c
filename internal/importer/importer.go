package importer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	conf "github.com/bartek5186/bwimport/internal/config"
	"github.com/bartek5186/bwimport/internal/db"
	"github.com/bartek5186/bwimport/internal/mapping"
	"github.com/bartek5186/bwimport/internal/tsv"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrDatabaseMissing = errors.New("baza danych nie istnieje (uruchom najpierw aplikację)")
	ErrExamplesMissing = errors.New("nie znaleziono katalogu z przykładami")
)

type Options struct {
	ExamplesDir string
	Encoding    string
	Orders      bool // dodatkowo zamówienia z depenses.txt
	DryRun      bool // wszystko w transakcji, na końcu rollback
	Now         func() time.Time
}

type Importer struct {
	log    zerolog.Logger
	h      *db.Handle
	rules  mapping.Rules
	opts   Options
	mapper *mapping.Mapper
}

func New(log zerolog.Logger, h *db.Handle, rules mapping.Rules, opts Options) *Importer {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Importer{log: log, h: h, rules: rules, opts: opts}
}

// Run sprawdza ścieżki z configu, otwiera bazę i wykonuje import.
// Brak bazy lub katalogu to błąd oczekiwany (ErrDatabaseMissing / ErrExamplesMissing).
func Run(ctx context.Context, log zerolog.Logger, cfg *conf.Config, dryRun bool) (*Report, error) {
	if db.IsFileDriver(cfg.Driver) {
		if fi, err := os.Stat(cfg.DBPath); err != nil || fi.IsDir() {
			return nil, fmt.Errorf("%w: %s", ErrDatabaseMissing, cfg.DBPath)
		}
	}
	if fi, err := os.Stat(cfg.ExamplesDir); err != nil || !fi.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrExamplesMissing, cfg.ExamplesDir)
	}

	h, err := db.Open(cfg.Driver, cfg.Target(), cfg.SQLDebug)
	if err != nil {
		return nil, fmt.Errorf("DB open: %w", err)
	}
	defer h.Close()

	imp := New(log, h, cfg.Rules, Options{
		ExamplesDir: cfg.ExamplesDir,
		Encoding:    cfg.Encoding,
		Orders:      cfg.ImportOrders,
		DryRun:      dryRun,
	})
	return imp.Import(ctx)
}

type loaded struct {
	step step
	idx  int // pozycja w Report.Steps
	recs []tsv.Record
}

// Import wykonuje wszystkie kroki w jednej transakcji.
// Dowolny błąd w trakcie = rollback całości; commit tylko raz, na końcu.
func (i *Importer) Import(ctx context.Context) (*Report, error) {
	now := i.opts.Now()
	runID := uuid.NewString()
	log := i.log.With().Str("run_id", runID).Logger()
	i.mapper = mapping.New(i.rules, now)

	rep := &Report{RunID: runID, StartedAt: now, DryRun: i.opts.DryRun}

	ev := log.Info().Str("driver", i.h.Driver)
	if db.IsFileDriver(i.h.Driver) {
		ev = ev.Str("db", i.h.Path)
	}
	ev.Str("examples", i.opts.ExamplesDir).
		Bool("dry_run", i.opts.DryRun).
		Msg("start importu")

	// wczytaj pliki przed otwarciem transakcji; brak pliku = krok pominięty
	cache := map[string][]tsv.Record{}
	var work []loaded
	var tables []string
	for _, st := range steps {
		if st.OptIn && !i.opts.Orders {
			continue
		}
		path := filepath.Join(i.opts.ExamplesDir, st.File)
		rep.Steps = append(rep.Steps, StepResult{Step: st.Name, File: st.File})
		idx := len(rep.Steps) - 1

		recs, ok := cache[st.File]
		if !ok {
			if _, err := os.Stat(path); err != nil {
				if !errors.Is(err, os.ErrNotExist) {
					return rep, fmt.Errorf("%s: %w", st.File, err)
				}
				log.Warn().Str("step", st.Name).Str("file", st.File).Msg("brak pliku – pomijam")
				continue
			}
			var err error
			recs, err = tsv.ReadFile(path, i.opts.Encoding)
			if err != nil {
				return rep, err
			}
			cache[st.File] = recs
		}

		rep.Steps[idx].Present = true
		rep.Steps[idx].Rows = len(recs)
		work = append(work, loaded{step: st, idx: idx, recs: recs})
		tables = append(tables, st.Table)
	}

	if err := i.h.CheckSchema(tables...); err != nil {
		return rep, err
	}

	tx := i.h.DB.WithContext(ctx).Begin()
	if tx.Error != nil {
		return rep, tx.Error
	}
	defer tx.Rollback()

	for _, w := range work {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		n, err := w.step.run(i, tx, w.recs)
		if err != nil {
			log.Error().Err(err).Str("step", w.step.Name).Str("file", w.step.File).Msg("błąd importu – rollback")
			return rep, fmt.Errorf("%s: %w", w.step.Name, err)
		}
		rep.Steps[w.idx].Inserted = n
		log.Info().
			Str("step", w.step.Name).
			Str("file", w.step.File).
			Int("rows", len(w.recs)).
			Int("inserted", n).
			Msg("krok zakończony")
	}

	if i.opts.DryRun {
		if err := tx.Rollback().Error; err != nil {
			return rep, err
		}
		log.Info().Int("inserted", rep.Total()).Msg("dry-run: zmiany wycofane")
		return rep, nil
	}

	if err := tx.Commit().Error; err != nil {
		log.Error().Err(err).Msg("tx commit failed")
		return rep, err
	}
	rep.Committed = true
	log.Info().Int("inserted", rep.Total()).Msg("import zakończony")
	return rep, nil
}
