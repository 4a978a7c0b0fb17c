package importer

import (
	"fmt"
	"io"
	"time"
)

type StepResult struct {
	Step     string
	File     string
	Present  bool // false = plik nie istniał, krok pominięty
	Rows     int  // linie danych w pliku
	Inserted int
}

type Report struct {
	RunID     string
	StartedAt time.Time
	DryRun    bool
	Committed bool
	Steps     []StepResult
}

func (r *Report) Total() int {
	n := 0
	for _, s := range r.Steps {
		n += s.Inserted
	}
	return n
}

// Inserted zwraca liczbę wstawionych wierszy dla kroku.
func (r *Report) Inserted(step string) int {
	for _, s := range r.Steps {
		if s.Step == step {
			return s.Inserted
		}
	}
	return 0
}

// Print wypisuje podsumowanie dla operatora.
func (r *Report) Print(w io.Writer) {
	for _, s := range r.Steps {
		if !s.Present {
			fmt.Fprintf(w, "  %-16s %-16s pominięto (brak pliku)\n", s.Step, s.File)
			continue
		}
		fmt.Fprintf(w, "  %-16s %-16s %5d / %5d\n", s.Step, s.File, s.Inserted, s.Rows)
	}
	switch {
	case r.Committed:
		fmt.Fprintf(w, "Import zakończony: %d wierszy\n", r.Total())
	case r.DryRun:
		fmt.Fprintf(w, "Dry-run: %d wierszy (wycofano)\n", r.Total())
	}
}
