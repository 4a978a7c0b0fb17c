// Package tsv czyta pliki rozdzielane tabulatorem z nagłówkiem w pierwszej linii.
package tsv

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html/charset"
)

// Record to jedna linia danych (bez nagłówka).
// Index liczy linie danych od zera, także te później odrzucone.
type Record struct {
	Index  int
	Fields []string
}

// Len zwraca liczbę kolumn.
func (r Record) Len() int { return len(r.Fields) }

// Field zwraca kolumnę i albo "" gdy jej brak.
func (r Record) Field(i int) string {
	if i < 0 || i >= len(r.Fields) {
		return ""
	}
	return r.Fields[i]
}

// Trimmed zwraca kolumnę i bez białych znaków na brzegach.
func (r Record) Trimmed(i int) string {
	return strings.TrimSpace(r.Field(i))
}

// ReadFile otwiera plik i dekoduje go z podanego kodowania (puste = utf-8).
func ReadFile(path, encoding string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	recs, err := Read(f, encoding)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

// Read dzieli wejście na linie, odrzuca pierwszą (nagłówek) i tnie resztę po '\t'.
// Linia jest najpierw przycinana, więc puste kolumny na końcu znikają.
// Długość linii nie jest ograniczona.
func Read(r io.Reader, encoding string) ([]Record, error) {
	dec, err := charset.NewReaderLabel(NormalizeCharset(encoding), r)
	if err != nil {
		return nil, err
	}

	br := bufio.NewReader(dec)

	var out []Record
	header := true
	idx := 0
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		// ostatnia linia bez '\n' też się liczy
		if line != "" {
			if header {
				header = false
			} else {
				out = append(out, Record{Index: idx, Fields: strings.Split(strings.TrimSpace(line), "\t")})
				idx++
			}
		}
		if err == io.EOF {
			return out, nil
		}
	}
}

// NormalizeCharset mapuje nietypowe etykiety na nazwy rozpoznawane przez charset.NewReaderLabel
func NormalizeCharset(cs string) string {
	c := strings.TrimSpace(strings.ToLower(cs))
	switch c {
	case "":
		return "utf-8"
	case "utf8":
		return "utf-8"
	case "latin1", "latin-1", "iso8859-1", "iso_8859-1":
		return "iso-8859-1"
	case "latin ii", "latin-2", "latin2", "iso8859-2", "iso_8859-2":
		return "iso-8859-2"
	case "cp1250", "windows1250", "win-1250":
		return "windows-1250"
	case "cp1252", "windows1252", "win-1252", "ansi":
		return "windows-1252"
	default:
		return c
	}
}
