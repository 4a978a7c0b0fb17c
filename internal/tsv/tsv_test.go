package tsv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRead_SkipsHeaderAndTrims(t *testing.T) {
	t.Parallel()

	in := "Nom\tPrenom\tPoste\r\n" +
		"Dupont\tJean\tManager\r\n" +
		"\r\n" +
		"Martin\tLea\t\t\r\n"

	recs, err := Read(strings.NewReader(in), "")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("want 3 records, got %d", len(recs))
	}
	if recs[0].Index != 0 || recs[0].Field(2) != "Manager" {
		t.Fatalf("unexpected first record: %+v", recs[0])
	}
	if recs[1].Len() != 1 || recs[1].Field(0) != "" {
		t.Fatalf("blank line should give one empty field, got %+v", recs[1])
	}
	// puste kolumny na końcu linii są obcinane razem z białymi znakami
	if recs[2].Index != 2 || recs[2].Len() != 2 {
		t.Fatalf("trailing tabs should be trimmed, got %+v", recs[2])
	}
	if recs[2].Field(5) != "" {
		t.Fatalf("missing column should read as empty")
	}
}

func TestRead_LongLine(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", 3<<20)
	in := "h\n" + "Farine\t" + long + "\n" + "Sucre\tMetro"

	recs, err := Read(strings.NewReader(in), "")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("want 2 records, got %d", len(recs))
	}
	if len(recs[0].Field(1)) != len(long) {
		t.Fatalf("long field truncated to %d bytes", len(recs[0].Field(1)))
	}
	// ostatnia linia bez znaku nowej linii
	if recs[1].Index != 1 || recs[1].Field(1) != "Metro" {
		t.Fatalf("unexpected last record: %+v", recs[1])
	}
}

func TestRead_HeaderOnly(t *testing.T) {
	t.Parallel()

	recs, err := Read(strings.NewReader("a\tb\n"), "utf-8")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("want no records, got %d", len(recs))
	}
}

func TestRead_Windows1252(t *testing.T) {
	t.Parallel()

	// "Matière" w cp1252: è = 0xE8
	in := []byte("h\n" + "Mati\xe8re\t1\n")
	recs, err := Read(strings.NewReader(string(in)), "cp1252")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got := recs[0].Field(0); got != "Matière" {
		t.Fatalf("want decoded Matière, got %q", got)
	}
}

func TestRead_UnknownCharset(t *testing.T) {
	t.Parallel()

	if _, err := Read(strings.NewReader("h\n"), "klingon-8"); err == nil {
		t.Fatalf("expected error for unknown charset")
	}
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "stock.txt")
	if err := os.WriteFile(path, []byte("h\nFarine\tMetro\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	recs, err := ReadFile(path, "")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(recs) != 1 || recs[0].Trimmed(1) != "Metro" {
		t.Fatalf("unexpected records: %+v", recs)
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt"), ""); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestNormalizeCharset(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"":          "utf-8",
		"UTF8":      "utf-8",
		"cp1250":    "windows-1250",
		"Latin-2":   "iso-8859-2",
		"ANSI":      "windows-1252",
		"shift_jis": "shift_jis",
	}
	for in, want := range cases {
		if got := NormalizeCharset(in); got != want {
			t.Errorf("NormalizeCharset(%q) = %q, want %q", in, got, want)
		}
	}
}
