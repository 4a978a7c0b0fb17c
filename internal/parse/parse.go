// Package parse zawiera tolerancyjne parsery wartości z plików TSV.
// Żaden parser nie zwraca błędu: wartość nieczytelna daje zero albo "brak".
package parse

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

// ISODate to format daty zapisywanej w bazie.
const ISODate = "2006-01-02"

// kolejność ma znaczenie: rok 4-cyfrowy przed 2-cyfrowym
var dateLayouts = []string{"2/1/2006", "2/1/06"}

// Amount parsuje kwoty w stylu "$1 000,00" albo "$1000.00".
// Zwraca 0 dla pustego lub nieczytelnego tekstu.
func Amount(s string) float64 {
	d, ok := AmountDecimal(s)
	if !ok {
		return 0
	}
	return d.InexactFloat64()
}

// AmountDecimal robi to samo co Amount, ale zwraca wartość dziesiętną.
// Zapis wykładniczy ("1e400") jest odrzucany: decimal liczy 10^exp na big.Int,
// więc duży wykładnik blokowałby import.
func AmountDecimal(s string) (decimal.Decimal, bool) {
	cleaned := stripSpaces(strings.ReplaceAll(s, "$", ""))
	if cleaned == "" || strings.ContainsAny(cleaned, "eE") {
		return decimal.Zero, false
	}
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	// bardzo długi ciąg cyfr nie mieści się we float64
	if math.IsInf(d.InexactFloat64(), 0) {
		return decimal.Zero, false
	}
	return d, true
}

// Date zamienia "dd/mm/rrrr" na "rrrr-mm-dd". Drugi wynik false oznacza brak daty.
func Date(s string) (string, bool) {
	t, ok := Day(s)
	if !ok {
		return "", false
	}
	return t.Format(ISODate), true
}

// Day parsuje "dd/mm/rrrr" do time.Time (UTC, północ).
func Day(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Float parsuje zwykłą liczbę ("12", "3.5"); 0 przy błędzie.
func Float(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// Int parsuje liczbę całkowitą; 0 przy błędzie.
func Int(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}

// LooseInt czyta ilość, która mogła zostać sformatowana jak kwota
// ("$2", "2,0", "1 5"), i obcina część ułamkową. Wartość spoza zakresu int = 0.
func LooseInt(s string) int {
	d, ok := AmountDecimal(s)
	if !ok || d.Abs().GreaterThan(maxInt) {
		return 0
	}
	return int(d.IntPart())
}

var maxInt = decimal.NewFromInt(int64(math.MaxInt))

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
