package db

import (
	"errors"
	"fmt"
	"strings"
)

var ErrSchemaMissing = errors.New("brak wymaganych tabel w bazie")

// CheckSchema sprawdza, czy tabele istnieją. Niczego nie tworzy:
// schemat zakłada aplikacja księgowa przy pierwszym uruchomieniu.
func (h *Handle) CheckSchema(tables ...string) error {
	m := h.DB.Migrator()

	var missing []string
	seen := make(map[string]struct{}, len(tables))
	for _, t := range tables {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		if !m.HasTable(t) {
			missing = append(missing, t)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrSchemaMissing, strings.Join(missing, ", "))
	}
	return nil
}
