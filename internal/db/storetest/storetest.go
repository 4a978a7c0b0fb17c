// Package storetest daje testom plikową bazę sqlite (bez cgo) z tabelami aplikacji.
package storetest

import (
	"path/filepath"
	"testing"

	"github.com/bartek5186/bwimport/internal/db"
)

// Open tworzy bazę w t.TempDir() i zakłada w niej tabele.
func Open(t testing.TB) *db.Handle {
	t.Helper()

	path := filepath.Join(t.TempDir(), "blackwoods.db")
	h, err := db.Open(db.DriverSQLitePure, path, false)
	if err != nil {
		t.Fatalf("storetest: open %s: %v", path, err)
	}
	if err := h.DB.AutoMigrate(db.Models()...); err != nil {
		t.Fatalf("storetest: automigrate: %v", err)
	}
	t.Cleanup(func() { _ = h.Close() })
	return h
}

// Count zwraca liczbę wierszy tabeli modelu.
func Count(t testing.TB, h *db.Handle, model any) int64 {
	t.Helper()

	var n int64
	if err := h.DB.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("storetest: count: %v", err)
	}
	return n
}
