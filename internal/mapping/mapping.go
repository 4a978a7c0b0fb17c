// Package mapping zamienia rekordy TSV na wiersze tabel aplikacji.
// Każda funkcja jest czysta: rekord -> (wiersz, czy wiersz nadaje się do importu).
package mapping

import (
	"fmt"
	"strings"
	"time"

	"github.com/bartek5186/bwimport/internal/db"
	"github.com/bartek5186/bwimport/internal/parse"
	"github.com/bartek5186/bwimport/internal/tsv"
	"github.com/shopspring/decimal"
)

// minimalne liczby kolumn (po przycięciu linii)
const (
	rosterCols   = 7
	supplierCols = 2
	purchaseCols = 3
	stockCols    = 5
	saleCols     = 2
	ledgerCols   = 7
)

const (
	timestampLayout = "2006-01-02 15:04:05"
	refDateLayout   = "20060102"
	ledgerHour      = 12
)

type Mapper struct {
	rules Rules
	now   time.Time
}

// New przyjmuje chwilę importu: z niej biorą się daty zatrudnienia,
// daty obowiązywania cen i znacznik czasu dla nieczytelnych dat.
func New(rules Rules, now time.Time) *Mapper {
	return &Mapper{rules: rules, now: now}
}

func (m *Mapper) Rules() Rules { return m.rules }

func (m *Mapper) today() string { return m.now.Format(parse.ISODate) }

// Employee: effectif.txt
// kolumny: 0 nazwisko, 1 imię, 2 id_rp, 3 telefon, 5 discord, 6 stanowisko
func (m *Mapper) Employee(r tsv.Record) (db.Employee, bool) {
	if r.Len() < rosterCols || !m.rules.isKey(r.Field(0), m.rules.RosterSkip...) {
		return db.Employee{}, false
	}

	position := r.Trimmed(6)
	if position == "" {
		position = m.rules.DefaultPosition
	}
	return db.Employee{
		Name:     strings.TrimSpace(r.Trimmed(1) + " " + r.Trimmed(0)),
		Position: position,
		Salary:   m.rules.Salary(position),
		HireDate: m.today(),
		Phone:    r.Trimmed(3),
		Discord:  r.Trimmed(5),
		IDRp:     r.Trimmed(2),
		IsActive: true,
	}, true
}

// SupplierNames zbiera unikalne nazwy dostawców z prix_achat.txt (kolumna 1)
// w kolejności pierwszego wystąpienia.
func (m *Mapper) SupplierNames(recs []tsv.Record) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range recs {
		if r.Len() < supplierCols || !m.rules.isKey(r.Field(1)) {
			continue
		}
		name := r.Trimmed(1)
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

func (m *Mapper) Supplier(name string) db.Supplier {
	return db.Supplier{Name: name, IsActive: true}
}

// InventoryItem: stock.txt
// kolumny: 0 produkt, 1 dostawca, 2 cena jednostkowa, 4 ilość
func (m *Mapper) InventoryItem(r tsv.Record) (db.InventoryItem, bool) {
	if r.Len() < stockCols || !m.rules.isKey(r.Field(0)) {
		return db.InventoryItem{}, false
	}

	name := r.Trimmed(0)
	return db.InventoryItem{
		ProductName:       name,
		Category:          m.rules.Category(name),
		Quantity:          parse.Float(r.Field(4)),
		Unit:              m.rules.StockUnit,
		UnitPrice:         nonNegative(parse.Amount(r.Field(2))),
		LowStockThreshold: m.rules.LowStockLevel,
		Supplier:          r.Trimmed(1),
	}, true
}

// PurchasePrice: prix_achat.txt
// kolumny: 0 produkt, 1 dostawca, 2 cena
func (m *Mapper) PurchasePrice(r tsv.Record) (db.PurchasePrice, bool) {
	if r.Len() < purchaseCols || !m.rules.isKey(r.Field(0)) {
		return db.PurchasePrice{}, false
	}
	return db.PurchasePrice{
		ProductName:   r.Trimmed(0),
		SupplierName:  r.Trimmed(1),
		UnitPrice:     nonNegative(parse.Amount(r.Field(2))),
		EffectiveDate: m.today(),
		IsCurrent:     true,
	}, true
}

// SalePrice: prix_vente.txt
// kolumny: 0 produkt, 1 cena
func (m *Mapper) SalePrice(r tsv.Record) (db.SalePrice, bool) {
	if r.Len() < saleCols || !m.rules.isKey(r.Field(0)) {
		return db.SalePrice{}, false
	}
	price := parse.Amount(r.Field(1))
	if price <= 0 {
		return db.SalePrice{}, false
	}
	return db.SalePrice{
		ProductName:   r.Trimmed(0),
		UnitPrice:     price,
		EffectiveDate: m.today(),
		IsCurrent:     true,
	}, true
}

// Sale: recettes.txt
// kolumny: 0 data, 2 produkt, 4 ilość, 6 kwota
// Wymaga kwoty > 0 i całkowitej ilości > 0.
func (m *Mapper) Sale(r tsv.Record) (db.Transaction, bool) {
	if !m.ledgerRow(r) {
		return db.Transaction{}, false
	}
	qty := parse.Int(r.Field(4))
	amount := parse.Amount(r.Field(6))
	if amount <= 0 || qty <= 0 {
		return db.Transaction{}, false
	}

	postedAt, refDate := m.ledgerTime(r.Field(0))
	return db.Transaction{
		Type:        m.rules.SaleType,
		Category:    m.rules.SaleCategory,
		Amount:      amount,
		Description: fmt.Sprintf("%dx %s", qty, r.Trimmed(2)),
		Reference:   Reference(m.rules.SalePrefix, refDate, r.Index),
		UserID:      m.rules.ActorUserID,
		PostedAt:    postedAt,
	}, true
}

// Expense: depenses.txt
// kolumny: 0 data, 2 produkt, 3 dostawca, 4 ilość, 6 kwota
// Ilość nie decyduje o imporcie; nieczytelna = 0.
func (m *Mapper) Expense(r tsv.Record) (db.Transaction, bool) {
	if !m.ledgerRow(r) {
		return db.Transaction{}, false
	}
	amount := parse.Amount(r.Field(6))
	if amount <= 0 {
		return db.Transaction{}, false
	}
	qty := parse.LooseInt(r.Field(4))

	postedAt, refDate := m.ledgerTime(r.Field(0))
	return db.Transaction{
		Type:        m.rules.ExpenseType,
		Category:    m.rules.ExpenseCategory,
		Amount:      amount,
		Description: fmt.Sprintf("%dx %s - %s", qty, r.Trimmed(2), r.Trimmed(3)),
		Reference:   Reference(m.rules.ExpensePrefix, refDate, r.Index),
		UserID:      m.rules.ActorUserID,
		PostedAt:    postedAt,
	}, true
}

// Orders grupuje wydatki po (data, dostawca) w zamówienia.
// Numer zamówienia bierze się z kolejności grupy, więc ponowny import daje te same numery.
func (m *Mapper) Orders(recs []tsv.Record) []db.Order {
	type group struct {
		first tsv.Record
		total decimal.Decimal
		items int
	}

	var keys []string
	groups := make(map[string]*group)
	for _, r := range recs {
		if !m.ledgerRow(r) {
			continue
		}
		key := r.Trimmed(0) + "_" + r.Trimmed(3)
		g, ok := groups[key]
		if !ok {
			g = &group{first: r}
			groups[key] = g
			keys = append(keys, key)
		}
		if d, ok := parse.AmountDecimal(r.Field(6)); ok && d.IsPositive() {
			g.total = g.total.Add(d)
		}
		g.items++
	}

	out := make([]db.Order, 0, len(keys))
	for i, key := range keys {
		g := groups[key]
		day, ok := parse.Day(g.first.Field(0))
		if !ok {
			day = m.now
		}
		var delivery *string
		if d, ok := parse.Date(g.first.Field(7)); ok {
			delivery = &d
		}
		out = append(out, db.Order{
			OrderNumber:  Reference(m.rules.OrderPrefix, day.Format(refDateLayout), i+1),
			Supplier:     g.first.Trimmed(3),
			OrderDate:    day.Format(parse.ISODate),
			DeliveryDate: delivery,
			Status:       m.rules.OrderStatus,
			TotalAmount:  g.total.InexactFloat64(),
			Notes:        fmt.Sprintf("Import automatique - %d articles", g.items),
			UserID:       m.rules.ActorUserID,
		})
	}
	return out
}

// Reference buduje "<prefiks>-<RRRRMMDD>-<NNNN>".
func Reference(prefix, yyyymmdd string, n int) string {
	return fmt.Sprintf("%s-%s-%04d", prefix, yyyymmdd, n)
}

// wspólny filtr recettes/depenses: data niepusta (nawet nieczytelna), produkt różny od "Aucun".
// Pusty produkt przechodzi, tak jak w starym importerze.
func (m *Mapper) ledgerRow(r tsv.Record) bool {
	return r.Len() >= ledgerCols &&
		r.Trimmed(0) != "" &&
		!m.rules.isSentinel(r.Field(2))
}

// ledgerTime zwraca znacznik czasu transakcji i datę do numeru referencyjnego.
// Data ze źródła dostaje stałą godzinę 12:00; nieczytelna -> chwila importu.
func (m *Mapper) ledgerTime(raw string) (string, string) {
	day, ok := parse.Day(raw)
	if !ok {
		return m.now.Format(timestampLayout), m.now.Format(refDateLayout)
	}
	noon := time.Date(day.Year(), day.Month(), day.Day(), ledgerHour, 0, 0, 0, time.UTC)
	return noon.Format(timestampLayout), noon.Format(refDateLayout)
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
