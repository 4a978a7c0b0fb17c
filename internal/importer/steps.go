package importer

import (
	"github.com/bartek5186/bwimport/internal/tsv"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// nazwy plików w katalogu z przykładami
const (
	FileRoster         = "effectif.txt"
	FilePurchasePrices = "prix_achat.txt"
	FileStock          = "stock.txt"
	FileSalePrices     = "prix_vente.txt"
	FileSales          = "recettes.txt"
	FileExpenses       = "depenses.txt"
)

const batchSize = 500

// step to jedno źródło -> jedna tabela. Zwraca liczbę faktycznie wstawionych wierszy.
type step struct {
	Name  string
	File  string
	Table string
	OptIn bool // tylko gdy Options.Orders
	run   func(i *Importer, tx *gorm.DB, recs []tsv.Record) (int, error)
}

// Kolejność odpowiada zależnościom tabel (miękkim, tylko po nazwie).
var steps = []step{
	{Name: "employees", File: FileRoster, Table: "employees", run: (*Importer).importEmployees},
	{Name: "suppliers", File: FilePurchasePrices, Table: "suppliers", run: (*Importer).importSuppliers},
	{Name: "inventory", File: FileStock, Table: "inventory", run: (*Importer).importInventory},
	{Name: "purchase_prices", File: FilePurchasePrices, Table: "purchase_prices", run: (*Importer).importPurchasePrices},
	{Name: "sale_prices", File: FileSalePrices, Table: "sale_prices", run: (*Importer).importSalePrices},
	{Name: "orders", File: FileExpenses, Table: "orders", OptIn: true, run: (*Importer).importOrders},
	{Name: "sales", File: FileSales, Table: "transactions", run: (*Importer).importSales},
	{Name: "expenses", File: FileExpenses, Table: "transactions", run: (*Importer).importExpenses},
}

func (i *Importer) importEmployees(tx *gorm.DB, recs []tsv.Record) (int, error) {
	n := 0
	for _, r := range recs {
		e, ok := i.mapper.Employee(r)
		if !ok {
			continue
		}
		ins, err := insertOrSkip(tx, &e)
		if err != nil {
			return n, err
		}
		if ins {
			n++
		}
	}
	return n, nil
}

// dostawcy są najpierw deduplikowani po nazwie, dopiero potem wstawiani
func (i *Importer) importSuppliers(tx *gorm.DB, recs []tsv.Record) (int, error) {
	n := 0
	for _, name := range i.mapper.SupplierNames(recs) {
		s := i.mapper.Supplier(name)
		ins, err := insertOrSkip(tx, &s)
		if err != nil {
			return n, err
		}
		if ins {
			n++
		}
	}
	return n, nil
}

func (i *Importer) importInventory(tx *gorm.DB, recs []tsv.Record) (int, error) {
	n := 0
	for _, r := range recs {
		it, ok := i.mapper.InventoryItem(r)
		if !ok {
			continue
		}
		ins, err := insertOrSkip(tx, &it)
		if err != nil {
			return n, err
		}
		if ins {
			n++
		}
	}
	return n, nil
}

func (i *Importer) importOrders(tx *gorm.DB, recs []tsv.Record) (int, error) {
	n := 0
	for _, o := range i.mapper.Orders(recs) {
		ins, err := insertOrSkip(tx, &o)
		if err != nil {
			return n, err
		}
		if ins {
			n++
		}
	}
	return n, nil
}

// Ceny i transakcje nie mają klucza unikalnego: każde uruchomienie dopisuje wiersze.
func (i *Importer) importPurchasePrices(tx *gorm.DB, recs []tsv.Record) (int, error) {
	return insertAll(tx, collect(recs, i.mapper.PurchasePrice))
}

func (i *Importer) importSalePrices(tx *gorm.DB, recs []tsv.Record) (int, error) {
	return insertAll(tx, collect(recs, i.mapper.SalePrice))
}

func (i *Importer) importSales(tx *gorm.DB, recs []tsv.Record) (int, error) {
	return insertAll(tx, collect(recs, i.mapper.Sale))
}

func (i *Importer) importExpenses(tx *gorm.DB, recs []tsv.Record) (int, error) {
	return insertAll(tx, collect(recs, i.mapper.Expense))
}

func collect[T any](recs []tsv.Record, m func(tsv.Record) (T, bool)) []T {
	out := make([]T, 0, len(recs))
	for _, r := range recs {
		if row, ok := m(r); ok {
			out = append(out, row)
		}
	}
	return out
}

// insertOrSkip: konflikt unikalności to nie błąd, tylko brak wstawienia.
func insertOrSkip(tx *gorm.DB, row any) (bool, error) {
	res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(row)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func insertAll[T any](tx *gorm.DB, rows []T) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	res := tx.CreateInBatches(rows, batchSize)
	if res.Error != nil {
		return 0, res.Error
	}
	return int(res.RowsAffected), nil
}
