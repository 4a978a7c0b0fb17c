// internal/db/models.go
package db

// Tabele należą do aplikacji księgowej; importer ich nie tworzy.
// Daty trzymamy jako tekst w formacie, którego oczekuje aplikacja.

// employees
type Employee struct {
	ID       uint    `gorm:"primaryKey"`
	Name     string  `gorm:"not null;uniqueIndex"`
	Position string  `gorm:"not null"`
	Salary   float64 `gorm:"not null"`
	HireDate string  `gorm:"not null"` // YYYY-MM-DD
	Phone    string
	Discord  string
	IDRp     string `gorm:"column:id_rp"`
	IsActive bool
}

func (Employee) TableName() string { return "employees" }

// suppliers
type Supplier struct {
	ID            uint   `gorm:"primaryKey"`
	Name          string `gorm:"not null;uniqueIndex"`
	ContactPerson string
	Phone         string
	Email         string
	IsActive      bool
}

func (Supplier) TableName() string { return "suppliers" }

// inventory
type InventoryItem struct {
	ID                uint    `gorm:"primaryKey"`
	ProductName       string  `gorm:"not null;uniqueIndex"`
	Category          string  `gorm:"not null"`
	Quantity          float64 `gorm:"not null"`
	Unit              string
	UnitPrice         float64
	LowStockThreshold float64
	Supplier          string // soft reference -> suppliers.name
}

func (InventoryItem) TableName() string { return "inventory" }

// purchase_prices
type PurchasePrice struct {
	ID            uint   `gorm:"primaryKey"`
	ProductName   string `gorm:"not null;index"`
	SupplierName  string
	UnitPrice     float64
	EffectiveDate string // YYYY-MM-DD
	IsCurrent     bool
}

func (PurchasePrice) TableName() string { return "purchase_prices" }

// sale_prices
type SalePrice struct {
	ID            uint   `gorm:"primaryKey"`
	ProductName   string `gorm:"not null;index"`
	UnitPrice     float64
	EffectiveDate string
	IsCurrent     bool
}

func (SalePrice) TableName() string { return "sale_prices" }

// transactions
type Transaction struct {
	ID          uint    `gorm:"primaryKey"`
	Type        string  `gorm:"not null;index"` // Vente / Depense
	Category    string  `gorm:"not null"`
	Amount      float64 `gorm:"not null"`
	Description string
	Reference   string `gorm:"index"`
	UserID      uint   `gorm:"not null"`
	PostedAt    string `gorm:"column:created_at"` // YYYY-MM-DD HH:MM:SS
}

func (Transaction) TableName() string { return "transactions" }

// orders
type Order struct {
	ID           uint   `gorm:"primaryKey"`
	OrderNumber  string `gorm:"not null;uniqueIndex"`
	Supplier     string `gorm:"not null"`
	OrderDate    string
	DeliveryDate *string
	Status       string
	TotalAmount  float64 `gorm:"not null"`
	Notes        string
	UserID       uint `gorm:"not null"`
}

func (Order) TableName() string { return "orders" }

// Models zwraca wszystkie tabele, do których pisze importer.
func Models() []any {
	return []any{
		&Employee{},
		&Supplier{},
		&InventoryItem{},
		&PurchasePrice{},
		&SalePrice{},
		&Transaction{},
		&Order{},
	}
}
