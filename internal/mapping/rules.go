package mapping

import "strings"

// Rules to stałe słowniki i etykiety używane przy mapowaniu wierszy.
// Wartości domyślne odpowiadają danym aplikacji BlackWoods; config.json może je nadpisać.
type Rules struct {
	Salaries        map[string]float64 `json:"salaries"`
	DefaultSalary   float64            `json:"default_salary"`
	DefaultPosition string             `json:"default_position"`

	ServiceKeywords []string `json:"service_keywords"`
	ServiceCategory string   `json:"service_category"`
	DefaultCategory string   `json:"default_category"`
	StockUnit       string   `json:"stock_unit"`
	LowStockLevel   float64  `json:"low_stock_level"`

	Sentinels  []string `json:"sentinels"`   // "Aucun"
	RosterSkip []string `json:"roster_skip"` // wiersz firmy w effectif.txt

	ActorUserID     uint   `json:"actor_user_id"`
	SaleType        string `json:"sale_type"`
	SaleCategory    string `json:"sale_category"`
	SalePrefix      string `json:"sale_prefix"`
	ExpenseType     string `json:"expense_type"`
	ExpenseCategory string `json:"expense_category"`
	ExpensePrefix   string `json:"expense_prefix"`

	OrderPrefix string `json:"order_prefix"`
	OrderStatus string `json:"order_status"`
}

func DefaultRules() Rules {
	return Rules{
		Salaries: map[string]float64{
			"PDG":        5000,
			"Co-PDG":     5000,
			"Manager":    3000,
			"Livreur":    1500,
			"Technicien": 2000,
		},
		DefaultSalary:   1200,
		DefaultPosition: "Employe",

		ServiceKeywords: []string{"livraison", "frais"},
		ServiceCategory: "Service",
		DefaultCategory: "Matiere premiere",
		StockUnit:       "unite",
		LowStockLevel:   50,

		Sentinels:  []string{"Aucun"},
		RosterSkip: []string{"Woods"},

		ActorUserID:     1,
		SaleType:        "Vente",
		SaleCategory:    "Vente Restaurant",
		SalePrefix:      "S",
		ExpenseType:     "Depense",
		ExpenseCategory: "Achats Fournisseurs",
		ExpensePrefix:   "D",

		OrderPrefix: "CMD",
		OrderStatus: "Livrée",
	}
}

// WithDefaults uzupełnia puste pola wartościami z DefaultRules.
// Pozwala trzymać w configu tylko to, co się zmienia.
func (r Rules) WithDefaults() Rules {
	d := DefaultRules()
	if len(r.Salaries) == 0 {
		r.Salaries = d.Salaries
	}
	if r.DefaultSalary == 0 {
		r.DefaultSalary = d.DefaultSalary
	}
	fillString(&r.DefaultPosition, d.DefaultPosition)
	if r.ServiceKeywords == nil {
		r.ServiceKeywords = d.ServiceKeywords
	}
	fillString(&r.ServiceCategory, d.ServiceCategory)
	fillString(&r.DefaultCategory, d.DefaultCategory)
	fillString(&r.StockUnit, d.StockUnit)
	if r.LowStockLevel == 0 {
		r.LowStockLevel = d.LowStockLevel
	}
	if r.Sentinels == nil {
		r.Sentinels = d.Sentinels
	}
	if r.RosterSkip == nil {
		r.RosterSkip = d.RosterSkip
	}
	if r.ActorUserID == 0 {
		r.ActorUserID = d.ActorUserID
	}
	fillString(&r.SaleType, d.SaleType)
	fillString(&r.SaleCategory, d.SaleCategory)
	fillString(&r.SalePrefix, d.SalePrefix)
	fillString(&r.ExpenseType, d.ExpenseType)
	fillString(&r.ExpenseCategory, d.ExpenseCategory)
	fillString(&r.ExpensePrefix, d.ExpensePrefix)
	fillString(&r.OrderPrefix, d.OrderPrefix)
	fillString(&r.OrderStatus, d.OrderStatus)
	return r
}

func fillString(dst *string, def string) {
	if strings.TrimSpace(*dst) == "" {
		*dst = def
	}
}

// Salary zwraca pensję dla stanowiska (bez rozróżniania wielkości liter).
func (r Rules) Salary(position string) float64 {
	p := strings.TrimSpace(position)
	if v, ok := r.Salaries[p]; ok {
		return v
	}
	for k, v := range r.Salaries {
		if strings.EqualFold(k, p) {
			return v
		}
	}
	return r.DefaultSalary
}

// Category klasyfikuje produkt: usługa, jeśli nazwa zawiera słowo kluczowe.
func (r Rules) Category(productName string) string {
	name := strings.ToLower(productName)
	for _, kw := range r.ServiceKeywords {
		if kw != "" && strings.Contains(name, strings.ToLower(kw)) {
			return r.ServiceCategory
		}
	}
	return r.DefaultCategory
}

// isKey mówi, czy pole identyfikujące wiersz jest niepuste i nie jest wartownikiem.
func (r Rules) isKey(v string, extra ...string) bool {
	v = strings.TrimSpace(v)
	if v == "" || r.isSentinel(v) {
		return false
	}
	for _, s := range extra {
		if v == s {
			return false
		}
	}
	return true
}

func (r Rules) isSentinel(v string) bool {
	v = strings.TrimSpace(v)
	for _, s := range r.Sentinels {
		if v == s {
			return true
		}
	}
	return false
}
