package domain

// SalesReport é o fechamento de um dia. Não é persistido.
type SalesReport struct {
	Date        string         `json:"date"`
	TotalCash   int64          `json:"totalCash"`
	TotalPix    int64          `json:"totalPix"`
	TotalDebit  int64          `json:"totalDebit"`
	Total       int64          `json:"total"`
	TotalCost   int64          `json:"totalCost"`
	Profit      int64          `json:"profit"`
	Frequencies map[string]int `json:"frequencies"`
}
