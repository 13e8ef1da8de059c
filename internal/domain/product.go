package domain

// Product representa um item do catálogo. O nome é a chave única.
type Product struct {
	Name           string `json:"name"`
	Price          int64  `json:"price"`
	ProductionCost int64  `json:"productionCost"`
}

// CreateProductRequest é o payload de cadastro de produto
type CreateProductRequest struct {
	Name           string `json:"name"`
	Price          int64  `json:"price"`
	ProductionCost int64  `json:"productionCost"`
}
