package domain

// Valores monetários são inteiros em centavos.
const (
	OneCent = 1
	OneReal = 100 * OneCent
)
