package utils

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var brlPrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL formata um valor em centavos como "R$ 1.234,56"
func FormatBRL(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
	}

	// decimal evita o overflow de -math.MinInt64
	amount := decimal.New(cents, -2).Abs()
	reais := amount.Truncate(0)
	centavos := amount.Sub(reais).Shift(2)

	return brlPrinter.Sprintf("%sR$ %d,%02d", sign, reais.IntPart(), centavos.IntPart())
}
