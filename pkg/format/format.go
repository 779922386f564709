// Package format converte valores numéricos em textos exibidos no painel.
//
// ROI trafega sempre como razão (0.25 = 25%). O resumo usa FormatPercentage e o
// gráfico usa ROIPercent; as duas funções aplicam a mesma convenção.
package format

import (
	"fmt"
	"math"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printer        = message.NewPrinter(language.BrazilianPortuguese)
	currencySymbol = printer.Sprint(currency.Symbol(currency.BRL))
)

// FormatCurrency formata o valor em reais no padrão pt-BR (ex.: "R$ 1.234,56").
// NaN é tratado como zero.
func FormatCurrency(value float64) string {
	if math.IsNaN(value) {
		value = 0
	}

	if value < 0 {
		return "-" + currencySymbol + " " + printer.Sprintf("%.2f", -value)
	}

	return currencySymbol + " " + printer.Sprintf("%.2f", value)
}

// FormatPercentage formata uma razão como porcentagem com duas casas (0.25 -> "25.00%")
func FormatPercentage(ratio float64) string {
	return fmt.Sprintf("%.2f%%", ROIPercent(ratio))
}

// ROIPercent converte a razão de ROI para pontos percentuais
func ROIPercent(ratio float64) float64 {
	return ratio * 100
}
