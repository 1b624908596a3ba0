package tui

import (
	"math"

	"github.com/Rhymond/go-money"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// formatMoney renders amount in the currency named by code, e.g. €4.90.
func formatMoney(amount float64, code string) string {
	if code == "" {
		code = money.EUR
	}
	fraction := 2
	if c := money.GetCurrency(code); c != nil {
		fraction = c.Fraction
	}
	return money.New(int64(math.Round(amount*math.Pow10(fraction))), code).Display()
}

func (a *App) money(amount float64) string {
	return formatMoney(amount, a.cfg.UI.Currency)
}

func checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}
