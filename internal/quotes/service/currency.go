package service

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var audPrinter = message.NewPrinter(language.MustParse("en-AU"))

// FormatCurrency renders a whole-dollar amount as "$1,234".
func FormatCurrency(amount int) string {
	if amount < 0 {
		return "-$" + audPrinter.Sprintf("%d", -amount)
	}
	return "$" + audPrinter.Sprintf("%d", amount)
}

// FormatPrice renders a unit price rounded half up to whole dollars.
func FormatPrice(price float64) string {
	if price < 0 {
		return "-" + FormatCurrency(roundHalfUp(-price))
	}
	return FormatCurrency(roundHalfUp(price))
}
