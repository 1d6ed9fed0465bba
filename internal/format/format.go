// Package format holds the display helpers behind the formatted fields of
// the API's product, cart, summary, and order views.
package format

import (
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Price renders a price as US dollars, e.g. 1299.99 -> "$1,299.99".
func Price(v float64) string {
	return printer.Sprintf("$%v", number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// Date renders a timestamp the way the storefront displays it,
// e.g. "November 10, 2023".
func Date(t time.Time) string {
	return t.Format("January 2, 2006")
}

// DiscountPercent returns the rounded percentage saved when paying the
// discount price instead of the base price.
func DiscountPercent(price, discountPrice float64) int {
	return int(math.Round((price - discountPrice) / price * 100))
}

// Truncate shortens text to at most length runes, appending an ellipsis
// when it cuts anything off.
func Truncate(text string, length int) string {
	runes := []rune(text)
	if len(runes) <= length {
		return text
	}
	return string(runes[:length]) + "..."
}
