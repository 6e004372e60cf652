package render

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer formats numbers the Italian way: "45,4", "1.000".
var printer = message.NewPrinter(language.Italian)

// oneDecimal formats v with exactly one decimal digit.
func oneDecimal(v float64) string {
	return printer.Sprintf("%.1f", v)
}

// billions formats an impact in billions of dollars, dropping the
// fraction when there is none.
func billions(v float64) string {
	if v == math.Trunc(v) {
		return "$" + printer.Sprintf("%.0f", v) + " miliardi"
	}
	return "$" + printer.Sprintf("%.1f", v) + " miliardi"
}

// year formats a calendar year without digit grouping.
func year(y int) string { return strconv.Itoa(y) }

func percent(p int) string { return strconv.Itoa(p) + "%" }
