package watch

import "fmt"

// FormatDollar formats a USD amount with K/M suffixes for compact display.
func FormatDollar(val float64) string {
	switch {
	case val >= 1_000_000:
		return fmt.Sprintf("$%.2fM", val/1_000_000)
	case val >= 1_000:
		return fmt.Sprintf("$%.1fK", val/1_000)
	default:
		return fmt.Sprintf("$%.2f", val)
	}
}

// FormatPrice formats a token price, widening the precision as the price
// shrinks so micro-cap prices stay distinguishable.
func FormatPrice(val float64) string {
	switch {
	case val >= 1:
		return fmt.Sprintf("$%.4f", val)
	case val >= 0.01:
		return fmt.Sprintf("$%.6f", val)
	default:
		return fmt.Sprintf("$%.10f", val)
	}
}

// FormatChange formats a percentage change with an explicit sign on
// non-negative values.
func FormatChange(val float64) string {
	if val >= 0 {
		return fmt.Sprintf("+%.2f%%", val)
	}
	return fmt.Sprintf("%.2f%%", val)
}
