package common

import (
	"fmt"
	"strings"

	"poker-stack-go/internal/ledger"

	"github.com/shopspring/decimal"
)

// DefaultWidth is the width of report separators
const DefaultWidth = 80

// PrintSeparator prints a separator line with the specified character and width
func PrintSeparator(char string, width int) {
	fmt.Println(strings.Repeat(char, width))
}

// PrintHeader prints a formatted header with title and separators
func PrintHeader(title string, width int) {
	fmt.Println("\n" + strings.Repeat("=", width))
	fmt.Println(title)
	PrintSeparator("=", width)
}

// PrintFooter prints a formatted footer with message and separators
func PrintFooter(message string, width int) {
	fmt.Println("\n" + strings.Repeat("=", width))
	fmt.Println(message)
	fmt.Println(strings.Repeat("=", width) + "\n")
}

// PrintField prints one aligned "label: value" line of a record block
func PrintField(label string, value any) {
	fmt.Printf("%-9s %v\n", label+":", value)
}

// PrintBoxSeparator prints a box-drawing separator line (for sub-sections)
func PrintBoxSeparator(width int) {
	fmt.Println("├" + strings.Repeat("─", width))
}

// PrintBoxRow prints a right-aligned amount under a box header
func PrintBoxRow(label string, amount decimal.Decimal, isLast bool) {
	fmt.Printf("%s %-15s: %20s\n", BoxPrefix(isLast), label, FormatAmount(amount))
}

// BoxPrefix returns the appropriate box-drawing prefix for list items
func BoxPrefix(isLast bool) string {
	if isLast {
		return "└  "
	}
	return "│  "
}

// FormatAmount renders an amount at display precision
func FormatAmount(amount decimal.Decimal) string {
	return amount.Round(ledger.DisplayPlaces).StringFixed(ledger.DisplayPlaces)
}
