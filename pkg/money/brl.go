// Package money renders integer centavo amounts in the fixed BRL format
// used everywhere a price is shown.
package money

import "fmt"

// FormatBRL renders cents as "R$ 12,34". Every price in the API and in
// generated order messages goes through this single formatter so output
// stays byte-identical for identical inputs.
func FormatBRL(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%sR$ %d,%02d", sign, cents/100, cents%100)
}
