package domain

import (
	menu "github.com/costeladotiti/cardapio/internal/menu/domain"
)

// Customization is the set of selected additional ids plus an optional
// free-text note. Selection order is kept for display; pricing does not
// depend on it.
type Customization struct {
	AdditionalIDs []string `json:"additional_ids"`
	Notes         string   `json:"notes,omitempty"`
}

// CartItem is one line in the cart. Product data is snapshotted at add
// time so later catalog changes never reprice or rename existing lines.
// UnitPriceCents is computed once by UnitPriceCents() on creation and is
// never recomputed afterward.
type CartItem struct {
	ID             string         `json:"id"`
	ProductID      string         `json:"product_id"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	BasePriceCents int64          `json:"base_price_cents"`
	Image          string         `json:"image,omitempty"`
	Quantity       int            `json:"quantity"`
	Customization  *Customization `json:"customization,omitempty"`
	Flavor         string         `json:"flavor,omitempty"`
	UnitPriceCents int64          `json:"unit_price_cents"`
}

// LineTotalCents is the item's contribution to the subtotal.
func (i CartItem) LineTotalCents() int64 {
	return i.UnitPriceCents * int64(i.Quantity)
}

// UnitPriceCents sums the base price with every catalog additional whose
// id was selected. Unknown ids are skipped: stored selections may
// reference additionals that no longer exist in the catalog.
func UnitPriceCents(baseCents int64, selected []string, additionals []menu.Additional) int64 {
	total := baseCents
	for _, id := range selected {
		for _, a := range additionals {
			if a.ID == id {
				total += a.PriceCents
				break
			}
		}
	}
	return total
}

// SubtotalCents sums line totals over the given items.
func SubtotalCents(items []CartItem) int64 {
	var total int64
	for _, i := range items {
		total += i.LineTotalCents()
	}
	return total
}

// ItemsCount sums quantities over the given items.
func ItemsCount(items []CartItem) int {
	var n int
	for _, i := range items {
		n += i.Quantity
	}
	return n
}
