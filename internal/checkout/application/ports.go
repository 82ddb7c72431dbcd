package application

import (
	"context"

	cart "github.com/costeladotiti/cardapio/internal/cart/domain"
)

// Cart is the slice of the cart service checkout needs: one snapshot of
// the lines, and a clear after the hand-off. Aggregates are derived from
// the snapshot so the message always matches the lines it lists.
type Cart interface {
	Items() []cart.CartItem
	Clear(ctx context.Context)
}

// HandoffLink builds the outbound messaging deep link for a rendered
// order text.
type HandoffLink interface {
	Link(number, message string) string
}
