package domain

import (
	"fmt"
	"strings"
	"time"

	cart "github.com/costeladotiti/cardapio/internal/cart/domain"
	menu "github.com/costeladotiti/cardapio/internal/menu/domain"
	"github.com/costeladotiti/cardapio/pkg/money"
)

type DeliveryMode string

const (
	DeliveryModeLocal    DeliveryMode = "local"
	DeliveryModeDelivery DeliveryMode = "delivery"
)

type Address struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	CEP          string `json:"cep"`
	Complement   string `json:"complement,omitempty"`
}

// CustomerOrderData is collected at checkout and never persisted.
// Address is present only when the delivery mode is delivery.
type CustomerOrderData struct {
	Name    string   `json:"name"`
	Phone   string   `json:"phone"`
	Notes   string   `json:"notes,omitempty"`
	Address *Address `json:"address,omitempty"`
}

const timestampLayout = "02/01/2006, 15:04:05"

// OrderMessage renders the order summary handed off over WhatsApp.
// Output is byte-identical for identical inputs; the caller supplies the
// clock, which is the only non-deterministic line. Selected additional
// ids without a catalog match are dropped from the listing.
func OrderMessage(
	items []cart.CartItem,
	subtotalCents int64,
	itemsCount int,
	customer CustomerOrderData,
	mode DeliveryMode,
	additionals []menu.Additional,
	restaurantName string,
	now time.Time,
) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🍖 *NOVO PEDIDO - %s*\n\n", restaurantName)

	fmt.Fprintf(&b, "👤 *Cliente:* %s\n", customer.Name)
	fmt.Fprintf(&b, "📞 *Telefone:* %s\n", customer.Phone)
	if mode == DeliveryModeLocal {
		b.WriteString("📋 *Tipo:* Retirar no local\n\n")
	} else {
		b.WriteString("📋 *Tipo:* Delivery\n\n")
	}

	if mode == DeliveryModeDelivery && customer.Address != nil {
		a := customer.Address
		b.WriteString("📍 *Endereço:*\n")
		fmt.Fprintf(&b, "%s, %s", a.Street, a.Number)
		if a.Complement != "" {
			fmt.Fprintf(&b, " - %s", a.Complement)
		}
		fmt.Fprintf(&b, "\n%s - %s/%s", a.Neighborhood, a.City, a.State)
		fmt.Fprintf(&b, "\nCEP: %s\n\n", a.CEP)
	}

	fmt.Fprintf(&b, "🛒 *Itens (%d):*\n", itemsCount)
	for i, item := range items {
		fmt.Fprintf(&b, "%d. *%s* (%dx)\n", i+1, item.Name, item.Quantity)

		if item.Flavor != "" {
			fmt.Fprintf(&b, "   🥤 Sabor: %s\n", item.Flavor)
		}

		if item.Customization != nil && len(item.Customization.AdditionalIDs) > 0 {
			names := resolveAdditionalNames(item.Customization.AdditionalIDs, additionals)
			if len(names) > 0 {
				fmt.Fprintf(&b, "   + %s\n", strings.Join(names, ", "))
			}
		}

		if item.Customization != nil && item.Customization.Notes != "" {
			fmt.Fprintf(&b, "   💬 \"%s\"\n", item.Customization.Notes)
		}

		fmt.Fprintf(&b, "   💰 %s\n\n", money.FormatBRL(item.LineTotalCents()))
	}

	fmt.Fprintf(&b, "💵 *TOTAL: %s*\n", money.FormatBRL(subtotalCents))

	if mode == DeliveryModeDelivery {
		b.WriteString("🚗 *Taxa de entrega:* A combinar\n")
	}

	if customer.Notes != "" {
		fmt.Fprintf(&b, "\n📝 *Observações:*\n%s\n", customer.Notes)
	}

	fmt.Fprintf(&b, "\n🕒 *Pedido realizado em:* %s", now.Format(timestampLayout))

	return b.String()
}

func resolveAdditionalNames(ids []string, additionals []menu.Additional) []string {
	var names []string
	for _, id := range ids {
		for _, a := range additionals {
			if a.ID == id {
				names = append(names, a.Name)
				break
			}
		}
	}
	return names
}
