package domain

type Category string

const (
	CategorySandwiches Category = "sandwiches"
	CategoryDrinks     Category = "drinks"
	CategorySides      Category = "sides"
)

// Product is a catalog entry. The catalog is fixed at build time and
// never mutated at runtime.
type Product struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	PriceCents         int64    `json:"price_cents"`
	OriginalPriceCents int64    `json:"original_price_cents,omitempty"`
	Category           Category `json:"category"`
	Image              string   `json:"image,omitempty"`
	Available          bool     `json:"available"`
	Customizable       bool     `json:"customizable,omitempty"`
	Badges             []string `json:"badges,omitempty"`
	Features           []string `json:"features,omitempty"`
	Rating             float64  `json:"rating,omitempty"`
	Reviews            int      `json:"reviews,omitempty"`
	Flavors            []string `json:"flavors,omitempty"`
}

// Additional is an extra that customizable products can carry. Cart
// items reference additionals by id only, never by value.
type Additional struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents"`
}

// DeliveryRange is a stored distance/price breakpoint. Fee computation
// from these is not implemented anywhere; they are informational only.
type DeliveryRange struct {
	MaxDistanceKm float64 `json:"max_distance_km"`
	PriceCents    int64   `json:"price_cents"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Restaurant holds the single restaurant's fixed presentation data.
type Restaurant struct {
	Name           string          `json:"name"`
	Subtitle       string          `json:"subtitle"`
	Phone          string          `json:"phone"`
	Address        string          `json:"address"`
	FullAddress    string          `json:"full_address"`
	Hours          string          `json:"hours"`
	DeliveryText   string          `json:"delivery_text"`
	WhatsAppNumber string          `json:"whatsapp_number"`
	Coordinates    Coordinates     `json:"coordinates"`
	DeliveryRanges []DeliveryRange `json:"delivery_ranges"`
}

var badgeLabels = map[string]string{
	"popular":     "Mais Pedido",
	"discount":    "-20%",
	"bestseller":  "Best Seller",
	"recommended": "Recomendado",
	"premium":     "Premium",
	"exclusive":   "Exclusivo",
}

// BadgeLabel maps a badge tag to its display text, falling back to the
// tag itself for unknown badges.
func BadgeLabel(badge string) string {
	if label, ok := badgeLabels[badge]; ok {
		return label
	}
	return badge
}
