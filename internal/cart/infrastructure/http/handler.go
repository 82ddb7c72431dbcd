package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	cartapp "github.com/costeladotiti/cardapio/internal/cart/application"
	"github.com/costeladotiti/cardapio/internal/cart/domain"
	menuapp "github.com/costeladotiti/cardapio/internal/menu/application"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

type Handler struct {
	log     *slog.Logger
	cart    *cartapp.Service
	catalog *menuapp.Service
	tracer  trace.Tracer
}

func NewHandler(log *slog.Logger, cart *cartapp.Service, catalog *menuapp.Service) *Handler {
	return &Handler{
		log:     log,
		cart:    cart,
		catalog: catalog,
		tracer:  otel.Tracer("cart-http"),
	}
}

type cartView struct {
	Items         []domain.CartItem `json:"items"`
	SubtotalCents int64             `json:"subtotal_cents"`
	ItemsCount    int               `json:"items_count"`
	Loading       bool              `json:"loading"`
}

type addItemReq struct {
	ProductID     string   `json:"product_id"`
	AdditionalIDs []string `json:"additional_ids,omitempty"`
	Notes         string   `json:"notes,omitempty"`
	Flavor        string   `json:"flavor,omitempty"`
}

type updateQuantityReq struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.getCart)
	r.Delete("/", h.clearCart)
	r.Post("/items", h.addItem)
	r.Patch("/items/{id}", h.updateQuantity)
	r.Delete("/items/{id}", h.removeItem)

	return r
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	_, span := h.tracer.Start(r.Context(), "GetCart")
	defer span.End()

	view := cartView{
		Items:         h.cart.Items(),
		SubtotalCents: h.cart.SubtotalCents(),
		ItemsCount:    h.cart.ItemsCount(),
		Loading:       h.cart.Loading(),
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "AddItem")
	defer span.End()

	var req addItemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	p, err := h.catalog.ProductByID(req.ProductID)
	if errors.Is(err, menuapp.ErrProductNotFound) {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}
	if !p.Available {
		http.Error(w, "product unavailable", http.StatusConflict)
		return
	}

	var customization *domain.Customization
	if len(req.AdditionalIDs) > 0 || req.Notes != "" {
		customization = &domain.Customization{
			AdditionalIDs: req.AdditionalIDs,
			Notes:         req.Notes,
		}
	}

	itemID := h.cart.AddItem(ctx, p, customization, req.Flavor)
	writeJSON(w, http.StatusCreated, map[string]string{"item_id": itemID})
}

func (h *Handler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "UpdateQuantity")
	defer span.End()

	var req updateQuantityReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	h.cart.UpdateQuantity(ctx, chi.URLParam(r, "id"), req.Quantity)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RemoveItem")
	defer span.End()

	h.cart.RemoveItem(ctx, chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ClearCart")
	defer span.End()

	h.cart.Clear(ctx)
	w.WriteHeader(http.StatusNoContent)
}
