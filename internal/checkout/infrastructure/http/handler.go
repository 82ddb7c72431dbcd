package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/costeladotiti/cardapio/internal/checkout/application"
	"github.com/costeladotiti/cardapio/internal/checkout/domain"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

type Handler struct {
	log     *slog.Logger
	service *application.Service
	tracer  trace.Tracer
}

func NewHandler(log *slog.Logger, service *application.Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
		tracer:  otel.Tracer("checkout-http"),
	}
}

type placeOrderReq struct {
	DeliveryMode string                   `json:"delivery_mode"`
	Customer     domain.CustomerOrderData `json:"customer"`
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Post("/", h.placeOrder)

	return r
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "PlaceOrder")
	defer span.End()

	var req placeOrderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	res, err := h.service.PlaceOrder(ctx, req.Customer, domain.DeliveryMode(req.DeliveryMode))
	switch {
	case errors.Is(err, application.ErrEmptyCart):
		http.Error(w, err.Error(), http.StatusConflict)
		return
	case err != nil:
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(res)
}
