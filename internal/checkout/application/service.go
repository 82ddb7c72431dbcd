package application

import (
	"context"
	"errors"
	"log/slog"
	"time"

	cart "github.com/costeladotiti/cardapio/internal/cart/domain"
	"github.com/costeladotiti/cardapio/internal/checkout/domain"
	menu "github.com/costeladotiti/cardapio/internal/menu/domain"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrMissingCustomer = errors.New("customer name and phone are required")
	ErrMissingAddress  = errors.New("delivery orders require an address")
	ErrInvalidMode     = errors.New("unknown delivery mode")
)

// Result is what the client needs to finish the hand-off: the rendered
// order text and the link to open.
type Result struct {
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsapp_url"`
}

// Service turns the current cart into a WhatsApp hand-off. The cart is
// cleared as soon as the link is built; no delivery confirmation is
// awaited.
type Service struct {
	log            *slog.Logger
	cart           Cart
	additionals    []menu.Additional
	restaurantName string
	whatsappNumber string
	link           HandoffLink
	now            func() time.Time
}

func NewService(log *slog.Logger, c Cart, additionals []menu.Additional, restaurantName, whatsappNumber string, link HandoffLink) *Service {
	return &Service{
		log:            log,
		cart:           c,
		additionals:    additionals,
		restaurantName: restaurantName,
		whatsappNumber: whatsappNumber,
		link:           link,
		now:            time.Now,
	}
}

func (s *Service) PlaceOrder(ctx context.Context, customer domain.CustomerOrderData, mode domain.DeliveryMode) (Result, error) {
	if mode != domain.DeliveryModeLocal && mode != domain.DeliveryModeDelivery {
		return Result{}, ErrInvalidMode
	}
	if customer.Name == "" || customer.Phone == "" {
		return Result{}, ErrMissingCustomer
	}
	if mode == domain.DeliveryModeDelivery && customer.Address == nil {
		return Result{}, ErrMissingAddress
	}

	items := s.cart.Items()
	if len(items) == 0 {
		return Result{}, ErrEmptyCart
	}

	message := domain.OrderMessage(
		items,
		cart.SubtotalCents(items),
		cart.ItemsCount(items),
		customer,
		mode,
		s.additionals,
		s.restaurantName,
		s.now(),
	)

	s.cart.Clear(ctx)
	s.log.Info("order handed off", "items", len(items), "mode", string(mode))

	return Result{
		Message:     message,
		WhatsAppURL: s.link.Link(s.whatsappNumber, message),
	}, nil
}
