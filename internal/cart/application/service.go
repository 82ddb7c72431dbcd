package application

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/costeladotiti/cardapio/internal/cart/domain"
	menu "github.com/costeladotiti/cardapio/internal/menu/domain"
	"github.com/google/uuid"
)

// Service owns the ordered cart line sequence. Every mutation is
// persisted through the Snapshots port once the initial Load has
// completed; persistence failures are logged and swallowed so cart
// operations never fail because of the collaborator.
type Service struct {
	log         *slog.Logger
	snapshots   Snapshots
	key         string
	additionals []menu.Additional

	mu      sync.Mutex
	items   []domain.CartItem
	loading bool
}

func NewService(log *slog.Logger, snapshots Snapshots, key string, additionals []menu.Additional) *Service {
	return &Service{
		log:         log,
		snapshots:   snapshots,
		key:         key,
		additionals: additionals,
		loading:     true,
	}
}

// Load restores the cart from the snapshot store. Missing, unreadable,
// or structurally incompatible snapshots leave the cart empty; Load
// never fails. Mutations made before Load returns are kept in memory
// but not persisted, so a slow restore cannot be overwritten by an
// empty write.
func (s *Service) Load(ctx context.Context) {
	raw, ok, err := s.snapshots.Get(ctx, s.key)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		s.log.Warn("cart snapshot read failed", "key", s.key, "err", err)
		return
	}
	if !ok {
		return
	}

	var items []domain.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.log.Warn("cart snapshot discarded", "key", s.key, "err", err)
		return
	}
	s.items = items
}

// Loading reports whether the initial restore is still pending.
func (s *Service) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// AddItem appends a new line with quantity 1 and a unit price frozen at
// add time. Identical adds never merge into an existing line; every call
// produces a fresh line with a fresh id.
func (s *Service) AddItem(ctx context.Context, p menu.Product, customization *domain.Customization, flavor string) string {
	var selected []string
	if customization != nil {
		selected = customization.AdditionalIDs
	}
	item := domain.CartItem{
		ID:             uuid.NewString(),
		ProductID:      p.ID,
		Name:           p.Name,
		Description:    p.Description,
		BasePriceCents: p.PriceCents,
		Image:          p.Image,
		Quantity:       1,
		Customization:  customization,
		Flavor:         flavor,
		UnitPriceCents: domain.UnitPriceCents(p.PriceCents, selected, s.additionals),
	}

	s.mu.Lock()
	s.items = append(s.items, item)
	s.persistLocked(ctx)
	s.mu.Unlock()

	return item.ID
}

// RemoveItem deletes the matching line. Unknown ids are a no-op.
func (s *Service) RemoveItem(ctx context.Context, itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(ctx, itemID)
}

// UpdateQuantity replaces the line's quantity. A quantity of zero or
// less removes the line, same as RemoveItem. Unknown ids are a no-op.
func (s *Service) UpdateQuantity(ctx context.Context, itemID string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(ctx, itemID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == itemID {
			s.items[i].Quantity = quantity
			s.persistLocked(ctx)
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (s *Service) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persistLocked(ctx)
}

// Items returns a copy of the lines in insertion order.
func (s *Service) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Service) SubtotalCents() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.SubtotalCents(s.items)
}

func (s *Service) ItemsCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.ItemsCount(s.items)
}

func (s *Service) removeLocked(ctx context.Context, itemID string) {
	for i := range s.items {
		if s.items[i].ID == itemID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persistLocked(ctx)
			return
		}
	}
}

func (s *Service) persistLocked(ctx context.Context) {
	if s.loading {
		return
	}
	raw, err := json.Marshal(s.items)
	if err != nil {
		s.log.Warn("cart snapshot marshal failed", "err", err)
		return
	}
	if err := s.snapshots.Set(ctx, s.key, string(raw)); err != nil {
		s.log.Warn("cart snapshot write failed", "key", s.key, "err", err)
	}
}
