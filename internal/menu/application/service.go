package application

import (
	"errors"

	"github.com/costeladotiti/cardapio/internal/menu/domain"
)

var ErrProductNotFound = errors.New("product not found")

// Service answers read-only catalog queries over the seeded menu.
type Service struct {
	products    []domain.Product
	additionals []domain.Additional
	restaurant  domain.Restaurant
}

func NewService() *Service {
	return &Service{
		products:    products,
		additionals: additionals,
		restaurant:  restaurant,
	}
}

func (s *Service) Products() []domain.Product {
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Service) ProductByID(id string) (domain.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, ErrProductNotFound
}

func (s *Service) ProductsByCategory(category domain.Category) []domain.Product {
	var out []domain.Product
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

func (s *Service) Additionals() []domain.Additional {
	out := make([]domain.Additional, len(s.additionals))
	copy(out, s.additionals)
	return out
}

func (s *Service) Restaurant() domain.Restaurant {
	return s.restaurant
}
