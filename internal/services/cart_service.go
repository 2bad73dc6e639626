package services

import (
	"database/sql"
	"errors"
	"strings"

	"tshirtshop/internal/domain"
	"tshirtshop/internal/repos"
	"tshirtshop/internal/validate"

	"github.com/google/uuid"
)

type CartService struct {
	Carts *repos.CartRepo
	Prods *repos.ProductRepo
}

func NewCartService(carts *repos.CartRepo, prods *repos.ProductRepo) *CartService {
	return &CartService{Carts: carts, Prods: prods}
}

// GenerateCartID produces a fresh opaque cart identifier with no database
// round-trip. Dashes are stripped so the value fits a 32-char column.
func (s *CartService) GenerateCartID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func (s *CartService) AddItem(cartID string, productID int, attributes string, quantity int) (domain.CartItem, error) {
	if _, err := s.Prods.Get(productID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.CartItem{}, ErrNotFound
		}
		return domain.CartItem{}, err
	}
	return s.Carts.AddItem(cartID, productID, attributes, validate.Qty(quantity))
}

func (s *CartService) GetCart(cartID string) ([]domain.CartItem, error) {
	items, err := s.Carts.Items(cartID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrCartNotFound
	}
	return items, nil
}

// UpdateItem mutates a single line item's quantity and returns its new full
// record.
func (s *CartService) UpdateItem(itemID, quantity int) (domain.CartItem, error) {
	if _, err := s.Carts.Item(itemID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.CartItem{}, ErrNotFound
		}
		return domain.CartItem{}, err
	}
	if err := s.Carts.UpdateQuantity(itemID, validate.Qty(quantity)); err != nil {
		return domain.CartItem{}, err
	}
	return s.Carts.Item(itemID)
}

func (s *CartService) EmptyCart(cartID string) error { return s.Carts.Empty(cartID) }

func (s *CartService) RemoveItem(itemID int) error { return s.Carts.RemoveItem(itemID) }
