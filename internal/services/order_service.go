package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"tshirtshop/internal/domain"
	"tshirtshop/internal/mail"
	"tshirtshop/internal/payment"
	"tshirtshop/internal/repos"
	"tshirtshop/internal/token"

	"github.com/shopspring/decimal"
)

// OrderService drives the checkout workflow: cart -> order -> payment ->
// confirmation email.
type OrderService struct {
	Orders     *repos.OrderRepo
	Tokens     *token.Codec
	Pay        payment.Charger
	Mail       mail.Mailer
	ConfirmURL string
}

func NewOrderService(orders *repos.OrderRepo, tokens *token.Codec, pay payment.Charger, mailer mail.Mailer, confirmURL string) *OrderService {
	return &OrderService{Orders: orders, Tokens: tokens, Pay: pay, Mail: mailer, ConfirmURL: confirmURL}
}

// Create converts the cart into an order. Atomicity is the repo
// transaction's job; either the whole order lands or nothing does. The cart
// itself stays untouched.
func (s *OrderService) Create(cartID string, customerID, shippingID, taxID int) (int, error) {
	id, err := s.Orders.CreateFromCart(cartID, customerID, shippingID, taxID)
	if errors.Is(err, repos.ErrNoItems) {
		return 0, ErrEmptyCart
	}
	if errors.Is(err, sql.ErrNoRows) {
		// unknown tax or shipping id
		return 0, ErrNotFound
	}
	return id, err
}

// Summary distinguishes a missing order from one that exists with no lines.
type Summary struct {
	OrderID    int                  `json:"order_id"`
	OrderItems []domain.OrderDetail `json:"order_items"`
}

func (s *OrderService) Summary(orderID int) (Summary, error) {
	if _, err := s.Orders.Get(orderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Summary{}, ErrNotFound
		}
		return Summary{}, err
	}
	items, err := s.Orders.Details(orderID)
	if err != nil {
		return Summary{}, err
	}
	return Summary{OrderID: orderID, OrderItems: items}, nil
}

func (s *OrderService) ShortDetail(orderID int) (domain.OrderShort, error) {
	o, err := s.Orders.ShortDetail(orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.OrderShort{}, ErrNotFound
	}
	return o, err
}

func (s *OrderService) ListByCustomer(customerID int) ([]domain.OrderShort, error) {
	orders, err := s.Orders.ByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, ErrNotFound
	}
	return orders, nil
}

// ConfirmStatus transitions the order named by a signed confirmation token
// to confirmed. Signature validity is the whole authorization check, and
// replaying the token just re-sets the same status.
func (s *OrderService) ConfirmStatus(tok string) error {
	_, orderID, ok := s.Tokens.DecodeConfirmation(tok)
	if !ok {
		return ErrInvalidToken
	}
	return s.Orders.UpdateStatus(orderID, domain.OrderConfirmed)
}

// CheckoutResult echoes the gateway charge metadata to the caller.
type CheckoutResult struct {
	StripeToken string `json:"stripeToken"`
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Message     string `json:"message"`
}

// ProcessPayment charges the order total and dispatches a confirmation email
// carrying a signed status link. Success here means the gateway's synchronous
// success response; there is no later reconciliation and no idempotency key.
func (s *OrderService) ProcessPayment(orderID, customerID int, email, source string) (CheckoutResult, error) {
	items, err := s.Orders.Details(orderID)
	if err != nil {
		return CheckoutResult{}, err
	}
	if len(items) == 0 {
		return CheckoutResult{}, ErrNotFound
	}

	total := decimal.Zero
	for _, it := range items {
		sub, err := decimal.NewFromString(it.Subtotal)
		if err != nil {
			return CheckoutResult{}, err
		}
		total = total.Add(sub)
	}
	// minor units: the stored amounts always carry exactly two decimals
	amount := total.Shift(2).IntPart()

	charge, err := s.Pay.Charge(amount, "usd", source,
		fmt.Sprintf("tshirtshop order %d", orderID),
		map[string]string{"order_id": strconv.Itoa(orderID)})
	if err != nil {
		return CheckoutResult{}, err
	}

	confirmTok, err := s.Tokens.SignConfirmation(customerID, orderID)
	if err != nil {
		return CheckoutResult{}, err
	}

	first := items[0]
	html := fmt.Sprintf(`You have just ordered quantity <b>%d</b> of <b>%s</b> costing $%s.
<a href="%s/%s">Confirm this purchase</a>`,
		first.Quantity, first.ProductName, total.StringFixed(2), s.ConfirmURL, confirmTok)

	if err := s.Mail.Send(email, "Order Confirmation [ACTION REQUIRED]", html); err != nil {
		return CheckoutResult{}, err
	}

	return CheckoutResult{
		StripeToken: source,
		Description: charge.Description,
		Amount:      charge.Amount,
		Currency:    charge.Currency,
		Message:     "Successful Checkout",
	}, nil
}
