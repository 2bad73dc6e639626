package services_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"tshirtshop/internal/domain"
	"tshirtshop/internal/payment"
	"tshirtshop/internal/repos"
	"tshirtshop/internal/services"
	"tshirtshop/internal/token"
)

type fakeCharger struct {
	amount   int64
	currency string
	source   string
	metadata map[string]string
	err      error
}

func (f *fakeCharger) Charge(amountMinor int64, currency, source, description string, metadata map[string]string) (payment.Charge, error) {
	f.amount, f.currency, f.source, f.metadata = amountMinor, currency, source, metadata
	if f.err != nil {
		return payment.Charge{}, f.err
	}
	return payment.Charge{ID: "ch_test", Description: description, Amount: amountMinor, Currency: currency}, nil
}

type fakeMailer struct {
	to, subject, html string
	sent              int
}

func (f *fakeMailer) Send(to, subject, html string) error {
	f.to, f.subject, f.html = to, subject, html
	f.sent++
	return nil
}

func orderFixture(t *testing.T) (*services.OrderService, *services.CartService, *fakeCharger, *fakeMailer, *token.Codec, int) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	custID, err := repos.NewCustomerRepo(db).Create("Alice", "alice@example.com", "$2a$12$hash")
	require.NoError(t, err)

	codec := token.NewCodec("test-secret")
	charger := &fakeCharger{}
	mailer := &fakeMailer{}
	orders := services.NewOrderService(repos.NewOrderRepo(db), codec, charger, mailer, "http://localhost/order/status")
	carts := services.NewCartService(repos.NewCartRepo(db), repos.NewProductRepo(db))
	return orders, carts, charger, mailer, codec, custID
}

func placeOrder(t *testing.T, orders *services.OrderService, carts *services.CartService, custID int) int {
	t.Helper()
	_, err := carts.AddItem("cart-1", 1, "L", 2)
	require.NoError(t, err)
	orderID, err := orders.Create("cart-1", custID, 3, 2)
	require.NoError(t, err)
	return orderID
}

func TestProcessPaymentChargesMinorUnits(t *testing.T) {
	orders, carts, charger, mailer, codec, custID := orderFixture(t)
	orderID := placeOrder(t, orders, carts, custID)

	res, err := orders.ProcessPayment(orderID, custID, "alice@example.com", "tok_visa")
	require.NoError(t, err)

	// 2 * 14.99 = 29.98 -> 2998 cents (items only; tax and shipping are on
	// the order header)
	require.Equal(t, int64(2998), charger.amount)
	require.Equal(t, "usd", charger.currency)
	require.Equal(t, "tok_visa", charger.source)
	require.Equal(t, map[string]string{"order_id": strconv.Itoa(orderID)}, charger.metadata)

	require.Equal(t, "Successful Checkout", res.Message)
	require.Equal(t, int64(2998), res.Amount)
	require.Equal(t, "tok_visa", res.StripeToken)

	require.Equal(t, 1, mailer.sent)
	require.Equal(t, "alice@example.com", mailer.to)
	require.Equal(t, "Order Confirmation [ACTION REQUIRED]", mailer.subject)
	require.Contains(t, mailer.html, "Arc d'Triomphe")

	// the emailed link embeds a decodable confirmation token
	idx := strings.LastIndex(mailer.html, "/order/status/")
	require.Positive(t, idx)
	tok := mailer.html[idx+len("/order/status/"):]
	tok = tok[:strings.IndexByte(tok, '"')]
	gotCust, gotOrder, ok := codec.DecodeConfirmation(tok)
	require.True(t, ok)
	require.Equal(t, custID, gotCust)
	require.Equal(t, orderID, gotOrder)
}

func TestProcessPaymentGatewayFailure(t *testing.T) {
	orders, carts, charger, mailer, _, custID := orderFixture(t)
	orderID := placeOrder(t, orders, carts, custID)

	charger.err = errors.New("card declined")
	_, err := orders.ProcessPayment(orderID, custID, "alice@example.com", "tok_bad")
	require.Error(t, err)
	require.Zero(t, mailer.sent, "no email on a failed charge")
}

func TestProcessPaymentUnknownOrder(t *testing.T) {
	orders, _, _, _, _, custID := orderFixture(t)

	_, err := orders.ProcessPayment(999, custID, "alice@example.com", "tok_visa")
	require.ErrorIs(t, err, services.ErrNotFound)
}

func TestConfirmStatus(t *testing.T) {
	orders, carts, _, _, codec, custID := orderFixture(t)
	orderID := placeOrder(t, orders, carts, custID)

	tok, err := codec.SignConfirmation(custID, orderID)
	require.NoError(t, err)

	require.NoError(t, orders.ConfirmStatus(tok))
	sum, err := orders.ShortDetail(orderID)
	require.NoError(t, err)
	require.Equal(t, domain.OrderConfirmed, sum.Status)

	// replay is idempotent at the state level
	require.NoError(t, orders.ConfirmStatus(tok))
	sum, err = orders.ShortDetail(orderID)
	require.NoError(t, err)
	require.Equal(t, domain.OrderConfirmed, sum.Status)
}

func TestConfirmStatusRejectsBadToken(t *testing.T) {
	orders, _, _, _, _, _ := orderFixture(t)

	err := orders.ConfirmStatus("not-a-token")
	require.ErrorIs(t, err, services.ErrInvalidToken)
}

func TestCreateMapsSentinels(t *testing.T) {
	orders, carts, _, _, _, custID := orderFixture(t)

	_, err := orders.Create("empty-cart", custID, 3, 2)
	require.ErrorIs(t, err, services.ErrEmptyCart)

	_, err = carts.AddItem("cart-x", 1, "", 1)
	require.NoError(t, err)
	_, err = orders.Create("cart-x", custID, 3, 999)
	require.ErrorIs(t, err, services.ErrNotFound)
}

func TestSummaryDistinguishesMissingFromEmpty(t *testing.T) {
	orders, carts, _, _, _, custID := orderFixture(t)

	_, err := orders.Summary(42)
	require.ErrorIs(t, err, services.ErrNotFound)

	orderID := placeOrder(t, orders, carts, custID)
	sum, err := orders.Summary(orderID)
	require.NoError(t, err)
	require.Equal(t, orderID, sum.OrderID)
	require.Len(t, sum.OrderItems, 1)
}
