package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"tshirtshop/internal/http/handlers"
	"tshirtshop/internal/payment"
	"tshirtshop/internal/repos"
	"tshirtshop/internal/token"
)

type stubCharger struct{ calls int }

func (s *stubCharger) Charge(amountMinor int64, currency, source, description string, metadata map[string]string) (payment.Charge, error) {
	s.calls++
	return payment.Charge{ID: "ch_test", Description: description, Amount: amountMinor, Currency: currency}, nil
}

type stubMailer struct{ html string }

func (s *stubMailer) Send(to, subject, html string) error {
	s.html = html
	return nil
}

func newTestApp(t *testing.T) (*fiber.App, *stubCharger, *stubMailer) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	codec := token.NewCodec("test-secret")
	charger := &stubCharger{}
	mailer := &stubMailer{}

	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	deps := handlers.NewDeps(db, codec, charger, mailer, "http://localhost/order/status")
	auth := handlers.Authenticate(codec)

	app.Post("/customers", deps.CustomerHandler.Register)
	app.Post("/customers/login", deps.CustomerHandler.Login)
	app.Get("/shoppingcart/generateUniqueId", deps.CartHandler.GenerateUniqueID)
	app.Get("/order/status/:token", deps.OrderHandler.UpdateStatus)

	app.Get("/customer/:id", auth, deps.CustomerHandler.Profile)
	app.Get("/products", auth, deps.ProductHandler.List)
	app.Get("/products/search", auth, deps.ProductHandler.Search)
	app.Get("/products/inDepartment/:department_id", auth, deps.ProductHandler.InDepartment)
	app.Get("/products/:product_id/reviews", auth, deps.ProductHandler.Reviews)
	app.Post("/products/:product_id/reviews", auth, deps.ProductHandler.PostReview)
	app.Get("/products/:product_id/attributes", auth, deps.ProductHandler.Attributes)
	app.Get("/products/:product_id", auth, deps.ProductHandler.Get)
	app.Get("/tax", auth, deps.CatalogHandler.ListTaxes)
	app.Post("/shoppingcart/add", auth, deps.CartHandler.Add)
	app.Get("/shoppingcart/:cart_id", auth, deps.CartHandler.Get)
	app.Put("/shoppingcart/update/:item_id", auth, deps.CartHandler.Update)
	app.Delete("/shoppingcart/empty/:cart_id", auth, deps.CartHandler.Empty)
	app.Post("/orders", auth, deps.OrderHandler.Create)
	app.Get("/orders/shortDetail/:order_id", auth, deps.OrderHandler.ShortDetail)
	app.Get("/orders/:order_id", auth, deps.OrderHandler.Summary)
	app.Post("/stripe/charge", auth, deps.OrderHandler.StripeCharge)

	return app, charger, mailer
}

func doJSON(t *testing.T, app *fiber.App, method, path, userKey string, body any) (*http.Response, []byte) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userKey != "" {
		req.Header.Set("user-key", userKey)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, raw
}

// registerAndLogin returns a usable bearer token for a fresh customer.
func registerAndLogin(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp, _ := doJSON(t, app, "POST", "/customers", "", fiber.Map{
		"name": "Alice", "email": "alice@example.com", "password": "Passw0rd!",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register: got %d", resp.StatusCode)
	}
	resp, raw := doJSON(t, app, "POST", "/customers/login", "", fiber.Map{
		"email": "alice@example.com", "password": "Passw0rd!",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: got %d (%s)", resp.StatusCode, raw)
	}
	var out struct {
		AccessToken string `json:"accessToken"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatal(err)
	}
	if out.AccessToken == "" {
		t.Fatal("login returned no accessToken")
	}
	return out.AccessToken
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp, raw := doJSON(t, app, "GET", "/products", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("missing header: got %d, want 401", resp.StatusCode)
	}
	var body struct {
		Error handlers.Error `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatal(err)
	}
	if body.Error.Code != "AUT_01" {
		t.Fatalf("code = %q, want AUT_01", body.Error.Code)
	}

	resp, raw = doJSON(t, app, "GET", "/products", "Bearer not-a-token", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("bad token: got %d, want 401", resp.StatusCode)
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatal(err)
	}
	if body.Error.Code != "AUT_02" {
		t.Fatalf("code = %q, want AUT_02", body.Error.Code)
	}
}

func TestLoginTokenResolvesSameCustomer(t *testing.T) {
	app, _, _ := newTestApp(t)
	tok := registerAndLogin(t, app)

	// posting a review records the identity the gate resolved from the token
	resp, raw := doJSON(t, app, "POST", "/products/1/reviews", tok, fiber.Map{
		"review": "Great shirt", "rating": 5,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("post review: got %d (%s)", resp.StatusCode, raw)
	}
	var review struct {
		CustomerID int `json:"customer_id"`
	}
	if err := json.Unmarshal(raw, &review); err != nil {
		t.Fatal(err)
	}
	if review.CustomerID != 1 {
		t.Fatalf("review customer_id = %d, want 1", review.CustomerID)
	}

	// second review for the same product conflicts, first one stands
	resp, _ = doJSON(t, app, "POST", "/products/1/reviews", tok, fiber.Map{
		"review": "Changed my mind", "rating": 1,
	})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate review: got %d, want 409", resp.StatusCode)
	}
	_, raw = doJSON(t, app, "GET", "/products/1/reviews", tok, nil)
	var reviews []struct {
		Rating int `json:"rating"`
	}
	if err := json.Unmarshal(raw, &reviews); err != nil {
		t.Fatal(err)
	}
	if len(reviews) != 1 || reviews[0].Rating != 5 {
		t.Fatalf("first review affected: %+v", reviews)
	}
}

func TestGetProductFoundAndMissing(t *testing.T) {
	app, _, _ := newTestApp(t)
	tok := registerAndLogin(t, app)

	resp, raw := doJSON(t, app, "GET", "/products/1", tok, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("got %d, want 200", resp.StatusCode)
	}
	var p struct {
		ProductID int    `json:"product_id"`
		Name      string `json:"name"`
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		t.Fatal(err)
	}
	if p.ProductID != 1 || p.Name == "" {
		t.Fatalf("unexpected product: %+v", p)
	}

	resp, _ = doJSON(t, app, "GET", "/products/999", tok, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("missing product: got %d, want 404", resp.StatusCode)
	}
}

func TestProductListDefaults(t *testing.T) {
	app, _, _ := newTestApp(t)
	tok := registerAndLogin(t, app)

	_, raw := doJSON(t, app, "GET", "/products", tok, nil)
	var page struct {
		Count int              `json:"count"`
		Rows  []map[string]any `json:"rows"`
	}
	if err := json.Unmarshal(raw, &page); err != nil {
		t.Fatal(err)
	}
	// seeded catalog fits inside the default limit of 20
	if page.Count != 8 || len(page.Rows) != 8 {
		t.Fatalf("count=%d rows=%d, want 8/8", page.Count, len(page.Rows))
	}

	// junk paging input falls back to defaults instead of erroring
	resp, _ := doJSON(t, app, "GET", "/products?page=abc&limit=zz&offset=-1", tok, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("junk paging: got %d, want 200", resp.StatusCode)
	}
}

func TestCartAddForcesBuyNow(t *testing.T) {
	app, _, _ := newTestApp(t)
	tok := registerAndLogin(t, app)

	_, raw := doJSON(t, app, "GET", "/shoppingcart/generateUniqueId", "", nil)
	var gen struct {
		CartID string `json:"cart_id"`
	}
	if err := json.Unmarshal(raw, &gen); err != nil {
		t.Fatal(err)
	}
	if len(gen.CartID) != 32 {
		t.Fatalf("cart_id %q, want 32 chars", gen.CartID)
	}

	// caller explicitly asks for buy_now=false; the store ignores it
	resp, raw := doJSON(t, app, "POST", "/shoppingcart/add", tok, fiber.Map{
		"cart_id": gen.CartID, "product_id": 1, "attributes": "L, Red", "quantity": 2, "buy_now": false,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("add: got %d (%s)", resp.StatusCode, raw)
	}
	var item struct {
		BuyNow bool `json:"buy_now"`
	}
	if err := json.Unmarshal(raw, &item); err != nil {
		t.Fatal(err)
	}
	if !item.BuyNow {
		t.Fatal("buy_now should always be true")
	}

	_, raw = doJSON(t, app, "GET", "/shoppingcart/"+gen.CartID, tok, nil)
	var items []struct {
		ProductID int  `json:"product_id"`
		Quantity  int  `json:"quantity"`
		BuyNow    bool `json:"buy_now"`
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 || items[0].ProductID != 1 || items[0].Quantity != 2 || !items[0].BuyNow {
		t.Fatalf("unexpected cart: %+v", items)
	}
}

func TestCheckoutFlow(t *testing.T) {
	app, charger, mailer := newTestApp(t)
	tok := registerAndLogin(t, app)

	_, raw := doJSON(t, app, "GET", "/shoppingcart/generateUniqueId", "", nil)
	var gen struct {
		CartID string `json:"cart_id"`
	}
	if err := json.Unmarshal(raw, &gen); err != nil {
		t.Fatal(err)
	}
	if _, raw = doJSON(t, app, "POST", "/shoppingcart/add", tok, fiber.Map{
		"cart_id": gen.CartID, "product_id": 1, "quantity": 1,
	}); len(raw) == 0 {
		t.Fatal("empty add response")
	}

	// cart -> order (shipping 3 = $5, tax 2 = 0%)
	resp, raw := doJSON(t, app, "POST", "/orders", tok, fiber.Map{
		"cart_id": gen.CartID, "shipping_id": 3, "tax_id": 2,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create order: got %d (%s)", resp.StatusCode, raw)
	}
	var created struct {
		OrderID int `json:"order_id"`
	}
	if err := json.Unmarshal(raw, &created); err != nil {
		t.Fatal(err)
	}
	orderPath := "/orders/" + strconv.Itoa(created.OrderID)

	// emptying the cart must not touch the order snapshot
	doJSON(t, app, "DELETE", "/shoppingcart/empty/"+gen.CartID, tok, nil)
	_, raw = doJSON(t, app, "GET", orderPath, tok, nil)
	var summary struct {
		OrderItems []map[string]any `json:"order_items"`
	}
	if err := json.Unmarshal(raw, &summary); err != nil {
		t.Fatal(err)
	}
	if len(summary.OrderItems) != 1 {
		t.Fatalf("order snapshot changed: %+v", summary.OrderItems)
	}

	// charge
	resp, raw = doJSON(t, app, "POST", "/stripe/charge", tok, fiber.Map{
		"order_id": created.OrderID, "email": "alice@example.com", "stripeToken": "tok_visa",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("charge: got %d (%s)", resp.StatusCode, raw)
	}
	if charger.calls != 1 {
		t.Fatalf("charger calls = %d, want 1", charger.calls)
	}
	var chargeResp struct {
		Amount  int64  `json:"amount"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &chargeResp); err != nil {
		t.Fatal(err)
	}
	if chargeResp.Amount != 1499 || chargeResp.Message != "Successful Checkout" {
		t.Fatalf("unexpected charge response: %+v", chargeResp)
	}

	// confirm via the emailed link, then replay it
	idx := strings.LastIndex(mailer.html, "/order/status/")
	if idx < 0 {
		t.Fatalf("no confirmation link in email: %s", mailer.html)
	}
	rest := mailer.html[idx:]
	end := strings.IndexByte(rest, '"')
	if end < 0 {
		t.Fatalf("unterminated link in email: %s", mailer.html)
	}
	link := rest[:end]
	for i := 0; i < 2; i++ {
		resp, _ = doJSON(t, app, "GET", link, "", nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("confirm attempt %d: got %d", i+1, resp.StatusCode)
		}
	}
	_, raw = doJSON(t, app, "GET", "/orders/shortDetail/"+strconv.Itoa(created.OrderID), tok, nil)
	var short struct {
		Status int `json:"status"`
	}
	if err := json.Unmarshal(raw, &short); err != nil {
		t.Fatal(err)
	}
	if short.Status != 1 {
		t.Fatalf("status = %d, want confirmed (1)", short.Status)
	}
}
