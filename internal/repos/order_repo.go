package repos

import (
	"errors"

	"tshirtshop/internal/domain"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// ErrNoItems means the cart had no buy-now rows to snapshot.
var ErrNoItems = errors.New("no items in cart")

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

// CreateFromCart converts a cart into a persisted order inside one
// transaction: snapshot the cart's buy-now line items at current prices,
// total them with tax and shipping, and write the header plus detail rows.
// Any failure rolls the whole thing back; the cart rows are left untouched
// (emptying the cart is a separate explicit call).
func (r *OrderRepo) CreateFromCart(cartID string, customerID, shippingID, taxID int) (int, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	var taxPct string
	if err := tx.Get(&taxPct, `SELECT tax_percentage FROM tax WHERE tax_id=?`, taxID); err != nil {
		return 0, err
	}
	var shippingCost string
	if err := tx.Get(&shippingCost, `SELECT shipping_cost FROM shipping WHERE shipping_id=?`, shippingID); err != nil {
		return 0, err
	}

	type line struct {
		ProductID  int    `db:"product_id"`
		Name       string `db:"name"`
		Attributes string `db:"attributes"`
		Quantity   int    `db:"quantity"`
		Price      string `db:"price"`
	}
	var lines []line
	if err := tx.Select(&lines, `
	  SELECT sc.product_id, p.name, sc.attributes, sc.quantity, `+effectivePrice+`
	  FROM shopping_cart sc
	  JOIN product p ON p.product_id = sc.product_id
	  WHERE sc.cart_id = ? AND sc.buy_now = ?
	  ORDER BY sc.item_id
	`, cartID, int(domain.ItemBuyNow)); err != nil {
		return 0, err
	}
	if len(lines) == 0 {
		return 0, ErrNoItems
	}

	subtotal := decimal.Zero
	for _, l := range lines {
		unit, err := decimal.NewFromString(l.Price)
		if err != nil {
			return 0, err
		}
		subtotal = subtotal.Add(unit.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	pct, err := decimal.NewFromString(taxPct)
	if err != nil {
		return 0, err
	}
	shipping, err := decimal.NewFromString(shippingCost)
	if err != nil {
		return 0, err
	}
	total := subtotal.
		Add(subtotal.Mul(pct).Div(decimal.NewFromInt(100))).
		Add(shipping).
		Round(2)

	res, err := tx.Exec(`
	  INSERT INTO orders(total_amount, status, customer_id, shipping_id, tax_id)
	  VALUES(?, ?, ?, ?, ?)
	`, total.StringFixed(2), domain.OrderPending, customerID, shippingID, taxID)
	if err != nil {
		return 0, err
	}
	orderID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, l := range lines {
		if _, err := tx.Exec(`
		  INSERT INTO order_detail(order_id, product_id, attributes, product_name, quantity, unit_cost)
		  VALUES(?,?,?,?,?,?)
		`, orderID, l.ProductID, l.Attributes, l.Name, l.Quantity, l.Price); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return int(orderID), nil
}

func (r *OrderRepo) Get(orderID int) (domain.Order, error) {
	var o domain.Order
	err := r.db.Get(&o, `
	  SELECT order_id, total_amount, created_on, shipped_on, status, comments,
	         customer_id, auth_code, reference, shipping_id, tax_id
	  FROM orders WHERE order_id=?
	`, orderID)
	return o, err
}

// Details returns the order's immutable line-item snapshot with per-line
// subtotals.
func (r *OrderRepo) Details(orderID int) ([]domain.OrderDetail, error) {
	out := []domain.OrderDetail{}
	err := r.db.Select(&out, `
	  SELECT item_id, order_id, product_id, attributes, product_name, quantity, unit_cost
	  FROM order_detail WHERE order_id=? ORDER BY item_id
	`, orderID)
	if err != nil {
		return nil, err
	}
	for i := range out {
		unit, err := decimal.NewFromString(out[i].UnitCost)
		if err != nil {
			return nil, err
		}
		out[i].Subtotal = unit.Mul(decimal.NewFromInt(int64(out[i].Quantity))).StringFixed(2)
	}
	return out, nil
}

func (r *OrderRepo) ShortDetail(orderID int) (domain.OrderShort, error) {
	var o domain.OrderShort
	err := r.db.Get(&o, `
	  SELECT o.order_id, o.total_amount, o.created_on, o.shipped_on, o.status, c.name
	  FROM orders o
	  JOIN customer c ON c.customer_id = o.customer_id
	  WHERE o.order_id=?
	`, orderID)
	return o, err
}

func (r *OrderRepo) ByCustomer(customerID int) ([]domain.OrderShort, error) {
	out := []domain.OrderShort{}
	err := r.db.Select(&out, `
	  SELECT o.order_id, o.total_amount, o.created_on, o.shipped_on, o.status, c.name
	  FROM orders o
	  JOIN customer c ON c.customer_id = o.customer_id
	  WHERE o.customer_id=?
	  ORDER BY datetime(o.created_on) DESC
	`, customerID)
	return out, err
}

func (r *OrderRepo) UpdateStatus(orderID, status int) error {
	_, err := r.db.Exec(`UPDATE orders SET status=? WHERE order_id=?`, status, orderID)
	return err
}
