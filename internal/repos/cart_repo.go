package repos

import (
	"tshirtshop/internal/domain"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type CartRepo struct{ db *sqlx.DB }

func NewCartRepo(db *sqlx.DB) *CartRepo { return &CartRepo{db: db} }

// effectivePrice picks the discounted price when one is set.
const effectivePrice = `CASE WHEN p.discounted_price <> '0.00' THEN p.discounted_price ELSE p.price END AS price`

// AddItem appends a line item. The buy-now kind is always persisted
// regardless of the caller's input: order creation only snapshots buy-now
// rows, so anything else would make checkout silently find no items.
func (r *CartRepo) AddItem(cartID string, productID int, attributes string, quantity int) (domain.CartItem, error) {
	res, err := r.db.Exec(`
	  INSERT INTO shopping_cart(cart_id, product_id, attributes, quantity, buy_now)
	  VALUES(?,?,?,?,?)
	`, cartID, productID, attributes, quantity, int(domain.ItemBuyNow))
	if err != nil {
		return domain.CartItem{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.CartItem{}, err
	}
	return r.Item(int(id))
}

// Item returns a single line item with its product name and priced subtotal.
func (r *CartRepo) Item(itemID int) (domain.CartItem, error) {
	var it domain.CartItem
	err := r.db.Get(&it, `
	  SELECT sc.item_id, sc.cart_id, sc.product_id, p.name, sc.attributes,
	         sc.quantity, sc.buy_now, sc.added_on, `+effectivePrice+`
	  FROM shopping_cart sc
	  JOIN product p ON p.product_id = sc.product_id
	  WHERE sc.item_id = ?
	`, itemID)
	if err != nil {
		return domain.CartItem{}, err
	}
	price(&it)
	return it, nil
}

func (r *CartRepo) Items(cartID string) ([]domain.CartItem, error) {
	out := []domain.CartItem{}
	err := r.db.Select(&out, `
	  SELECT sc.item_id, sc.cart_id, sc.product_id, p.name, sc.attributes,
	         sc.quantity, sc.buy_now, sc.added_on, `+effectivePrice+`
	  FROM shopping_cart sc
	  JOIN product p ON p.product_id = sc.product_id
	  WHERE sc.cart_id = ?
	  ORDER BY sc.item_id
	`, cartID)
	if err != nil {
		return nil, err
	}
	for i := range out {
		price(&out[i])
	}
	return out, nil
}

func (r *CartRepo) UpdateQuantity(itemID, quantity int) error {
	_, err := r.db.Exec(`UPDATE shopping_cart SET quantity=? WHERE item_id=?`, quantity, itemID)
	return err
}

func (r *CartRepo) Empty(cartID string) error {
	_, err := r.db.Exec(`DELETE FROM shopping_cart WHERE cart_id=?`, cartID)
	return err
}

func (r *CartRepo) RemoveItem(itemID int) error {
	_, err := r.db.Exec(`DELETE FROM shopping_cart WHERE item_id=?`, itemID)
	return err
}

// price fills the line subtotal with decimal math; stored prices are fixed
// two-decimal strings.
func price(it *domain.CartItem) {
	d, err := decimal.NewFromString(it.Price)
	if err != nil {
		it.Subtotal = "0.00"
		return
	}
	it.Subtotal = d.Mul(decimal.NewFromInt(int64(it.Quantity))).StringFixed(2)
}
