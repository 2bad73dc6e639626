package domain

// ItemKind distinguishes checkout line items from saved-for-later rows.
// Order creation only snapshots ItemBuyNow rows, so AddItem must persist
// that kind or checkout silently finds nothing.
type ItemKind int

const (
	ItemSaved  ItemKind = 0
	ItemBuyNow ItemKind = 1
)

// MarshalJSON keeps the wire shape a plain boolean.
func (k ItemKind) MarshalJSON() ([]byte, error) {
	if k == ItemBuyNow {
		return []byte("true"), nil
	}
	return []byte("false"), nil
}

// CartItem is one shopping_cart row joined with its product for display.
// CartID is an opaque client-session key, not tied to a customer until
// checkout.
type CartItem struct {
	ItemID     int      `db:"item_id" json:"item_id"`
	CartID     string   `db:"cart_id" json:"cart_id"`
	ProductID  int      `db:"product_id" json:"product_id"`
	Name       string   `db:"name" json:"name"`
	Attributes string   `db:"attributes" json:"attributes"`
	Quantity   int      `db:"quantity" json:"quantity"`
	BuyNow     ItemKind `db:"buy_now" json:"buy_now"`
	Price      string   `db:"price" json:"price"`
	Subtotal   string   `db:"subtotal" json:"subtotal"`
	AddedOn    string   `db:"added_on" json:"added_on"`
}
