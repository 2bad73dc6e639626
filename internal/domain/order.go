package domain

// Order status codes. The only transition in scope is pending -> confirmed,
// driven by the signed confirmation link.
const (
	OrderPending   = 0
	OrderConfirmed = 1
)

type Order struct {
	OrderID     int    `db:"order_id" json:"order_id"`
	TotalAmount string `db:"total_amount" json:"total_amount"`
	CreatedOn   string `db:"created_on" json:"created_on"`
	ShippedOn   string `db:"shipped_on" json:"shipped_on"`
	Status      int    `db:"status" json:"status"`
	Comments    string `db:"comments" json:"comments"`
	CustomerID  int    `db:"customer_id" json:"customer_id"`
	AuthCode    string `db:"auth_code" json:"auth_code"`
	Reference   string `db:"reference" json:"reference"`
	ShippingID  int    `db:"shipping_id" json:"shipping_id"`
	TaxID       int    `db:"tax_id" json:"tax_id"`
}

// OrderDetail is an immutable snapshot of a cart line at order creation;
// later cart mutation never touches it.
type OrderDetail struct {
	ItemID      int    `db:"item_id" json:"item_id"`
	OrderID     int    `db:"order_id" json:"order_id"`
	ProductID   int    `db:"product_id" json:"product_id"`
	Attributes  string `db:"attributes" json:"attributes"`
	ProductName string `db:"product_name" json:"product_name"`
	Quantity    int    `db:"quantity" json:"quantity"`
	UnitCost    string `db:"unit_cost" json:"unit_cost"`
	Subtotal    string `db:"subtotal" json:"subtotal"`
}

// OrderShort is the projection returned for customer order lists and the
// shortDetail route.
type OrderShort struct {
	OrderID     int    `db:"order_id" json:"order_id"`
	TotalAmount string `db:"total_amount" json:"total_amount"`
	CreatedOn   string `db:"created_on" json:"created_on"`
	ShippedOn   string `db:"shipped_on" json:"shipped_on"`
	Status      int    `db:"status" json:"status"`
	Name        string `db:"name" json:"name"`
}
