package domain

type Department struct {
	DepartmentID int    `db:"department_id" json:"department_id"`
	Name         string `db:"name" json:"name"`
	Description  string `db:"description" json:"description"`
}

type Category struct {
	CategoryID   int    `db:"category_id" json:"category_id"`
	DepartmentID int    `db:"department_id" json:"department_id"`
	Name         string `db:"name" json:"name"`
	Description  string `db:"description" json:"description"`
}

// Product monetary columns are fixed two-decimal strings; arithmetic on them
// goes through shopspring/decimal, never float64.
type Product struct {
	ProductID       int    `db:"product_id" json:"product_id"`
	Name            string `db:"name" json:"name"`
	Description     string `db:"description" json:"description"`
	Price           string `db:"price" json:"price"`
	DiscountedPrice string `db:"discounted_price" json:"discounted_price"`
	Image           string `db:"image" json:"image"`
	Image2          string `db:"image_2" json:"image_2"`
	Thumbnail       string `db:"thumbnail" json:"thumbnail"`
	Display         int    `db:"display" json:"display"`
}

type Attribute struct {
	AttributeID int    `db:"attribute_id" json:"attribute_id"`
	Name        string `db:"name" json:"name"`
}

// AttributeValue always belongs to exactly one Attribute.
type AttributeValue struct {
	AttributeValueID int    `db:"attribute_value_id" json:"attribute_value_id"`
	AttributeID      int    `db:"attribute_id" json:"attribute_id,omitempty"`
	Value            string `db:"value" json:"value"`
}

// ProductAttribute is the resolved name/value pair for one product, the
// three-way join of product assignment, value and owning attribute.
type ProductAttribute struct {
	AttributeName    string `db:"attribute_name" json:"attribute_name"`
	AttributeValueID int    `db:"attribute_value_id" json:"attribute_value_id"`
	AttributeValue   string `db:"attribute_value" json:"attribute_value"`
}

type Tax struct {
	TaxID         int    `db:"tax_id" json:"tax_id"`
	TaxType       string `db:"tax_type" json:"tax_type"`
	TaxPercentage string `db:"tax_percentage" json:"tax_percentage"`
}

type ShippingRegion struct {
	ShippingRegionID int    `db:"shipping_region_id" json:"shipping_region_id"`
	ShippingRegion   string `db:"shipping_region" json:"shipping_region"`
}

type Shipping struct {
	ShippingID       int    `db:"shipping_id" json:"shipping_id"`
	ShippingType     string `db:"shipping_type" json:"shipping_type"`
	ShippingCost     string `db:"shipping_cost" json:"shipping_cost"`
	ShippingRegionID int    `db:"shipping_region_id" json:"shipping_region_id"`
}

type Review struct {
	ReviewID   int    `db:"review_id" json:"review_id"`
	CustomerID int    `db:"customer_id" json:"customer_id"`
	ProductID  int    `db:"product_id" json:"product_id"`
	Review     string `db:"review" json:"review"`
	Rating     int    `db:"rating" json:"rating"`
	CreatedOn  string `db:"created_on" json:"created_on"`
}

// ProductReview is a review joined with the reviewer's display name.
type ProductReview struct {
	Name      string `db:"name" json:"name"`
	Review    string `db:"review" json:"review"`
	Rating    int    `db:"rating" json:"rating"`
	CreatedOn string `db:"created_on" json:"created_on"`
}
