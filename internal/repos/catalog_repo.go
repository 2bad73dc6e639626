package repos

import (
	"tshirtshop/internal/domain"

	"github.com/jmoiron/sqlx"
)

// CatalogRepo serves the static reference side of the catalog: departments,
// categories, attributes, taxes and shipping options.
type CatalogRepo struct{ db *sqlx.DB }

func NewCatalogRepo(db *sqlx.DB) *CatalogRepo { return &CatalogRepo{db: db} }

func (r *CatalogRepo) ListDepartments() ([]domain.Department, error) {
	out := []domain.Department{}
	err := r.db.Select(&out, `SELECT department_id, name, description FROM department ORDER BY department_id`)
	return out, err
}

func (r *CatalogRepo) GetDepartment(id int) (domain.Department, error) {
	var d domain.Department
	err := r.db.Get(&d, `SELECT department_id, name, description FROM department WHERE department_id=?`, id)
	return d, err
}

func (r *CatalogRepo) ListCategories() ([]domain.Category, error) {
	out := []domain.Category{}
	err := r.db.Select(&out, `SELECT category_id, department_id, name, description FROM category ORDER BY category_id`)
	return out, err
}

func (r *CatalogRepo) GetCategory(id int) (domain.Category, error) {
	var c domain.Category
	err := r.db.Get(&c, `SELECT category_id, department_id, name, description FROM category WHERE category_id=?`, id)
	return c, err
}

func (r *CatalogRepo) CategoriesInDepartment(departmentID int) ([]domain.Category, error) {
	out := []domain.Category{}
	err := r.db.Select(&out, `
	  SELECT category_id, department_id, name, description
	  FROM category WHERE department_id=? ORDER BY category_id
	`, departmentID)
	return out, err
}

func (r *CatalogRepo) ListAttributes() ([]domain.Attribute, error) {
	out := []domain.Attribute{}
	err := r.db.Select(&out, `SELECT attribute_id, name FROM attribute ORDER BY attribute_id`)
	return out, err
}

func (r *CatalogRepo) GetAttribute(id int) (domain.Attribute, error) {
	var a domain.Attribute
	err := r.db.Get(&a, `SELECT attribute_id, name FROM attribute WHERE attribute_id=?`, id)
	return a, err
}

func (r *CatalogRepo) AttributeValues(attributeID int) ([]domain.AttributeValue, error) {
	out := []domain.AttributeValue{}
	err := r.db.Select(&out, `
	  SELECT attribute_value_id, attribute_id, value
	  FROM attribute_value WHERE attribute_id=? ORDER BY attribute_value_id
	`, attributeID)
	return out, err
}

func (r *CatalogRepo) ListTaxes() ([]domain.Tax, error) {
	out := []domain.Tax{}
	err := r.db.Select(&out, `SELECT tax_id, tax_type, tax_percentage FROM tax ORDER BY tax_id`)
	return out, err
}

func (r *CatalogRepo) GetTax(id int) (domain.Tax, error) {
	var t domain.Tax
	err := r.db.Get(&t, `SELECT tax_id, tax_type, tax_percentage FROM tax WHERE tax_id=?`, id)
	return t, err
}

func (r *CatalogRepo) ListShippingRegions() ([]domain.ShippingRegion, error) {
	out := []domain.ShippingRegion{}
	err := r.db.Select(&out, `SELECT shipping_region_id, shipping_region FROM shipping_region ORDER BY shipping_region_id`)
	return out, err
}

func (r *CatalogRepo) ShippingInRegion(shippingRegionID int) ([]domain.Shipping, error) {
	out := []domain.Shipping{}
	err := r.db.Select(&out, `
	  SELECT shipping_id, shipping_type, shipping_cost, shipping_region_id
	  FROM shipping WHERE shipping_region_id=? ORDER BY shipping_id
	`, shippingRegionID)
	return out, err
}
