package repos

import (
	"strings"

	"tshirtshop/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

// descCol truncates the description to the requested length with a "..."
// suffix, the shape list endpoints return.
const descCol = `CASE WHEN LENGTH(description) > ? THEN SUBSTR(description,1,?) || '...' ELSE description END AS description`

// descColP is descCol with the product alias, for queries that join tables
// carrying their own description column.
const descColP = `CASE WHEN LENGTH(p.description) > ? THEN SUBSTR(p.description,1,?) || '...' ELSE p.description END AS description`

const productCols = `product_id, name, price, discounted_price, image, image_2, thumbnail, display`

func (r *ProductRepo) List(limit, offset, descLen int) (int, []domain.Product, error) {
	var count int
	if err := r.db.Get(&count, `SELECT COUNT(*) FROM product`); err != nil {
		return 0, nil, err
	}
	rows := []domain.Product{}
	err := r.db.Select(&rows, `
	  SELECT `+productCols+`, `+descCol+`
	  FROM product
	  ORDER BY product_id
	  LIMIT ? OFFSET ?
	`, descLen, descLen, limit, offset)
	return count, rows, err
}

func (r *ProductRepo) Get(id int) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
	  SELECT product_id, name, description, price, discounted_price, image, image_2, thumbnail, display
	  FROM product WHERE product_id=?
	`, id)
	return p, err
}

// Search matches query words against name and description. With allWords set
// every word must match; otherwise any word is enough.
func (r *ProductRepo) Search(query string, allWords bool, limit, offset, descLen int) (int, []domain.Product, error) {
	words := strings.Fields(strings.ToLower(query))
	if len(words) == 0 {
		return 0, []domain.Product{}, nil
	}

	clauses := make([]string, 0, len(words))
	args := []any{}
	for _, w := range words {
		clauses = append(clauses, `(LOWER(name) LIKE ? OR LOWER(description) LIKE ?)`)
		args = append(args, "%"+w+"%", "%"+w+"%")
	}
	joiner := ` OR `
	if allWords {
		joiner = ` AND `
	}
	where := strings.Join(clauses, joiner)

	var count int
	if err := r.db.Get(&count, `SELECT COUNT(*) FROM product WHERE `+where, args...); err != nil {
		return 0, nil, err
	}

	rows := []domain.Product{}
	sel := `
	  SELECT ` + productCols + `, ` + descCol + `
	  FROM product
	  WHERE ` + where + `
	  ORDER BY product_id
	  LIMIT ? OFFSET ?`
	selArgs := append([]any{descLen, descLen}, args...)
	selArgs = append(selArgs, limit, offset)
	err := r.db.Select(&rows, sel, selArgs...)
	return count, rows, err
}

func (r *ProductRepo) ByCategory(categoryID, limit, offset, descLen int) (int, []domain.Product, error) {
	var count int
	if err := r.db.Get(&count, `
	  SELECT COUNT(*) FROM product p
	  JOIN product_category pc ON pc.product_id = p.product_id
	  WHERE pc.category_id = ?
	`, categoryID); err != nil {
		return 0, nil, err
	}
	rows := []domain.Product{}
	err := r.db.Select(&rows, `
	  SELECT p.product_id, p.name, p.price, p.discounted_price, p.image, p.image_2, p.thumbnail, p.display,
	         `+descColP+`
	  FROM product p
	  JOIN product_category pc ON pc.product_id = p.product_id
	  WHERE pc.category_id = ?
	  ORDER BY p.product_id
	  LIMIT ? OFFSET ?
	`, descLen, descLen, categoryID, limit, offset)
	return count, rows, err
}

// ByDepartment expands department -> categories -> products. A product in
// several categories of the department is returned once.
func (r *ProductRepo) ByDepartment(departmentID, limit, offset, descLen int) (int, []domain.Product, error) {
	var count int
	if err := r.db.Get(&count, `
	  SELECT COUNT(DISTINCT p.product_id) FROM product p
	  JOIN product_category pc ON pc.product_id = p.product_id
	  JOIN category c ON c.category_id = pc.category_id
	  WHERE c.department_id = ?
	`, departmentID); err != nil {
		return 0, nil, err
	}
	rows := []domain.Product{}
	err := r.db.Select(&rows, `
	  SELECT DISTINCT p.product_id, p.name, p.price, p.discounted_price, p.image, p.image_2, p.thumbnail, p.display,
	         `+descColP+`
	  FROM product p
	  JOIN product_category pc ON pc.product_id = p.product_id
	  JOIN category c ON c.category_id = pc.category_id
	  WHERE c.department_id = ?
	  ORDER BY p.product_id
	  LIMIT ? OFFSET ?
	`, descLen, descLen, departmentID, limit, offset)
	return count, rows, err
}

// Attributes resolves a product's attribute name/value pairs through the
// three-way join: assignment -> value -> owning attribute.
func (r *ProductRepo) Attributes(productID int) ([]domain.ProductAttribute, error) {
	rows := []domain.ProductAttribute{}
	err := r.db.Select(&rows, `
	  SELECT a.name AS attribute_name, av.attribute_value_id, av.value AS attribute_value
	  FROM product_attribute pa
	  JOIN attribute_value av ON av.attribute_value_id = pa.attribute_value_id
	  JOIN attribute a ON a.attribute_id = av.attribute_id
	  WHERE pa.product_id = ?
	  ORDER BY a.attribute_id, av.attribute_value_id
	`, productID)
	return rows, err
}
