package repos

import (
	"tshirtshop/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ReviewRepo struct{ db *sqlx.DB }

func NewReviewRepo(db *sqlx.DB) *ReviewRepo { return &ReviewRepo{db: db} }

func (r *ReviewRepo) ByProduct(productID int) ([]domain.ProductReview, error) {
	out := []domain.ProductReview{}
	err := r.db.Select(&out, `
	  SELECT c.name, rv.review, rv.rating, rv.created_on
	  FROM review rv
	  JOIN customer c ON c.customer_id = rv.customer_id
	  WHERE rv.product_id = ?
	  ORDER BY rv.created_on DESC
	`, productID)
	return out, err
}

func (r *ReviewRepo) Exists(customerID, productID int) (bool, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM review WHERE customer_id=? AND product_id=?`, customerID, productID)
	return n > 0, err
}

func (r *ReviewRepo) Create(customerID, productID int, review string, rating int) (domain.Review, error) {
	res, err := r.db.Exec(`
	  INSERT INTO review(customer_id, product_id, review, rating)
	  VALUES(?,?,?,?)
	`, customerID, productID, review, rating)
	if err != nil {
		return domain.Review{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Review{}, err
	}
	var out domain.Review
	err = r.db.Get(&out, `
	  SELECT review_id, customer_id, product_id, review, rating, created_on
	  FROM review WHERE review_id=?
	`, id)
	return out, err
}
