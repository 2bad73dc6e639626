package repos

import (
	"tshirtshop/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CustomerRepo struct{ db *sqlx.DB }

func NewCustomerRepo(db *sqlx.DB) *CustomerRepo { return &CustomerRepo{db: db} }

const customerCols = `customer_id, name, email, password, credit_card,
  address_1, address_2, city, region, postal_code, country,
  shipping_region_id, day_phone, eve_phone, mob_phone`

func (r *CustomerRepo) Create(name, email, passwordHash string) (int, error) {
	res, err := r.db.Exec(`INSERT INTO customer(name,email,password) VALUES(?,?,?)`,
		name, email, passwordHash)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return int(id), err
}

func (r *CustomerRepo) ByEmail(email string) (domain.Customer, error) {
	var c domain.Customer
	err := r.db.Get(&c, `SELECT `+customerCols+` FROM customer WHERE LOWER(email)=LOWER(?)`, email)
	return c, err
}

func (r *CustomerRepo) ByID(id int) (domain.Customer, error) {
	var c domain.Customer
	err := r.db.Get(&c, `SELECT `+customerCols+` FROM customer WHERE customer_id=?`, id)
	return c, err
}

// UpdateAccount mutates the profile fields; the password is only touched
// when a new hash is supplied.
func (r *CustomerRepo) UpdateAccount(id int, name, email, passwordHash, dayPhone, evePhone, mobPhone string) error {
	if passwordHash != "" {
		_, err := r.db.Exec(`
		  UPDATE customer SET name=?, email=?, password=?, day_phone=?, eve_phone=?, mob_phone=?
		  WHERE customer_id=?`,
			name, email, passwordHash, dayPhone, evePhone, mobPhone, id)
		return err
	}
	_, err := r.db.Exec(`
	  UPDATE customer SET name=?, email=?, day_phone=?, eve_phone=?, mob_phone=?
	  WHERE customer_id=?`,
		name, email, dayPhone, evePhone, mobPhone, id)
	return err
}

func (r *CustomerRepo) UpdateAddress(id int, address1, address2, city, region, postalCode, country string, shippingRegionID int) error {
	_, err := r.db.Exec(`
	  UPDATE customer SET address_1=?, address_2=?, city=?, region=?, postal_code=?, country=?, shipping_region_id=?
	  WHERE customer_id=?`,
		address1, address2, city, region, postalCode, country, shippingRegionID, id)
	return err
}

func (r *CustomerRepo) UpdateCreditCard(id int, creditCard string) error {
	_, err := r.db.Exec(`UPDATE customer SET credit_card=? WHERE customer_id=?`, creditCard, id)
	return err
}
