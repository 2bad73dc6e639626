package domain

type Customer struct {
	CustomerID       int    `db:"customer_id" json:"customer_id"`
	Name             string `db:"name" json:"name"`
	Email            string `db:"email" json:"email"`
	PasswordHash     string `db:"password" json:"-"`
	CreditCard       string `db:"credit_card" json:"credit_card"`
	Address1         string `db:"address_1" json:"address_1"`
	Address2         string `db:"address_2" json:"address_2"`
	City             string `db:"city" json:"city"`
	Region           string `db:"region" json:"region"`
	PostalCode       string `db:"postal_code" json:"postal_code"`
	Country          string `db:"country" json:"country"`
	ShippingRegionID int    `db:"shipping_region_id" json:"shipping_region_id"`
	DayPhone         string `db:"day_phone" json:"day_phone"`
	EvePhone         string `db:"eve_phone" json:"eve_phone"`
	MobPhone         string `db:"mob_phone" json:"mob_phone"`
}
