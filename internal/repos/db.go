package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed the demo catalog if the DB is empty (idempotent; safe on every start)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Catalog
CREATE TABLE IF NOT EXISTS department(
  department_id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS category(
  category_id INTEGER PRIMARY KEY AUTOINCREMENT,
  department_id INTEGER NOT NULL REFERENCES department(department_id) ON DELETE RESTRICT,
  name TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_category_department ON category(department_id);

-- Prices are fixed two-decimal strings; all arithmetic happens in Go with
-- decimal math.
CREATE TABLE IF NOT EXISTS product(
  product_id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  price TEXT NOT NULL,
  discounted_price TEXT NOT NULL DEFAULT '0.00',
  image TEXT NOT NULL DEFAULT '',
  image_2 TEXT NOT NULL DEFAULT '',
  thumbnail TEXT NOT NULL DEFAULT '',
  display INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_product_name ON product(LOWER(name));

CREATE TABLE IF NOT EXISTS product_category(
  product_id INTEGER NOT NULL REFERENCES product(product_id) ON DELETE CASCADE,
  category_id INTEGER NOT NULL REFERENCES category(category_id) ON DELETE CASCADE,
  PRIMARY KEY (product_id, category_id)
);

-- Attribute metadata: a value belongs to exactly one attribute
CREATE TABLE IF NOT EXISTS attribute(
  attribute_id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS attribute_value(
  attribute_value_id INTEGER PRIMARY KEY AUTOINCREMENT,
  attribute_id INTEGER NOT NULL REFERENCES attribute(attribute_id) ON DELETE CASCADE,
  value TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_attribute_value_attribute ON attribute_value(attribute_id);

CREATE TABLE IF NOT EXISTS product_attribute(
  product_id INTEGER NOT NULL REFERENCES product(product_id) ON DELETE CASCADE,
  attribute_value_id INTEGER NOT NULL REFERENCES attribute_value(attribute_value_id) ON DELETE CASCADE,
  PRIMARY KEY (product_id, attribute_value_id)
);

-- Customers
CREATE TABLE IF NOT EXISTS customer(
  customer_id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE,
  password TEXT NOT NULL,
  credit_card TEXT NOT NULL DEFAULT '',
  address_1 TEXT NOT NULL DEFAULT '',
  address_2 TEXT NOT NULL DEFAULT '',
  city TEXT NOT NULL DEFAULT '',
  region TEXT NOT NULL DEFAULT '',
  postal_code TEXT NOT NULL DEFAULT '',
  country TEXT NOT NULL DEFAULT '',
  shipping_region_id INTEGER NOT NULL DEFAULT 1,
  day_phone TEXT NOT NULL DEFAULT '',
  eve_phone TEXT NOT NULL DEFAULT '',
  mob_phone TEXT NOT NULL DEFAULT ''
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_customer_email ON customer(LOWER(email));

-- Shipping & tax reference data
CREATE TABLE IF NOT EXISTS shipping_region(
  shipping_region_id INTEGER PRIMARY KEY AUTOINCREMENT,
  shipping_region TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS shipping(
  shipping_id INTEGER PRIMARY KEY AUTOINCREMENT,
  shipping_type TEXT NOT NULL,
  shipping_cost TEXT NOT NULL,
  shipping_region_id INTEGER NOT NULL REFERENCES shipping_region(shipping_region_id)
);

CREATE TABLE IF NOT EXISTS tax(
  tax_id INTEGER PRIMARY KEY AUTOINCREMENT,
  tax_type TEXT NOT NULL,
  tax_percentage TEXT NOT NULL
);

-- Carts: cart_id is an opaque 32-char session key generated client-side
CREATE TABLE IF NOT EXISTS shopping_cart(
  item_id INTEGER PRIMARY KEY AUTOINCREMENT,
  cart_id TEXT NOT NULL,
  product_id INTEGER NOT NULL REFERENCES product(product_id) ON DELETE RESTRICT,
  attributes TEXT NOT NULL DEFAULT '',
  quantity INTEGER NOT NULL CHECK (quantity >= 1),
  buy_now INTEGER NOT NULL DEFAULT 1,
  added_on TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_shopping_cart_cart ON shopping_cart(cart_id);

-- Orders
CREATE TABLE IF NOT EXISTS orders(
  order_id INTEGER PRIMARY KEY AUTOINCREMENT,
  total_amount TEXT NOT NULL DEFAULT '0.00',
  created_on TEXT DEFAULT CURRENT_TIMESTAMP,
  shipped_on TEXT NOT NULL DEFAULT '',
  status INTEGER NOT NULL DEFAULT 0,
  comments TEXT NOT NULL DEFAULT '',
  customer_id INTEGER NOT NULL REFERENCES customer(customer_id),
  auth_code TEXT NOT NULL DEFAULT '',
  reference TEXT NOT NULL DEFAULT '',
  shipping_id INTEGER NOT NULL REFERENCES shipping(shipping_id),
  tax_id INTEGER NOT NULL REFERENCES tax(tax_id)
);
CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders(customer_id);

CREATE TABLE IF NOT EXISTS order_detail(
  item_id INTEGER PRIMARY KEY AUTOINCREMENT,
  order_id INTEGER NOT NULL REFERENCES orders(order_id) ON DELETE CASCADE,
  product_id INTEGER NOT NULL,
  attributes TEXT NOT NULL DEFAULT '',
  product_name TEXT NOT NULL,
  quantity INTEGER NOT NULL,
  unit_cost TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_order_detail_order ON order_detail(order_id);

-- Reviews: at most one per (customer, product)
CREATE TABLE IF NOT EXISTS review(
  review_id INTEGER PRIMARY KEY AUTOINCREMENT,
  customer_id INTEGER NOT NULL REFERENCES customer(customer_id),
  product_id INTEGER NOT NULL REFERENCES product(product_id),
  review TEXT NOT NULL,
  rating INTEGER NOT NULL DEFAULT 0,
  created_on TEXT DEFAULT CURRENT_TIMESTAMP,
  UNIQUE (customer_id, product_id)
);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM department`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo catalog")

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	tx.MustExec(`INSERT INTO department(department_id,name,description) VALUES
	  (1,'Regional','Proud of your country? Wear a T-shirt with a national symbol stamp!'),
	  (2,'Nature','Find beautiful T-shirts with animals and flowers in our Nature department!'),
	  (3,'Seasonal','Each time of the year has a special flavor. Our seasonal T-shirts express traditional symbols.')`)

	tx.MustExec(`INSERT INTO category(category_id,department_id,name,description) VALUES
	  (1,1,'French','The French have always had an eye for beauty.'),
	  (2,1,'Italian','The full and resplendent treasure chest of art and history.'),
	  (3,1,'Irish','It was Churchill who remarked that he thought the Irish most curious.'),
	  (4,2,'Animal','Our ever-growing selection of beautiful animal T-shirts.'),
	  (5,2,'Flower','These unique and beautiful flower T-shirts are just the item.'),
	  (6,3,'Christmas','Because this is a unique time of year.'),
	  (7,3,'Valentine''s','For the more timid, all you have to do is wear your heartfelt message.')`)

	tx.MustExec(`INSERT INTO product(product_id,name,description,price,discounted_price,image,image_2,thumbnail,display) VALUES
	  (1,'Arc d''Triomphe','This beautiful and iconic T-shirt will no doubt lead you to your own triumph.','14.99','0.00','arc-d-triomphe.gif','arc-d-triomphe-2.gif','arc-d-triomphe-thumbnail.gif',0),
	  (2,'Chartres Cathedral','"The.. peculiar architecture of this shirt sets it apart."','16.95','15.95','chartres-cathedral.gif','chartres-cathedral-2.gif','chartres-cathedral-thumbnail.gif',2),
	  (3,'Coat of Arms','There''s good reason why the ship plays a prominent part on this shirt.','14.50','0.00','coat-of-arms.gif','coat-of-arms-2.gif','coat-of-arms-thumbnail.gif',0),
	  (4,'Gallic Cock','This fancy chicken is perhaps the most beloved of all French symbols.','18.99','16.99','gallic-cock.gif','gallic-cock-2.gif','gallic-cock-thumbnail.gif',2),
	  (5,'Alsace','It was in this region of France that Gutenberg perfected his movable type.','16.50','0.00','alsace.gif','alsace-2.gif','alsace-thumbnail.gif',0),
	  (6,'Haute Couture','This shirt captures the classic chic of the Parisian fashion scene.','15.99','14.95','haute-couture.gif','haute-couture-2.gif','haute-couture-thumbnail.gif',3),
	  (7,'Italia','The Italian National Football Team wore the azzurri blue since 1911.','22.00','18.99','italia.gif','italia-2.gif','italia-thumbnail.gif',2),
	  (8,'Hunt','A scene from the Book of Kells, one of Ireland''s most cherished artifacts.','16.99','15.99','hunt.gif','hunt-2.gif','hunt-thumbnail.gif',2)`)

	tx.MustExec(`INSERT INTO product_category(product_id,category_id) VALUES
	  (1,1),(2,1),(3,3),(4,1),(5,1),(6,1),(7,2),(8,3)`)

	tx.MustExec(`INSERT INTO attribute(attribute_id,name) VALUES (1,'Size'),(2,'Color')`)

	tx.MustExec(`INSERT INTO attribute_value(attribute_value_id,attribute_id,value) VALUES
	  (1,1,'S'),(2,1,'M'),(3,1,'L'),(4,1,'XL'),(5,1,'XXL'),
	  (6,2,'White'),(7,2,'Black'),(8,2,'Red'),(9,2,'Orange'),(10,2,'Green')`)

	tx.MustExec(`INSERT INTO product_attribute(product_id,attribute_value_id) VALUES
	  (1,1),(1,2),(1,3),(1,6),(1,7),
	  (2,2),(2,3),(2,4),(2,8),
	  (3,1),(3,3),(3,10),
	  (4,2),(4,3),(4,6),(4,8)`)

	tx.MustExec(`INSERT INTO shipping_region(shipping_region_id,shipping_region) VALUES
	  (1,'Please Select'),(2,'US / Canada'),(3,'Europe'),(4,'Rest of World')`)

	tx.MustExec(`INSERT INTO shipping(shipping_id,shipping_type,shipping_cost,shipping_region_id) VALUES
	  (1,'Next Day Delivery ($20)','20.00',2),
	  (2,'3-4 Days ($10)','10.00',2),
	  (3,'7 Days ($5)','5.00',2),
	  (4,'By air (7 days, $25)','25.00',3),
	  (5,'By sea (28 days, $10)','10.00',3),
	  (6,'By air (10 days, $35)','35.00',4),
	  (7,'By sea (33 days, $10)','10.00',4)`)

	tx.MustExec(`INSERT INTO tax(tax_id,tax_type,tax_percentage) VALUES
	  (1,'Sales Tax at 8.5%','8.50'),
	  (2,'No Tax','0.00')`)

	return tx.Commit()
}
