package handlers

import (
	"tshirtshop/internal/mail"
	"tshirtshop/internal/payment"
	"tshirtshop/internal/repos"
	"tshirtshop/internal/services"
	"tshirtshop/internal/token"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	CustomerHandler *CustomerHandler
	ProductHandler  *ProductHandler
	CatalogHandler  *CatalogHandler
	CartHandler     *CartHandler
	OrderHandler    *OrderHandler
}

func NewDeps(db *sqlx.DB, codec *token.Codec, pay payment.Charger, mailer mail.Mailer, confirmURL string) *Deps {
	customerRepo := repos.NewCustomerRepo(db)
	productRepo := repos.NewProductRepo(db)
	catalogRepo := repos.NewCatalogRepo(db)
	reviewRepo := repos.NewReviewRepo(db)
	cartRepo := repos.NewCartRepo(db)
	orderRepo := repos.NewOrderRepo(db)

	authSvc := services.NewAuthService(customerRepo, codec)
	catalogSvc := services.NewCatalogService(productRepo, catalogRepo, reviewRepo)
	cartSvc := services.NewCartService(cartRepo, productRepo)
	orderSvc := services.NewOrderService(orderRepo, codec, pay, mailer, confirmURL)

	return &Deps{
		CustomerHandler: &CustomerHandler{Auth: authSvc},
		ProductHandler:  &ProductHandler{Catalog: catalogSvc},
		CatalogHandler:  &CatalogHandler{Catalog: catalogSvc},
		CartHandler:     &CartHandler{Cart: cartSvc},
		OrderHandler:    &OrderHandler{Orders: orderSvc},
	}
}
