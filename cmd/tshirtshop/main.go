package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"tshirtshop/internal/config"
	"tshirtshop/internal/http/handlers"
	applog "tshirtshop/internal/log"
	"tshirtshop/internal/mail"
	"tshirtshop/internal/payment"
	"tshirtshop/internal/repos"
	"tshirtshop/internal/token"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	codec := token.NewCodec(cfg.JWTKey)
	charger := payment.NewStripeCharger(cfg.StripeSecretKey)
	mailer := mail.NewSendGridMailer(cfg.SendGridAPIKey)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())

	deps := handlers.NewDeps(db, codec, charger, mailer, cfg.OrderConfirmURL)
	auth := handlers.Authenticate(codec)

	// Public: registration, login, cart-id generation, order confirmation
	app.Post("/customers", deps.CustomerHandler.Register)
	app.Post("/customers/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many attempts, retry later"})
		},
	}), deps.CustomerHandler.Login)
	app.Get("/shoppingcart/generateUniqueId", deps.CartHandler.GenerateUniqueID)
	app.Get("/order/status/:token", deps.OrderHandler.UpdateStatus)

	// Customer profile
	app.Get("/customer/:id", auth, deps.CustomerHandler.Profile)
	app.Put("/customer/:id", auth, deps.CustomerHandler.UpdateProfile)
	app.Put("/customer/address/:id", auth, deps.CustomerHandler.UpdateAddress)
	app.Put("/customer/creditCard/:id", auth, deps.CustomerHandler.UpdateCreditCard)

	// Catalog
	app.Get("/products", auth, deps.ProductHandler.List)
	app.Get("/products/search", auth, deps.ProductHandler.Search)
	app.Get("/products/inCategory/:category_id", auth, deps.ProductHandler.InCategory)
	app.Get("/products/inDepartment/:department_id", auth, deps.ProductHandler.InDepartment)
	app.Get("/products/:product_id/reviews", auth, deps.ProductHandler.Reviews)
	app.Post("/products/:product_id/reviews", auth, deps.ProductHandler.PostReview)
	app.Get("/products/:product_id/attributes", auth, deps.ProductHandler.Attributes)
	app.Get("/products/:product_id", auth, deps.ProductHandler.Get)

	app.Get("/departments", auth, deps.CatalogHandler.ListDepartments)
	app.Get("/departments/:id", auth, deps.CatalogHandler.GetDepartment)
	app.Get("/categories", auth, deps.CatalogHandler.ListCategories)
	app.Get("/categories/inDepartment/:department_id", auth, deps.CatalogHandler.CategoriesInDepartment)
	app.Get("/categories/:id", auth, deps.CatalogHandler.GetCategory)
	app.Get("/attributes", auth, deps.CatalogHandler.ListAttributes)
	app.Get("/attributes/:id/values", auth, deps.CatalogHandler.AttributeValues)
	app.Get("/attributes/:id", auth, deps.CatalogHandler.GetAttribute)
	app.Get("/tax", auth, deps.CatalogHandler.ListTaxes)
	app.Get("/tax/:id", auth, deps.CatalogHandler.GetTax)
	app.Get("/shipping/regions", auth, deps.CatalogHandler.ListShippingRegions)
	app.Get("/shipping/regions/:shipping_region_id", auth, deps.CatalogHandler.ShippingInRegion)

	// Cart
	app.Post("/shoppingcart/add", auth, deps.CartHandler.Add)
	app.Get("/shoppingcart/:cart_id", auth, deps.CartHandler.Get)
	app.Put("/shoppingcart/update/:item_id", auth, deps.CartHandler.Update)
	app.Delete("/shoppingcart/empty/:cart_id", auth, deps.CartHandler.Empty)
	app.Delete("/shoppingcart/removeProduct/:item_id", auth, deps.CartHandler.Remove)

	// Orders & checkout
	app.Post("/orders", auth, deps.OrderHandler.Create)
	app.Get("/orders/inCustomer/:customer_id", auth, deps.OrderHandler.InCustomer)
	app.Get("/orders/shortDetail/:order_id", auth, deps.OrderHandler.ShortDetail)
	app.Get("/orders/:order_id", auth, deps.OrderHandler.Summary)
	app.Post("/stripe/charge", auth, deps.OrderHandler.StripeCharge)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })

	log.Fatal(app.Listen(":" + cfg.Port))
}
