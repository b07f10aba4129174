package main

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/everestbeauty/storefront-backend/internal/address"
	"github.com/everestbeauty/storefront-backend/internal/banner"
	"github.com/everestbeauty/storefront-backend/internal/cart"
	"github.com/everestbeauty/storefront-backend/internal/category"
	"github.com/everestbeauty/storefront-backend/internal/config"
	"github.com/everestbeauty/storefront-backend/internal/dashboard"
	"github.com/everestbeauty/storefront-backend/internal/mailer"
	"github.com/everestbeauty/storefront-backend/internal/order"
	"github.com/everestbeauty/storefront-backend/internal/product"
	"github.com/everestbeauty/storefront-backend/internal/review"
	"github.com/everestbeauty/storefront-backend/internal/user"
	"github.com/everestbeauty/storefront-backend/internal/wishlist"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLog)

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()
	ensureSchema(db)

	var m mailer.Mailer = mailer.Nop{}
	if cfg.SendGridAPIKey != "" {
		m = mailer.NewSendGridMailer(cfg.SendGridAPIKey, cfg.FromEmail, cfg.SupportEmail, cfg.BrandName)
	}

	userService := user.NewService(user.NewPostgresRepository(db))
	userHandler := user.NewHandler(userService)

	productService := product.NewService(product.NewPostgresRepository(db))
	productHandler := product.NewHandler(productService)

	cartService := cart.NewService(cart.NewPostgresRepository(db), productService)
	cartHandler := cart.NewHandler(cartService)

	orderService := order.NewService(order.NewPostgresRepository(db), cartService, m)
	orderHandler := order.NewHandler(orderService, userService)

	reviewService := review.NewService(review.NewPostgresRepository(db), productService, orderService)
	reviewHandler := review.NewHandler(reviewService)

	wishlistService := wishlist.NewService(wishlist.NewPostgresRepository(db), productService)
	wishlistHandler := wishlist.NewHandler(wishlistService)

	addressHandler := address.NewHandler(address.NewService(address.NewPostgresRepository(db)))
	categoryHandler := category.NewHandler(category.NewService(category.NewPostgresRepository(db)))
	bannerHandler := banner.NewHandler(banner.NewService(banner.NewPostgresRepository(db)))

	dashboardService := dashboard.NewService(dashboard.NewPostgresRepository(db), cartService, wishlistService)
	dashboardHandler := dashboard.NewHandler(dashboardService, userService)

	// public surface: everything a guest can reach, including the session cart
	userHandler.RegisterPublicRoutes(app)
	productHandler.RegisterPublicRoutes(app)
	categoryHandler.RegisterPublicRoutes(app)
	bannerHandler.RegisterPublicRoutes(app)
	reviewHandler.RegisterPublicRoutes(app)
	cartHandler.RegisterPublicRoutes(app)
	dashboardHandler.RegisterPublicRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))

	userHandler.RegisterProtectedRoutes(app)
	productHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)
	reviewHandler.RegisterProtectedRoutes(app)
	wishlistHandler.RegisterProtectedRoutes(app)
	addressHandler.RegisterProtectedRoutes(app)
	dashboardHandler.RegisterProtectedRoutes(app)

	if err := app.Listen(cfg.Addr); err != nil {
		panic(err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:3000",
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))
}

func requestLog(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	fmt.Printf("%s %s -> %d (%v)\n", c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
	return err
}

func mustOpenDB(dbURL string) *sql.DB {
	if dbURL == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}

// ensureSchema creates every table the app touches so a fresh database works
// without a separate migration step. Timestamps are stored as RFC3339 text.
func ensureSchema(db *sql.DB) {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			user_id SERIAL PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			first_name TEXT NOT NULL DEFAULT '',
			last_name TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			gender TEXT NOT NULL DEFAULT '',
			skin_type TEXT,
			skin_concerns TEXT,
			date_of_birth TEXT,
			is_admin BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			product_id SERIAL PRIMARY KEY,
			sku TEXT NOT NULL UNIQUE,
			slug TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			brand_id INT,
			category_id INT,
			price DOUBLE PRECISION NOT NULL DEFAULT 0,
			discount_price DOUBLE PRECISION,
			image TEXT,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			is_featured BOOLEAN NOT NULL DEFAULT FALSE,
			is_bestseller BOOLEAN NOT NULL DEFAULT FALSE,
			is_new_arrival BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			category_id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			slug TEXT NOT NULL UNIQUE,
			description TEXT,
			image TEXT,
			sort_order INT
		)`,
		`CREATE TABLE IF NOT EXISTS brands (
			brand_id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			slug TEXT NOT NULL UNIQUE,
			logo TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS carts (
			cart_id SERIAL PRIMARY KEY,
			user_id INT,
			session_key TEXT,
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS carts_user_key ON carts (user_id) WHERE user_id IS NOT NULL`,
		`CREATE UNIQUE INDEX IF NOT EXISTS carts_session_key ON carts (session_key) WHERE session_key IS NOT NULL`,
		`CREATE TABLE IF NOT EXISTS cart_items (
			item_id SERIAL PRIMARY KEY,
			cart_id INT NOT NULL,
			product_id INT NOT NULL,
			quantity INT NOT NULL DEFAULT 1,
			CONSTRAINT cart_items_cart_product_key UNIQUE (cart_id, product_id)
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			order_id SERIAL PRIMARY KEY,
			order_number TEXT NOT NULL UNIQUE,
			user_id INT NOT NULL,
			status TEXT NOT NULL,
			total_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
			shipping_address TEXT NOT NULL DEFAULT '',
			shipping_phone TEXT NOT NULL DEFAULT '',
			shipping_email TEXT NOT NULL DEFAULT '',
			payment_method TEXT NOT NULL DEFAULT '',
			payment_status TEXT NOT NULL DEFAULT '',
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			item_id SERIAL PRIMARY KEY,
			order_id INT NOT NULL,
			product_name TEXT NOT NULL,
			product_sku TEXT NOT NULL,
			quantity INT NOT NULL,
			unit_price DOUBLE PRECISION NOT NULL,
			total_price DOUBLE PRECISION NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS shipping_addresses (
			address_id SERIAL PRIMARY KEY,
			user_id INT NOT NULL,
			full_name TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			address_line1 TEXT NOT NULL DEFAULT '',
			address_line2 TEXT,
			city TEXT NOT NULL DEFAULT '',
			state TEXT NOT NULL DEFAULT '',
			postal_code TEXT,
			country TEXT NOT NULL DEFAULT '',
			is_default BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS reviews (
			review_id SERIAL PRIMARY KEY,
			user_id INT NOT NULL,
			product_id INT NOT NULL,
			rating INT NOT NULL,
			title TEXT NOT NULL,
			comment TEXT NOT NULL,
			is_verified_purchase BOOLEAN NOT NULL DEFAULT FALSE,
			helpful_votes INT NOT NULL DEFAULT 0,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TEXT,
			updated_at TEXT,
			CONSTRAINT reviews_user_product_key UNIQUE (user_id, product_id)
		)`,
		`CREATE TABLE IF NOT EXISTS review_votes (
			vote_id SERIAL PRIMARY KEY,
			user_id INT NOT NULL,
			review_id INT NOT NULL,
			vote_type TEXT NOT NULL,
			CONSTRAINT review_votes_user_review_key UNIQUE (user_id, review_id)
		)`,
		`CREATE TABLE IF NOT EXISTS wishlist (
			wishlist_id SERIAL PRIMARY KEY,
			user_id INT NOT NULL,
			product_id INT NOT NULL,
			added_at TEXT,
			CONSTRAINT wishlist_user_product_key UNIQUE (user_id, product_id)
		)`,
		`CREATE TABLE IF NOT EXISTS banners (
			banner_id SERIAL PRIMARY KEY,
			title TEXT NOT NULL DEFAULT '',
			subtitle TEXT,
			image TEXT,
			link TEXT,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			starts_at TEXT NOT NULL DEFAULT '',
			ends_at TEXT NOT NULL DEFAULT '',
			sort_order INT
		)`,
		`CREATE TABLE IF NOT EXISTS contact_messages (
			contact_id SERIAL PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL DEFAULT '',
			subject TEXT NOT NULL,
			message TEXT NOT NULL,
			created_at TEXT
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			panic(err)
		}
	}
}
