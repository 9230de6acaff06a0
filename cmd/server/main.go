// cmd/server/main.go
package main

import (
	"context"
	"log"

	"github.com/slmn-lf/east-store-sub000/internal/artwork"
	"github.com/slmn-lf/east-store-sub000/internal/auth"
	"github.com/slmn-lf/east-store-sub000/internal/config"
	"github.com/slmn-lf/east-store-sub000/internal/content"
	"github.com/slmn-lf/east-store-sub000/internal/messaging"
	"github.com/slmn-lf/east-store-sub000/internal/middlewares"
	"github.com/slmn-lf/east-store-sub000/internal/payment"
	paymenthandler "github.com/slmn-lf/east-store-sub000/internal/payment/handler"
	paymentrepo "github.com/slmn-lf/east-store-sub000/internal/payment/repository"
	paymentservice "github.com/slmn-lf/east-store-sub000/internal/payment/service"
	"github.com/slmn-lf/east-store-sub000/internal/preorder"
	preorderhandler "github.com/slmn-lf/east-store-sub000/internal/preorder/handler"
	preorderrepo "github.com/slmn-lf/east-store-sub000/internal/preorder/repository"
	preorderservice "github.com/slmn-lf/east-store-sub000/internal/preorder/service"
	"github.com/slmn-lf/east-store-sub000/internal/product"
	producthandler "github.com/slmn-lf/east-store-sub000/internal/product/handler"
	productrepo "github.com/slmn-lf/east-store-sub000/internal/product/repository"
	productservice "github.com/slmn-lf/east-store-sub000/internal/product/service"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var ctx = context.Background()

func main() {
	log.Println("Starting east-store service...")

	cfg := config.Load()

	// === 1. KONEKSI DATABASE ===
	if cfg.DatabaseURL == "" {
		log.Fatalf("DATABASE_URL environment variable is not set")
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Database connection established.")

	log.Println("Running AutoMigration...")
	if err := db.AutoMigrate(
		&product.Product{},
		&product.SizeChart{},
		&preorder.Preorder{},
		&payment.Payment{},
		&artwork.Artwork{},
		&content.Setting{},
		&content.ContactMessage{},
	); err != nil {
		log.Fatalf("AutoMigration failed: %v", err)
	}

	// === 2. CACHE (REDIS) ===
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	log.Println("Redis connection established.")

	// === 3. MESSAGE BROKER (RABBITMQ) ===
	// Tanpa RABBITMQ_URL service tetap berjalan dengan publisher no-op.
	publisher := messaging.NewNopPublisher()
	if cfg.AMQPURL != "" {
		conn, err := amqp.Dial(cfg.AMQPURL)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer conn.Close()

		ch, err := conn.Channel()
		if err != nil {
			log.Fatalf("Failed to open RabbitMQ channel: %v", err)
		}
		defer ch.Close()
		log.Println("RabbitMQ connection established.")

		if err := messaging.DeclareExchange(ch); err != nil {
			log.Fatalf("Failed to declare '%s': %v", messaging.Exchange, err)
		}

		go messaging.StartEventLogger(ch)
		publisher = messaging.NewAMQPPublisher(ch)
	} else {
		log.Println("RABBITMQ_URL not set, event publishing disabled.")
	}

	// === 4. ARSITEKTUR (Repository -> Service -> Handler) ===
	productRepository := productrepo.NewProductRepository(db)
	preorderRepository := preorderrepo.NewPreorderRepository(db)
	paymentRepository := paymentrepo.NewPaymentRepository(db)
	artworkRepository := artwork.NewRepository(db)
	contentRepository := content.NewRepository(db)

	productSvc := productservice.NewProductService(productRepository, rdb)
	preorderSvc := preorderservice.NewPreorderService(preorderRepository, productRepository, publisher)
	paymentSvc := paymentservice.NewPaymentService(paymentRepository, publisher)
	artworkSvc := artwork.NewService(artworkRepository, rdb)
	authSvc := auth.NewService(cfg)

	productHandler := producthandler.NewProductHandler(productSvc)
	preorderHandler := preorderhandler.NewPreorderHandler(preorderSvc)
	paymentHandler := paymenthandler.NewPaymentHandler(paymentSvc)
	artworkHandler := artwork.NewHandler(artworkSvc)
	contentHandler := content.NewHandler(contentRepository)
	authHandler := auth.NewHandler(authSvc)

	// === 5. ROUTER ===
	preorder.RegisterValidators()

	router := gin.Default()
	router.SetTrustedProxies(nil)
	router.Use(middlewares.PrometheusMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	{
		// Rute storefront (publik)
		api.GET("/products", productHandler.List)
		api.GET("/products/:slug", productHandler.GetBySlug)
		api.GET("/products/:slug/size-charts", productHandler.SizeChartsBySlug)
		api.GET("/artworks", artworkHandler.List)
		api.GET("/settings", contentHandler.Settings)
		api.POST("/preorders", preorderHandler.Create)
		api.POST("/contact", contentHandler.SubmitContact)

		// Rute admin
		api.POST("/admin/login", authHandler.Login)

		admin := api.Group("/admin", auth.Middleware(authSvc))
		{
			admin.POST("/products", productHandler.Create)
			admin.PUT("/products/:id", productHandler.Update)
			admin.DELETE("/products/:id", productHandler.Delete)
			admin.POST("/products/:id/size-charts", productHandler.AddSizeChart)
			admin.DELETE("/size-charts/:id", productHandler.RemoveSizeChart)

			admin.POST("/artworks", artworkHandler.Create)
			admin.DELETE("/artworks/:id", artworkHandler.Delete)

			admin.GET("/settings", contentHandler.Settings)
			admin.PUT("/settings/:key", contentHandler.UpdateSetting)
			admin.GET("/contact-messages", contentHandler.Messages)
			admin.DELETE("/contact-messages/:id", contentHandler.DeleteMessage)

			admin.GET("/preorders", preorderHandler.List)
			admin.POST("/preorders/:id/confirm", preorderHandler.Confirm)
			admin.DELETE("/preorders/:id", preorderHandler.Delete)

			admin.GET("/payments", paymentHandler.List)
			admin.GET("/payments/export", paymentHandler.Export)
			admin.PUT("/payments/:id", paymentHandler.Apply)
		}
	}

	log.Printf("east-store service is running on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Could not start server: %v", err)
	}
}
