package main

import (
	"log"
	"os"
	"time"

	"github.com/dbenson457/cake-solution/internal/controllers/http"
	mmysql "github.com/dbenson457/cake-solution/internal/infra/mysql"
	"github.com/dbenson457/cake-solution/internal/infra/rabbitmq"
	mysqlrepo "github.com/dbenson457/cake-solution/internal/repository/mysql"
	"github.com/dbenson457/cake-solution/internal/services"
	"github.com/dbenson457/cake-solution/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, relying on process environment")
	}

	db, err := mmysql.NewMySQLFromEnv()
	if err != nil {
		log.Fatalf("db: connect: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	productRepo := mysqlrepo.NewProductRepository(db)
	discountRepo := mysqlrepo.NewDiscountRepository(db)
	orderRepo := mysqlrepo.NewOrderRepository(db)
	checkoutStore := mysqlrepo.NewCheckoutStore(db)

	publisher, err := rabbitmq.NewPublisher(os.Getenv("RABBITMQ_URL"), "order.exchange")
	if err != nil {
		log.Fatalf("failed to init publisher: %v", err)
	}
	defer publisher.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:         os.Getenv("REDIS_HOST") + ":6379",
		DB:           0,
		PoolSize:     50,
		MinIdleConns: 10,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})

	sessions := session.NewRedisStore(redisClient, 24*time.Hour)

	cartSvc := services.NewCartService(productRepo, sessions)
	cartSvc.SetRedisClient(redisClient)
	pricing := services.NewPricingEngine(productRepo)
	discountSvc := services.NewDiscountService(discountRepo, sessions)
	checkoutSvc := services.NewCheckoutService(checkoutStore, sessions, pricing, publisher)
	orderSvc := services.NewOrderService(orderRepo)

	handler := http.NewHandler(cartSvc, pricing, discountSvc, checkoutSvc, orderSvc)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	handler.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting cart service on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
