package app

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "staffhub/docs"
	"staffhub/internal/config"
	"staffhub/internal/handlers"
	"staffhub/internal/pdf"
	"staffhub/internal/repositories"
	"staffhub/internal/routes"
	"staffhub/internal/services"
)

func Run() {
	cfg := config.LoadConfig()

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("failed to open database: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()

	// === Repos ===
	userRepo := repositories.NewUserRepository(db)
	leadRepo := repositories.NewLeadRepository(db)
	bookingRepo := repositories.NewBookingRepository(db)
	supportRepo := repositories.NewSupportRepository(db)
	resourceRepo := repositories.NewResourceRepository(db)

	// === Services ===
	jwtSecret := []byte(cfg.Auth.JWTSecret)
	authService := services.NewAuthService(jwtSecret, time.Duration(cfg.Auth.AccessTTLMinutes)*time.Minute)
	emailService := services.NewEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
	)

	userService := services.NewUserService(userRepo, emailService, authService)
	leadService := services.NewLeadService(leadRepo)
	bookingService := services.NewBookingService(bookingRepo)
	supportService := services.NewSupportService(supportRepo)
	resourceService := services.NewResourceService(resourceRepo)

	statementGen := pdf.NewStatementGenerator("ByteBlitz Staff Hub")
	reportService := services.NewReportService(userRepo, leadRepo, bookingRepo, statementGen)

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(userService, authService)
	leadHandler := handlers.NewLeadHandler(leadService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	adminHandler := handlers.NewAdminHandler(userService, bookingService)
	supportHandler := handlers.NewSupportHandler(supportService)
	resourceHandler := handlers.NewResourceHandler(resourceService)
	reportHandler := handlers.NewReportHandler(reportService)

	// === Gin ===
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(
		router,
		jwtSecret,
		authHandler,
		leadHandler,
		bookingHandler,
		adminHandler,
		supportHandler,
		resourceHandler,
		reportHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("server listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("failed to start server: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
