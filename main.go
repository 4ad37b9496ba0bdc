package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"morisbiz/config"
	"morisbiz/database"
	analyticsRepoPkg "morisbiz/database/repository/analytics"
	businessRepoPkg "morisbiz/database/repository/business"
	contactRepoPkg "morisbiz/database/repository/contact"
	propertyRepoPkg "morisbiz/database/repository/property"
	"morisbiz/handlers"
	"morisbiz/middleware"
	"morisbiz/routes"
	"morisbiz/services/admin"
	"morisbiz/services/analytics"
	"morisbiz/services/contact"
	"morisbiz/services/directory"
	"morisbiz/services/realestate"
	"morisbiz/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories. The database handle is constructed here and passed in;
	// repositories never reach for a global client.
	db := database.DB()
	businessRepo := businessRepoPkg.NewMongoBusinessRepo(db)
	propertyRepo := propertyRepoPkg.NewMongoPropertyRepo(db)
	contactRepo := contactRepoPkg.NewMongoContactRepo(db)
	analyticsRepo := analyticsRepoPkg.NewMongoAnalyticsRepo(db)

	// Services.
	directoryService := &directory.DefaultDirectoryService{
		Repo: businessRepo,
	}
	realEstateService := &realestate.DefaultRealEstateService{
		Repo: propertyRepo,
	}
	contactService := &contact.DefaultContactService{
		Repo: contactRepo,
	}
	analyticsService := &analytics.DefaultAnalyticsService{
		Repo: analyticsRepo,
	}
	adminService := &admin.DefaultAdminService{
		Businesses: businessRepo,
		Properties: propertyRepo,
		Analytics:  analyticsRepo,
		Cache:      utils.GetCacheClient(),
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Business:  handlers.NewBusinessHandler(directoryService, analyticsService),
		Property:  handlers.NewPropertyHandler(realEstateService),
		Contact:   handlers.NewContactHandler(contactService),
		Analytics: handlers.NewAnalyticsHandler(analyticsService),
		Admin:     handlers.NewAdminHandler(adminService, directoryService, contactService, analyticsService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
