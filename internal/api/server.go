package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"wooflow/internal/api/handlers"
	"wooflow/internal/api/middleware"
	"wooflow/internal/config"
	"wooflow/internal/database"
	"wooflow/internal/events"
	"wooflow/internal/logger"
	"wooflow/internal/woo"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

type Server struct {
	config *config.Config
	logger *logger.Logger
	db     *database.Database
	router *gin.Engine
	server *http.Server
}

func New(cfg *config.Config, logger *logger.Logger, db *database.Database, client *woo.Client, publisher *events.Publisher) *Server {
	// Set Gin mode
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))

	// Initialize handlers
	storeHandler := handlers.NewStoreHandler(client, logger)
	productHandler := handlers.NewProductHandler(client, logger, publisher)
	categoryHandler := handlers.NewCategoryHandler(client, logger)
	attributeHandler := handlers.NewAttributeHandler(client, logger)
	mediaHandler := handlers.NewMediaHandler(client, logger)
	importHandler := handlers.NewImportHandler(client, db, logger, publisher)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().UTC()})
	})

	// Routes
	v1 := router.Group("/api/v1")
	v1.Use(middleware.APIKeyAuth(cfg.APIKey))
	{
		// Store
		store := v1.Group("/store")
		{
			store.GET("/info", storeHandler.Info)
			store.GET("/orders", storeHandler.Orders)
		}

		// Products and variations
		products := v1.Group("/products")
		{
			products.GET("", productHandler.List)
			products.GET("/:id", productHandler.Get)
			products.POST("", productHandler.Create)
			products.PUT("/:id", productHandler.Update)
			products.DELETE("/:id", productHandler.Delete)

			products.GET("/:id/variations", productHandler.ListVariations)
			products.GET("/:id/variations/:variation_id", productHandler.GetVariation)
			products.POST("/:id/variations", productHandler.CreateVariation)
			products.PUT("/:id/variations/:variation_id", productHandler.UpdateVariation)
			products.DELETE("/:id/variations/:variation_id", productHandler.DeleteVariation)
		}

		// Categories
		categories := v1.Group("/categories")
		{
			categories.GET("", categoryHandler.List)
			categories.GET("/:id", categoryHandler.Get)
			categories.POST("", categoryHandler.Create)
			categories.PUT("/:id", categoryHandler.Update)
			categories.DELETE("/:id", categoryHandler.Delete)
			categories.GET("/:id/hierarchy", categoryHandler.Hierarchy)
			categories.POST("/tree", categoryHandler.Tree)
		}

		// Attributes
		attributes := v1.Group("/attributes")
		{
			attributes.GET("", attributeHandler.List)
			attributes.GET("/:id", attributeHandler.Get)
			attributes.POST("", attributeHandler.Create)
			attributes.DELETE("/:id", attributeHandler.Delete)
			attributes.GET("/:id/terms", attributeHandler.ListTerms)
			attributes.POST("/:id/terms", attributeHandler.CreateTerm)
		}

		// Media
		media := v1.Group("/media")
		{
			media.POST("", mediaHandler.Create)
			media.POST("/upload", mediaHandler.Upload)
			media.GET("/:id", mediaHandler.Get)
			media.DELETE("/:id", mediaHandler.Delete)
		}

		// Imports
		imports := v1.Group("/import")
		{
			imports.POST("/csv", importHandler.ImportCSV)
			imports.POST("/products", importHandler.ImportList)
		}
		v1.GET("/imports", importHandler.ListRuns)
		v1.GET("/imports/:id", importHandler.GetRun)
	}

	return &Server{
		config: cfg,
		logger: logger,
		db:     db,
		router: router,
	}
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%s", s.config.APIHost, s.config.APIPort)

	// CORS sits outside gin so preflight requests skip the auth middleware.
	handler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-API-Key"},
		AllowCredentials: false,
	}).Handler(s.router)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("Starting server on " + addr)
	return s.server.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	return s.server.Shutdown(ctx)
}

// Router exposes the underlying engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
