package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"lightsup/internal/auth"
	"lightsup/internal/calculator"
	"lightsup/internal/notify"
	"lightsup/internal/storage"
)

type Server struct {
	router   *gin.Engine
	server   *http.Server
	db       *storage.Database
	notifier *notify.Publisher
	auth     *auth.Manager
	rates    calculator.Rates
	port     int
}

type ServerConfig struct {
	Port     int
	Database *storage.Database
	Notifier *notify.Publisher
	Auth     *auth.Manager
	Rates    calculator.Rates
}

func NewServer(cfg ServerConfig) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	s := &Server{
		router:   router,
		db:       cfg.Database,
		notifier: cfg.Notifier,
		auth:     cfg.Auth,
		rates:    cfg.Rates,
		port:     cfg.Port,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", s.healthHandler)

	// Public API routes
	api := s.router.Group("/api/v1")
	{
		api.GET("/calculator/catalog", s.catalogHandler)
		api.POST("/calculator/sizing", s.sizingHandler)
		api.POST("/calculator/bill-estimate", s.billEstimateHandler)

		api.POST("/quotes", s.submitQuoteHandler)

		api.GET("/testimonials", s.listTestimonialsHandler)
		api.POST("/testimonials", s.submitTestimonialHandler)

		api.GET("/posts", s.listPostsHandler)
		api.GET("/posts/:id", s.getPostHandler)

		api.GET("/projects", s.listProjectsHandler)

		api.POST("/admin/login", s.loginHandler)
	}

	// Admin routes
	admin := s.router.Group("/api/v1/admin", s.auth.Middleware())
	{
		admin.GET("/quotes", s.adminListQuotesHandler)
		admin.GET("/quotes/:id", s.adminGetQuoteHandler)
		admin.PATCH("/quotes/:id/status", s.adminUpdateQuoteStatusHandler)
		admin.DELETE("/quotes/:id", s.adminDeleteQuoteHandler)
		admin.GET("/export/quotes.csv", s.adminExportQuotesCSVHandler)
		admin.GET("/export/quotes.pdf", s.adminExportQuotesPDFHandler)

		admin.GET("/testimonials", s.adminListTestimonialsHandler)
		admin.PATCH("/testimonials/:id/approval", s.adminSetTestimonialApprovalHandler)
		admin.DELETE("/testimonials/:id", s.adminDeleteTestimonialHandler)

		admin.GET("/posts", s.adminListPostsHandler)
		admin.POST("/posts", s.adminCreatePostHandler)
		admin.PUT("/posts/:id", s.adminUpdatePostHandler)
		admin.DELETE("/posts/:id", s.adminDeletePostHandler)

		admin.POST("/projects", s.adminCreateProjectHandler)
		admin.PUT("/projects/:id", s.adminUpdateProjectHandler)
		admin.DELETE("/projects/:id", s.adminDeleteProjectHandler)
		admin.GET("/export/projects.csv", s.adminExportProjectsCSVHandler)
		admin.GET("/export/projects.pdf", s.adminExportProjectsPDFHandler)
	}
}

func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: s.router,
	}

	log.Printf("API server starting on port %d", s.port)
	return s.server.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":             "healthy",
		"notifier_connected": s.notifier != nil && s.notifier.IsConnected(),
		"timestamp":          time.Now(),
	})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
