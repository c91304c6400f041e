package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/musasahinkundakci/firebase-backend-recipe/config"
	"github.com/musasahinkundakci/firebase-backend-recipe/internal/api"
	"github.com/musasahinkundakci/firebase-backend-recipe/internal/middleware"
)

// Server wraps the HTTP server and its router.
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// New wires the router: CORS, the optional rate limiter, the health
// greeting and the recipe/auth route groups.
func New(cfg *config.Config, recipes *api.RecipeHandler, auth *api.AuthHandler, limiter *middleware.RateLimiter) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	if limiter != nil {
		router.Use(limiter.Middleware())
	}

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"msg": "recipe api is up"})
	})

	root := router.Group("/")
	recipes.RegisterRoutes(root)
	auth.RegisterRoutes(root)

	return &Server{
		router: router,
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: router,
		},
	}
}

// Router exposes the gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start blocks serving HTTP until Shutdown or a listener error.
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
