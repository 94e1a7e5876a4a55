// Package server exposes the pricing engine over HTTP for interactive use.
// It is presentation glue only: one request body of scalars in, one Result
// out, no state between requests.
package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contactkeval/option-lattice/internal/config"
	"github.com/contactkeval/option-lattice/internal/data"
	"github.com/contactkeval/option-lattice/internal/engine"
	"github.com/contactkeval/option-lattice/internal/logger"
)

type Server struct {
	base *config.Config
	prov data.Provider
}

// New builds a server around a base config. Posted scenarios replace the
// configured one; everything else (market settings, verbosity) stays.
func New(base *config.Config, prov data.Provider) *Server {
	return &Server{base: base, prov: prov}
}

// Router assembles the HTTP routes.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.POST("/price", s.handlePrice)
	return r
}

// handlePrice runs one full valuation for the posted scenario. An empty
// body prices the configured default scenario.
func (s *Server) handlePrice(c *gin.Context) {
	scenario := s.base.Scenario
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&scenario); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	cfg := *s.base
	cfg.Scenario = scenario

	res, err := engine.New(&cfg, s.prov).Run()
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, config.ErrInvalidParameters) {
			status = http.StatusBadRequest
		}
		logger.Errorf("price request failed: %v", err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

// Run blocks serving HTTP on addr.
func (s *Server) Run(addr string) error {
	logger.Infof("starting REST server on %s", addr)
	return s.Router().Run(addr)
}
