package api

import (
	"errors"
	"os"
	"strings"
)

func (s *Server) registerRoutes() error {
	if s == nil || s.router == nil {
		return nil
	}

	api := s.router.Group("/api")
	apiKey := strings.TrimSpace(os.Getenv("RAGBENCH_API_KEY"))
	if apiKey != "" {
		api.Use(apiKeyAuthMiddleware(apiKey))
	} else if strings.EqualFold(strings.TrimSpace(os.Getenv("RAGBENCH_DISABLE_AUTH")), "true") {
		// Explicitly allow unauthenticated access.
	} else {
		return errors.New("api: missing auth configuration: set RAGBENCH_API_KEY or set RAGBENCH_DISABLE_AUTH=true")
	}

	api.GET("/health", s.handleHealth)

	api.GET("/results", s.handleGetResults)
	api.GET("/results/:doc", s.handleGetDocument)
	api.PATCH("/results/:doc/questions/:question", s.handleAdjudicate)

	api.GET("/runs", s.handleListRuns)

	return nil
}
