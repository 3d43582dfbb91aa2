// Package api serves benchmark results for human review. The result
// file is the source of truth; the server re-reads it per request and
// writes adjudication edits back through the same atomic writer the
// benchmark uses.
package api

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/stellarlinkco/rag-bench/internal/history"
	"github.com/stellarlinkco/rag-bench/internal/result"
)

type Server struct {
	router     *gin.Engine
	resultPath string
	writer     *result.Writer
	history    *history.Store
}

func NewServer(resultPath string, hist *history.Store) (*Server, error) {
	resultPath = strings.TrimSpace(resultPath)
	if resultPath == "" {
		return nil, errors.New("api: empty result path")
	}
	w, err := result.NewWriter(resultPath)
	if err != nil {
		return nil, err
	}

	r := gin.New()
	s := &Server{
		router:     r,
		resultPath: resultPath,
		writer:     w,
		history:    hist,
	}
	s.registerMiddleware()
	if err := s.registerRoutes(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Server) Run(addr string) error {
	if s == nil || s.router == nil {
		return errors.New("api: nil server")
	}
	addr = strings.TrimSpace(addr)
	if addr == "" {
		addr = ":8080"
	}
	return s.router.Run(addr)
}
