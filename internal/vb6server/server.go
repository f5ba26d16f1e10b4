package vb6server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is vb6p's HTTP front end: it exposes parsing as POST /parse,
// gated behind the same JWT bearer auth dekarrin-tunaq/server uses for its
// own API, backed by a pluggable Store.
type Server struct {
	store  Store
	secret []byte
	router chi.Router
}

// New constructs a Server. secret is the server-wide signing key mixed into
// every issued JWT (see generateJWT); it should be loaded from the
// environment or a secrets manager, never hardcoded.
func New(store Store, secret []byte) *Server {
	s := &Server{store: store, secret: secret}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(recoverPanic())
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/info", s.handleInfo)
	r.Post("/login", s.handleLogin)
	r.Post("/users", s.handleCreateUser)

	r.Group(func(r chi.Router) {
		r.Use(requireAuth(s.store, s.secret))
		r.Post("/parse", s.handleParse)
		r.Get("/submissions", s.handleListSubmissions)
	})

	return r
}

// ServeHTTP lets Server be used directly as an http.Handler, e.g. in tests
// via httptest.
func (s *Server) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	s.router.ServeHTTP(w, req)
}

// ServeForever blocks, serving on addr (e.g. ":8080") until the process is
// killed or the listener errors.
func (s *Server) ServeForever(addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("serve %s: %w", addr, err)
	}
	return nil
}
