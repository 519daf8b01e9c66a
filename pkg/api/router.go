package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/cloudstub/cloudstub/internal/id"
	"github.com/cloudstub/cloudstub/pkg/logging"
)

// API serves the mock platform endpoints. The zero value is not usable;
// construct with New.
type API struct {
	log    *slog.Logger
	now    func() time.Time
	token  func(prefix string) string
	secret func(prefix string) string
}

// Option is a functional option for configuring an API.
type Option func(*API)

// WithLogger sets the operational logger.
func WithLogger(log *slog.Logger) Option {
	return func(a *API) {
		if log != nil {
			a.log = log
		}
	}
}

// WithClock overrides the time source. Tests use this to pin creation
// dates.
func WithClock(now func() time.Time) Option {
	return func(a *API) {
		if now != nil {
			a.now = now
		}
	}
}

// WithTokenSource overrides identifier and secret generation. Tests use
// this to make key creation reproducible.
func WithTokenSource(token, secret func(prefix string) string) Option {
	return func(a *API) {
		if token != nil {
			a.token = token
		}
		if secret != nil {
			a.secret = secret
		}
	}
}

// New creates a new API with the given options.
func New(opts ...Option) *API {
	a := &API{
		log:    logging.Nop(),
		now:    time.Now,
		token:  id.Token,
		secret: id.Secret,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Register attaches every mock route to mux.
//
// The key routes use a trailing "..." wildcard so that a request with an
// empty identifier still reaches the handler; reads accept an empty id
// while deletes reject it.
func (a *API) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/account", a.handleGetAccount)

	mux.HandleFunc("GET /api/v1/deployments", a.handleListDeployments)
	mux.HandleFunc("POST /api/v1/deployments", a.handleCreateDeployment)
	mux.HandleFunc("POST /api/v1/deployments/_search", a.handleSearchDeployments)

	mux.HandleFunc("GET /api/v1/organizations", a.handleListOrganizations)

	mux.HandleFunc("POST /api/v1/users/auth/keys", a.handleCreateKey)
	mux.HandleFunc("GET /api/v1/users/auth/keys/{keyId...}", a.handleGetKey)
	mux.HandleFunc("DELETE /api/v1/users/auth/keys/{keyId...}", a.handleDeleteKey)
}

// Handler returns a standalone http.Handler serving the mock routes.
func (a *API) Handler() http.Handler {
	mux := http.NewServeMux()
	a.Register(mux)
	return mux
}
