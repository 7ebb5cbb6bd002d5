package rest

import (
	"net/http"

	"github.com/dmitrijs2005/gophblog/internal/common"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const postIDPath = common.RoutePosts + "/{id}"

// Handler returns the routed, instrumented HTTP handler.
func (s *RESTServer) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(securityHeaders)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	r.Route(common.APIPrefix, func(r chi.Router) {
		r.Route(common.PublicScope, func(r chi.Router) {
			r.Get(common.RouteHealth, s.health)
			r.Post(common.RouteRegister, s.register)
			r.Post(common.RouteLogin, s.login)
			r.Get(common.RoutePosts, s.listPosts)
			r.Get(postIDPath, s.getPost)
		})

		r.Route(common.ProtectedScope, func(r chi.Router) {
			r.Use(Authenticate(s.tokens, s.users, s.logger))
			r.Post(common.RoutePosts, s.createPost)
			r.Put(postIDPath, s.updatePost)
			r.Delete(postIDPath, s.deletePost)
		})
	})

	return otelhttp.NewHandler(r, "blog.http")
}
