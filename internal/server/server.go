package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/signum-network/signum-did-resolver-go/pkg/resolver"
)

// Cache directives per outcome: confirmed transactions and issued tokens
// never change, mutable entities may, and errors are never cached.
const (
	cacheImmutable = "public, max-age=31536000, immutable"
	cacheMutable   = "public, max-age=60"
	cacheNone      = "no-store"
)

// Resolver is the single entry point the HTTP facade consumes.
type Resolver interface {
	Resolve(ctx context.Context, rawDID string) resolver.ResolutionResult
}

type Server struct {
	resolver Resolver
	log      *logrus.Entry
}

func New(r Resolver, log *logrus.Entry) *Server {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Server{resolver: r, log: log}
}

// Router mounts the resolver endpoints.
func (s *Server) Router() chi.Router {
	router := chi.NewRouter()

	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.Recoverer)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	router.Get("/1.0/identifiers/{did}", s.handleResolve)

	return router
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	contentType, ok := negotiate(r.Header.Get("Accept"))
	if !ok {
		s.writeResult(w, "application/json", resolver.ResolutionResult{
			ResolutionMetadata: resolver.ResolutionMetadata{
				Error:   resolver.ErrorRepresentationNotSupported,
				Message: "no supported representation matches the Accept header",
			},
		})
		return
	}

	rawDID := chi.URLParam(r, "did")
	if decoded, err := url.PathUnescape(rawDID); err == nil {
		rawDID = decoded
	}

	result := s.resolver.Resolve(r.Context(), rawDID)

	if result.ResolutionMetadata.Error == resolver.ErrorInternal {
		s.log.WithFields(logrus.Fields{
			"did":     rawDID,
			"message": result.ResolutionMetadata.Message,
		}).Error("resolution failed")
	}

	s.writeResult(w, contentType, result)
}

func (s *Server) writeResult(w http.ResponseWriter, contentType string, result resolver.ResolutionResult) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", cachePolicy(result))
	w.WriteHeader(statusFor(result.ResolutionMetadata.Error))

	if err := json.NewEncoder(w).Encode(result); err != nil {
		s.log.WithError(err).Error("writing resolution result")
	}
}

func statusFor(errorCode string) int {
	switch errorCode {
	case "":
		return http.StatusOK
	case resolver.ErrorInvalidDID:
		return http.StatusBadRequest
	case resolver.ErrorNotFound:
		return http.StatusNotFound
	case resolver.ErrorMethodNotSupported:
		return http.StatusNotImplemented
	case resolver.ErrorRepresentationNotSupported:
		return http.StatusNotAcceptable
	default:
		return http.StatusInternalServerError
	}
}

func cachePolicy(result resolver.ResolutionResult) string {
	if result.ResolutionMetadata.Error != "" {
		return cacheNone
	}
	if result.DocumentMetadata.Immutable {
		return cacheImmutable
	}
	return cacheMutable
}
