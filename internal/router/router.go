package router

import (
	"errors"
	"regexp"
	"simple_todo/internal/http/response"
	"simple_todo/internal/static"
	"simple_todo/types"

	"github.com/rs/zerolog"
)

const indexDocument = "/index.html"

var staticAsset = regexp.MustCompile(`\.(css|js|png|jpg|jpeg|gif|ico)$`)

// Router picks the response for a request path. Method and headers play no
// part in the decision.
type Router interface {
	Route(path string) *response.Response
}

type router struct {
	resolver static.Resolver
	logger   zerolog.Logger
}

func New(resolver static.Resolver, logger zerolog.Logger) Router {
	return &router{
		resolver: resolver,
		logger:   logger,
	}
}

func (r *router) Route(path string) *response.Response {
	switch {
	case path == "/" || path == indexDocument:
		return r.serveFile(indexDocument, types.ContentTypeHTML)
	case staticAsset.MatchString(path):
		return r.serveFile(path, static.ContentType(path))
	default:
		return response.NotFound()
	}
}

func (r *router) serveFile(path, contentType string) *response.Response {
	content, err := r.resolver.Read(path)
	if err != nil {
		if !errors.Is(err, static.ErrNotFound) {
			r.logger.Warn().Err(err).Str("path", path).Msg("Failed to read static file")
		}
		return response.NotFound()
	}
	return response.OK(contentType, content)
}
