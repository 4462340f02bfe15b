package transport

import (
	"errors"
	"net"
	"simple_todo/internal/http/header"
	"simple_todo/internal/middleware"
	"simple_todo/internal/router"

	"github.com/rs/zerolog"
)

type httpHandler struct {
	router     router.Router
	bufferSize int
	logger     zerolog.Logger
}

func newHTTPHandler(rt router.Router, bufferSize int, logger zerolog.Logger) *httpHandler {
	return &httpHandler{
		router:     rt,
		bufferSize: bufferSize,
		logger:     logger,
	}
}

// handler answers exactly one request. The request must arrive in a single
// read; anything past the buffer or a later segment is never looked at.
func (hh *httpHandler) handler(conn net.Conn) {
	defer hh.closeConnection(conn)

	buf := make([]byte, hh.bufferSize)
	n, err := conn.Read(buf)
	if n == 0 && err != nil {
		hh.logger.Debug().Err(err).Str("remote", conn.RemoteAddr().String()).Msg("Error reading request")
		return
	}

	path := ""
	reqhf, err := header.NewRequest(buf[:n])
	if err != nil {
		hh.logger.Debug().Err(err).Str("remote", conn.RemoteAddr().String()).Msg("Malformed request")
	} else {
		hh.applyMiddlewares(conn, reqhf)
		path = reqhf.Path()
	}

	resp := hh.router.Route(path)
	if _, err = resp.WriteTo(conn); err != nil {
		hh.logger.Error().Err(err).Str("remote", conn.RemoteAddr().String()).Msg("Failed to write response")
	}
}

func (hh *httpHandler) closeConnection(conn net.Conn) {
	err := conn.Close()
	if err != nil && !errors.Is(err, net.ErrClosed) {
		hh.logger.Error().Err(err).Msg("Error closing connection")
	}
}

func (hh *httpHandler) setupMiddlewares(conn net.Conn) []middleware.RequestMiddleware {
	return []middleware.RequestMiddleware{
		middleware.NewAccessLog(hh.logger, conn.RemoteAddr()),
	}
}

func (hh *httpHandler) applyMiddlewares(conn net.Conn, reqhf header.RequestHeader) {
	for _, m := range hh.setupMiddlewares(conn) {
		if err := m.HandleRequest(reqhf); err != nil {
			hh.logger.Warn().Err(err).Msg("Error when applying request middleware")
		}
	}
}
