package transport

import (
	"errors"
	"net"
	"simple_todo/internal/router"

	"github.com/rs/zerolog"
)

type httpServer struct {
	handler *httpHandler
	port    string
	logger  zerolog.Logger
}

func NewHTTPServer(port string, rt router.Router, bufferSize int, logger zerolog.Logger) Transport {
	return &httpServer{
		handler: newHTTPHandler(rt, bufferSize, logger),
		port:    port,
		logger:  logger,
	}
}

func (ht *httpServer) Listen() (net.Listener, error) {
	return net.Listen("tcp", ":"+ht.port)
}

// Serve handles one connection at a time on the calling goroutine. The next
// Accept happens only after the previous connection has been answered and
// closed. It returns when the listener is closed.
func (ht *httpServer) Serve(listener net.Listener) error {
	ht.logger.Debug().Str("addr", listener.Addr().String()).Msg("Static server accepting connections")
	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			ht.logger.Error().Err(err).Msg("Error accepting connection")
			continue
		}

		ht.handler.handler(conn)
	}
}
