package middleware

import (
	"net"
	"simple_todo/internal/http/header"

	"github.com/rs/zerolog"
)

type AccessLog struct {
	logger zerolog.Logger
	addr   net.Addr
}

func NewAccessLog(logger zerolog.Logger, addr net.Addr) *AccessLog {
	return &AccessLog{logger: logger, addr: addr}
}

func (al *AccessLog) HandleRequest(header header.RequestHeader) error {
	event := al.logger.Info().
		Str("method", header.Method()).
		Str("path", header.Path()).
		Str("version", header.Version())
	if al.addr != nil {
		event = event.Str("remote", al.addr.String())
	}
	if ua := header.Value("User-Agent"); ua != "" {
		event = event.Str("user_agent", ua)
	}
	event.Msg("request")
	return nil
}
