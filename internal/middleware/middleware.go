package middleware

import (
	"simple_todo/internal/http/header"
)

type RequestMiddleware interface {
	HandleRequest(header header.RequestHeader) error
}
