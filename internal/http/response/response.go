package response

import (
	"io"
	"net/http"
	"simple_todo/internal/http/header"
	"simple_todo/types"
	"strconv"
)

const charset = "; charset=utf-8"

type Response struct {
	Header header.ResponseHeader
	Body   []byte
}

// New builds a response carrying the three mandatory headers in wire order.
// Content-Length is the byte length of body.
func New(statusCode int, contentType string, body []byte) *Response {
	h := header.NewResponse(statusCode)
	h.Set("Content-Type", contentType+charset)
	h.Set("Content-Length", strconv.Itoa(len(body)))
	h.Set("Connection", "close")
	return &Response{Header: h, Body: body}
}

func OK(contentType string, body []byte) *Response {
	return New(http.StatusOK, contentType, body)
}

func NotFound() *Response {
	return New(http.StatusNotFound, types.ContentTypeHTML, types.NotFoundPage)
}

func (r *Response) StatusCode() int {
	return r.Header.StatusCode()
}

func (r *Response) Bytes() []byte {
	head := r.Header.Finalize()
	buf := make([]byte, 0, len(head)+len(r.Body))
	buf = append(buf, head...)
	return append(buf, r.Body...)
}

// WriteTo writes the serialized response with a single Write call.
func (r *Response) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.Bytes())
	return int64(n), err
}
