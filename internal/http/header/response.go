package header

import (
	"fmt"
	"net/http"
)

const protocolVersion = "HTTP/1.1"

func NewResponse(statusCode int) ResponseHeader {
	return &responseHeader{
		statusCode: statusCode,
		startLine:  []byte(fmt.Sprintf("%s %d %s", protocolVersion, statusCode, http.StatusText(statusCode))),
		fields:     make([]field, 0, 4),
	}
}

func (resp *responseHeader) Value(key string) string {
	for _, f := range resp.fields {
		if f.key == key {
			return f.value
		}
	}
	return ""
}

// Set replaces the value in place when the key exists so the original
// position on the wire is kept.
func (resp *responseHeader) Set(key string, value string) {
	for i := range resp.fields {
		if resp.fields[i].key == key {
			resp.fields[i].value = value
			return
		}
	}
	resp.fields = append(resp.fields, field{key: key, value: value})
}

func (resp *responseHeader) Remove(key string) {
	for i := range resp.fields {
		if resp.fields[i].key == key {
			resp.fields = append(resp.fields[:i], resp.fields[i+1:]...)
			return
		}
	}
}

func (resp *responseHeader) StatusCode() int {
	return resp.statusCode
}

func (resp *responseHeader) Finalize() []byte {
	return finalize(resp.startLine, resp.fields)
}
