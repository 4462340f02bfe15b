package header

import "fmt"

type RequestHeader interface {
	Value(key string) string
	Set(key string, value string)
	Remove(key string)
	Method() string
	Path() string
	Version() string
	Len() int
}

type requestHeader struct {
	method  string
	path    string
	version string
	headers map[string]string
}

type ResponseHeader interface {
	Value(key string) string
	Set(key string, value string)
	Remove(key string)
	StatusCode() int
	Finalize() []byte
}

type field struct {
	key   string
	value string
}

type responseHeader struct {
	statusCode int
	startLine  []byte
	fields     []field
}

// MalformedRequestError is returned when the request line does not split
// into exactly a method, a path and a version. Raw holds the bytes that
// were read from the connection.
type MalformedRequestError struct {
	Raw    []byte
	Reason string
}

func (e *MalformedRequestError) Error() string {
	return fmt.Sprintf("malformed request: %s", e.Reason)
}
