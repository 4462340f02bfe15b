package header

import (
	"bytes"
	"fmt"
	"strings"
)

var headerSeparator = []byte(": ")

func nextLine(data []byte) (line, rest []byte) {
	idx := bytes.IndexByte(data, '\n')
	if idx == -1 {
		return bytes.TrimSuffix(data, []byte("\r")), nil
	}
	return bytes.TrimSuffix(data[:idx], []byte("\r")), data[idx+1:]
}

func setRemainingHeaders(remaining []byte, header interface {
	Set(key string, value string)
}) {
	for len(remaining) > 0 {
		var line []byte
		line, remaining = nextLine(remaining)

		if len(bytes.TrimSpace(line)) == 0 {
			break
		}

		key, value, ok := bytes.Cut(line, headerSeparator)
		if !ok {
			continue
		}
		header.Set(string(key), string(bytes.TrimSpace(value)))
	}
}

func parseRequest(raw []byte) (RequestHeader, error) {
	if len(raw) == 0 {
		return nil, &MalformedRequestError{Raw: raw, Reason: "empty request"}
	}

	startLine, remaining := nextLine(raw)
	method, path, version, err := parseStartLine(startLine)
	if err != nil {
		return nil, &MalformedRequestError{Raw: raw, Reason: err.Error()}
	}

	header := &requestHeader{
		method:  method,
		path:    path,
		version: version,
		headers: make(map[string]string, 16),
	}
	setRemainingHeaders(remaining, header)

	return header, nil
}

func parseStartLine(startLine []byte) (method, path, version string, err error) {
	tokens := strings.Fields(string(startLine))
	if len(tokens) != 3 {
		return "", "", "", fmt.Errorf("start line has %d tokens, want 3", len(tokens))
	}
	return tokens[0], tokens[1], tokens[2], nil
}

func finalize(startLine []byte, fields []field) []byte {
	size := len(startLine) + 2
	for _, f := range fields {
		size += len(f.key) + 2 + len(f.value) + 2
	}
	size += 2

	buf := make([]byte, 0, size)
	buf = append(buf, startLine...)
	buf = append(buf, '\r', '\n')

	for _, f := range fields {
		buf = append(buf, f.key...)
		buf = append(buf, ':', ' ')
		buf = append(buf, f.value...)
		buf = append(buf, '\r', '\n')
	}

	buf = append(buf, '\r', '\n')
	return buf
}
