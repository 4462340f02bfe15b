package static

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"simple_todo/types"
	"strings"
)

var ErrNotFound = errors.New("static file not found")

var contentTypes = map[string]string{
	".css":  "text/css",
	".js":   "application/javascript",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".ico":  "image/x-icon",
}

type Resolver interface {
	Root() string
	Path(requestPath string) string
	Read(requestPath string) ([]byte, error)
}

type resolver struct {
	root string
}

func New(root string) Resolver {
	return &resolver{root: strings.TrimRight(root, "/")}
}

// ContentType maps the literal extension of p to its MIME type. Unknown
// extensions are served as text/plain.
func ContentType(p string) string {
	if ct, ok := contentTypes[filepath.Ext(p)]; ok {
		return ct
	}
	return types.ContentTypePlain
}

func (r *resolver) Root() string {
	return r.root
}

// Path joins the root and the request path by concatenation only; the
// request path is not cleaned.
func (r *resolver) Path(requestPath string) string {
	return r.root + requestPath
}

func (r *resolver) Read(requestPath string) ([]byte, error) {
	p := r.Path(requestPath)

	info, err := os.Stat(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, p)
		}
		return nil, fmt.Errorf("stat %s: %w", p, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrNotFound, p)
	}

	content, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p, err)
	}
	return content, nil
}
