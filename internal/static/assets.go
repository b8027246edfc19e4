package static

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/labstack/echo/v4"
)

// RouteName is the name the static route is registered under; URLs are built
// by reversing it.
const RouteName = "static"

var (
	ErrNotFound    = errors.New("static asset not found")
	ErrInvalidName = errors.New("invalid static asset name")
	ErrNotMounted  = errors.New("static route not mounted")
)

// Resolver builds the public URL of a static asset.
type Resolver interface {
	URL(name string) (string, error)
}

// Assets serves files from fsys under prefix and resolves their URLs.
type Assets struct {
	fsys   fs.FS
	prefix string
	e      *echo.Echo
}

func New(fsys fs.FS, prefix string) *Assets {
	return &Assets{fsys: fsys, prefix: normalizePrefix(prefix)}
}

// Mount registers GET <prefix>/* on e as the named static route.
func (a *Assets) Mount(e *echo.Echo) *echo.Route {
	r := e.GET(a.prefix+"/*", a.Serve())
	r.Name = RouteName
	a.e = e
	return r
}

// Serve returns the handler for the static route. Missing files are 404.
func (a *Assets) Serve() echo.HandlerFunc {
	return echo.StaticDirectoryHandler(a.fsys, false)
}

// URL returns the path of name under the static route. The file must exist.
func (a *Assets) URL(name string) (string, error) {
	if a.e == nil {
		return "", ErrNotMounted
	}
	if !fs.ValidPath(name) || name == "." {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	fi, err := fs.Stat(a.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return "", fmt.Errorf("stat %s: %w", name, err)
	}
	if fi.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrNotFound, name)
	}
	u := a.e.Reverse(RouteName, name)
	if u == "" {
		return "", ErrNotMounted
	}
	return u, nil
}

func normalizePrefix(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		p = "/static"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return strings.TrimRight(p, "/")
}
