// Package router maps URL paths to page functions and drives re-renders
// through the reconciliation engine on navigation.
package router

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/arbor-ui/arbor/internal/errors"
	"github.com/arbor-ui/arbor/pkg/dom"
	"github.com/arbor-ui/arbor/pkg/reconcile"
	"github.com/arbor-ui/arbor/pkg/vdom"
)

// Params holds the path parameters captured by a route pattern.
type Params map[string]string

// Get returns a parameter value, or "" when absent.
func (p Params) Get(name string) string { return p[name] }

// Int returns a parameter parsed as an integer.
func (p Params) Int(name string) (int, error) {
	n, err := strconv.Atoi(p[name])
	if err != nil {
		return 0, errors.Newf(errors.CategoryInput, "param %q is not an integer", name)
	}
	return n, nil
}

// Page builds the vnode tree for one route.
type Page func(params Params) vdom.VNode

type segment struct {
	literal  string
	param    string
	wildcard bool
}

type route struct {
	pattern string
	segs    []segment
	page    Page
}

// Router matches paths against registered patterns and renders the winning
// page into its container.
type Router struct {
	rc        *reconcile.Context
	container *dom.Node
	log       *slog.Logger

	routes   []route
	notFound Page
	current  string
	history  []string
}

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the logger navigation events are reported through.
func WithLogger(l *slog.Logger) Option {
	return func(r *Router) { r.log = l }
}

// New creates a router that renders pages into container via rc.
func New(rc *reconcile.Context, container *dom.Node, opts ...Option) *Router {
	r := &Router{
		rc:        rc,
		container: container,
		log:       slog.Default(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Handle registers a page for a pattern. Patterns are literal segments,
// ":name" parameter segments, and a trailing "*" wildcard:
//
//	r.Handle("/users/:id", userPage)
//	r.Handle("/static/*", filePage)
func (r *Router) Handle(pattern string, page Page) {
	r.routes = append(r.routes, route{
		pattern: pattern,
		segs:    parsePattern(pattern),
		page:    page,
	})
}

// NotFound registers the fallback page.
func (r *Router) NotFound(page Page) { r.notFound = page }

// Current returns the last navigated path.
func (r *Router) Current() string { return r.current }

// NavigateOption configures one navigation.
type NavigateOption func(*navigateOptions)

type navigateOptions struct {
	replace bool
}

// WithReplace replaces the current history entry instead of pushing.
func WithReplace() NavigateOption {
	return func(o *navigateOptions) { o.replace = true }
}

// Navigate matches path against the registered routes and renders the
// winning page. Unmatched paths fall back to the NotFound page when one is
// registered.
func (r *Router) Navigate(path string, opts ...NavigateOption) error {
	var o navigateOptions
	for _, fn := range opts {
		fn(&o)
	}

	page, params := r.match(path)
	if page == nil {
		return errors.Newf(errors.CategoryInput, "no route matches %q", path)
	}

	r.log.Debug("navigate", "path", path)
	if err := r.rc.Render(page(params), r.container); err != nil {
		return err
	}

	r.current = path
	if o.replace && len(r.history) > 0 {
		r.history[len(r.history)-1] = path
	} else {
		r.history = append(r.history, path)
	}
	return nil
}

// Back renavigates to the previous history entry, if any.
func (r *Router) Back() error {
	if len(r.history) < 2 {
		return nil
	}
	r.history = r.history[:len(r.history)-1]
	prev := r.history[len(r.history)-1]
	r.history = r.history[:len(r.history)-1]
	return r.Navigate(prev)
}

func (r *Router) match(path string) (Page, Params) {
	parts := splitPath(path)
	for _, rt := range r.routes {
		if params, ok := matchSegments(rt.segs, parts); ok {
			return rt.page, params
		}
	}
	if r.notFound != nil {
		return r.notFound, Params{}
	}
	return nil, nil
}

func parsePattern(pattern string) []segment {
	parts := splitPath(pattern)
	segs := make([]segment, 0, len(parts))
	for _, p := range parts {
		switch {
		case p == "*":
			segs = append(segs, segment{wildcard: true})
		case strings.HasPrefix(p, ":"):
			segs = append(segs, segment{param: p[1:]})
		default:
			segs = append(segs, segment{literal: p})
		}
	}
	return segs
}

func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

func matchSegments(segs []segment, parts []string) (Params, bool) {
	params := Params{}
	for i, s := range segs {
		if s.wildcard {
			params["*"] = strings.Join(parts[i:], "/")
			return params, true
		}
		if i >= len(parts) {
			return nil, false
		}
		switch {
		case s.param != "":
			params[s.param] = parts[i]
		case s.literal != parts[i]:
			return nil, false
		}
	}
	if len(parts) != len(segs) {
		return nil, false
	}
	return params, true
}
