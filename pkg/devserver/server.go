package devserver

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/arbor-ui/arbor/internal/config"
	"github.com/arbor-ui/arbor/pkg/middleware"
	"github.com/arbor-ui/arbor/pkg/render"
	"github.com/arbor-ui/arbor/pkg/vdom"
)

// PageFunc produces the vnode tree for a request. The tree is rendered
// to HTML through pkg/render on every request.
type PageFunc func(r *http.Request) vdom.VNode

// Options configures the development server.
type Options struct {
	// Config is the project configuration.
	Config *config.Config

	// Logger is the structured logger. Defaults to slog.Default().
	Logger *slog.Logger

	// Page renders the page for each request. When nil the server
	// serves the configured static directory instead.
	Page PageFunc

	// OnReload is called after browsers are reloaded.
	OnReload func(clients int)
}

// Server is the development server.
type Server struct {
	cfg      *config.Config
	log      *slog.Logger
	page     PageFunc
	onReload func(clients int)

	renderer *render.Renderer
	reload   *ReloadServer
	watcher  *Watcher

	httpServer *http.Server
	changeCh   chan Change

	mu      sync.Mutex
	running bool
}

// NewServer creates a new development server.
func NewServer(opts Options) *Server {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.New()
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	var reload *ReloadServer
	if cfg.Dev.LiveReload {
		reload = NewReloadServer()
	}

	watcher := NewWatcher(WatcherConfig{
		Paths:    cfg.WatchPaths(),
		Ignore:   append(append([]string{}, DefaultIgnore...), cfg.Dev.Ignore...),
		Debounce: 100 * time.Millisecond,
	})

	return &Server{
		cfg:      cfg,
		log:      log,
		page:     opts.Page,
		onReload: opts.OnReload,
		renderer: render.NewRenderer(render.RendererConfig{
			Pretty: cfg.Render.Pretty,
			Indent: cfg.Render.Indent,
		}),
		reload:  reload,
		watcher: watcher,
	}
}

// Handler builds the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestLogger)

	if s.cfg.Dev.Metrics {
		r.Use(middleware.Prometheus())
		r.Handle("/metrics", promhttp.Handler())
	}

	if s.reload != nil {
		r.Get("/livereload", s.reload.HandleWebSocket)
	}

	if s.page != nil {
		r.Get("/*", s.servePage)
	} else {
		prefix := s.cfg.Static.Prefix
		if prefix == "" {
			prefix = "/"
		}
		stripped := strings.TrimSuffix(prefix, "/")
		fs := http.StripPrefix(stripped, http.FileServer(http.Dir(s.cfg.StaticDir())))
		r.Handle(stripped+"/*", fs)
		if stripped != "" {
			r.Handle(stripped, http.RedirectHandler(stripped+"/", http.StatusMovedPermanently))
		}
	}

	return r
}

// requestLogger logs each request with method, path, status, and duration.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}

// servePage renders the page function and writes the HTML response.
func (s *Server) servePage(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	html, err := s.renderPage(r)
	middleware.RecordRender(time.Since(start), err)
	if err != nil {
		s.log.Error("render failed", "path", r.URL.Path, "error", err)
		if s.reload != nil {
			s.reload.NotifyError(err.Error())
		}
		http.Error(w, fmt.Sprintf("render error: %v", err), http.StatusInternalServerError)
		return
	}

	if s.reload != nil {
		html = injectClientScript(html)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if strings.HasPrefix(html, "<html") {
		w.Write([]byte("<!DOCTYPE html>\n"))
	}
	w.Write([]byte(html))
}

// renderPage invokes the page function and renders the result,
// converting panics in user code into errors.
func (s *Server) renderPage(r *http.Request) (out string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("page panicked: %v", rec)
		}
	}()
	return s.renderer.RenderToString(s.page(r))
}

// injectClientScript inserts the live-reload script before </body>,
// or appends it when the page has no body close tag.
func injectClientScript(html string) string {
	if idx := strings.LastIndex(html, "</body>"); idx >= 0 {
		return html[:idx] + ClientScript + html[idx:]
	}
	return html + ClientScript
}

// Start runs the server until the context is cancelled or the listener
// fails. File changes broadcast reload messages to connected browsers.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.mu.Unlock()

	s.changeCh = make(chan Change, 64)
	s.watcher.OnChange(func(change Change) {
		select {
		case s.changeCh <- change:
		default:
		}
	})

	go s.watcher.Start(ctx)
	go s.processChanges(ctx)

	s.httpServer = &http.Server{
		Addr:    s.cfg.DevAddress(),
		Handler: s.Handler(),
	}

	s.log.Info("dev server running", "url", s.cfg.DevURL())

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.Stop()
		return nil
	case err := <-errCh:
		s.Stop()
		return err
	}
}

// Stop shuts the server down gracefully.
func (s *Server) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.running = false

	s.watcher.Stop()
	if s.reload != nil {
		s.reload.Close()
	}
	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.httpServer.Shutdown(ctx)
	}
}

// Reload broadcasts a full reload to all connected browsers.
func (s *Server) Reload() {
	if s.reload == nil {
		return
	}
	s.reload.NotifyReload()
	if s.onReload != nil {
		s.onReload(s.reload.ClientCount())
	}
}

// processChanges serializes file change handling and coalesces bursts.
func (s *Server) processChanges(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case change := <-s.changeCh:
			changes := []Change{change}
			draining := true
			for draining {
				select {
				case next := <-s.changeCh:
					changes = append(changes, next)
				default:
					draining = false
				}
			}
			s.handleChanges(changes)
		}
	}
}

// handleChanges handles a batch of file changes.
func (s *Server) handleChanges(changes []Change) {
	if len(changes) == 0 || s.reload == nil {
		return
	}

	var cssPath string
	cssOnly := true
	for _, change := range changes {
		s.log.Info("changed", "path", change.Path)
		if change.Type == ChangeCSS {
			if cssPath == "" {
				cssPath = change.Path
			}
		} else {
			cssOnly = false
		}
	}

	if cssOnly && cssPath != "" {
		s.reload.NotifyCSS(cssPath)
	} else {
		s.reload.NotifyReload()
	}
	if s.onReload != nil {
		s.onReload(s.reload.ClientCount())
	}
}
