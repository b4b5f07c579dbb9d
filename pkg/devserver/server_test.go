package devserver

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/arbor-ui/arbor/internal/config"
	"github.com/arbor-ui/arbor/pkg/el"
	"github.com/arbor-ui/arbor/pkg/vdom"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.New()
	cfg.Dev.Metrics = false
	return cfg
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
	return rec
}

func TestServerRendersPage(t *testing.T) {
	s := NewServer(Options{
		Config: testConfig(t),
		Logger: quietLogger(),
		Page: func(r *http.Request) vdom.VNode {
			return el.Html(
				el.Body(el.H1("welcome " + r.URL.Path)),
			)
		},
	})

	rec := get(t, s.Handler(), "/docs")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, "<!DOCTYPE html>") {
		t.Error("expected doctype prefix for html root pages")
	}
	if !strings.Contains(body, "<h1>welcome /docs</h1>") {
		t.Errorf("body missing rendered heading:\n%s", body)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}
}

func TestServerInjectsReloadScript(t *testing.T) {
	cfg := testConfig(t)
	cfg.Dev.LiveReload = true

	s := NewServer(Options{
		Config: cfg,
		Logger: quietLogger(),
		Page: func(r *http.Request) vdom.VNode {
			return el.Html(el.Body(el.P("x")))
		},
	})

	body := get(t, s.Handler(), "/").Body.String()
	idx := strings.Index(body, "livereload")
	if idx < 0 {
		t.Fatal("expected live-reload client script in page")
	}
	if !strings.Contains(body[idx:], "</body>") {
		t.Error("script should be injected before </body>")
	}
}

func TestServerNoScriptWhenReloadDisabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.Dev.LiveReload = false

	s := NewServer(Options{
		Config: cfg,
		Logger: quietLogger(),
		Page: func(r *http.Request) vdom.VNode {
			return el.Html(el.Body(el.P("x")))
		},
	})

	if body := get(t, s.Handler(), "/").Body.String(); strings.Contains(body, "livereload") {
		t.Error("did not expect live-reload script when disabled")
	}
}

func TestServerPagePanicReturns500(t *testing.T) {
	cfg := testConfig(t)
	cfg.Dev.LiveReload = false

	s := NewServer(Options{
		Config: cfg,
		Logger: quietLogger(),
		Page: func(r *http.Request) vdom.VNode {
			panic("bad page")
		},
	})

	rec := get(t, s.Handler(), "/")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "bad page") {
		t.Errorf("body should mention the panic, got %q", rec.Body.String())
	}
}

func TestServerServesStaticDir(t *testing.T) {
	tmpDir := t.TempDir()
	pub := filepath.Join(tmpDir, "public")
	if err := os.Mkdir(pub, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(pub, "hello.txt"), []byte("hi"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, config.ConfigFileName), []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(tmpDir)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Dev.Metrics = false
	cfg.Dev.LiveReload = false

	s := NewServer(Options{Config: cfg, Logger: quietLogger()})

	rec := get(t, s.Handler(), "/hello.txt")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); got != "hi" {
		t.Errorf("body = %q, want %q", got, "hi")
	}
}

func TestServerMetricsEndpoint(t *testing.T) {
	cfg := testConfig(t)
	cfg.Dev.Metrics = true
	cfg.Dev.LiveReload = false

	s := NewServer(Options{
		Config: cfg,
		Logger: quietLogger(),
		Page: func(r *http.Request) vdom.VNode {
			return el.Div("ok")
		},
	})
	h := s.Handler()

	// Serve a page first so request metrics exist.
	get(t, h, "/")

	rec := get(t, h, "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "arbor_requests_total") {
		t.Error("expected arbor_requests_total in metrics output")
	}
}

func TestServerLivereloadEndToEnd(t *testing.T) {
	cfg := testConfig(t)
	cfg.Dev.LiveReload = true

	s := NewServer(Options{
		Config: cfg,
		Logger: quietLogger(),
		Page: func(r *http.Request) vdom.VNode {
			return el.Html(el.Body())
		},
	})

	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/livereload"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	waitForClients(t, s.reload, 1)

	var gotClients int
	s.onReload = func(clients int) { gotClients = clients }
	s.Reload()

	if msg := readMessage(t, conn); msg.Type != ReloadTypeFull {
		t.Errorf("message type = %q, want %q", msg.Type, ReloadTypeFull)
	}
	if gotClients != 1 {
		t.Errorf("OnReload clients = %d, want 1", gotClients)
	}
}

func TestHandleChangesCSSOnly(t *testing.T) {
	cfg := testConfig(t)
	cfg.Dev.LiveReload = true

	s := NewServer(Options{Config: cfg, Logger: quietLogger()})

	srv := httptest.NewServer(http.HandlerFunc(s.reload.HandleWebSocket))
	defer srv.Close()

	conn := dialReload(t, srv)
	waitForClients(t, s.reload, 1)

	s.handleChanges([]Change{{Path: "public/styles.css", Type: ChangeCSS}})
	msg := readMessage(t, conn)
	if msg.Type != ReloadTypeCSS {
		t.Errorf("css-only change type = %q, want %q", msg.Type, ReloadTypeCSS)
	}

	s.handleChanges([]Change{
		{Path: "public/styles.css", Type: ChangeCSS},
		{Path: "app/page.html", Type: ChangeTemplate},
	})
	if msg := readMessage(t, conn); msg.Type != ReloadTypeFull {
		t.Errorf("mixed change type = %q, want %q", msg.Type, ReloadTypeFull)
	}
}

func TestInjectClientScriptWithoutBody(t *testing.T) {
	out := injectClientScript("<p>x</p>")
	if !strings.HasPrefix(out, "<p>x</p>") {
		t.Error("original markup should be preserved")
	}
	if !strings.Contains(out, "livereload") {
		t.Error("script should be appended when no </body> exists")
	}
}
