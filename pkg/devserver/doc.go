// Package devserver implements the Arbor development server.
//
// The server renders a user-supplied page function on every request (or
// serves a static directory when no page function is given), exposes a
// /livereload WebSocket endpoint that broadcasts reload messages to
// connected browsers, and a /metrics Prometheus endpoint. A polling
// file watcher drives rebuild-free live reload for the CLI.
package devserver
