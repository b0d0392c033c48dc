// Package web serves a small browser visualizer for the minifier: paste
// a C source snippet, see its minified form and any lex/parse/rename
// errors. Grounded on javalyzer's ui/server.go (embedded templates,
// one handler struct per route) adapted from its class-scanning domain
// to this one, using github.com/go-chi/chi/v5 for routing (as
// dekarrin-tunaq does) and github.com/gorilla/websocket for the live
// output panel.
package web

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/loom-lang/cminify/minify"
)

//go:embed templates
var templatesFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html.tmpl"))

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Server is the visualizer's HTTP handler.
type Server struct {
	router *chi.Mux
}

// New builds a Server with routing wired for the index page, a one-shot
// JSON minify endpoint, and a websocket endpoint for the live panel.
func New() *Server {
	s := &Server{router: chi.NewRouter()}
	s.router.Use(middleware.Logger, middleware.Recoverer)
	s.router.Get("/", s.handleIndex)
	s.router.Post("/minify", s.handleMinifyJSON)
	s.router.Get("/ws", s.handleWebsocket)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.router.ServeHTTP(w, r) }

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if err := indexTemplate.Execute(w, nil); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

type minifyResponse struct {
	Session uuid.UUID `json:"session"`
	Output  string    `json:"output"`
	Error   string    `json:"error,omitempty"`
}

func (s *Server) handleMinifyJSON(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(runMinify(uuid.New(), body))
}

// handleWebsocket assigns one session id per connection and passes it to
// runMinify for every message on that connection. The text frames written
// back carry only the minified output or the error; the session id is not
// sent to the browser.
func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	session := uuid.New()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		resp := runMinify(session, string(msg))
		text := resp.Output
		if resp.Error != "" {
			text = fmt.Sprintf("error: %s", resp.Error)
		}
		if err := conn.WriteMessage(websocket.TextMessage, []byte(text)); err != nil {
			return
		}
	}
}

func runMinify(session uuid.UUID, source string) minifyResponse {
	result, err := minify.Minify(source)
	if err != nil {
		return minifyResponse{Session: session, Error: err.Error()}
	}
	return minifyResponse{Session: session, Output: result.Output}
}

func readBody(r *http.Request) (string, error) {
	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
