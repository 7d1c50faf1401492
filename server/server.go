package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"playparse/batch"
	"playparse/play"
)

const maxBodyBytes = 16 << 20

type ParseRequest struct {
	Play string `json:"play"`
}

type BatchRequest struct {
	Plays []string `json:"plays"`
}

type BatchResponse struct {
	Stats        batch.Stats         `json:"stats"`
	Descriptions []*play.Description `json:"descriptions"`
}

type Parser interface {
	Parse(play string) *play.Description
}

// Application serves the parser over HTTP.
type Application struct {
	router   *mux.Router
	parser   Parser
	runner   *batch.Runner
	upgrader websocket.Upgrader
}

// New returns the HTTP handler. Access logs go to logOut.
func New(parser Parser, workers int, logOut io.Writer) *Application {
	if parser == nil {
		parser = play.Default()
	}
	app := &Application{
		router: mux.NewRouter(),
		parser: parser,
		runner: batch.NewRunner(parser, workers),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}

	logger := func(next http.Handler) http.Handler {
		return handlers.LoggingHandler(logOut, next)
	}
	app.router.NotFoundHandler = logger(http.HandlerFunc(notFoundHandler))
	app.router.Use(logger)

	app.router.HandleFunc("/healthz", app.healthHandler).Methods("GET")
	app.router.HandleFunc("/parse", app.parseHandler).Methods("POST")
	app.router.HandleFunc("/batch", app.batchHandler).Methods("POST")
	app.router.HandleFunc("/ws", app.wsHandler)
	return app
}

func (app *Application) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	app.router.ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("error writing response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

func (app *Application) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// parseHandler always answers 200 with a description; parse failures are
// reported inside it.
func (app *Application) parseHandler(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if !decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, app.parser.Parse(req.Play))
}

func (app *Application) batchHandler(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if !decode(w, r, &req) {
		return
	}
	descs, stats := app.runner.Run(r.Context(), req.Plays)
	log.Printf("batch: %v", stats)
	writeJSON(w, http.StatusOK, BatchResponse{
		Stats:        stats,
		Descriptions: descs,
	})
}

// wsHandler parses each text message as one play and answers with its
// description.
func (app *Application) wsHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := app.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("error reading message: %v", err)
			}
			return
		}
		if err := conn.WriteJSON(app.parser.Parse(string(msg))); err != nil {
			log.Printf("error writing message: %v", err)
			return
		}
	}
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "not found")
}
