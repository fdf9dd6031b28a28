package mockapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
)

// Options tunes the stub server.
type Options struct {
	// Latency is added before every travel_discovery response.
	Latency time.Duration
}

type handler struct {
	fixtures *Fixtures
}

// NewRouter returns a router serving the travel discovery endpoints from fixtures.
//
// Routes:
//   - GET /health
//   - GET /travel_discovery/category?name=...    unknown names get []
//   - GET /travel_discovery/destination?name=... unknown names get 404
//
// A missing name parameter is answered with 400.
func NewRouter(fixtures *Fixtures, opts Options) *mux.Router {
	h := &handler{fixtures: fixtures}

	r := mux.NewRouter()
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "OK")
	}).Methods("GET")

	api := r.PathPrefix("/travel_discovery").Subrouter()
	if opts.Latency > 0 {
		api.Use(latencyMiddleware(opts.Latency))
	}
	api.HandleFunc("/category", h.category).Methods("GET")
	api.HandleFunc("/destination", h.destination).Methods("GET")

	return r
}

func latencyMiddleware(d time.Duration) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-time.After(d):
			case <-r.Context().Done():
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// name extracts the normalized name parameter and writes the canned
// responses shared by both endpoints. ok is false when a response was written.
func (h *handler) name(w http.ResponseWriter, r *http.Request) (name string, ok bool) {
	query := r.URL.Query()
	if !query.Has("name") {
		http.Error(w, "missing name", http.StatusBadRequest)
		return "", false
	}
	name = strings.ToLower(query.Get("name"))

	if code, found := h.fixtures.Statuses[name]; found {
		http.Error(w, http.StatusText(code), code)
		return "", false
	}
	if h.fixtures.isMalformed(name) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name": "` + name))
		return "", false
	}
	return name, true
}

func (h *handler) category(w http.ResponseWriter, r *http.Request) {
	name, ok := h.name(w, r)
	if !ok {
		return
	}
	places := h.fixtures.Categories[name]
	if places == nil {
		places = []Place{}
	}
	writeJSON(w, places)
}

func (h *handler) destination(w http.ResponseWriter, r *http.Request) {
	name, ok := h.name(w, r)
	if !ok {
		return
	}
	detail, found := h.fixtures.Destinations[name]
	if !found {
		http.Error(w, "destination not found", http.StatusNotFound)
		return
	}
	if detail.Photos == nil {
		detail.Photos = []string{}
	}
	writeJSON(w, detail)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
