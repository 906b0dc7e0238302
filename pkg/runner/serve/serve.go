// Package serve runs the wallpaper HTTP server.
package serve

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"net"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/dotcal/pkg/params"
	"tableflip.dev/dotcal/pkg/runner/mcp"
	"tableflip.dev/dotcal/pkg/store"
	"tableflip.dev/dotcal/pkg/wallpaper"
)

// Server answers wallpaper requests. Defaults come from Config and are
// reloaded when its file changes.
type Server struct {
	Config store.Config
	Cache  store.Cache
	Clock  wallpaper.Clock
	// Reload loads a fresh config after a file change. Nil uses
	// store.LoadConfig.
	Reload  func() (store.Config, error)
	Version string

	OnListening func(net.Addr)

	defaults atomic.Pointer[params.Request]
}

func (s *Server) now() time.Time {
	if s.Clock == nil {
		return time.Now()
	}
	return s.Clock()
}

// Defaults returns the request defaults currently in effect.
func (s *Server) Defaults() params.Request {
	if d := s.defaults.Load(); d != nil {
		return *d
	}
	if s.Config != nil {
		return s.Config.Defaults()
	}
	return params.Default()
}

func (s *Server) setDefaults(r params.Request) {
	s.defaults.Store(&r)
}

func (s *Server) cache() store.Cache {
	if s.Cache == nil {
		return store.OpenCache("")
	}
	return s.Cache
}

// Handler returns the routes of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/og", s.handleWallpaper)
	mux.HandleFunc("/api/scene", s.handleScene)
	mux.HandleFunc("/api/stats", s.handleStats)
	for _, legacy := range []string{"/api/wallpaper", "/api/calendar", "/og"} {
		mux.HandleFunc(legacy, redirect)
	}
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok\n"))
	})
	if s.Config == nil || s.Config.MCP() {
		svc := &mcp.Service{Defaults: s.Defaults, Clock: s.Clock}
		if s.Config != nil {
			svc.BaseURL = s.Config.BaseURL()
		}
		mux.Handle("/mcp", server.NewStreamableHTTPServer(mcp.NewServer(svc, s.Version)))
	}
	return logRequests(mux)
}

// redirect sends old wallpaper routes to /api/og with the same query.
func redirect(w http.ResponseWriter, r *http.Request) {
	target := "/api/og"
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	http.Redirect(w, r, target, http.StatusPermanentRedirect)
}

// request parses the query. It writes the error response and returns false
// when the query is rejected.
func (s *Server) request(w http.ResponseWriter, r *http.Request, needDims bool) (params.Request, bool) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return params.Request{}, false
	}
	var (
		req params.Request
		err error
	)
	if needDims {
		req, err = params.FromQuery(r.URL.Query(), s.Defaults())
	} else {
		req, err = params.Overlay(r.URL.Query(), s.Defaults())
	}
	switch {
	case err == nil:
		return req, true
	case errors.Is(err, params.ErrDimensions):
		http.Error(w, params.DimensionsMessage, http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusBadRequest)
	}
	return params.Request{}, false
}

func (s *Server) handleWallpaper(w http.ResponseWriter, r *http.Request) {
	req, ok := s.request(w, r, true)
	if !ok {
		return
	}
	now := s.now()
	key := store.KeyFor(req.Today(now), req.Query())

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("ETag", `"`+key.String()+`"`)
	if match := r.Header.Get("If-None-Match"); match != "" && strings.Contains(match, key.String()) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	data, hit := s.cache().Get(key)
	if !hit {
		var buf bytes.Buffer
		if err := wallpaper.Compose(req, now).PNG(&buf); err != nil {
			log.Printf("render %s: %v", key, err)
			w.Header().Del("ETag")
			http.Error(w, "failed to render wallpaper", http.StatusInternalServerError)
			return
		}
		data = buf.Bytes()
		if err := s.cache().Put(key, data); err != nil {
			log.Printf("cache %s: %v", key, err)
		}
	}

	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(data)
}

func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	req, ok := s.request(w, r, true)
	if !ok {
		return
	}
	writeJSON(w, wallpaper.Compose(req, s.now()).Scene)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	req, ok := s.request(w, r, false)
	if !ok {
		return
	}
	writeJSON(w, wallpaper.Describe(req, s.now()))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Printf("%s %s %d %s", r.Method, r.URL.Path, rec.status, time.Since(start).Round(time.Millisecond))
	})
}

// Do serves until ctx is cancelled.
func (s *Server) Do(ctx context.Context) error {
	if s.Config == nil {
		return errors.New("serve requires a config")
	}
	s.setDefaults(s.Config.Defaults())

	if path := s.Config.File(); path != "" {
		if err := s.watch(ctx, path); err != nil {
			log.Printf("config reload disabled: %v", err)
		}
	}

	httpSrv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", s.Config.Addr())
	if err != nil {
		return err
	}
	if s.OnListening != nil {
		s.OnListening(ln.Addr())
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	err = httpSrv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) watch(ctx context.Context, path string) error {
	events, err := store.WatchConfig(ctx, path)
	if err != nil {
		return err
	}
	reload := s.Reload
	if reload == nil {
		reload = store.LoadConfig
	}
	go func() {
		for ev := range events {
			if ev.Type == store.EventConfigRemoved {
				log.Printf("config %s removed, keeping previous defaults", ev.Path)
				continue
			}
			cfg, err := reload()
			if err != nil {
				log.Printf("config reload: %v", err)
				continue
			}
			s.setDefaults(cfg.Defaults())
			log.Printf("config %s reloaded", ev.Path)
		}
	}()
	return nil
}
