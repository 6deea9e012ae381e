package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/df07/go-pick-raytracer/pkg/camera"
	"github.com/df07/go-pick-raytracer/pkg/config"
	"github.com/df07/go-pick-raytracer/pkg/lights"
	"github.com/df07/go-pick-raytracer/pkg/renderer"
	"github.com/df07/go-pick-raytracer/pkg/scene"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	minSize       = 16
	maxSize       = 2000
	maxOrbitSteps = 120
	maxLightCoord = 100.0
)

// Server serves raytraced frames and picks against a shared box scene
type Server struct {
	port      int
	cfg       config.Config
	raytracer *renderer.Raytracer

	// HTTP handlers run concurrently; the pick scene is mutated by every hit
	mu   sync.Mutex
	pick *scene.Scene
}

// NewServer creates a new web server
func NewServer(port int, cfg config.Config) *Server {
	return &Server{
		port:      port,
		cfg:       cfg,
		raytracer: renderer.NewRaytracer(cfg.RendererConfig(), logPrinter{}),
		pick:      scene.NewPickScene(cfg.PickCamera(cfg.Aspect()), cfg.CubeSpecs(), logPrinter{}),
	}
}

// logPrinter adapts the standard logger to core.Logger
type logPrinter struct{}

func (logPrinter) Printf(format string, args ...interface{}) {
	log.Printf(format, args...)
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Width    int        `json:"width"`
	Height   int        `json:"height"`
	Time     float64    `json:"time"`     // Light orbit phase
	Light    mgl64.Vec3 `json:"light"`    // Explicit light position, used when HasLight
	HasLight bool       `json:"hasLight"`
}

// PickResponse is the JSON answer of /api/pick
type PickResponse struct {
	Hit      bool    `json:"hit"`
	Name     string  `json:"name,omitempty"`
	T        float64 `json:"t,omitempty"`
	Selected bool    `json:"selected"`
}

// OrbitFrame is one frame of the /api/orbit stream
type OrbitFrame struct {
	Step       int     `json:"step"`
	TotalSteps int     `json:"totalSteps"`
	Time       float64 `json:"time"`
	ImageData  string  `json:"imageData"` // Base64 encoded PNG
	Stats      Stats   `json:"stats"`
	IsComplete bool    `json:"isComplete"`
	ElapsedMs  int64   `json:"elapsedMs"`
}

// Stats represents render statistics
type Stats struct {
	TotalPixels    int   `json:"totalPixels"`
	HitPixels      int   `json:"hitPixels"`
	ShadowedPixels int   `json:"shadowedPixels"`
	Tiles          int   `json:"tiles"`
	Workers        int   `json:"workers"`
	DurationMs     int64   `json:"durationMs"`
	AvgLuminance   float64 `json:"avgLuminance"`
}

func toStats(s renderer.RenderStats) Stats {
	return Stats{
		TotalPixels:    s.TotalPixels,
		HitPixels:      s.HitPixels,
		ShadowedPixels: s.ShadowedPixels,
		Tiles:          s.Tiles,
		Workers:        s.Workers,
		DurationMs:     s.Duration.Milliseconds(),
		AvgLuminance:   s.AvgLuminance,
	}
}

// Handler returns the API routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/orbit", s.handleOrbit)
	mux.HandleFunc("/api/pick", s.handlePick)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleRender returns one raytraced frame as PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	img, stats, err := s.renderFrame(r.Context(), req, req.Time)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("Render error: %v", err))
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("Encode error: %v", err))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("X-Render-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
	w.Header().Set("X-Avg-Luminance", strconv.FormatFloat(stats.AvgLuminance, 'f', 4, 64))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// handleOrbit streams frames along the light orbit with SSE
func (s *Server) handleOrbit(w http.ResponseWriter, r *http.Request) {
	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.sendSSEError(w, fmt.Sprintf("Invalid request: %v", err))
		return
	}
	steps, err := parseIntParam(r.URL.Query(), "steps", 8, 1, maxOrbitSteps)
	if err != nil {
		s.sendSSEError(w, fmt.Sprintf("Invalid request: %v", err))
		return
	}
	dt, err := parseFloatParam(r.URL.Query(), "dt", 0.25, 0.001, 10)
	if err != nil {
		s.sendSSEError(w, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	// Use request context to detect client disconnection
	ctx := r.Context()
	startTime := time.Now()

	for step := 0; step < steps; step++ {
		phase := req.Time + float64(step)*dt
		img, stats, err := s.renderFrame(ctx, req, phase)
		if err != nil {
			s.sendSSEError(w, fmt.Sprintf("Render error: %v", err))
			return
		}

		imageData, err := s.imageToBase64PNG(img)
		if err != nil {
			s.sendSSEError(w, fmt.Sprintf("failed to encode image: %v", err))
			return
		}

		frame := OrbitFrame{
			Step:       step + 1,
			TotalSteps: steps,
			Time:       phase,
			ImageData:  imageData,
			Stats:      toStats(stats),
			IsComplete: step == steps-1,
			ElapsedMs:  time.Since(startTime).Milliseconds(),
		}
		if err := s.sendSSEUpdate(w, frame); err != nil {
			log.Printf("Orbit stream stopped: %v", err)
			return
		}
	}

	// Send completion event
	s.sendSSEEvent(w, "complete", "Orbit completed")
}

// handlePick picks the shared box scene at normalized coordinates
func (s *Server) handlePick(w http.ResponseWriter, r *http.Request) {
	u, err := parseFloatParam(r.URL.Query(), "u", 0.5, 0, 1)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	v, err := parseFloatParam(r.URL.Query(), "v", 0.5, 0, 1)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	result := s.pick.Pick(u, v)
	resp := PickResponse{Hit: result.Hit, Name: result.Name, T: result.T}
	if result.Hit {
		resp.Selected = result.Object.Selected()
	}
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// handleSceneConfig returns the active configuration with validation limits
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	response := map[string]interface{}{
		"config": s.cfg,
		"limits": map[string]interface{}{
			"width":  map[string]int{"min": minSize, "max": maxSize},
			"height": map[string]int{"min": minSize, "max": maxSize},
			"steps":  map[string]int{"min": 1, "max": maxOrbitSteps},
			"light":  map[string]float64{"min": -maxLightCoord, "max": maxLightCoord},
		},
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	q := r.URL.Query()
	req := &RenderRequest{}

	var err error
	if req.Width, err = parseIntParam(q, "width", s.cfg.Window.Width, minSize, maxSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(q, "height", s.cfg.Window.Height, minSize, maxSize); err != nil {
		return nil, err
	}
	if req.Time, err = parseFloatParam(q, "time", 0, -1e6, 1e6); err != nil {
		return nil, err
	}

	// The light override needs all three coordinates
	given := 0
	for i, key := range []string{"lx", "ly", "lz"} {
		if q.Get(key) != "" {
			given++
		}
		if req.Light[i], err = parseFloatParam(q, key, 0, -maxLightCoord, maxLightCoord); err != nil {
			return nil, err
		}
	}
	switch given {
	case 0:
	case 3:
		req.HasLight = true
	default:
		return nil, fmt.Errorf("light needs lx, ly and lz")
	}

	return req, nil
}

// renderFrame renders req with the light at its explicit position or at the orbit phase
func (s *Server) renderFrame(ctx context.Context, req *RenderRequest, phase float64) (*image.RGBA, renderer.RenderStats, error) {
	lightPos := req.Light
	if !req.HasLight {
		l := lights.NewOrbitLight(s.cfg.OrbitConfig())
		l.SetPhase(phase)
		lightPos = l.Position()
	}

	cam := camera.New(s.cfg.RaytraceCamera(float64(req.Width) / float64(req.Height)))
	u := renderer.NewUniforms(cam, s.cfg.SceneConfig(), lightPos)
	return s.raytracer.Render(ctx, u, req.Width, req.Height)
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %g and %g, got: %g", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// imageToBase64PNG converts an image to base64-encoded PNG
func (s *Server) imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// sendSSEUpdate sends an orbit frame via SSE
func (s *Server) sendSSEUpdate(w http.ResponseWriter, frame OrbitFrame) error {
	data, err := json.Marshal(frame)
	if err != nil {
		return err
	}
	return s.sendSSEEvent(w, "progress", string(data))
}

// sendSSEError sends an error via SSE
func (s *Server) sendSSEError(w http.ResponseWriter, message string) error {
	return s.sendSSEEvent(w, "error", message)
}

// sendSSEEvent sends a generic SSE event
func (s *Server) sendSSEEvent(w http.ResponseWriter, event, data string) error {
	if flusher, ok := w.(http.Flusher); ok {
		fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
		flusher.Flush()
		return nil
	}
	return fmt.Errorf("streaming not supported")
}
