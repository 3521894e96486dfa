package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/ChicagoDave/houseplanner/pkg/layout"
	"github.com/ChicagoDave/houseplanner/pkg/opening"
	"github.com/ChicagoDave/houseplanner/pkg/spec"
	"github.com/ChicagoDave/houseplanner/pkg/validation"
)

// maxBodyBytes bounds calculator request bodies.
const maxBodyBytes = 1 << 20

// Server is the local development server for interactive design.
type Server struct {
	projectPath string
	port        int
}

// New creates a server for the given project directory.
func New(projectPath string, port int) *Server {
	return &Server{
		projectPath: projectPath,
		port:        port,
	}
}

// Handler returns the API routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/spec", s.handleSpec)
	mux.HandleFunc("GET /api/validation", s.handleValidation)
	mux.HandleFunc("GET /api/plan", s.handlePlan)
	mux.HandleFunc("POST /api/capacity", s.handleCapacity)
	mux.HandleFunc("POST /api/generate", s.handleGenerate)
	mux.HandleFunc("POST /api/optimize", s.handleOptimize)
	mux.HandleFunc("GET /{$}", s.handleIndex)

	return mux
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("HousePlanner server starting on http://localhost%s", addr)
	log.Printf("Project: %s", s.projectPath)

	return http.ListenAndServe(addr, s.Handler())
}

// CapacityRequest is the body of POST /api/capacity. Zero dimensions select
// the calculator defaults.
type CapacityRequest struct {
	Wall opening.Wall `json:"wall"`
	opening.Params
}

// GenerateRequest is the body of POST /api/generate.
type GenerateRequest struct {
	Wall  opening.Wall `json:"wall"`
	Count int          `json:"count"`
	Color string       `json:"color"`
	opening.Params
}

// OptimizeRequest is the body of POST /api/optimize.
type OptimizeRequest struct {
	Wall          opening.Wall `json:"wall"`
	Count         int          `json:"count"`
	OpeningHeight float64      `json:"opening_height"`
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>HousePlanner</title></head>
<body style="margin:0;background:#111;color:#fff;font-family:system-ui;display:flex;align-items:center;justify-content:center;height:100vh">
<div style="text-align:center">
<h1>HousePlanner</h1>
<p>Opening API: <code>/api/capacity</code>, <code>/api/generate</code>, <code>/api/optimize</code>, <code>/api/plan</code>.</p>
</div>
</body></html>`)
}

func (s *Server) handleSpec(w http.ResponseWriter, _ *http.Request) {
	houseSpec, err := spec.LoadProject(s.projectPath)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, houseSpec)
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	houseSpec, err := spec.LoadProject(s.projectPath)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	report := validation.ValidateSchema(houseSpec)
	if report.Valid {
		_, planReport := layout.PlanOpenings(houseSpec)
		report.Merge(planReport)
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handlePlan(w http.ResponseWriter, _ *http.Request) {
	houseSpec, err := spec.LoadProject(s.projectPath)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	report := validation.ValidateSchema(houseSpec)
	plans := []layout.WallPlan{}
	if report.Valid {
		var planReport *validation.Report
		plans, planReport = layout.PlanOpenings(houseSpec)
		report.Merge(planReport)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"house":      houseSpec.House,
		"walls":      plans,
		"total":      layout.TotalOpenings(plans),
		"validation": report,
	})
}

func (s *Server) handleCapacity(w http.ResponseWriter, r *http.Request) {
	var req CapacityRequest
	if !decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, opening.ComputeParams(req.Wall, req.Params.WithDefaults()))
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if !decode(w, r, &req) {
		return
	}

	color := spec.DefaultColor
	if req.Color != "" {
		c, err := opening.ParseColor(req.Color)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		color = c
	}

	p := req.Params.WithDefaults()
	writeJSON(w, http.StatusOK, opening.GenerateOpenings(req.Wall, req.Count, p.Width, p.Spacing, p.Height, color))
}

func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	var req OptimizeRequest
	if !decode(w, r, &req) {
		return
	}
	height := req.OpeningHeight
	if height == 0 {
		height = opening.DefaultOpeningHeight
	}
	writeJSON(w, http.StatusOK, opening.OptimizeDimensions(req.Wall, req.Count, height))
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decoding request: %w", err))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	log.Printf("request failed: %v", err)
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
