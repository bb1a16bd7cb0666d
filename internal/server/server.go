package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/adrienbihorel/myc-emissions-calculator/internal/logger"
	"github.com/adrienbihorel/myc-emissions-calculator/pkg/engine"
	"github.com/adrienbihorel/myc-emissions-calculator/pkg/factors"
	"github.com/adrienbihorel/myc-emissions-calculator/pkg/project"
	"github.com/adrienbihorel/myc-emissions-calculator/pkg/series"
	"github.com/adrienbihorel/myc-emissions-calculator/pkg/summary"
)

// Status values of a scenario response.
const (
	StatusOK           = "ok"
	StatusMissingSteps = "missing steps"
	StatusInvalid      = "invalid"
)

// Server exposes a project directory and the calculator over HTTP. The
// project is re-read on every request so edits show up without a restart.
type Server struct {
	projectPath string
	fileName    string
	port        int
	defaults    factors.Table
}

// New creates a server for the given project path. defaults is the emission
// factor table used by scenarios without their own factors.
func New(projectPath, fileName string, port int, defaults factors.Table) *Server {
	return &Server{
		projectPath: projectPath,
		fileName:    fileName,
		port:        port,
		defaults:    defaults,
	}
}

// Handler returns the routes of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/project", s.handleProject)
	mux.HandleFunc("GET /api/project/{stage}/{scenario}/results", s.handleResults)
	mux.HandleFunc("GET /api/project/{stage}/{scenario}/summary", s.handleSummary)
	mux.HandleFunc("GET /api/project/{stage}/{scenario}/{method}/results", s.handleMethodResults)
	mux.HandleFunc("GET /api/validation", s.handleValidation)
	mux.HandleFunc("GET /api/defaults", s.handleDefaults)
	mux.HandleFunc("POST /api/compute", s.handleCompute)

	return mux
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	logger.Info("Emissions calculator server starting on http://localhost%s", addr)
	logger.Info("Project: %s", s.projectPath)

	return http.ListenAndServe(addr, s.Handler())
}

// scenarioResponse is the body of the results, summary and compute endpoints.
type scenarioResponse struct {
	RunID      string           `json:"runId"`
	Status     string           `json:"status"`
	Missing    []int            `json:"missing,omitempty"`
	Results    *engine.Result   `json:"results,omitempty"`
	Summary    *summary.Summary `json:"summary,omitempty"`
	Validation any              `json:"validation,omitempty"`
}

// httpStatus is 422 for inputs that failed validation and 200 otherwise.
func (resp scenarioResponse) httpStatus() int {
	if resp.Status == StatusInvalid {
		return http.StatusUnprocessableEntity
	}
	return http.StatusOK
}

type errorResponse struct {
	RunID string `json:"runId"`
	Error string `json:"error"`
}

// writeJSON encodes v before writing the header so an unencodable value
// becomes a 500 instead of a truncated 200.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		logger.Error("encoding response: %v", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintf(w, "{\"error\":%q}\n", "encoding response: "+err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func writeError(w http.ResponseWriter, runID string, status int, err error) {
	logger.Warn("run %s: %v", runID, err)
	writeJSON(w, status, errorResponse{RunID: runID, Error: err.Error()})
}

func (s *Server) loadProject() (*project.Project, error) {
	return project.LoadProject(s.projectPath, s.fileName)
}

func (s *Server) handleProject(w http.ResponseWriter, _ *http.Request) {
	runID := uuid.NewString()
	p, err := s.loadProject()
	if err != nil {
		writeError(w, runID, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"runId": runID, "project": p})
}

// resolveScenario computes the scenario named by the request path. It writes
// the error response itself and returns ok=false when the request cannot be
// served.
func (s *Server) resolveScenario(w http.ResponseWriter, r *http.Request, runID string) (resp scenarioResponse, ok bool) {
	return s.resolveScenarioWith(w, r, runID, "")
}

// resolveScenarioWith is resolveScenario with the scenario's method replaced
// by method when it is set.
func (s *Server) resolveScenarioWith(w http.ResponseWriter, r *http.Request, runID string, method project.Method) (resp scenarioResponse, ok bool) {
	stage, err := project.ParseStage(r.PathValue("stage"))
	if err != nil {
		writeError(w, runID, http.StatusBadRequest, err)
		return resp, false
	}
	id, err := strconv.Atoi(r.PathValue("scenario"))
	if err != nil {
		writeError(w, runID, http.StatusBadRequest, fmt.Errorf("invalid scenario id %q", r.PathValue("scenario")))
		return resp, false
	}

	p, err := s.loadProject()
	if err != nil {
		writeError(w, runID, http.StatusInternalServerError, err)
		return resp, false
	}
	years, err := p.Years()
	if err != nil {
		writeError(w, runID, http.StatusUnprocessableEntity, err)
		return resp, false
	}
	sc, err := p.Scenario(stage, id)
	if err != nil {
		writeError(w, runID, http.StatusNotFound, err)
		return resp, false
	}

	steps := sc.Steps
	if method != "" {
		if stage != project.StageClimate {
			writeError(w, runID, http.StatusBadRequest, fmt.Errorf("method %s only applies to Climate scenarios", method))
			return resp, false
		}
		steps.Method = method
	}

	logger.Debug("run %s: computing %s scenario %d", runID, stage, id)
	return s.compute(runID, years, &steps), true
}

func (s *Server) compute(runID string, years series.Years, steps *project.Steps) scenarioResponse {
	resp := scenarioResponse{RunID: runID}
	result, report, err := engine.Resolve(years, steps, s.defaults)
	resp.Validation = report

	var missing *engine.MissingStepsError
	if errors.As(err, &missing) {
		resp.Status = StatusMissingSteps
		resp.Missing = missing.Steps
		return resp
	}
	if !report.Valid {
		resp.Status = StatusInvalid
		return resp
	}
	resp.Status = StatusOK
	resp.Results = result
	return resp
}

func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	runID := uuid.NewString()
	resp, ok := s.resolveScenario(w, r, runID)
	if !ok {
		return
	}
	writeJSON(w, resp.httpStatus(), resp)
}

// handleMethodResults computes a Climate scenario with the method named in
// the path, whatever method the project stores.
func (s *Server) handleMethodResults(w http.ResponseWriter, r *http.Request) {
	runID := uuid.NewString()
	method, err := project.ParseMethod(r.PathValue("method"))
	if err != nil {
		writeError(w, runID, http.StatusBadRequest, err)
		return
	}
	resp, ok := s.resolveScenarioWith(w, r, runID, method)
	if !ok {
		return
	}
	writeJSON(w, resp.httpStatus(), resp)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	runID := uuid.NewString()
	resp, ok := s.resolveScenario(w, r, runID)
	if !ok {
		return
	}
	if resp.Results != nil {
		resp.Summary = summary.Summarize(resp.Results)
		resp.Results = nil
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	p, err := s.loadProject()
	if err != nil {
		writeError(w, uuid.NewString(), http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"runId":      uuid.NewString(),
		"validation": engine.ValidateProject(p, s.defaults),
	})
}

func (s *Server) handleDefaults(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"runId":    uuid.NewString(),
		"boundary": factors.WellToWheel,
		"factors":  s.defaults,
	})
}

// computeRequest carries a single scenario outside of any project file.
type computeRequest struct {
	ReferenceYears []int         `json:"referenceYears"`
	Steps          project.Steps `json:"steps"`
}

func (s *Server) handleCompute(w http.ResponseWriter, r *http.Request) {
	runID := uuid.NewString()

	var req computeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, runID, http.StatusBadRequest, fmt.Errorf("decoding request: %w", err))
		return
	}
	years, err := series.YearsFrom(req.ReferenceYears)
	if err != nil {
		writeError(w, runID, http.StatusBadRequest, err)
		return
	}

	resp := s.compute(runID, years, &req.Steps)
	writeJSON(w, resp.httpStatus(), resp)
}
