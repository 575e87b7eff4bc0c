package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/dijkstra"
	"github.com/katalvlaran/lvtrace/graphio"
	"github.com/katalvlaran/lvtrace/metrics"
	"github.com/katalvlaran/lvtrace/prim_kruskal"
)

type kruskalRequest struct {
	Graph json.RawMessage `json:"graph"`
}

type primRequest struct {
	Graph     json.RawMessage `json:"graph"`
	StartNode string          `json:"startNode"`
}

type dijkstraRequest struct {
	Graph      json.RawMessage `json:"graph"`
	SourceNode string          `json:"sourceNode"`
	TargetNode string          `json:"targetNode"`
}

// InfoResponse is the body of GET /api/info.
type InfoResponse struct {
	Name       string   `json:"name"`
	Version    string   `json:"version"`
	Algorithms []string `json:"algorithms"`
}

func handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func handleInfo(version string) http.HandlerFunc {
	info := InfoResponse{
		Name:       "lvtrace",
		Version:    version,
		Algorithms: []string{AlgorithmKruskal, AlgorithmPrim, AlgorithmDijkstra},
	}
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, info)
	}
}

func handleSample() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, core.SampleGraph())
	}
}

func (s *Server) handleKruskal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.execute(w, r, AlgorithmKruskal, func() (RunResponse, error) {
			var req kruskalRequest
			if err := decodeRequest(r, &req); err != nil {
				return RunResponse{}, err
			}
			g, err := graphio.ParseJSON(req.Graph)
			if err != nil {
				return RunResponse{}, err
			}
			res, err := prim_kruskal.Kruskal(&g)
			if err != nil {
				return RunResponse{}, err
			}
			return KruskalResponse(res), nil
		})
	}
}

func (s *Server) handlePrim() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.execute(w, r, AlgorithmPrim, func() (RunResponse, error) {
			var req primRequest
			if err := decodeRequest(r, &req); err != nil {
				return RunResponse{}, err
			}
			g, err := graphio.ParseJSON(req.Graph)
			if err != nil {
				return RunResponse{}, err
			}
			res, err := prim_kruskal.Prim(&g, req.StartNode)
			if err != nil {
				return RunResponse{}, err
			}
			return PrimResponse(res), nil
		})
	}
}

func (s *Server) handleDijkstra() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.execute(w, r, AlgorithmDijkstra, func() (RunResponse, error) {
			var req dijkstraRequest
			if err := decodeRequest(r, &req); err != nil {
				return RunResponse{}, err
			}
			g, err := graphio.ParseJSON(req.Graph)
			if err != nil {
				return RunResponse{}, err
			}
			res, err := dijkstra.Dijkstra(&g,
				dijkstra.Source(req.SourceNode),
				dijkstra.WithTarget(req.TargetNode),
			)
			if err != nil {
				return RunResponse{}, err
			}
			return DijkstraResponse(res), nil
		})
	}
}

// execute runs one engine invocation, records metrics and writes either the
// envelope or the classified error.
func (s *Server) execute(w http.ResponseWriter, r *http.Request, algorithm string, run func() (RunResponse, error)) {
	start := time.Now()
	resp, err := run()
	elapsed := time.Since(start)

	if err != nil {
		status, kind := classify(err)
		outcome := metrics.OutcomeInvalid
		if status >= http.StatusInternalServerError {
			outcome = metrics.OutcomeError
			s.logger.Error("run failed", "algorithm", algorithm, "err", err)
		} else {
			s.logger.Debug("run rejected", "algorithm", algorithm, "kind", kind, "err", err)
		}
		metrics.ObserveRun(algorithm, outcome, elapsed, 0)
		writeJSON(w, status, ErrorResponse{Error: kind, Message: err.Error()})
		return
	}

	resp.RunID = uuid.NewString()
	metrics.ObserveRun(algorithm, metrics.OutcomeOK, elapsed, resp.StepCount())
	s.logger.Debug("run complete", "algorithm", algorithm, "runId", resp.RunID, "steps", resp.StepCount())
	writeJSON(w, http.StatusOK, resp)
}
