package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/inference-sim/schedsim/sim"
	"github.com/inference-sim/schedsim/sim/report"
)

// simulateRequest is the body of /simulate and /compare: a run configuration
// plus the process set. Omitted configuration fields take their defaults.
type simulateRequest struct {
	sim.SimConfig
	Processes []sim.ProcessSpec `json:"processes"`
}

// decodeSimulateRequest parses and validates the body. On failure it has
// already written the error response.
func (s *Server) decodeSimulateRequest(w http.ResponseWriter, r *http.Request, reqID string) (*simulateRequest, bool) {
	req := &simulateRequest{SimConfig: sim.DefaultSimConfig()}
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, reqID, http.StatusRequestEntityTooLarge, &APIError{
				Code:    ErrTooLarge,
				Message: fmt.Sprintf("request body exceeds %d bytes", s.maxBodyBytes),
			})
			return nil, false
		}
		respondError(w, reqID, http.StatusBadRequest, &APIError{
			Code:    ErrValidation,
			Message: "Invalid JSON body: " + err.Error(),
		})
		return nil, false
	}

	if err := s.validate(req); err != nil {
		respondError(w, reqID, http.StatusBadRequest, &APIError{
			Code:    ErrValidation,
			Message: err.Error(),
		})
		return nil, false
	}
	return req, true
}

func (s *Server) validate(req *simulateRequest) error {
	if err := req.SimConfig.Validate(); err != nil {
		return err
	}
	if len(req.Processes) > s.maxProcesses {
		return fmt.Errorf("too many processes: %d > %d", len(req.Processes), s.maxProcesses)
	}
	if err := sim.ValidateSet(req.Processes); err != nil {
		return err
	}
	if h := sim.Horizon(req.Processes); h > s.maxTicks {
		return fmt.Errorf("simulation horizon too long: %d ticks > %d", h, s.maxTicks)
	}
	return nil
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	req, ok := s.decodeSimulateRequest(w, r, reqID)
	if !ok {
		return
	}

	alg := req.NewAlgorithm()
	scheduler := sim.NewScheduler(req.Processes)
	scheduler.Run(alg)
	s.logger.WithField("request_id", reqID).Debugf("simulated %s over %d processes as %s",
		alg.Name(), len(req.Processes), scheduler.RunID)

	respondOK(w, reqID, report.NewRunReport(scheduler, alg, req.StarvationThreshold))
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	req, ok := s.decodeSimulateRequest(w, r, reqID)
	if !ok {
		return
	}
	if !sim.SupportsAging(req.Algorithm) {
		respondError(w, reqID, http.StatusBadRequest, &APIError{
			Code:    ErrValidation,
			Message: fmt.Sprintf("algorithm %q has no aging variant to compare", req.Algorithm),
		})
		return
	}

	base := sim.NewAlgorithm(req.Algorithm, req.TimeQuantum, nil)
	params := req.Parameters()
	c := sim.CompareAging(req.Processes, base, params)

	respondOK(w, reqID, report.NewComparisonReport(c, base, sim.WithAging(base, params), req.StarvationThreshold))
}
