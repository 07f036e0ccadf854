package server

import (
	"net/http"
	"runtime"
	"time"

	"github.com/inference-sim/schedsim/sim"
)

type healthResponse struct {
	Status    string `json:"status"`
	GoVersion string `json:"go_version"`
	Uptime    string `json:"uptime"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	respondOK(w, reqID, healthResponse{
		Status:    "healthy",
		GoVersion: runtime.Version(),
		Uptime:    time.Since(s.startTime).Round(time.Second).String(),
	})
}

type algorithmInfo struct {
	Name          string `json:"name"`
	DisplayName   string `json:"display_name"`
	SupportsAging bool   `json:"supports_aging"`
	Preemptive    bool   `json:"preemptive"`
}

var preemptive = map[string]bool{
	sim.AlgorithmSRTF:               true,
	sim.AlgorithmRoundRobin:         true,
	sim.AlgorithmPriorityPreemptive: true,
}

func (s *Server) handleAlgorithms(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	names := sim.AlgorithmNames()
	data := make([]algorithmInfo, len(names))
	for i, name := range names {
		data[i] = algorithmInfo{
			Name:          name,
			DisplayName:   sim.DisplayName(name),
			SupportsAging: sim.SupportsAging(name),
			Preemptive:    preemptive[name],
		}
	}
	respondOK(w, reqID, data)
}
