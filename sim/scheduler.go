package sim

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/inference-sim/schedsim/sim/trace"
)

// Scheduler owns one simulation run: the process set, the simulated clock,
// the execution log and the aging trace.
// Run-state is only valid to read after Run returns; a Scheduler is not safe
// for concurrent use.
type Scheduler struct {
	Clock int64
	// RunID identifies the most recent run. Regenerated by every Reset.
	RunID string
	// Algorithm is the name of the algorithm last passed to Run.
	Algorithm string
	// AgingEnabled is true when the last algorithm carried an AgingConfig.
	AgingEnabled bool
	// Processes in insertion order; never reordered.
	Processes []*Process
	Log       ExecutionLog
	Trace     *trace.AgingTrace

	completed int
}

// NewScheduler creates a Scheduler with a fresh Process per spec.
func NewScheduler(specs []ProcessSpec) *Scheduler {
	s := &Scheduler{
		Processes: make([]*Process, 0, len(specs)),
		Log:       make(ExecutionLog, 0),
		Trace:     trace.NewAgingTrace(),
	}
	for _, ps := range specs {
		s.AddProcess(ps)
	}
	return s
}

// AddProcess appends a fresh Process built from spec.
func (s *Scheduler) AddProcess(spec ProcessSpec) {
	s.Processes = append(s.Processes, spec.NewProcess())
}

// Reset restores every process to its arrival state and clears both logs.
func (s *Scheduler) Reset() {
	s.Clock = 0
	s.completed = 0
	s.RunID = "run_" + uuid.New().String()[:8]
	s.Log = make(ExecutionLog, 0)
	s.Trace.Reset()
	for _, p := range s.Processes {
		p.reset()
	}
}

// Run resets the scheduler and simulates alg to completion.
// Returns the execution log and the aging records of the run.
func (s *Scheduler) Run(alg Algorithm) (ExecutionLog, []trace.AgingRecord) {
	if alg == nil {
		panic("Run: alg must not be nil")
	}
	s.Reset()
	s.Algorithm = alg.Name()
	s.AgingEnabled = alg.AgingConfig() != nil
	logrus.Infof("Starting %s run %s over %d processes", s.Algorithm, s.RunID, len(s.Processes))
	alg.schedule(s)
	logrus.Infof("[tick %07d] %s run %s ended: %d slices, %d aging events",
		s.Clock, s.Algorithm, s.RunID, len(s.Log), s.Trace.Len())
	return s.Log, s.Trace.Records
}

// Process returns the process with the given pid, or nil.
func (s *Scheduler) Process(pid string) *Process {
	for _, p := range s.Processes {
		if p.PID == pid {
			return p
		}
	}
	return nil
}

func (s *Scheduler) done() bool {
	return s.completed == len(s.Processes)
}

// candidates returns arrived, incomplete processes in insertion order.
func (s *Scheduler) candidates() []*Process {
	var out []*Process
	for _, p := range s.Processes {
		if p.arrived(s.Clock) {
			out = append(out, p)
		}
	}
	return out
}

// admit appends every arrived, incomplete process not already queued, in
// insertion order.
func (s *Scheduler) admit(rq *ReadyQueue) {
	for _, p := range s.Processes {
		if p.arrived(s.Clock) && !rq.Contains(p) {
			rq.Enqueue(p)
		}
	}
}

// runToCompletion executes p for its whole remaining time as one slice.
func (s *Scheduler) runToCompletion(p *Process) {
	p.dispatch(s.Clock)
	start := s.Clock
	s.Clock += p.RemainingTime
	s.Log.Append(p.PID, start, s.Clock)
	logrus.Debugf("[tick %07d] %s ran [%d, %d)", s.Clock, p.PID, start, s.Clock)
	s.complete(p)
}

// runFor executes p for d ticks as one slice, completing it if no work remains.
func (s *Scheduler) runFor(p *Process, d int64) {
	p.dispatch(s.Clock)
	start := s.Clock
	s.Clock += d
	p.RemainingTime -= d
	s.Log.Append(p.PID, start, s.Clock)
	logrus.Debugf("[tick %07d] %s ran [%d, %d), %d remaining", s.Clock, p.PID, start, s.Clock, p.RemainingTime)
}

// runTick executes p for exactly one tick, merging with the previous slice
// when p was already running.
func (s *Scheduler) runTick(p *Process) {
	p.dispatch(s.Clock)
	s.Log.Extend(p.PID, s.Clock, s.Clock+1)
	p.RemainingTime--
	s.Clock++
	if p.RemainingTime == 0 {
		s.complete(p)
	}
}

func (s *Scheduler) complete(p *Process) {
	p.finalize(s.Clock)
	s.completed++
	logrus.Debugf("[tick %07d] %s completed: turnaround=%d waiting=%d", s.Clock, p.PID, p.TurnaroundTime, p.WaitingTime)
}

// runNonPreemptive drives the ready-queue model shared by SJF and
// Priority-Non-Preemptive: admit, order, dispatch the head to completion.
func (s *Scheduler) runNonPreemptive(order func(rq *ReadyQueue)) {
	rq := &ReadyQueue{}
	for !s.done() {
		s.admit(rq)
		if rq.Len() == 0 {
			s.Clock++
			continue
		}
		order(rq)
		s.runToCompletion(rq.Dequeue())
	}
}

// runPreemptive drives the per-tick model shared by SRTF and
// Priority-Preemptive: pick among candidates, run one tick.
func (s *Scheduler) runPreemptive(pick func(candidates []*Process) *Process) {
	for !s.done() {
		candidates := s.candidates()
		if len(candidates) == 0 {
			s.Clock++
			continue
		}
		s.runTick(pick(candidates))
	}
}
