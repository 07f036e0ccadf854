package sim

import (
	"testing"
)

func newTestProcess(pid string, burst, arrival, priority int64) *Process {
	return ProcessSpec{PID: pid, BurstTime: burst, ArrivalTime: arrival, Priority: priority}.NewProcess()
}

func TestReadyQueue_EnqueueDequeue_FIFO(t *testing.T) {
	rq := &ReadyQueue{}
	a := newTestProcess("A", 1, 0, 1)
	b := newTestProcess("B", 1, 0, 1)
	rq.Enqueue(a)
	rq.Enqueue(b)

	if rq.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", rq.Len())
	}
	if got := rq.Dequeue(); got != a {
		t.Errorf("first Dequeue() = %v, want A", got)
	}
	if got := rq.Dequeue(); got != b {
		t.Errorf("second Dequeue() = %v, want B", got)
	}
	if rq.Dequeue() != nil || rq.Len() != 0 {
		t.Error("empty queue must return nil")
	}
}

func TestReadyQueue_Contains(t *testing.T) {
	rq := &ReadyQueue{}
	a := newTestProcess("A", 1, 0, 1)
	rq.Enqueue(a)

	if !rq.Contains(a) {
		t.Error("Contains(A) = false after Enqueue")
	}
	// Same PID, different instance
	if rq.Contains(newTestProcess("A", 1, 0, 1)) {
		t.Error("Contains must compare by identity")
	}
}

func TestReadyQueue_String(t *testing.T) {
	rq := &ReadyQueue{}
	if rq.String() != "[]" {
		t.Errorf("empty String() = %q", rq.String())
	}
	rq.Enqueue(newTestProcess("A", 1, 0, 1))
	rq.Enqueue(newTestProcess("B", 1, 0, 1))
	if rq.String() != "[A B]" {
		t.Errorf("String() = %q, want [A B]", rq.String())
	}
}

func TestReadyQueue_EnqueueNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on nil Enqueue")
		}
	}()
	(&ReadyQueue{}).Enqueue(nil)
}

func TestReadyQueue_ReorderLengthChangePanics(t *testing.T) {
	rq := &ReadyQueue{}
	rq.Enqueue(newTestProcess("A", 1, 0, 1))
	defer func() {
		if recover() == nil {
			t.Error("expected panic when Reorder changes length")
		}
	}()
	rq.Reorder(func(ps []*Process) {
		rq.queue = append(ps, newTestProcess("B", 1, 0, 1))
	})
}

func TestReadyQueue_Orderings_StableOnTies(t *testing.T) {
	tests := []struct {
		name  string
		order func([]*Process)
		setup func(ps []*Process)
		want  string
	}{
		{
			name:  "burst ascending",
			order: byBurstTime,
			want:  "[B C A D]",
		},
		{
			name:  "original priority descending",
			order: byOriginalPriority,
			want:  "[D A C B]",
		},
		{
			name:  "effective priority descending",
			order: byEffectivePriority,
			setup: func(ps []*Process) { ps[1].EffectivePriority = 9 },
			want:  "[B D A C]",
		},
		{
			name:  "effective time ascending",
			order: byEffectiveTime,
			setup: func(ps []*Process) { ps[0].EffectiveTime = 0 },
			want:  "[A B C D]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// GIVEN A(burst 5, prio 3) B(2, 1) C(2, 3) D(7, 4)
			rq := &ReadyQueue{}
			ps := []*Process{
				newTestProcess("A", 5, 0, 3),
				newTestProcess("B", 2, 0, 1),
				newTestProcess("C", 2, 0, 3),
				newTestProcess("D", 7, 0, 4),
			}
			if tt.setup != nil {
				tt.setup(ps)
			}
			for _, p := range ps {
				rq.Enqueue(p)
			}

			// WHEN reordered
			rq.Reorder(tt.order)

			// THEN ties keep queue order
			if rq.String() != tt.want {
				t.Errorf("got %s, want %s", rq.String(), tt.want)
			}
		})
	}
}
