package trace

import (
	"testing"
)

func TestSummarize_NilTrace_ReturnsZeroSummary(t *testing.T) {
	summary := Summarize(nil)
	if summary.TotalEvents != 0 || summary.AgedProcesses != 0 {
		t.Errorf("expected zero summary, got %+v", summary)
	}
	if summary.EventsPerProcess == nil {
		t.Error("EventsPerProcess must be non-nil")
	}
}

func TestSummarize_CountsEventsAndProcesses(t *testing.T) {
	// GIVEN a trace with two processes aging
	at := NewAgingTrace()
	at.Record(AgingRecord{Time: 2, PID: "P1", Family: FamilyPriority, Old: 1, New: 2, Waited: 2})
	at.Record(AgingRecord{Time: 4, PID: "P1", Family: FamilyPriority, Old: 2, New: 3, Waited: 4})
	at.Record(AgingRecord{Time: 4, PID: "P3", Family: FamilyPriority, Old: 5, New: 8, Waited: 3})

	// WHEN summarized
	summary := Summarize(at)

	// THEN totals reflect every record
	if summary.TotalEvents != 3 {
		t.Errorf("TotalEvents = %d, want 3", summary.TotalEvents)
	}
	if summary.AgedProcesses != 2 {
		t.Errorf("AgedProcesses = %d, want 2", summary.AgedProcesses)
	}
	if summary.EventsPerProcess["P1"] != 2 {
		t.Errorf("EventsPerProcess[P1] = %d, want 2", summary.EventsPerProcess["P1"])
	}
	if summary.MaxWaited != 4 {
		t.Errorf("MaxWaited = %d, want 4", summary.MaxWaited)
	}
	if summary.MaxDelta != 3 {
		t.Errorf("MaxDelta = %d, want 3", summary.MaxDelta)
	}
}
