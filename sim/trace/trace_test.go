package trace

import (
	"testing"
)

func TestSimulationTrace_RecordDispatch_AppendsRecord(t *testing.T) {
	// GIVEN a trace configured for decisions
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions})

	// WHEN a dispatch record is recorded
	st.RecordDispatch(DispatchRecord{
		ProcessID:  "P1",
		Clock:      8,
		ReadyDepth: 2,
		Slice:      4,
		Reason:     "shortest burst",
	})

	// THEN the trace contains one dispatch record with correct data
	if len(st.Dispatches) != 1 {
		t.Fatalf("expected 1 dispatch, got %d", len(st.Dispatches))
	}
	if st.Dispatches[0].ProcessID != "P1" {
		t.Errorf("expected process P1, got %s", st.Dispatches[0].ProcessID)
	}
	if st.Dispatches[0].Slice != 4 {
		t.Errorf("expected slice 4, got %d", st.Dispatches[0].Slice)
	}
}

func TestSimulationTrace_MultipleRecords_PreservesOrder(t *testing.T) {
	// GIVEN a trace
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions})

	// WHEN multiple records are added
	st.RecordDispatch(DispatchRecord{ProcessID: "P1", Clock: 0})
	st.RecordPreemption(PreemptRecord{ProcessID: "P1", Clock: 3, Remaining: 5})
	st.RecordDispatch(DispatchRecord{ProcessID: "P2", Clock: 3})
	st.RecordIdle(IdleRecord{From: 6, To: 9})

	// THEN order is preserved per record kind
	if len(st.Dispatches) != 2 {
		t.Fatalf("expected 2 dispatches, got %d", len(st.Dispatches))
	}
	if st.Dispatches[0].ProcessID != "P1" || st.Dispatches[1].ProcessID != "P2" {
		t.Error("dispatch order not preserved")
	}
	if len(st.Preemptions) != 1 || st.Preemptions[0].Remaining != 5 {
		t.Error("preemption record not stored")
	}
	if len(st.Idles) != 1 || st.Idles[0].Duration() != 3 {
		t.Error("idle record not stored")
	}
}

func TestSimulationTrace_Enabled(t *testing.T) {
	var nilTrace *SimulationTrace
	if nilTrace.Enabled() {
		t.Error("nil trace must not be enabled")
	}
	if NewSimulationTrace(TraceConfig{Level: TraceLevelNone}).Enabled() {
		t.Error("level none must not be enabled")
	}
	if !NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions}).Enabled() {
		t.Error("level decisions must be enabled")
	}
}

func TestIsValidTraceLevel(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"none", true},
		{"decisions", true},
		{"", true},
		{"verbose", false},
		{"Decisions", false},
	}
	for _, tc := range tests {
		if got := IsValidTraceLevel(tc.level); got != tc.valid {
			t.Errorf("IsValidTraceLevel(%q) = %v, want %v", tc.level, got, tc.valid)
		}
	}
}
