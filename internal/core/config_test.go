package core

import "testing"

func TestFieldHeight(t *testing.T) {
	rc := DefaultConfig()
	if rc.FieldHeight() != 23 {
		t.Errorf("FieldHeight() = %d, expected 23", rc.FieldHeight())
	}
	if rc.TickInterval != DefaultTickInterval {
		t.Errorf("TickInterval = %v, expected %v", rc.TickInterval, DefaultTickInterval)
	}
}

func TestStepResultHas(t *testing.T) {
	r := StepResult{Events: []Event{EventFlap, EventScore}}

	tests := []struct {
		event    Event
		expected bool
	}{
		{EventFlap, true},
		{EventScore, true},
		{EventCrash, false},
		{EventRestart, false},
	}

	for _, tt := range tests {
		if got := r.Has(tt.event); got != tt.expected {
			t.Errorf("Has(%v) = %v, expected %v", tt.event, got, tt.expected)
		}
	}
}

func TestInputFrame(t *testing.T) {
	var in InputFrame
	if in.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}

	in.Set(ActionJump)
	in.Set(ActionPause)
	if !in.Has(ActionJump) || !in.Has(ActionPause) || in.Has(ActionQuit) {
		t.Errorf("unexpected actions: %v", in.Actions)
	}

	in.Clear()
	if in.Has(ActionJump) || in.Has(ActionPause) {
		t.Error("Clear() should remove all actions")
	}
}

func TestEventAndActionNames(t *testing.T) {
	if EventCrash.String() != "crash" || Event(99).String() != "none" {
		t.Errorf("unexpected event names %q %q", EventCrash, Event(99))
	}
	if ActionConfirm.String() != "Confirm" || Action(99).String() != "Unknown" {
		t.Errorf("unexpected action names %q %q", ActionConfirm, Action(99))
	}
}
