package mverr

import "testing"

func TestImmutable(t *testing.T) {
	e := New(400, "INVALID_REQUEST", "invalid request: some or all request parameters are invalid")
	changedE := e.Msg("%s", "changed")
	if e.Message == "changed" {
		t.Errorf("Expected immutable error with message not equal to 'changed', got '%s'", e.Message)
	}
	if changedE.Message != "changed" {
		t.Errorf("Expected immutable error with message equal to 'changed', got '%s'", changedE.Message)
	}
}

func TestSentinelExtras(t *testing.T) {
	e := NewInvalidViolations([]string{"probability"})
	if ErrInvalidReq.Extras != nil {
		t.Error("Expected ErrInvalidReq sentinel to stay without extras")
	}
	if e.Extras == nil {
		t.Error("Expected copied error to carry extras")
	}
}
