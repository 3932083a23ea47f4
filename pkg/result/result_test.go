package result

import "testing"

func TestOk(t *testing.T) {
	r := Ok()

	if !r.OK() || r.Failed() {
		t.Error("Ok() should report success")
	}
	if r.Message() != "" {
		t.Errorf("success should carry no message, got %q", r.Message())
	}
	if r.Err() != nil {
		t.Errorf("success should convert to a nil error, got %v", r.Err())
	}
}

func TestZeroValueIsSuccess(t *testing.T) {
	var r Result
	if r.Failed() {
		t.Error("zero value should be a success")
	}
	if r != Ok() {
		t.Error("zero value should equal Ok()")
	}
}

func TestFail(t *testing.T) {
	r := Fail("port not found")

	if r.OK() || !r.Failed() {
		t.Error("Fail should report failure")
	}
	if r.Message() != "port not found" {
		t.Errorf("unexpected message %q", r.Message())
	}
	if err := r.Err(); err == nil || err.Error() != "port not found" {
		t.Errorf("unexpected error %v", err)
	}
}

func TestFail_BlankMessageGetsDefault(t *testing.T) {
	r := Fail("")

	if !r.Failed() {
		t.Error("a blank-message failure must still be a failure")
	}
	if r.Message() != "unknown error" {
		t.Errorf("expected the default message, got %q", r.Message())
	}
}

func TestFailf(t *testing.T) {
	r := Failf("group %d not found", 7)
	if r.Message() != "group 7 not found" {
		t.Errorf("unexpected message %q", r.Message())
	}
}

func TestString(t *testing.T) {
	if got := Ok().String(); got != "ok" {
		t.Errorf("unexpected String %q", got)
	}
	if got := Fail("boom").String(); got != "failed: boom" {
		t.Errorf("unexpected String %q", got)
	}
}
