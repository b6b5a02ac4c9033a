package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

// recordingHandler captures reported errors for assertions.
type recordingHandler struct {
	errors []*MotionError
	panics []*PanicError
}

func (h *recordingHandler) HandleError(err *MotionError) { h.errors = append(h.errors, err) }
func (h *recordingHandler) HandlePanic(err *PanicError)  { h.panics = append(h.panics, err) }

func TestReport_ReachesHandler(t *testing.T) {
	h := &recordingHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	Report(&MotionError{
		Op:        "sharedelement.Registry.Get",
		Kind:      KindGeometry,
		Err:       stderrors.New("element detached"),
		ElementID: "avatar",
	})

	if len(h.errors) != 1 {
		t.Fatalf("expected 1 reported error, got %d", len(h.errors))
	}
	got := h.errors[0]
	if got.Timestamp.IsZero() {
		t.Error("expected Report to stamp the error time")
	}
	msg := got.Error()
	if !strings.Contains(msg, "geometry") || !strings.Contains(msg, "avatar") {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestReport_Nil(t *testing.T) {
	h := &recordingHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	Report(nil)
	if len(h.errors) != 0 {
		t.Error("nil error reached the handler")
	}
}

func TestMotionError_Unwrap(t *testing.T) {
	cause := stderrors.New("cause")
	err := &MotionError{Op: "op", Kind: KindConfig, Err: cause}

	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestRecover_ConvertsPanic(t *testing.T) {
	h := &recordingHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	func() {
		defer Recover("flight.frame")
		panic("boom")
	}()

	if len(h.panics) != 1 {
		t.Fatalf("expected 1 recovered panic, got %d", len(h.panics))
	}
	p := h.panics[0]
	if p.Op != "flight.frame" || p.Value != "boom" {
		t.Errorf("unexpected panic record %+v", p)
	}
	if p.StackTrace == "" {
		t.Error("expected a captured stack trace")
	}
	if !strings.Contains(p.Error(), "flight.frame") {
		t.Errorf("unexpected message %q", p.Error())
	}
}

func TestSetHandler_NilRestoresDefault(t *testing.T) {
	SetHandler(nil)
	if _, ok := getHandler().(*LogHandler); !ok {
		t.Errorf("expected LogHandler default, got %T", getHandler())
	}
}

func TestErrorKind_String(t *testing.T) {
	if KindPath.String() != "path" {
		t.Errorf("expected path, got %s", KindPath.String())
	}
	if ErrorKind(99).String() != "unknown" {
		t.Errorf("expected unknown for out-of-range kind, got %s", ErrorKind(99).String())
	}
}
