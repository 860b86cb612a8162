package zonetime

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorMessageFormat(t *testing.T) {
	err := newError("UTCZone.Op", NotMySystem, Calendar{System: SystemTAI})
	want := "zonetime: UTCZone.Op: NotMySystem"
	if got := err.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestErrorNilReceiver(t *testing.T) {
	var err *Error
	if got := err.Error(); got != "<nil>" {
		t.Fatalf("(*Error)(nil).Error() = %q, want %q", got, "<nil>")
	}
	if err.Unwrap() != nil {
		t.Fatal("(*Error)(nil).Unwrap() should be nil")
	}
}

func TestCodeOfExtractsCode(t *testing.T) {
	err := newError("Raise", CannotConvert, Calendar{})
	code, ok := CodeOf(err)
	if !ok || code != CannotConvert {
		t.Fatalf("CodeOf = %v, %v, want CannotConvert, true", code, ok)
	}
}

func TestCodeOfOnPlainError(t *testing.T) {
	if _, ok := CodeOf(errors.New("boom")); ok {
		t.Fatal("CodeOf on a plain error should report false")
	}
	if _, ok := CodeOf(nil); ok {
		t.Fatal("CodeOf(nil) should report false")
	}
}

func TestWrapErrorCarriesCauseMessage(t *testing.T) {
	cause := errors.New("ancestor not found")
	err := wrapError("RebasedFromTAI", InitFailed, cause)
	if code, ok := CodeOf(err); !ok || code != InitFailed {
		t.Fatalf("CodeOf(wrapError) = %v, %v, want InitFailed, true", code, ok)
	}
	if !strings.Contains(err.Error(), "ancestor not found") {
		t.Fatalf("Error() = %q, want it to mention the wrapped cause", err.Error())
	}
}

func TestCodeStringKnownAndUnknown(t *testing.T) {
	if got := NotMySystem.String(); got != "NotMySystem" {
		t.Fatalf("NotMySystem.String() = %q", got)
	}
	if got := Code(12345).String(); got != "Code(12345)" {
		t.Fatalf("unknown Code.String() = %q, want %q", got, "Code(12345)")
	}
}
