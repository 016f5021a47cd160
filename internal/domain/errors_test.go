package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKindsSurviveWrapping(t *testing.T) {
	v := fmt.Errorf("create tourist: %w", Invalid("name", "is required"))
	if !IsValidation(v) {
		t.Fatalf("expected validation error, got %v", v)
	}
	if v.Error() != "create tourist: name: is required" {
		t.Fatalf("unexpected message %q", v.Error())
	}

	nf := fmt.Errorf("lookup: %w", NotFoundError{Resource: "tourist", ID: 9})
	if !IsNotFound(nf) || IsValidation(nf) {
		t.Fatalf("wrong classification for %v", nf)
	}

	cause := errors.New("duplicate entry")
	c := ConflictError{Resource: "destination", Err: cause}
	if !IsConflict(c) || !errors.Is(c, cause) {
		t.Fatalf("conflict should unwrap to its cause")
	}

	in := InternalError{Op: "list visits", Err: cause}
	if in.Error() != "list visits failed" || !errors.Is(in, cause) {
		t.Fatalf("unexpected internal error %q", in.Error())
	}
}
