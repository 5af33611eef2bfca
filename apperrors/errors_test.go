package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	if k, ok := KindOf(Validation("bad input")); !ok || k != KindValidation {
		t.Errorf("expected KindValidation, got %v ok=%v", k, ok)
	}
	if k, ok := KindOf(NotFound("missing")); !ok || k != KindNotFound {
		t.Errorf("expected KindNotFound, got %v ok=%v", k, ok)
	}
	if k, ok := KindOf(Conflict("duplicate")); !ok || k != KindConflict {
		t.Errorf("expected KindConflict, got %v ok=%v", k, ok)
	}
	if _, ok := KindOf(errors.New("plain")); ok {
		t.Error("plain errors must not report a kind")
	}
}

func TestKindOfWrappedChain(t *testing.T) {
	wrapped := fmt.Errorf("while creating donation: %w", Conflict("campaign is full"))
	if k, ok := KindOf(wrapped); !ok || k != KindConflict {
		t.Errorf("kind should survive wrapping, got %v ok=%v", k, ok)
	}
}

func TestPersistenceKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Persistence(cause)

	if !errors.Is(err, cause) {
		t.Error("Persistence must wrap the underlying error")
	}
	if err.Error() == cause.Error() {
		t.Error("caller-facing message must not leak the storage error")
	}
}

func TestIsHelpers(t *testing.T) {
	if !IsValidation(Validation("x")) || IsValidation(Conflict("x")) {
		t.Error("IsValidation misclassified")
	}
	if !IsNotFound(NotFound("x")) || IsNotFound(Validation("x")) {
		t.Error("IsNotFound misclassified")
	}
	if !IsConflict(Conflict("x")) || IsConflict(NotFound("x")) {
		t.Error("IsConflict misclassified")
	}
}
