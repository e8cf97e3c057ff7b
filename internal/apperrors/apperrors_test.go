package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		kind *Kind
		want int
	}{
		{ErrValidation, http.StatusBadRequest},
		{ErrAuth, http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
		{ErrNotFound, http.StatusNotFound},
		{ErrConflict, http.StatusConflict},
		{ErrInternal, http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatus(New(c.kind, "boom")); got != c.want {
			t.Errorf("HTTPStatus(%v) = %d, want %d", c.kind, got, c.want)
		}
	}

	if got := HTTPStatus(errors.New("untyped")); got != http.StatusInternalServerError {
		t.Errorf("Untyped error mapped to %d, want 500", got)
	}
}

func TestErrorsIsMatchesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("outer: %w", New(ErrConflict, "offer already accepted"))
	if !errors.Is(err, ErrConflict) {
		t.Error("Wrapped conflict not matched by errors.Is")
	}
}

func TestMessageMasksInternalErrors(t *testing.T) {
	if msg := Message(New(ErrNotFound, "pitch not found")); msg != "pitch not found" {
		t.Errorf("Message = %q", msg)
	}
	if msg := Message(Wrap(ErrInternal, "query", errors.New("dsn=secret"))); msg != "internal server error" {
		t.Errorf("Internal detail leaked: %q", msg)
	}
}
