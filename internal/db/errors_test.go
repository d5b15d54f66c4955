package db

import (
	"errors"
	"testing"
)

func TestError(t *testing.T) {
	inner := errors.New("disk I/O error")
	err := &Error{Op: OpSelectOceans, Err: inner}

	if err.Error() != "SELECT oceans: disk I/O error" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected errors.Is to reach the wrapped error")
	}
}
