package printing

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Browser-backed printing needs a Chrome binary, so tests cover the error
// type contract only.

func TestPrintError_Message(t *testing.T) {
	err := &PrintError{Message: "browser print failed", Cause: fmt.Errorf("exec: chrome not found")}
	assert.Contains(t, err.Error(), "print error: browser print failed")
	assert.Contains(t, err.Error(), "chrome not found")
}

func TestPrintError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &PrintError{Message: "failed", Cause: cause}
	assert.ErrorIs(t, err, cause)
}
