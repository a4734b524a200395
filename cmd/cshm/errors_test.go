package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCodeFor_CLIError(t *testing.T) {
	err := newNoReference("no refs")
	assert.Equal(t, exitNoReference, exitCodeFor(err))
}

func TestExitCodeFor_PlainError(t *testing.T) {
	assert.Equal(t, exitOther, exitCodeFor(errors.New("boom")))
}

func TestExitCodeForAnalysisErr(t *testing.T) {
	cases := map[string]int{
		"":                  exitSuccess,
		"InputValidation":   exitInputError,
		"CoordinationEmpty": exitInputError,
		"NoReference":       exitNoReference,
		"cancelled":         exitCancelled,
		"NumericFailure":    exitOther,
	}
	for kind, want := range cases {
		assert.Equal(t, want, exitCodeForAnalysisErr(kind), kind)
	}
}
