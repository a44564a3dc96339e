package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tts := map[string]struct {
		msg       string
		enrichers []ErrorEnricher
		error     string
		code      int
		message   string
	}{
		"no enricher": {
			msg:     "boom",
			error:   "boom",
			code:    DefaultCode,
			message: "boom",
		},
		"with code": {
			msg:       "not here",
			enrichers: []ErrorEnricher{NotFound()},
			error:     "not here",
			code:      http.StatusNotFound,
			message:   "not here",
		},
		"with cause": {
			msg:       "could not load catalog",
			enrichers: []ErrorEnricher{ServiceUnavailable(), WithCause(errors.New("connection refused"))},
			error:     "could not load catalog: connection refused",
			code:      http.StatusServiceUnavailable,
			message:   "could not load catalog",
		},
		"last code wins": {
			msg:       "twice",
			enrichers: []ErrorEnricher{BadRequest(), NotFound()},
			error:     "twice",
			code:      http.StatusNotFound,
			message:   "twice",
		},
	}

	for name, tt := range tts {
		t.Run(name, func(t *testing.T) {
			err := New(tt.msg, tt.enrichers...)
			assert.Equal(t, tt.error, err.Error())

			cErr, ok := err.(Error)
			assert.True(t, ok, "errors built by New should implement Error")
			assert.Equal(t, tt.code, cErr.Code())
			assert.Equal(t, tt.message, cErr.Message())
		})
	}
}

func TestWithCode_foreignError(t *testing.T) {
	err := WithCode(http.StatusBadRequest)(errors.New("plain"))

	cErr, ok := err.(Error)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, cErr.Code())
	assert.Equal(t, "plain", cErr.Message())
}

func TestWithCause_unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := New("wrapped", WithCause(cause))

	assert.True(t, errors.Is(err, cause))

	cErr := err.(Error)
	assert.Equal(t, cause, cErr.Cause())
}
