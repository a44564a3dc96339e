package errors

import (
	"net/http"
)

func BadRequest() ErrorEnricher         { return WithCode(http.StatusBadRequest) }
func NotFound() ErrorEnricher           { return WithCode(http.StatusNotFound) }
func ServiceUnavailable() ErrorEnricher { return WithCode(http.StatusServiceUnavailable) }
