package remote

import (
	"BlogStudio/pkg/response"
	"net/http"
)

const genericFailureMessage = "The blog service returned an unexpected error."

var (
	ErrServiceUnreachable = response.NewError(http.StatusServiceUnavailable, "The blog service is unreachable right now.")
)
