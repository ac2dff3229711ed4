package transport

import (
	"net/http"
	"strconv"

	"catalog-api/internal/middleware"
	"catalog-api/internal/service"
)

// respondResult maps a service result onto the wire envelope. The HTTP
// status code is derived from the outcome and written exactly once.
func respondResult[T any](w http.ResponseWriter, res service.Result[T]) {
	env := middleware.Envelope{
		Status:  res.Outcome.HTTPStatus(),
		Message: res.Message,
		Errors:  res.Errors,
	}
	if res.Outcome == service.OutcomeOK || res.Outcome == service.OutcomeCreated {
		env.Data = res.Value
	}
	middleware.RespondWithEnvelope(w, env)
}

// positiveQueryParam coerces an optional numeric query parameter,
// substituting the default when the parameter is absent and reporting
// an error for malformed or non-positive values.
func positiveQueryParam(r *http.Request, name string, def int) (int, bool) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return def, true
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

func respondInvalidParam(w http.ResponseWriter, name string) {
	middleware.RespondWithError(w, http.StatusBadRequest,
		"Invalid "+name+" parameter. Must be a positive number.")
}
