package errs

import (
	"net/http"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// ErrorResponse is the body written for failed requests.
type ErrorResponse struct {
	Detail string `json:"detail"`
	Kind   string `json:"kind"`
	Param  string `json:"param,omitempty"`
}

// HTTPStatusCode maps the kind of err to an HTTP status code.
func HTTPStatusCode(err error) int {
	var e *Error

	if !asError(err, &e) {
		return http.StatusInternalServerError
	}

	switch kindOf(e) {
	case InvalidRequest, Validation:
		return http.StatusBadRequest
	case Exist:
		return http.StatusConflict
	case NotExist:
		return http.StatusNotFound
	case Unauthenticated:
		return http.StatusUnauthorized
	case Unauthorized:
		return http.StatusForbidden
	case IO:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// HTTPErrorResponse writes err as a JSON error response and logs it. Errors
// that map to a server-side status are logged at error level and their
// underlying message is not exposed to the client.
func HTTPErrorResponse(w http.ResponseWriter, log zerolog.Logger, err error) {
	if err == nil {
		return
	}

	code := HTTPStatusCode(err)

	resp := ErrorResponse{
		Detail: Message(err),
		Kind:   Other.String(),
	}

	var e *Error
	if asError(err, &e) {
		resp.Kind = kindOf(e).String()
		resp.Param = string(e.Param)
	}

	event := log.Info()
	if code >= http.StatusInternalServerError {
		event = log.Error()

		if code != http.StatusBadGateway {
			resp.Detail = http.StatusText(code)
		}
	}

	event.Err(err).
		Int("status_code", code).
		Strs("stack", OpStack(err)).
		Msg("request failed")

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)

	_ = json.NewEncoder(w).Encode(resp)
}

func asError(err error, target **Error) bool {
	e, ok := err.(*Error)
	if ok {
		*target = e
	}

	return ok
}

func kindOf(e *Error) Kind {
	for e != nil {
		if e.Kind != Other {
			return e.Kind
		}

		next, ok := e.Err.(*Error)
		if !ok {
			break
		}

		e = next
	}

	return Other
}
