package http

import (
	"encoding/json"
	"net/http"

	"github.com/fwojciec/wordma"
	"github.com/go-chi/chi/v5/middleware"
)

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	wordma.ECONFLICT:     http.StatusConflict,
	wordma.ENAMECONFLICT: http.StatusConflict,
	wordma.EPATHCONFLICT: http.StatusConflict,
	wordma.EINVALID:      http.StatusBadRequest,
	wordma.ENOTFOUND:     http.StatusNotFound,
	wordma.EUNAVAILABLE:  http.StatusServiceUnavailable,
	wordma.EINTERNAL:     http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

type dataResponse struct {
	Data any `json:"data"`
}

// Error writes err as a JSON error response. Internal errors are logged and
// their message is hidden from the client.
func (s *Server) Error(w http.ResponseWriter, r *http.Request, err error) {
	code, message := wordma.ErrorCode(err), wordma.ErrorMessage(err)
	if code == wordma.EINTERNAL {
		s.logger.Error("http error",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()),
			"error", err,
		)
		message = "internal error"
	}
	writeJSON(w, ErrorStatusCode(code), errorResponse{Error: errorBody{Code: code, Message: message}})
}

func (s *Server) respond(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, dataResponse{Data: data})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
