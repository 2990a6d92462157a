package httputils

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"subrewriter/internal/domain/models"
	"subrewriter/internal/linkrewriter"
)

// MIME: https://developer.mozilla.org/en-US/docs/Web/HTTP/Guides/MIME_types/Common_types

const (
	HeaderContentType     = "Content-Type"
	HeaderContentEncoding = "Content-Encoding"
	HeaderAcceptEncoding  = "Accept-Encoding"
	HeaderContentLength   = "Content-Length"
	HeaderRequestID       = "X-Request-ID"
	HeaderVary            = "Vary"

	MIMEApplicationJSON = "application/json"
	MIMETextHTML        = "text/html"
	MIMETextPlain       = "text/plain"

	EncodingGzip = "gzip"
)

const (
	contentTypeJSON = MIMEApplicationJSON + "; charset=utf-8"
	contentTypeText = MIMETextPlain + "; charset=utf-8"
)

func WriteTextError(w http.ResponseWriter, status int, message string) {
	WriteTextResponse(w, status, message)
}

func WriteTextResponse(w http.ResponseWriter, status int, body string) {
	w.Header().Set(HeaderContentType, contentTypeText)
	w.WriteHeader(status)
	w.Write([]byte(body))
}

func WriteJSONError(w http.ResponseWriter, status int, message string) {
	WriteJSONResponse(w, status, struct {
		Error string `json:"error"`
	}{Error: message})
}

func WriteJSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set(HeaderContentType, contentTypeJSON)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// StatusFromError maps service errors to a response status and a client-safe message.
func StatusFromError(err error) (int, string) {
	switch {
	case errors.Is(err, linkrewriter.ErrNoLinks):
		return http.StatusUnprocessableEntity, linkrewriter.ErrNoLinks.Error()
	case errors.Is(err, linkrewriter.ErrTargetHostRequired):
		return http.StatusBadRequest, linkrewriter.ErrTargetHostRequired.Error()
	case errors.Is(err, models.ErrInvalidData):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, models.ErrUnfound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, models.ErrUpstream):
		return http.StatusBadGateway, "failed to fetch subscription"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// IsCompressible reports whether a response of this content type is worth gzipping.
func IsCompressible(contentType string) bool {
	return strings.HasPrefix(contentType, MIMEApplicationJSON) ||
		strings.HasPrefix(contentType, MIMETextHTML) ||
		strings.HasPrefix(contentType, MIMETextPlain)
}
