package getdefault

import (
	"net/http"

	"subrewriter/internal/http/httputils"
)

const usage = "usage: GET /sub?source=<name>&host=<target host>&proxyip=<value>&port=<value>"

func HandlerGetDefault() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httputils.WriteTextError(w, http.StatusBadRequest, usage)
	}
}
