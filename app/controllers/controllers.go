// Package controllers wires HTTP requests to the service and repository
// layers. Every handler follows the same shape: parse, authorize, bind,
// validate, persist, invalidate the entity's cache tag, respond.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bilemo/api/pkg/response"
	"github.com/bilemo/api/pkg/router"
)

// pathID reads the {id} route parameter. A non-numeric id is a 404, not
// a 400: the URL simply does not name a resource.
func pathID(r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// locate sets the Location header from a named route. Failures are
// swallowed: a missing Location header is not worth failing the write
// that already happened.
func locate(w http.ResponseWriter, rt *router.Router, name string, id uint) {
	url, err := rt.URL(name, map[string]string{"id": strconv.FormatUint(uint64(id), 10)})
	if err == nil {
		w.Header().Set("Location", url)
	}
}

// bindError maps a bind failure (malformed JSON, oversized body) to 400.
func bindError(w http.ResponseWriter, err error) {
	response.Error(w, http.StatusBadRequest, err.Error())
}
