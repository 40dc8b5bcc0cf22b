// Package http provides http transport for organisations
package http

import (
	stdhttp "net/http"
	"strconv"

	"orggate/internal/modkit/httpkit"
	svc "orggate/internal/services/organisations/service"
)

// Register mounts organisations endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/search", h.search)
	httpkit.Get(r, "/{organisationID}", h.get)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /organisations/search Organisations organisationsSearch
// @Summary Search organisations by name
// @Tags Organisations
// @Produce json
// @Param query query string true "Search term, min 3 characters"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} domain.SearchResult "ok"
// @Router /organisations/search [get]
func (h *handlers) search(r *stdhttp.Request) (any, error) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	size, _ := strconv.Atoi(q.Get("pageSize"))
	return h.svc.Search(r.Context(), q.Get("query"), page, size)
}

// swagger:route GET /organisations/{organisationID} Organisations organisationsGet
// @Summary Fetch one organisation
// @Tags Organisations
// @Produce json
// @Param organisationID path string true "Organisation id"
// @Success 200 {object} domain.Organisation "ok"
// @Router /organisations/{organisationID} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(r.Context(), httpkit.Param(r, "organisationID"))
}
