// Package http provides http transport for schemes
package http

import (
	stdhttp "net/http"

	"orggate/internal/modkit/httpkit"
	svc "orggate/internal/services/schemes/service"
)

// Register mounts schemes endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Delete(r, "/{schemeID}/members/{organisationID}", h.removeMember)
}

type handlers struct{ svc svc.Service }

// swagger:route DELETE /schemes/{schemeID}/members/{organisationID} Schemes schemesRemoveMember
// @Summary Dissociate an organisation from a compliance scheme
// @Tags Schemes
// @Produce json
// @Param schemeID path string true "Scheme id"
// @Param organisationID path string true "Organisation id"
// @Success 200 {object} domain.RemoveMemberResult "ok"
// @Router /schemes/{schemeID}/members/{organisationID} [delete]
func (h *handlers) removeMember(r *stdhttp.Request) (any, error) {
	return h.svc.RemoveMember(
		r.Context(),
		httpkit.Actor(r),
		httpkit.Param(r, "schemeID"),
		httpkit.Param(r, "organisationID"),
	)
}
