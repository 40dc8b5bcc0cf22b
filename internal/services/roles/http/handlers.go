// Package http provides http transport for roles
package http

import (
	stdhttp "net/http"

	"orggate/internal/modkit/httpkit"
	"orggate/internal/services/roles/domain"
	svc "orggate/internal/services/roles/service"
)

// Register mounts roles endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PutJSON(r, "/{personID}/roles", h.update)
}

type handlers struct{ svc svc.Service }

// swagger:route PUT /persons/{personID}/roles Roles rolesUpdate
// @Summary Replace a person's service roles
// @Tags Roles
// @Accept json
// @Produce json
// @Param personID path string true "Person id"
// @Param payload body domain.UpdateRolesInput true "Roles"
// @Success 200 {object} domain.UpdateRolesResult "ok"
// @Router /persons/{personID}/roles [put]
func (h *handlers) update(r *stdhttp.Request, in domain.UpdateRolesInput) (any, error) {
	return h.svc.Update(r.Context(), httpkit.Actor(r), httpkit.Param(r, "personID"), in)
}
