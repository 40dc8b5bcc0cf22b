// Package http provides http transport for enrolments
package http

import (
	stdhttp "net/http"
	"strconv"

	"orggate/internal/modkit/httpkit"
	perrs "orggate/internal/platform/errors"
	svc "orggate/internal/services/enrolments/service"
)

// Register mounts enrolments endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Delete(r, "/{enrolmentID}", h.remove)
}

type handlers struct{ svc svc.Service }

// swagger:route DELETE /enrolments/{enrolmentID} Enrolments enrolmentsDelete
// @Summary Delete an enrolment
// @Tags Enrolments
// @Produce json
// @Param enrolmentID path string true "Enrolment id"
// @Param serviceRoleId query int true "Service role the enrolment carried"
// @Success 204 "no content"
// @Router /enrolments/{enrolmentID} [delete]
func (h *handlers) remove(r *stdhttp.Request) (any, error) {
	raw := r.URL.Query().Get("serviceRoleId")
	if raw == "" {
		return nil, perrs.Validationf("serviceRoleId query parameter is required")
	}
	roleID, err := strconv.Atoi(raw)
	if err != nil {
		return nil, perrs.Validationf("serviceRoleId must be an integer")
	}

	if err := h.svc.Delete(r.Context(), httpkit.Actor(r), httpkit.Param(r, "enrolmentID"), roleID); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}
