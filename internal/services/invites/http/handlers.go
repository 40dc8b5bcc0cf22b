// Package http provides http transport for invites
package http

import (
	stdhttp "net/http"

	"orggate/internal/modkit/httpkit"
	"orggate/internal/platform/net/http/bind"
	"orggate/internal/services/invites/domain"
	svc "orggate/internal/services/invites/service"
)

// Register mounts invites endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Post(r, "/", h.invite)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /invites Invites invitesCreate
// @Summary Invite a user into an organisation
// @Tags Invites
// @Accept json
// @Produce json
// @Param payload body domain.InviteInput true "Invite"
// @Success 200 {object} domain.InviteResult "ok"
// @Router /invites [post]
func (h *handlers) invite(r *stdhttp.Request) (any, error) {
	in, err := bind.ParseJSON[domain.InviteInput](r)
	if err != nil {
		return nil, err
	}
	return h.svc.Invite(r.Context(), httpkit.Actor(r), in)
}
