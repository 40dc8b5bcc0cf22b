// Package http provides http transport for accounts
package http

import (
	stdhttp "net/http"

	"orggate/internal/modkit/httpkit"
	"orggate/internal/platform/net/http/bind"
	"orggate/internal/services/accounts/domain"
	svc "orggate/internal/services/accounts/service"
)

// Register mounts accounts endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Post(r, "/", h.create)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /accounts Accounts accountsCreate
// @Summary Create a producer or compliance-scheme account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param payload body domain.CreateAccountInput true "Account"
// @Success 200 {object} domain.CreateAccountResult "ok"
// @Router /accounts [post]
func (h *handlers) create(r *stdhttp.Request) (any, error) {
	in, err := bind.ParseJSON[domain.CreateAccountInput](r)
	if err != nil {
		return nil, err
	}
	return h.svc.Create(r.Context(), httpkit.Actor(r), in)
}
