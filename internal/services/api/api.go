// Package api provides the HTTP API for the application
package api

import (
	"orggate/internal/adapters/downstream"
	"orggate/internal/adapters/notify"
	"orggate/internal/core/roleconfig"
	"orggate/internal/platform/config"
	"orggate/internal/platform/flags"
	"orggate/internal/platform/logger"
	"orggate/internal/platform/metrics"
	phttp "orggate/internal/platform/net/http"
	"orggate/internal/platform/net/middleware"

	"orggate/internal/modkit"
	"orggate/internal/modkit/httpkit"
	"orggate/internal/modkit/module"
	"orggate/internal/modkit/swaggerkit"

	accountsmod "orggate/internal/services/accounts/module"
	enrolmentsmod "orggate/internal/services/enrolments/module"
	invitesmod "orggate/internal/services/invites/module"
	metahttp "orggate/internal/services/api/meta/http"
	metamod "orggate/internal/services/api/meta/module"
	orgsmod "orggate/internal/services/organisations/module"
	rolesmod "orggate/internal/services/roles/module"
	schemesmod "orggate/internal/services/schemes/module"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Logger *logger.Logger
	Auth   middleware.AuthPort
	Flags  flags.Evaluator
	Roles  *roleconfig.Table
	Sender notify.Sender

	Accounts      *downstream.Accounts
	Organisations *downstream.Organisations
	Schemes       *downstream.Schemes
	RoleMgmt      *downstream.RoleMgmt
	Enrolments    *downstream.Enrolments
	Persons       *downstream.Persons

	InviteLinkBase string

	EnableSwagger  bool
	EnableProfiler bool
	EnableMetrics  bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg:   opt.Config,
		Flags: opt.Flags,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	// every business module sits behind bearer auth; meta stays open
	authed := modkit.WithMiddlewares(httpkit.Auth(opt.Auth))

	mods := []module.Module{
		metamod.New(deps, modkit.WithPorts(metamod.Ports{
			Checks: []metahttp.Check{
				{Name: "accounts", Target: opt.Accounts},
				{Name: "organisations", Target: opt.Organisations},
				{Name: "schemes", Target: opt.Schemes},
				{Name: "rolemgmt", Target: opt.RoleMgmt},
				{Name: "enrolments", Target: opt.Enrolments},
				{Name: "persons", Target: opt.Persons},
			},
		})),
		accountsmod.New(deps, authed, modkit.WithPorts(accountsmod.Ports{
			Gateway: opt.Accounts,
			Sender:  opt.Sender,
			Roles:   opt.Roles,
		})),
		invitesmod.New(deps, authed, modkit.WithPorts(invitesmod.Ports{
			Gateway:        opt.Accounts,
			Sender:         opt.Sender,
			Roles:          opt.Roles,
			InviteLinkBase: opt.InviteLinkBase,
		})),
		rolesmod.New(deps, authed, modkit.WithPorts(rolesmod.Ports{
			Gateway: opt.RoleMgmt,
			Persons: opt.Persons,
			Sender:  opt.Sender,
			Roles:   opt.Roles,
		})),
		schemesmod.New(deps, authed, modkit.WithPorts(schemesmod.Ports{
			Gateway: opt.Schemes,
			Sender:  opt.Sender,
			Roles:   opt.Roles,
		})),
		enrolmentsmod.New(deps, authed, modkit.WithPorts(enrolmentsmod.Ports{
			Gateway: opt.Enrolments,
			Persons: opt.Persons,
			Orgs:    opt.Organisations,
			Sender:  opt.Sender,
			Roles:   opt.Roles,
		})),
		orgsmod.New(deps, authed, modkit.WithPorts(orgsmod.Ports{
			Gateway: opt.Organisations,
		})),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// swagger, profiler and the scrape endpoint live outside the version prefix
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
		if opt.EnableMetrics {
			r.Handle("/metrics", metrics.Handler())
		}

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
