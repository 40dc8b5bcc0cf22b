// @title         Orggate API
// @version       0.1.0
// @description   Facade over the account, organisation and compliance scheme services

package main

import (
	"context"

	"orggate/internal/adapters/downstream"
	"orggate/internal/adapters/notify"
	"orggate/internal/core/roleconfig"
	"orggate/internal/modkit/httpkit"
	"orggate/internal/platform/config"
	"orggate/internal/platform/flags"
	"orggate/internal/platform/jwtauth"
	"orggate/internal/platform/logger"
	phttp "orggate/internal/platform/net/http"

	"orggate/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()

	// bearer auth against the shared signing secret (JWT_SECRET / JWT_ISSUER)
	auth := httpkit.NewPortFunc(jwtauth.FromConfig(root).Parse)

	// role keys, templates and regulator inboxes (ROLES_*)
	roles := roleconfig.FromConfig(root.Prefix("ROLES_"))

	// email delivery (NOTIFY_*)
	sender := notify.FromConfig(root.Prefix("NOTIFY_"))

	// one client per downstream service (SVC_<NAME>_*)
	accounts := downstream.NewAccounts(downstream.New(downstream.OptionsFromConfig(root, "accounts")))
	organisations := downstream.NewOrganisations(downstream.New(downstream.OptionsFromConfig(root, "organisations")))
	schemes := downstream.NewSchemes(downstream.New(downstream.OptionsFromConfig(root, "schemes")))
	rolemgmt := downstream.NewRoleMgmt(downstream.New(downstream.OptionsFromConfig(root, "rolemgmt")))
	enrolments := downstream.NewEnrolments(downstream.New(downstream.OptionsFromConfig(root, "enrolments")))
	persons := downstream.NewPersons(downstream.New(downstream.OptionsFromConfig(root, "persons")))

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config: apiCfg,
			Logger: l,
			Auth:   auth,
			Flags:  flags.FromConfig(root),
			Roles:  roles,
			Sender: sender,

			Accounts:      accounts,
			Organisations: organisations,
			Schemes:       schemes,
			RoleMgmt:      rolemgmt,
			Enrolments:    enrolments,
			Persons:       persons,

			InviteLinkBase: root.MustString("INVITE_LINK_BASE"),

			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
			EnableMetrics:  apiCfg.MayBool("METRICS", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
