package downstream

import (
	"strings"

	"orggate/internal/platform/config"
)

// OptionsFromConfig reads client options for one service from the env
//
// Layout under the caller's prefix, e.g. SVC_ACCOUNTS_:
//
//	BASE_URL   required absolute URL
//	TIMEOUT    optional duration, default 10s
//	TOKEN      optional bearer credential
func OptionsFromConfig(cfg config.Conf, service string) Options {
	sc := cfg.Prefix("SVC_" + strings.ToUpper(service) + "_")
	return Options{
		Service: service,
		BaseURL: sc.MustURL("BASE_URL").String(),
		Timeout: sc.MayDuration("TIMEOUT", defaultTimeout),
		Token:   sc.MayString("TOKEN", ""),
	}
}
