package module

import (
	"sayitanyway/internal/platform/config"
	dom "sayitanyway/internal/services/subscription/domain"
	"sayitanyway/internal/services/subscription/service"
)

// FromConfig reads with SUBSCRIPTION_ prefix
func FromConfig(cfg config.Conf) service.Config {
	c := cfg.Prefix("SUBSCRIPTION_")
	return service.Config{
		AccessCodes: c.MayCSV("ACCESS_CODES", dom.DefaultAccessCodes),
	}
}
