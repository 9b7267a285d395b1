package module

import (
	"sayitanyway/internal/platform/config"
	"sayitanyway/internal/services/recordingtime/service"
)

// FromConfig reads pool sizes with LEDGER_ prefix
func FromConfig(cfg config.Conf) service.Config {
	c := cfg.Prefix("LEDGER_")
	d := service.DefaultConfig()
	return service.Config{
		FreeMonthly:       c.MayInt("FREE_MONTHLY_SECONDS", d.FreeMonthly),
		SubscriberMonthly: c.MayInt("SUBSCRIBER_MONTHLY_SECONDS", d.SubscriberMonthly),
		ExtraPack:         c.MayInt("EXTRA_PACK_SECONDS", d.ExtraPack),
	}
}
