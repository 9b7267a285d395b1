package module

import (
	"sayitanyway/internal/platform/config"
	dom "sayitanyway/internal/services/blobs/domain"
)

// Options selects and configures the blob backend
type Options struct {
	Backend     string
	Dir         string
	RedisPrefix string
}

// FromConfig reads with BLOBS_ prefix
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("BLOBS_")
	return Options{
		Backend: c.MayEnum("BACKEND", dom.BackendFile,
			dom.BackendMemory, dom.BackendFile, dom.BackendPG, dom.BackendRedis),
		Dir:         c.MayString("DIR", "./.sayitanyway"),
		RedisPrefix: c.MayString("REDIS_PREFIX", "sayitanyway:"),
	}
}
