package modkit

// Option mutates build configuration for a module
type Option func(*buildCfg)

type buildCfg struct {
	name  string
	ports any
}

// Built is the resolved option set
type Built struct {
	Name  string
	Ports any
}

// Build applies opts in order
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		if o != nil {
			o(&c)
		}
	}
	return Built{Name: c.name, Ports: c.ports}
}

// WithName overrides the module name used in logs and the registry
func WithName(name string) Option {
	return func(c *buildCfg) { c.name = name }
}

// WithPorts injects the ports a module needs from other modules
// the concrete type is owned by the importing module
func WithPorts[T any](p T) Option {
	return func(c *buildCfg) { c.ports = p }
}

// NeedsOf extracts injected ports of type T, ok=false when absent or mistyped
func NeedsOf[T any](opts ...Option) (T, bool) {
	t, ok := Build(opts...).Ports.(T)
	return t, ok
}
