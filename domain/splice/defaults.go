package splice

// Defaults applied at the request boundary when a field is absent.
const (
	DefaultPorts     = 96
	DefaultMainCable = "FEEDER 432CT"
)

func defaultCables() []CableBundle {
	return []CableBundle{
		{Name: "DIST A 48CT", FiberCount: 48},
		{Name: "DIST B 48CT", FiberCount: 48},
		{Name: "DIST C 24CT", FiberCount: 24},
		{Name: "DIST D 24CT", FiberCount: 24},
	}
}

// ApplyDefaults fills absent Config fields so the service produces a
// non-trivial sheet even from an empty request. Build itself accepts a
// zero port count (header-only table); treating zero as absent is a
// request-boundary convention only.
func ApplyDefaults(cfg Config) Config {
	if cfg.Ports == 0 {
		cfg.Ports = DefaultPorts
	}
	if cfg.MainCableName == "" {
		cfg.MainCableName = DefaultMainCable
	}
	if len(cfg.Cables) == 0 {
		cfg.Cables = defaultCables()
	}
	if len(cfg.Addresses) == 0 {
		cfg.Addresses = SampleAddresses()
	}
	return cfg
}
