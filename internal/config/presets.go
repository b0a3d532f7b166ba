package config

import "sort"

// Presets pairs each catalog scenario with numerical parameters tuned for
// it. Durations are simulated seconds at SI scale.
var Presets = map[string]*Config{
	"year": {
		Scenario: "planets", Dt: 360, Duration: 3.156e7, Sample: 200,
	},
	"decade": {
		Scenario: "planets", Dt: 3600, Duration: 3.156e8, Sample: 500,
	},
	"orbit": {
		// one full revolution of the two-body reference pair
		Scenario: "two-body", Dt: 360, Duration: 3.156e7, Sample: 200,
	},
	"binary": {
		Scenario: "binary", Dt: 3600, Duration: 2.5e8, Sample: 500,
	},
	"demo": {
		// dimensionless G=1 scenario for interactive viewing
		Scenario: "demo", Dt: 0.01, Duration: 100, Sample: 10,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	out := *cfg
	if out.Sample < 1 {
		out.Sample = DefaultSample
	}
	return &out
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
