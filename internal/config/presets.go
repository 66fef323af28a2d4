package config

// Presets are named arena setups selectable from the CLI.
var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"sparse": {
		Width: 800, Height: 800, ChromeHeight: 28,
		Gravity: 9.81, Friction: 0.0001, FPS: 60,
		Count: 20, MaxAttempts: 1000,
		Spawn: SpawnConfig{
			RadiusMin: 10, RadiusMax: 40, MassMin: 0.5, MassMax: 5,
			SpeedMax: 250, ElasticityMin: 0.8, ElasticityMax: 0.95, Margin: 20,
		},
	},
	"dense": {
		Width: 800, Height: 800, ChromeHeight: 28,
		Gravity: 9.81, Friction: 0.0001, FPS: 60,
		Count: 150, MaxAttempts: 5000,
		Spawn: SpawnConfig{
			RadiusMin: 4, RadiusMax: 12, MassMin: 0.5, MassMax: 3,
			SpeedMax: 150, ElasticityMin: 0.8, ElasticityMax: 0.95, Margin: 20,
		},
	},
	"bouncy": {
		Width: 800, Height: 800, ChromeHeight: 28,
		Gravity: 9.81, Friction: 0.0001, FPS: 60,
		Count: 50, MaxAttempts: 1000, GravityOn: true,
		Spawn: SpawnConfig{
			RadiusMin: 8, RadiusMax: 25, MassMin: 0.5, MassMax: 2,
			SpeedMax: 300, ElasticityMin: 0.95, ElasticityMax: 1.0, Margin: 20,
		},
	},
	"syrup": {
		Width: 800, Height: 800, ChromeHeight: 28,
		Gravity: 9.81, Friction: 0.005, FPS: 60,
		Count: 60, MaxAttempts: 1000, GravityOn: true, FrictionOn: true,
		Spawn: SpawnConfig{
			RadiusMin: 5, RadiusMax: 30, MassMin: 1, MassMax: 5,
			SpeedMax: 200, ElasticityMin: 0.8, ElasticityMax: 0.9, Margin: 20,
		},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
