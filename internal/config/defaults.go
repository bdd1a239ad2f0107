package config

// DefaultConfigPath is where the CLI looks for a config file unless told
// otherwise.
const DefaultConfigPath = ".modelreport.json"

// Defaults returns the built-in configuration values, keyed by koanf path.
func Defaults() map[string]any {
	return map[string]any{
		"environment": "master",
		"format":      "table",
		"output_dir":  "./reports",
		"timeout":     30,
	}
}
