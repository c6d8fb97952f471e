package config

// NewAppConfigForPath creates an AppConfig bound to a file path for tests
func NewAppConfigForPath(path string) *AppConfig {
	return &AppConfig{path: path}
}
