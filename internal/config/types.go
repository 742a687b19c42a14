package config

// Config holds all configuration for the client.
type Config struct {
	APIBaseURL string
	DBName     string
	LogLevel   string
	Turso      TursoConfig
}

// TursoConfig configures an optional remote replica for the local store.
type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
