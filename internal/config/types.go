package config

// Config holds all configuration for the application.
type Config struct {
	DBName        string
	MigrationsDir string
	Port          string
	BookingAPI    BookingAPIConfig
	Slack         SlackConfig
	Turso         TursoConfig
	ProjectID     string
}

// BookingAPIConfig points at the remote booking service.
type BookingAPIConfig struct {
	BaseURL string
}

type SlackConfig struct {
	Token     string
	ChannelID string
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
