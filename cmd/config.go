package cmd

import "time"

// Config carries all runtime settings, loaded from the environment by the
// application entry point.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	OperatorEmail string

	AdminUsername   string
	AdminPassword   string
	AdminSessionTTL time.Duration

	NotificationQueueSize   int
	NotificationSendTimeout time.Duration
}
