package cmd

// Config carries every externally supplied setting the service needs.
// Values are read from the environment at startup; see cmd/app/main.go.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret        string
	JWTExpiryMinutes int

	MinioEndpoint      string
	MinioAccessKey     string
	MinioSecretKey     string
	MinioBucket        string
	MinioUseSSL        bool
	MinioPublicBaseURL string
}
