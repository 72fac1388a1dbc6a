package cmd

// Config carries all process-wide settings, populated from the environment
// in cmd/app. Pricing rates live here rather than as hidden constants so
// deployments can override them.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	JWTSecret  string

	TaxRate     float64
	ShippingFee float64
}
