package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// BodyLimitBytes caps the size of accepted request bodies.
	BodyLimitBytes int `mapstructure:"body_limit_bytes" default:"1048576"`
}

// ListenAddr returns the address string for fiber's Listen.
func (c Config) ListenAddr() string {
	return ":" + c.Port
}
