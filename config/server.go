package config

type ServerConfig struct {
	Port         string
	Env          string
	CORSOrigin   string
	CookieSecure bool
	CookieDomain string
	RedisURI     string
}

func LoadServerConfig() ServerConfig {
	return ServerConfig{
		Port:         GetEnvAsString("PORT", "5000"),
		Env:          GetEnvAsString("GO_ENV", "development"),
		CORSOrigin:   GetEnvAsString("CORS_ORIGIN", "http://localhost:5173"),
		CookieSecure: GetEnvAsBool("COOKIE_SECURE", false),
		CookieDomain: GetEnvAsString("COOKIE_DOMAIN", ""),
		RedisURI:     GetEnvAsString("REDIS_URI", ""),
	}
}
