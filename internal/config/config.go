package config

import (
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

type Config struct {
	ServiceName string `env:"SERVICE_NAME" envDefault:"bloggers-auth"`

	Server   ServerConfig   `envPrefix:"SERVER_"`
	Auth     AuthConfig     `envPrefix:"AUTH_"`
	Throttle ThrottleConfig `envPrefix:"THROTTLE_"`
	DB       DBConfig       `envPrefix:"POSTGRES_"`
	Redis    RedisConfig    `envPrefix:"REDIS_"`
	Email    EmailConfig    `envPrefix:"EMAIL_"`
	Jaeger   JaegerConfig   `envPrefix:"JAEGER_"`
}

type ServerConfig struct {
	Mode     string `env:"MODE"      envDefault:"dev"`
	Scheme   string `env:"SCHEME"    envDefault:"http"`
	Domain   string `env:"DOMAIN"    envDefault:"localhost"`
	Port     int    `env:"PORT"      envDefault:"8080"`
	GRPCPort int    `env:"GRPC_PORT" envDefault:"50050"`
}

type AuthConfig struct {
	JWT JWTConfig `envPrefix:"JWT_"`

	// HashCost is the bcrypt work factor.
	HashCost     int  `env:"HASH_COST"     envDefault:"10"`
	SecureCookie bool `env:"SECURE_COOKIE" envDefault:"true"`
}

type JWTConfig struct {
	Secret     string        `env:"SECRET,required"`
	Issuer     string        `env:"ISSUER"      envDefault:"bloggers-auth"`
	AccessTTL  time.Duration `env:"ACCESS_TTL"  envDefault:"10m"`
	RefreshTTL time.Duration `env:"REFRESH_TTL" envDefault:"720h"`
}

type ThrottleConfig struct {
	// Backend is one of "db" or "redis".
	Backend string        `env:"BACKEND" envDefault:"db"`
	Limit   int           `env:"LIMIT"   envDefault:"5"`
	Window  time.Duration `env:"WINDOW"  envDefault:"10s"`
}

type DBConfig struct {
	// Driver is one of "postgres" or "memory".
	Driver   string `env:"DRIVER"   envDefault:"postgres"`
	Host     string `env:"HOST"     envDefault:"localhost"`
	Port     int    `env:"PORT"     envDefault:"5432"`
	User     string `env:"USER"     envDefault:"app_owner"`
	Password string `env:"PASSWORD" envDefault:"app_password"`
	Database string `env:"DB"       envDefault:"app_db"`
}

type RedisConfig struct {
	Addr string `env:"ADDR" envDefault:"localhost:6379"`
	Pass string `env:"PASS"`
	DB   int    `env:"DB"   envDefault:"0"`
}

type EmailConfig struct {
	Server string `env:"SERVER" envDefault:"smtp.gmail.com"`
	Port   int    `env:"PORT"   envDefault:"587"`
	User   string `env:"USER"`
	Pass   string `env:"PASS"`
}

type JaegerConfig struct {
	Sampler  SamplerConfig  `envPrefix:"SAMPLER_"`
	Reporter ReporterConfig `envPrefix:"REPORTER_"`
}

type SamplerConfig struct {
	Type  string  `env:"TYPE"  envDefault:"const"`
	Param float64 `env:"PARAM" envDefault:"1"`
}

type ReporterConfig struct {
	LogSpans           bool   `env:"LOG_SPANS"             envDefault:"false"`
	LocalAgentHostPort string `env:"LOCAL_AGENT_HOST_PORT" envDefault:"localhost:6831"`
}

// MustLoad reads an optional .env file at path and then parses the
// environment. Variables already present in the environment take precedence.
func MustLoad(path string) Config {
	_ = godotenv.Load(path)

	conf := Config{}
	if err := env.Parse(&conf); err != nil {
		panic(err)
	}

	return conf
}
