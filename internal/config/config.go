package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config agrupa la configuración del gateway leída de variables de entorno.
type Config struct {
	Server    ServerConfig
	Backend   BackendConfig
	Kafka     KafkaConfig
	Security  SecurityConfig
	Session   SessionConfig
	Logging   LoggingConfig
	Websocket WebsocketConfig
	Borrador  BorradorConfig
}

type ServerConfig struct {
	Port string
}

// BackendConfig apunta al API REST que posee los datos (comandas, platillos, mesas...).
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

type KafkaConfig struct {
	Brokers []string
	GroupID string
	// Topics mapea cada entidad a los tópicos que publican sus eventos.
	Topics map[string][]string
}

type SecurityConfig struct {
	JWTSecret    string
	JWTPublicKey string
}

// SessionConfig controla la cookie auth_token emitida tras el login.
type SessionConfig struct {
	CookieName string
	MaxAge     time.Duration
	Secure     bool
}

type LoggingConfig struct {
	Directory string
	Level     string
	Format    string
}

type WebsocketConfig struct {
	SendBuffer     int
	AllowedActions []string
}

// BorradorConfig limita el borrador de comandas por sesión.
type BorradorConfig struct {
	// MaxCantidad acota la cantidad por platillo; 0 desactiva el límite.
	MaxCantidad int
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: envOrDefault("PORT", "8090"),
		},
		Backend: BackendConfig{
			BaseURL: envOrDefault("BACKEND_BASE_URL", "http://localhost:8080"),
			Timeout: envDuration("BACKEND_TIMEOUT", 10*time.Second),
		},
		Kafka: KafkaConfig{
			Brokers: envList("KAFKA_BROKERS", envList("KAFKA_BROKER", nil)),
			GroupID: envOrDefault("KAFKA_GROUP_ID", "gestion-pedidos-frontend"),
			Topics:  parseTopics(os.Getenv("KAFKA_TOPICS")),
		},
		Security: SecurityConfig{
			JWTSecret:    os.Getenv("JWT_SECRET"),
			JWTPublicKey: os.Getenv("JWT_PUBLIC_KEY"),
		},
		Session: SessionConfig{
			CookieName: envOrDefault("SESSION_COOKIE_NAME", "auth_token"),
			MaxAge:     envDuration("SESSION_MAX_AGE", time.Hour),
			Secure:     envBool("SESSION_COOKIE_SECURE", false),
		},
		Logging: LoggingConfig{
			Directory: envOrDefault("LOG_DIR", "./logs"),
			Level:     envOrDefault("LOG_LEVEL", "info"),
			Format:    envOrDefault("LOG_FORMAT", "text"),
		},
		Websocket: WebsocketConfig{
			SendBuffer:     envInt("WS_SEND_BUFFER", 8),
			AllowedActions: envList("WS_ALLOWED_ACTIONS", []string{"created", "updated", "deleted"}),
		},
		Borrador: BorradorConfig{
			MaxCantidad: envInt("BORRADOR_MAX_CANTIDAD", 0),
		},
	}

	if strings.TrimSpace(cfg.Server.Port) == "" {
		return nil, fmt.Errorf("server port must not be empty")
	}
	if cfg.Backend.Timeout <= 0 {
		return nil, fmt.Errorf("backend timeout must be positive")
	}
	if cfg.Borrador.MaxCantidad < 0 {
		return nil, fmt.Errorf("BORRADOR_MAX_CANTIDAD must not be negative")
	}
	return cfg, nil
}

// parseTopics interpreta "comandas:eventos.comandas;platillos:eventos.platillos,eventos.menu".
func parseTopics(raw string) map[string][]string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return map[string][]string{
			"comandas":  {"eventos.comandas"},
			"platillos": {"eventos.platillos"},
			"mesas":     {"eventos.mesas"},
		}
	}
	topics := make(map[string][]string)
	for _, group := range strings.Split(trimmed, ";") {
		parts := strings.SplitN(group, ":", 2)
		if len(parts) != 2 {
			continue
		}
		entity := strings.ToLower(strings.TrimSpace(parts[0]))
		if entity == "" {
			continue
		}
		var list []string
		for _, topic := range strings.Split(parts[1], ",") {
			if t := strings.TrimSpace(topic); t != "" {
				list = append(list, t)
			}
		}
		if len(list) > 0 {
			topics[entity] = list
		}
	}
	return topics
}

func envOrDefault(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return parsed
}

func envBool(key string, fallback bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return parsed
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	if parsed, err := time.ParseDuration(raw); err == nil {
		return parsed
	}
	if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	var values []string
	for _, item := range strings.Split(raw, ",") {
		if v := strings.TrimSpace(item); v != "" {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return fallback
	}
	return values
}
