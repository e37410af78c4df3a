package config

import (
	"testing"
	"time"
)

func TestParseTopics(t *testing.T) {
	topics := parseTopics("comandas:eventos.comandas;platillos:eventos.platillos,eventos.menu")
	if len(topics) != 2 {
		t.Fatalf("esperaba 2 entidades, obtuve %d", len(topics))
	}
	if got := topics["comandas"]; len(got) != 1 || got[0] != "eventos.comandas" {
		t.Fatalf("comandas = %v", got)
	}
	if got := topics["platillos"]; len(got) != 2 || got[1] != "eventos.menu" {
		t.Fatalf("platillos = %v", got)
	}
}

func TestParseTopicsVacioUsaDefaults(t *testing.T) {
	topics := parseTopics("   ")
	for _, entity := range []string{"comandas", "platillos", "mesas"} {
		if len(topics[entity]) == 0 {
			t.Fatalf("default sin entidad %q: %v", entity, topics)
		}
	}
}

func TestParseTopicsIgnoraGruposMalFormados(t *testing.T) {
	topics := parseTopics("sin-dos-puntos;comandas: ,, ;MESAS: eventos.mesas ")
	if _, ok := topics["sin-dos-puntos"]; ok {
		t.Fatal("grupo sin dos puntos aceptado")
	}
	if _, ok := topics["comandas"]; ok {
		t.Fatal("grupo sin tópicos aceptado")
	}
	if got := topics["mesas"]; len(got) != 1 || got[0] != "eventos.mesas" {
		t.Fatalf("entidad no normalizada a minúsculas: %v", topics)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port == "" {
		t.Fatal("puerto por defecto vacío")
	}
	if cfg.Backend.Timeout <= 0 {
		t.Fatalf("timeout = %v", cfg.Backend.Timeout)
	}
	if cfg.Session.CookieName != "auth_token" {
		t.Fatalf("cookie = %q", cfg.Session.CookieName)
	}
	if len(cfg.Websocket.AllowedActions) == 0 {
		t.Fatal("acciones permitidas vacías")
	}
}

func TestEnvDuration(t *testing.T) {
	t.Setenv("BACKEND_TIMEOUT", "30s")
	if got := envDuration("BACKEND_TIMEOUT", time.Second); got != 30*time.Second {
		t.Fatalf("duración = %v", got)
	}

	t.Setenv("BACKEND_TIMEOUT", "15")
	if got := envDuration("BACKEND_TIMEOUT", time.Second); got != 15*time.Second {
		t.Fatalf("segundos desnudos = %v", got)
	}

	t.Setenv("BACKEND_TIMEOUT", "no-es-duracion")
	if got := envDuration("BACKEND_TIMEOUT", time.Second); got != time.Second {
		t.Fatalf("fallback = %v", got)
	}
}

func TestEnvList(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", " kafka-1:9092 , ,kafka-2:9092")
	got := envList("KAFKA_BROKERS", nil)
	if len(got) != 2 || got[0] != "kafka-1:9092" || got[1] != "kafka-2:9092" {
		t.Fatalf("brokers = %v", got)
	}

	t.Setenv("KAFKA_BROKERS", " , ")
	if got := envList("KAFKA_BROKERS", []string{"fallback:9092"}); len(got) != 1 || got[0] != "fallback:9092" {
		t.Fatalf("fallback = %v", got)
	}
}
