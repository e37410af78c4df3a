package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/aresrc/gestion-pedidos-frontend/internal/config"
	catalogouc "github.com/aresrc/gestion-pedidos-frontend/internal/modules/catalogo/application/usecase"
	catalogoinfra "github.com/aresrc/gestion-pedidos-frontend/internal/modules/catalogo/infrastructure"
	catalogotr "github.com/aresrc/gestion-pedidos-frontend/internal/modules/catalogo/interface"
	comandauc "github.com/aresrc/gestion-pedidos-frontend/internal/modules/comandas/application/usecase"
	comandainfra "github.com/aresrc/gestion-pedidos-frontend/internal/modules/comandas/infrastructure"
	comandatr "github.com/aresrc/gestion-pedidos-frontend/internal/modules/comandas/interface"
	comprobuc "github.com/aresrc/gestion-pedidos-frontend/internal/modules/comprobantes/application/usecase"
	comprobinfra "github.com/aresrc/gestion-pedidos-frontend/internal/modules/comprobantes/infrastructure"
	comprobtr "github.com/aresrc/gestion-pedidos-frontend/internal/modules/comprobantes/interface"
	menuuc "github.com/aresrc/gestion-pedidos-frontend/internal/modules/menus/application/usecase"
	menuinfra "github.com/aresrc/gestion-pedidos-frontend/internal/modules/menus/infrastructure"
	menutr "github.com/aresrc/gestion-pedidos-frontend/internal/modules/menus/interface"
	rthandler "github.com/aresrc/gestion-pedidos-frontend/internal/modules/realtime/application/handler"
	rtuc "github.com/aresrc/gestion-pedidos-frontend/internal/modules/realtime/application/usecase"
	rtinfra "github.com/aresrc/gestion-pedidos-frontend/internal/modules/realtime/infrastructure"
	rttr "github.com/aresrc/gestion-pedidos-frontend/internal/modules/realtime/interface"
	reporteuc "github.com/aresrc/gestion-pedidos-frontend/internal/modules/reportes/application/usecase"
	reporteinfra "github.com/aresrc/gestion-pedidos-frontend/internal/modules/reportes/infrastructure"
	reportetr "github.com/aresrc/gestion-pedidos-frontend/internal/modules/reportes/interface"
	sesionuc "github.com/aresrc/gestion-pedidos-frontend/internal/modules/sesion/application/usecase"
	sesioninfra "github.com/aresrc/gestion-pedidos-frontend/internal/modules/sesion/infrastructure"
	sesiontr "github.com/aresrc/gestion-pedidos-frontend/internal/modules/sesion/interface"
	"github.com/aresrc/gestion-pedidos-frontend/internal/platform/broker"
	"github.com/aresrc/gestion-pedidos-frontend/internal/shared/auth"
	"github.com/aresrc/gestion-pedidos-frontend/internal/shared/logging"
)

func main() {
	// Attempt to load variables from .env so local runs honour configuration tweaks.
	if err := godotenv.Overload(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, ".env load warning: %v\n", err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
		os.Exit(1)
	}

	logFile, logger, err := setupLogging(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging setup error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	slog.SetDefault(logger)
	slog.Info("logging initialized", slog.String("directory", cfg.Logging.Directory), slog.String("level", cfg.Logging.Level), slog.String("format", cfg.Logging.Format))
	slog.Info("backend config resolved", slog.String("baseUrl", cfg.Backend.BaseURL), slog.Duration("timeout", cfg.Backend.Timeout))
	slog.Info("kafka config resolved", slog.Any("brokers", cfg.Kafka.Brokers), slog.String("group", cfg.Kafka.GroupID))

	// JWT validator for tokens issued by the backend auth service.
	validator := auth.NewJWTValidator(cfg.Security.JWTSecret)
	if cfg.Security.JWTPublicKey != "" {
		validator = auth.NewJWTValidatorWithPublicKey(cfg.Security.JWTSecret, cfg.Security.JWTPublicKey)
	}

	// Gateways REST hacia el backend propietario de los datos.
	catalogoClient := catalogoinfra.NewCatalogoHTTPClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, nil)
	comandaClient := comandainfra.NewComandaHTTPClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, nil)
	comprobanteClient := comprobinfra.NewComprobanteHTTPClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, nil)
	menuClient := menuinfra.NewMenuHTTPClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, nil)
	reporteClient := reporteinfra.NewReporteHTTPClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, nil)
	authClient := sesioninfra.NewAuthHTTPClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, nil)

	// Estado en memoria del gateway: catálogo compartido y borradores por sesión.
	cache := catalogouc.NewCache(catalogoClient)
	almacen := comandauc.NewAlmacen(cfg.Borrador.MaxCantidad)

	hub := rtinfra.NewHub()
	notificador := rtuc.NewNotificadorHub(hub)

	enviarUC := comandauc.NewEnviarComandaUseCase(almacen, comandaClient, cache, notificador)
	consultarUC := comandauc.NewConsultarComandasUseCase(comandaClient, notificador)
	sesionUC := sesionuc.NewSesionUseCase(authClient, validator)
	comprobanteUC := comprobuc.NewEmitirComprobanteUseCase(comprobanteClient, comandaClient)
	menusUC := menuuc.NewGestionarMenusUseCase(menuClient)
	reportesUC := reporteuc.NewConsultarReportesUseCase(reporteClient)

	// Eventos del backend: cada tópico invalida el catálogo y notifica a los ws.
	registry := rtinfra.NewHandlerRegistry()
	for entity, topics := range cfg.Kafka.Topics {
		for _, topic := range topics {
			registry.Register(rthandler.NewEntityStreamHandler(entity, topic, cfg.Websocket.AllowedActions, hub, cache))
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	topics := make([]string, 0)
	for _, topicList := range cfg.Kafka.Topics {
		topics = append(topics, topicList...)
	}
	broker.StartKafkaConsumers(ctx, registry, cfg.Kafka.Brokers, cfg.Kafka.GroupID, topics)

	e := echo.New()
	e.Logger.SetOutput(log.Writer())
	e.Use(sesiontr.Gatekeeper(sesiontr.GatekeeperConfig{
		CookieName: cfg.Session.CookieName,
		Validator:  validator,
	}))

	sesiontr.NewSesionHandler(sesionUC, sesiontr.CookieConfig{
		Nombre: cfg.Session.CookieName,
		MaxAge: cfg.Session.MaxAge,
		Secure: cfg.Session.Secure,
	}, almacen.Descartar).Registrar(e)
	comandatr.NewComandaHandler(almacen, enviarUC, consultarUC, cache).Registrar(e)
	catalogotr.NewCatalogoHandler(cache).Registrar(e)
	comprobtr.NewComprobanteHandler(comprobanteUC).Registrar(e)
	menutr.NewMenuHandler(menusUC).Registrar(e)
	reportetr.NewReporteHandler(reportesUC).Registrar(e)
	e.GET("/ws/comandas", rttr.NewWebsocketHandler(hub, cfg.Websocket.SendBuffer, cfg.Websocket.AllowedActions))

	go func() {
		if err := e.Start(":" + cfg.Server.Port); err != nil {
			slog.Error("http server stopped", slog.Any("error", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	slog.Info("shutting down")
	e.Close()
}

func setupLogging(cfg config.LoggingConfig) (*os.File, *slog.Logger, error) {
	dir := cfg.Directory
	if dir == "" {
		dir = "./logs"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	fileName := filepath.Join(dir, time.Now().UTC().Format("2006-01-02")+".log")
	file, err := os.OpenFile(fileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	writer := io.MultiWriter(os.Stdout, file)
	logger := logging.New(writer, logging.Config{
		Level:     cfg.Level,
		Format:    cfg.Format,
		AddSource: true,
	})
	log.SetOutput(writer)
	log.SetFlags(0)
	log.SetPrefix("")

	return file, logger, nil
}
