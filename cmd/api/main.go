package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/clinician-ai/portal-service/internal/auth"
	"github.com/clinician-ai/portal-service/internal/db"
	httpserver "github.com/clinician-ai/portal-service/internal/http"
	"github.com/clinician-ai/portal-service/internal/llm"
	"github.com/clinician-ai/portal-service/internal/messaging"
	"github.com/clinician-ai/portal-service/internal/telemetry"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	ctx := context.Background()

	// Initialize OpenTelemetry. The service keeps running without it.
	telemetryCfg := telemetry.LoadConfig()
	provider, err := telemetry.InitProvider(ctx, telemetryCfg)
	if err != nil {
		log.Printf("Warning: failed to initialize telemetry: %v", err)
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := provider.Shutdown(shutdownCtx); err != nil {
				log.Printf("Warning: telemetry shutdown failed: %v", err)
			}
		}()
		log.Println("✓ OpenTelemetry initialized")
	}

	metrics, err := telemetry.InitMetrics()
	if err != nil {
		log.Printf("Warning: failed to initialize metrics: %v", err)
		metrics = nil
	} else {
		log.Println("✓ Metrics initialized")
	}

	// Connect to database
	database, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()
	log.Println("✓ Database connected")

	// Initialize JWT verification
	authCfg := auth.LoadConfig()
	jwks, err := auth.NewJWKS(authCfg.JWKSURL, 15*time.Minute)
	if err != nil {
		log.Fatalf("Failed to initialize JWKS: %v", err)
	}
	defer jwks.Close()
	verifier := auth.NewVerifier(authCfg, jwks)
	log.Println("✓ JWT verifier initialized")

	permsPath := os.Getenv("PERMISSIONS_FILE")
	if permsPath == "" {
		permsPath = "permissions.yml"
	}
	perms, err := auth.LoadPermissions(permsPath)
	if err != nil {
		log.Fatalf("Failed to load permissions: %v", err)
	}
	log.Printf("✓ Permissions loaded from %s", permsPath)

	// Initialize the AI gateway client
	llmCfg, err := llm.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load AI gateway config: %v", err)
	}
	var gatewayMetrics llm.MetricsRecorder
	if metrics != nil {
		gatewayMetrics = metrics
	}
	gateway := llm.NewClient(llmCfg, gatewayMetrics)
	log.Printf("✓ AI gateway client initialized (model: %s)", gateway.Model())

	// Initialize RabbitMQ publisher. Events are best-effort.
	var publisher messaging.PublisherInterface
	rabbitPublisher, err := messaging.NewPublisher()
	if err != nil {
		log.Printf("Warning: RabbitMQ unavailable, events disabled: %v", err)
	} else {
		defer rabbitPublisher.Close()
		publisher = rabbitPublisher
		log.Println("✓ RabbitMQ publisher initialized")
	}

	router := httpserver.SetupRouter(database, verifier, perms, gateway, publisher, metrics)
	router.Use(otelmux.Middleware(telemetryCfg.ServiceName))

	handler := httpserver.CORSMiddleware(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("portal-service listening on :%s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Warning: graceful shutdown failed: %v", err)
	}
	log.Println("✓ Server stopped")
}
