package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/yourorg/registrocl/internal/config"
	"github.com/yourorg/registrocl/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ CRITICAL: %v", err)
	}

	srv := server.New(cfg)

	// ============================================================================
	// GRACEFUL SHUTDOWN
	// ============================================================================
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("🛑 Señal de terminación recibida, cerrando servidor...")
		if err := srv.Shutdown(); err != nil {
			log.Printf("⚠️  Error cerrando servidor: %v", err)
		}
	}()

	log.Printf("🚀 Servidor escuchando en %s (base de datos %s@%s:%s/%s)",
		srv.Addr(), cfg.DB.Driver, cfg.DB.Host, cfg.DB.Port, cfg.DB.Name)
	log.Println("📍 Endpoints disponibles:")
	log.Println("   POST /registrar  - Registrar usuario")
	log.Println("   POST /login      - Iniciar sesión")
	log.Println("   GET  /health     - Estado del servicio")
	log.Println("💡 Presiona Ctrl+C para detener")

	if err := srv.Listen(); err != nil {
		log.Fatal(err)
	}
	log.Println("✅ Servidor cerrado correctamente")
}
