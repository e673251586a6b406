package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/yourorg/registrocl/internal/config"
	"github.com/yourorg/registrocl/internal/db"
	"github.com/yourorg/registrocl/internal/models"
	"github.com/yourorg/registrocl/internal/password"
	"github.com/yourorg/registrocl/internal/registro"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	run(os.Stdin, cfg)
}

// run atiende el menú hasta elegir "3" o hasta que se cierre la entrada.
func run(in io.Reader, cfg config.Config) {
	reader := bufio.NewReader(in)
	for {
		fmt.Println("==== RegistroCL CLI ====")
		fmt.Println("1) Health check API")
		fmt.Println("2) Seed database (registrar usuario demo)")
		fmt.Println("3) Exit")
		fmt.Print("Select option: ")
		choice, err := reader.ReadString('\n')
		if err != nil && choice == "" {
			if err != io.EOF {
				log.Printf("error leyendo stdin: %v", err)
			}
			fmt.Println()
			fmt.Println("Bye")
			return
		}
		choice = strings.TrimSpace(choice)
		switch choice {
		case "1":
			doHealthCheck()
		case "2":
			doSeed(cfg)
		case "3":
			fmt.Println("Bye")
			return
		default:
			fmt.Println("Invalid option")
		}
		fmt.Println()
	}
}

func doHealthCheck() {
	base := os.Getenv("BASE_URL")
	if base == "" {
		base = "http://localhost:8000"
	}
	url := strings.TrimRight(base, "/") + "/health"
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		fmt.Println("Health: ERROR:", err)
		return
	}
	defer resp.Body.Close()
	fmt.Println("Health status:", resp.Status)
}

// doSeed registra un usuario demo por el mismo camino que POST /registrar.
func doSeed(cfg config.Config) {
	connector := db.NewConnector(cfg.DB)
	svc := registro.NewService(connector, connector.Dialect(), password.NewBcrypt(cfg.BcryptCost))

	usuario, err := svc.Register(context.Background(), models.RegistroRequest{
		Nombre:     "Demo",
		Apellido:   "Usuario",
		Cedula:     "0000000000",
		Telefono:   "0000000",
		Fecha:      time.Now().Format("2006-01-02"),
		Genero:     "N",
		Correo:     "demo@example.com",
		Contrasena: "demo1234",
	})
	if err != nil {
		fmt.Println("Seed: error:", err)
		return
	}
	fmt.Printf("Seed: usuario id=%d creado (correo %s, contraseña 'demo1234')\n", usuario.ID, usuario.Correo)
}
