package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"goinvest/config"
	"goinvest/internal/pkg/database"
)

// Executa as migrations embutidas do PostgreSQL: migrate [up|down|status|redo|version].
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️ Aviso: arquivo .env não encontrado. Carregando configs apenas do ambiente do sistema: %v", err)
	}

	flag.Parse()
	cfg := config.LoadConfig()

	if cfg.DatabaseDriver() != config.DriverPostgres {
		log.Fatalf("goose: DATABASE_URL precisa ser postgres:// (recebido esquema %q)", cfg.DatabaseDriver())
	}

	db, err := database.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("goose: falha ao conectar ao DB: %v\n", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Fatalf("goose: falha ao fechar o DB: %v\n", err)
		}
	}()

	arguments := flag.Args()
	if len(arguments) == 0 {
		arguments = []string{"up"} // 'up' quando nenhum comando é informado
	}

	command := arguments[0]
	var args []string
	if len(arguments) > 1 {
		args = arguments[1:]
	}

	if err := database.Migrate(db, command, args...); err != nil {
		log.Fatalf("goose %v: %v", command, err)
	}

	fmt.Printf("goose %s success\n", command)
}
