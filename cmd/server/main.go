// Command server runs the HTTP-to-SQL gateway: REST endpoints that proxy
// SELECT queries to the warehouse store, introspect its catalog, and record
// learner signups and activity in the learner store.
//
// Configuration is read from CONFIG_PATH (YAML) and environment variables;
// a .env file in the working directory is loaded if present.
//
// Exit codes: 0 = clean shutdown, 1 = startup or runtime error.
package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/sqlcoach/sqlcoach-backend/internal/app"
)

func main() {
	_ = godotenv.Load()

	if err := app.Run(context.Background()); err != nil {
		log.Printf("application error: %v", err)
		os.Exit(1)
	}
}
