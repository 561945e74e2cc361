// Command tokengen issues a bearer token for the note mutation routes. There
// are no user accounts, so tokens are handed to operators out-of-band with
// this tool.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"skill-compass/internal/pkg/token"

	"github.com/joho/godotenv"
)

func main() {
	subject := flag.String("subject", "", "token subject, e.g. an operator name")
	lifetime := flag.Duration("lifetime", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *subject == "" {
		log.Fatal("usage: tokengen -subject <name> [-lifetime 24h]")
	}

	_ = godotenv.Load()
	secret := strings.TrimSpace(os.Getenv("AUTH_TOKEN_SECRET"))
	if secret == "" {
		log.Fatal("AUTH_TOKEN_SECRET is not set")
	}

	tok, err := token.NewHMACService(secret, *lifetime).Generate(*subject)
	if err != nil {
		log.Fatalf("failed to generate token: %v", err)
	}
	fmt.Println(tok)
}
