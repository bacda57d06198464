// Command mint-token issues a signed JWT access token for local testing of
// the authenticated dashboard endpoint.
//
// Usage:
//
//	mint-token --secret=<jwt secret> [--user=1] [--role=user] [--issuer=userdash] [--ttl=15m]
//
// The secret must match auth.jwt_secret in the server configuration.
// The token is printed to stdout.
//
// Exit codes: 0 = token printed, 1 = error.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/heartmarshall/userdash-backend/internal/auth"
)

func main() {
	userID := flag.Int64("user", 1, "user ID claim")
	role := flag.String("role", "user", "role claim (user or admin)")
	secret := flag.String("secret", "", "JWT signing secret")
	issuer := flag.String("issuer", "userdash", "token issuer claim")
	ttl := flag.Duration("ttl", 15*time.Minute, "token lifetime")
	flag.Parse()

	if *secret == "" {
		fmt.Fprintln(os.Stderr, "Usage: mint-token --secret=<jwt secret> [--user=1] [--role=user]")
		os.Exit(1)
	}

	manager := auth.NewJWTManager(*secret, *issuer, *ttl)

	token, err := manager.GenerateAccessToken(*userID, *role)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Println(token)
}
