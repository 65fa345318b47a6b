// Command issue-token signs an operator bearer token with the server's
// JWT settings, read from the same environment.
package main

import (
	"flag"
	"fmt"
	"os"

	jwttoken "pratyaksh/internal/jwt_token"
	"pratyaksh/internal/platform/config"
)

func main() {
	cfg := config.FromEnv()

	subject := flag.String("subject", "", "operator subject (required)")
	name := flag.String("name", "", "display name")
	ttl := flag.Duration("ttl", cfg.Auth.TokenTTL, "token lifetime")
	flag.Parse()

	if cfg.IsProduction() && cfg.UsesDevSigningKey() {
		fmt.Fprintln(os.Stderr, "refusing to sign with the development key in production")
		os.Exit(1)
	}

	svc := jwttoken.NewJWTService(cfg.Auth.JWTSigningKey, cfg.Auth.Issuer, cfg.Auth.Audience)
	token, err := svc.GenerateAccessToken(*subject, *name, *ttl)
	if err != nil {
		fmt.Fprintln(os.Stderr, "issue token:", err)
		flag.Usage()
		os.Exit(2)
	}
	fmt.Println(token)
}
