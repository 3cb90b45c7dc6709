// Command hosttoken prints a bearer token the host application can use for
// the write endpoints when HOST_JWT_SECRET is configured.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tablequeue/waitlist/internal/config"
	"github.com/tablequeue/waitlist/internal/logger"
	"github.com/tablequeue/waitlist/internal/middleware"
	"github.com/tablequeue/waitlist/internal/utils"
)

func main() {
	subject := flag.String("sub", "host", "token subject (front-desk name)")
	ttl := flag.Int("ttl", 0, "lifetime in minutes (default HOST_TOKEN_TTL_MIN)")
	flag.Parse()

	secret := os.Getenv("HOST_JWT_SECRET")
	log := logger.New(os.Getenv("APP_ENV"), "info")
	if secret == "" {
		log.Fatal().Msg("HOST_JWT_SECRET is not set")
	}
	if *ttl <= 0 {
		*ttl = config.HostTokenTTL()
	}

	tok, err := utils.NewHostToken(secret, *subject, middleware.RoleHost, *ttl)
	if err != nil {
		log.Fatal().Err(err).Msg("sign token")
	}
	fmt.Println(tok.Token)
	log.Info().Time("expires", tok.Exp).Str("sub", *subject).Msg("host token issued")
}
