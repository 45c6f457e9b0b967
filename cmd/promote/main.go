// Command promote grants admin rights to a user by username.
// It is used to bootstrap the first administrator.
//
// Usage:
//
//	promote --username=alice
//
// Reads the same configuration as the server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/heartmarshall/termtrans-backend/internal/app"
	"github.com/heartmarshall/termtrans-backend/internal/config"
	"github.com/heartmarshall/termtrans-backend/internal/domain"
)

func main() {
	username := flag.String("username", "", "username of the user to promote to admin")
	flag.Parse()

	if *username == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --username=alice")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("init: %v", err)
	}
	defer c.Close()

	user, err := c.Users.PromoteByUsername(ctx, *username)
	if errors.Is(err, domain.ErrNotFound) {
		fmt.Printf("No user found with username %q.\n", *username)
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("promote: %v", err)
	}

	fmt.Printf("User %q (%s) promoted to admin.\n", user.Username, user.ID)
}
