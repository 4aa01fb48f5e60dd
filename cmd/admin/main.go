package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Reeshadali/PG/internal/config"
	"github.com/Reeshadali/PG/internal/logger"
	"github.com/Reeshadali/PG/internal/port"
	"github.com/Reeshadali/PG/internal/store"
	"github.com/Reeshadali/PG/internal/usecase/locker"
)

const usage = `Usage:
  admin create <username> <password>
  admin list
  admin delete <username>`

// The admin tool is the only way to manage accounts. It runs against the
// same store as the API but is a separate binary, so account management is
// never reachable through the HTTP surface.
func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	userStore := initStore(ctx, cfg)
	if _, err := locker.EnsureSeeded(ctx, userStore); err != nil {
		logger.Errorf(ctx, "❌  Failed to seed accounts: %v", err)
		os.Exit(1)
	}

	admin := locker.NewAccountAdmin(userStore)

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	switch os.Args[1] {
	case "create":
		if len(os.Args) != 4 {
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(2)
		}
		if err := admin.CreateUser(ctx, os.Args[2], os.Args[3]); err != nil {
			logger.Errorf(ctx, "❌  %v", err)
			os.Exit(1)
		}
		fmt.Printf("User %s created\n", os.Args[2])

	case "list":
		names, err := admin.ListUsers(ctx)
		if err != nil {
			logger.Errorf(ctx, "❌  %v", err)
			os.Exit(1)
		}
		for _, name := range names {
			fmt.Println(name)
		}

	case "delete":
		if len(os.Args) != 3 {
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(2)
		}
		if err := admin.DeleteUser(ctx, os.Args[2]); err != nil {
			logger.Errorf(ctx, "❌  %v", err)
			os.Exit(1)
		}
		fmt.Printf("User %s deleted\n", os.Args[2])

	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
}

func initStore(ctx context.Context, cfg *config.Settings) port.UserStore {
	if cfg.RedisAddr != "" {
		return store.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword)
	}
	return store.NewFileStore(cfg.DataFile)
}
