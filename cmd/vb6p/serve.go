package main

import (
	"crypto/rand"
	"fmt"
	"os"

	"github.com/scriptandcompile/vb6parse/internal/vb6cfg"
	"github.com/scriptandcompile/vb6parse/internal/vb6server"
)

// runServe starts internal/vb6server listening on addr. If dbDir is empty
// an in-memory store is used; otherwise a sqlite-backed store is opened
// under dbDir, mirroring cmd/tqserver's driver-selection-by-flag approach
// without needing a full "driver:params" connection string, since vb6p
// only ever supports the one embedded driver.
func runServe(cfg vb6cfg.Config, addr, dbDir string) error {
	store, err := openStore(dbDir)
	if err != nil {
		return err
	}
	defer store.Close()

	secret, err := loadOrGenerateSecret(cfg.Server.JWTSecretEnv)
	if err != nil {
		return err
	}

	srv := vb6server.New(store, secret)
	fmt.Printf("vb6p serving on %s\n", addr)
	return srv.ServeForever(addr)
}

func openStore(dbDir string) (vb6server.Store, error) {
	if dbDir == "" {
		return vb6server.NewInMemoryStore(), nil
	}
	if err := os.MkdirAll(dbDir, 0770); err != nil {
		return nil, fmt.Errorf("could not create database directory: %w", err)
	}
	return vb6server.NewSQLiteStore(dbDir)
}

// loadOrGenerateSecret reads the JWT signing secret from the named
// environment variable, or generates and warns about a random one for the
// life of this process if it isn't set — the same fallback
// cmd/tqserver's main uses rather than refusing to start.
func loadOrGenerateSecret(envVar string) ([]byte, error) {
	if envVar != "" {
		if v := os.Getenv(envVar); v != "" {
			return []byte(v), nil
		}
	}

	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("could not generate a random JWT secret: %w", err)
	}
	fmt.Fprintf(os.Stderr, "WARN: no %s set; using a random secret for this process only, all sessions will be invalidated on restart\n", envVar)
	return secret, nil
}
