//go:build api

// Package api holds end-to-end tests that drive the full HTTP API against
// real MongoDB, Redis, and MinIO containers.
//
// Run with:
//
//	go test -tags=api -v ./test/api/...
package api

import (
	"context"
	"log"
	"os"
	"testing"

	"carkeep/internal/validator"
	"carkeep/test/api/testserver"
)

// testServer is shared by every test in the package; CleanupBetweenTests
// resets its state.
var testServer *testserver.TestServer

func TestMain(m *testing.M) {
	validator.RegisterCustomValidators()

	ctx := context.Background()

	log.Println("Starting test containers...")
	var err error
	testServer, err = testserver.New(ctx)
	if err != nil {
		log.Fatalf("Failed to create test server: %v", err)
	}

	code := m.Run()

	log.Println("Stopping test containers...")
	testServer.Cleanup(ctx)

	os.Exit(code)
}
