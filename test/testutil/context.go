package testutil

import (
	"context"
	"time"
)

// TestContext returns a context that bounds a test's database calls so a
// hung driver fails the test instead of the suite.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}
