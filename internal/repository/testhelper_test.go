package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TestDB is a containerized MongoDB shared by the tests of one suite.
type TestDB struct {
	Container *mongodb.MongoDBContainer
	Client    *mongo.Client
	Database  *mongo.Database
}

// SetupTestDB starts a MongoDB container and connects to a uniquely named
// database so parallel suites never collide.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	container, err := mongodb.Run(ctx, "mongo:7.0")
	require.NoError(t, err, "failed to start MongoDB container")

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err, "failed to get connection string")

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err, "failed to connect to MongoDB")

	require.NoError(t, client.Ping(ctx, nil), "failed to ping MongoDB")

	dbName := fmt.Sprintf("carkeep_test_%d", time.Now().UnixNano())

	return &TestDB{
		Container: container,
		Client:    client,
		Database:  client.Database(dbName),
	}
}

// Cleanup drops the database and tears the container down.
func (tdb *TestDB) Cleanup(t *testing.T) {
	t.Helper()

	ctx := context.Background()

	if tdb.Database != nil {
		_ = tdb.Database.Drop(ctx)
	}
	if tdb.Client != nil {
		_ = tdb.Client.Disconnect(ctx)
	}
	if tdb.Container != nil {
		_ = tdb.Container.Terminate(ctx)
	}
}

// ClearCollection empties one collection between subtests.
func (tdb *TestDB) ClearCollection(t *testing.T, name string) {
	t.Helper()

	_, err := tdb.Database.Collection(name).DeleteMany(context.Background(), bson.M{})
	require.NoError(t, err, "failed to clear collection %s", name)
}
