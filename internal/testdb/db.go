package testdb

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TestDB wraps a throwaway Mongo instance backed by a container.
type TestDB struct {
	Client    *mongo.Client
	DB        *mongo.Database
	Container testcontainers.Container
}

// Close disconnects the client and terminates the container.
func (td *TestDB) Close() error {
	ctx := context.Background()
	if td.Client != nil {
		_ = td.Client.Disconnect(ctx)
	}
	if td.Container != nil {
		return td.Container.Terminate(ctx)
	}
	return nil
}

// SetupTestDB starts a Mongo container and returns a database handle.
// Tests calling it should skip in short mode since it needs Docker.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor: wait.ForAll(
			wait.ForLog("Waiting for connections"),
			wait.ForListeningPort("27017/tcp"),
		),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "27017")
	require.NoError(t, err)

	uri := fmt.Sprintf("mongodb://%s:%s", host, port.Port())
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	require.NoError(t, client.Ping(ctx, nil))

	return &TestDB{
		Client:    client,
		DB:        client.Database("recipes_test"),
		Container: container,
	}
}
