package mongo

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The driver does not dial until an operation runs, so handle plumbing
// is testable without a server.

func TestGateway_SharedConnection(t *testing.T) {
	ctx := context.Background()
	g := NewGateway("mongodb://localhost:27017", "chatbot_test")
	t.Cleanup(func() { _ = g.Close(ctx) })

	first, err := g.Database(ctx)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			db, err := g.Database(ctx)
			assert.NoError(t, err)
			assert.Same(t, first.Client(), db.Client())
		}()
	}
	wg.Wait()
}

func TestGateway_Collection(t *testing.T) {
	ctx := context.Background()
	g := NewGateway("mongodb://localhost:27017", "chatbot_test")
	t.Cleanup(func() { _ = g.Close(ctx) })

	coll, err := g.Collection(ctx, usersCollection)
	require.NoError(t, err)
	require.Equal(t, usersCollection, coll.Name())
	require.Equal(t, "chatbot_test", coll.Database().Name())
}

func TestGateway_CloseBeforeConnect(t *testing.T) {
	g := NewGateway("mongodb://localhost:27017", "chatbot_test")
	require.NoError(t, g.Close(context.Background()))
}
