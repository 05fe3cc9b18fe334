package storage

import (
	"testing"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDBGetSet(t *testing.T) {
	db, err := Open(Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Get("missing")
	assert.ErrorIs(t, err, badger.ErrKeyNotFound)

	require.NoError(t, db.Set("blob", []byte("payload")))
	got, err := db.Get("blob")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)

	// Overwrite replaces, never appends
	require.NoError(t, db.Set("blob", []byte("v2")))
	got, err = db.Get("blob")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)
}
