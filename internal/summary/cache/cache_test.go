package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "Backend_JD_Jane_Doe", Key("Backend JD", "Jane Doe"))
	assert.Equal(t, "a_b_c", Key("a/b", "c"))
}

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "summaries")
	store := NewFileStore(dir)

	_, err := store.Get(ctx, "jd", "Jane Doe")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Put(ctx, "jd", "Jane Doe", "• Go"))

	assert.Equal(t, filepath.Join(dir, "jd_Jane_Doe.txt"), store.Path("jd", "Jane Doe"))
	got, err := store.Get(ctx, "jd", "Jane Doe")
	require.NoError(t, err)
	assert.Equal(t, "• Go", got)

	require.NoError(t, store.Clear(ctx))
	_, err = store.Get(ctx, "jd", "Jane Doe")
	require.ErrorIs(t, err, ErrNotFound)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestFileStoreAcceptsForeignFiles(t *testing.T) {
	ctx := context.Background()
	store := NewFileStore(t.TempDir())
	require.NoError(t, os.WriteFile(store.Path("jd", "r"), []byte("written elsewhere"), 0o644))

	got, err := store.Get(ctx, "jd", "r")
	require.NoError(t, err)
	assert.Equal(t, "written elsewhere", got)
}

func TestFileStoreDefaultDir(t *testing.T) {
	assert.Equal(t, DefaultDir, NewFileStore(" ").Dir())
}

// TestRedisStore runs against a live server when REDIS_ADDR is set.
func TestRedisStore(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR is not set")
	}

	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	store, err := NewRedisStore(ctx, client, "resume-matcher-test:")
	require.NoError(t, err)
	require.NoError(t, store.Clear(ctx))

	_, err = store.Get(ctx, "jd", "Jane Doe")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Put(ctx, "jd", "Jane Doe", "summary"))
	got, err := store.Get(ctx, "jd", "Jane Doe")
	require.NoError(t, err)
	assert.Equal(t, "summary", got)

	require.NoError(t, store.Clear(ctx))
	_, err = store.Get(ctx, "jd", "Jane Doe")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestNewRedisStoreRequiresClient(t *testing.T) {
	_, err := NewRedisStore(context.Background(), nil, "")
	assert.Error(t, err)
}
