package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*DiskStore, string) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	dir := filepath.Join(t.TempDir(), "images")
	store, err := NewDiskStore(dir, log)
	require.NoError(t, err)
	return store, dir
}

func TestDiskStore_Store(t *testing.T) {
	store, dir := newTestStore(t)

	ref, err := store.Store([]byte("png-bytes"), "image/png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "images/"))
	assert.True(t, strings.HasSuffix(ref, ".png"))

	data, err := os.ReadFile(filepath.Join(dir, filepath.Base(ref)))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestDiskStore_RejectsUnsupportedTypes(t *testing.T) {
	store, _ := newTestStore(t)

	for _, mime := range []string{"image/gif", "text/html", "application/pdf", ""} {
		_, err := store.Store([]byte("data"), mime)
		assert.ErrorIs(t, err, ErrUnsupportedType, "mime %q", mime)
	}
}

func TestDiskStore_ScheduleDelete(t *testing.T) {
	store, dir := newTestStore(t)

	ref, err := store.Store([]byte("jpeg-bytes"), "image/jpeg")
	require.NoError(t, err)

	path := filepath.Join(dir, filepath.Base(ref))
	require.FileExists(t, path)

	store.ScheduleDelete(ref)

	assert.Eventually(t, func() bool {
		_, err := os.Stat(path)
		return os.IsNotExist(err)
	}, time.Second, 10*time.Millisecond)
}

func TestDiskStore_ScheduleDeleteEmptyRef(t *testing.T) {
	store, _ := newTestStore(t)
	// Must not panic or spawn work for the zero value.
	store.ScheduleDelete("")
}

func TestDiskStore_ScheduleDeleteStaysInsideStore(t *testing.T) {
	store, dir := newTestStore(t)

	// A file next to the images dir, where a non-relative or
	// traversing ref would land.
	victim := filepath.Join(filepath.Dir(dir), "victim.txt")
	require.NoError(t, os.WriteFile(victim, []byte("keep me"), 0o644))

	for _, ref := range []string{
		"victim.txt",
		"../victim.txt",
		"images/../victim.txt",
		"images/../../victim.txt",
		"images",
	} {
		store.ScheduleDelete(ref)
	}

	assert.Never(t, func() bool {
		_, err := os.Stat(victim)
		return os.IsNotExist(err)
	}, 200*time.Millisecond, 10*time.Millisecond, "file outside the images dir was deleted")
	assert.DirExists(t, dir)
}
