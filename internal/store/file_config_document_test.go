package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/mailspring-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) (ConfigDocumentStorage, config.Mailspring) {
	t.Helper()
	cfg := config.Mailspring{HomeDir: t.TempDir(), AppName: "Mailspring"}
	return NewConfigDocumentStorage(cfg), cfg
}

func writeDocument(t *testing.T, dir, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLocate_NothingExists_ReturnsProdPath(t *testing.T) {
	s, cfg := newTestStorage(t)

	got := s.Locate(context.Background())

	assert.Equal(t, filepath.Join(cfg.ProdConfigDir(), ConfigFileName), got)
}

func TestLocate_OnlyProdExists(t *testing.T) {
	s, cfg := newTestStorage(t)
	prod := writeDocument(t, cfg.ProdConfigDir(), `{}`)

	assert.Equal(t, prod, s.Locate(context.Background()))
}

func TestLocate_DevPreferredOverProd(t *testing.T) {
	s, cfg := newTestStorage(t)
	writeDocument(t, cfg.ProdConfigDir(), `{"*": {"accounts": [1]}}`)
	dev := writeDocument(t, cfg.DevConfigDir(), `not even json`)

	assert.Equal(t, dev, s.Locate(context.Background()))
}

func TestLocate_DevDirWithoutFile_FallsBack(t *testing.T) {
	s, cfg := newTestStorage(t)
	require.NoError(t, os.MkdirAll(cfg.DevConfigDir(), 0o755))

	assert.Equal(t, filepath.Join(cfg.ProdConfigDir(), ConfigFileName), s.Locate(context.Background()))
}

func TestLocate_UnreadableDevDir_FallsBack(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
	s, cfg := newTestStorage(t)
	writeDocument(t, cfg.DevConfigDir(), `{}`)
	require.NoError(t, os.Chmod(cfg.DevConfigDir(), 0o000))
	t.Cleanup(func() { _ = os.Chmod(cfg.DevConfigDir(), 0o755) })

	assert.Equal(t, filepath.Join(cfg.ProdConfigDir(), ConfigFileName), s.Locate(context.Background()))
}

func TestExists(t *testing.T) {
	s, cfg := newTestStorage(t)
	ctx := context.Background()

	missing := filepath.Join(cfg.ProdConfigDir(), ConfigFileName)
	ok, err := s.Exists(ctx, missing)
	require.NoError(t, err)
	assert.False(t, ok)

	present := writeDocument(t, cfg.ProdConfigDir(), `{}`)
	ok, err = s.Exists(ctx, present)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestExists_ParentIsAFile(t *testing.T) {
	s, cfg := newTestStorage(t)
	blocker := filepath.Join(cfg.HomeDir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	ok, err := s.Exists(context.Background(), filepath.Join(blocker, ConfigFileName))

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoad(t *testing.T) {
	s, cfg := newTestStorage(t)
	path := writeDocument(t, cfg.ProdConfigDir(), `{"*": {"accounts": [{"email": "a@b.com"}]}}`)

	doc, err := s.Load(context.Background(), path)

	require.NoError(t, err)
	ns, ok := doc.Namespace(WildcardKey)
	require.True(t, ok)
	accounts, ok := ns.Field("accounts")
	require.True(t, ok)
	assert.JSONEq(t, `[{"email": "a@b.com"}]`, string(accounts))
}

func TestLoad_Malformed(t *testing.T) {
	s, cfg := newTestStorage(t)
	path := writeDocument(t, cfg.ProdConfigDir(), `{"*":`)

	_, err := s.Load(context.Background(), path)

	require.ErrorIs(t, err, ErrMalformedConfigDocument)
}

func TestLoad_Missing(t *testing.T) {
	s, cfg := newTestStorage(t)

	_, err := s.Load(context.Background(), filepath.Join(cfg.ProdConfigDir(), ConfigFileName))

	require.ErrorIs(t, err, ErrReadConfigDocument)
}

func TestLoad_PathIsDirectory(t *testing.T) {
	s, cfg := newTestStorage(t)
	dir := filepath.Join(cfg.ProdConfigDir(), ConfigFileName)
	require.NoError(t, os.MkdirAll(dir, 0o755))

	_, err := s.Load(context.Background(), dir)

	require.ErrorIs(t, err, ErrReadConfigDocument)
}
