package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ConfigDocumentStorage gives read-only access to the mail client's
// config.json. The file is owned by the mail client; nothing here writes it.
type ConfigDocumentStorage interface {
	// Locate returns the path of config.json inside the development config
	// directory if that file exists, otherwise the production path. The
	// production path is returned without checking that it exists.
	Locate(ctx context.Context) string

	// Exists reports whether a file exists at path. A missing file (or a
	// missing parent directory) is (false, nil); any other stat failure is
	// returned wrapped in [ErrStatConfigDocument].
	Exists(ctx context.Context, path string) (bool, error)

	// Load reads and parses the document at path.
	Load(ctx context.Context, path string) (ConfigDocument, error)
}
