package store

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ConfigFileName is the document the mail client keeps in its config
// directory.
const ConfigFileName = "config.json"

// WildcardKey namespaces account data in the config document independent of
// any specific account identifier.
const WildcardKey = "*"

// ConfigDocument is the top level of config.json. Values stay raw: only the
// wildcard namespace is ever interpreted. A document whose top level is not
// an object decodes to an empty ConfigDocument.
type ConfigDocument map[string]json.RawMessage

// ParseConfigDocument decodes data. Invalid JSON is reported with
// [ErrMalformedConfigDocument].
func ParseConfigDocument(data []byte) (ConfigDocument, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedConfigDocument, err)
	}

	if !bytes.HasPrefix(bytes.TrimSpace(raw), []byte("{")) {
		return ConfigDocument{}, nil
	}

	var doc ConfigDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedConfigDocument, err)
	}

	return doc, nil
}

// Namespace returns the object stored under key. ok is false when the key is
// absent, null, or holds something other than an object.
func (d ConfigDocument) Namespace(key string) (ns ConfigDocument, ok bool) {
	value, found := d[key]
	if !found {
		return nil, false
	}

	if err := json.Unmarshal(value, &ns); err != nil || ns == nil {
		return nil, false
	}

	return ns, true
}

// Field returns the raw value stored under key. ok is false when the key is
// absent or holds JSON null.
func (d ConfigDocument) Field(key string) (json.RawMessage, bool) {
	value, found := d[key]
	if !found || bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
		return nil, false
	}

	return value, true
}
