package ledger

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Sync codes are the clipboard form of a snapshot: the compact JSON export
// document, UTF-8 encoded, wrapped in standard base64. Base64 alone is not
// Unicode-safe on the producing side this format comes from, so the UTF-8
// step is part of the format: it is what lets notes and categories carry
// arbitrary text.
//
// An older encoder skipped the UTF-8 step and emitted base64 over the raw
// Latin-1 code units of the document. Those tokens still decode: when the
// base64 payload is not valid UTF-8, DecodeSyncCode reinterprets it as
// Latin-1 before giving up. The fallback is strictly "first decode failed",
// never a content heuristic.

// EncodeSyncCode serializes the selected scope of the store into a single
// copy-pasteable token.
func EncodeSyncCode(s Store, scope string) (string, error) {
	doc, err := buildDocument(s, scope, time.Now())
	if err != nil {
		return "", err
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encode sync code: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// DecodeSyncCode parses a sync code token into a snapshot, accepting both
// the current and the legacy encoding.
func DecodeSyncCode(code string) (*Snapshot, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(code))
	if err != nil {
		return nil, fmt.Errorf("%w: not base64: %v", ErrMalformedSnapshot, err)
	}
	if utf8.Valid(raw) {
		if snap, err := DecodeJSON(raw); err == nil {
			return snap, nil
		}
	}
	// Legacy path: the payload is the document's Latin-1 code units.
	text, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: undecodable payload: %v", ErrMalformedSnapshot, err)
	}
	snap, err := DecodeJSON(text)
	if err != nil {
		return nil, fmt.Errorf("%w: not a snapshot in either encoding", ErrMalformedSnapshot)
	}
	return snap, nil
}
