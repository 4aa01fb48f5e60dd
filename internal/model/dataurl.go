package model

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// EncodeDataURL wraps raw file bytes into a self-describing data: URL,
// e.g. "data:image/png;base64,iVBOR...".
func EncodeDataURL(mimeType string, raw []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(raw)
}

// DecodeDataURL reverses EncodeDataURL, returning the MIME type and the raw
// bytes.
func DecodeDataURL(s string) (string, []byte, error) {
	if !strings.HasPrefix(s, "data:") {
		return "", nil, fmt.Errorf("not a data URL")
	}
	rest := strings.TrimPrefix(s, "data:")
	meta, payload, found := strings.Cut(rest, ",")
	if !found {
		return "", nil, fmt.Errorf("malformed data URL: no payload separator")
	}
	mimeType, enc, _ := strings.Cut(meta, ";")
	if enc != "base64" {
		return "", nil, fmt.Errorf("unsupported data URL encoding %q", enc)
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decode data URL payload: %w", err)
	}
	return mimeType, raw, nil
}
