package schema

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// HexString renders raw bytes as upper-case hex.
func HexString(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

// ParseHex decodes a hex string that must describe exactly size bytes.
func ParseHex(value string, size int) ([]byte, error) {
	raw, err := hex.DecodeString(strings.TrimSpace(value))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	if len(raw) != size {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidHex, len(raw), size)
	}
	return raw, nil
}
