package wire

import (
	"golang.org/x/text/encoding/unicode"
)

// utf16LE keeps a leading U+FEFF as content; tab state text carries no BOM.
var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// DecodeUTF16LE decodes little-endian UTF-16. Unpaired surrogates decode to
// U+FFFD.
func DecodeUTF16LE(raw []byte) (string, error) {
	out, err := utf16LE.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// EncodeUTF16LE encodes s as little-endian UTF-16 and returns the bytes with
// the number of code units they hold.
func EncodeUTF16LE(s string) ([]byte, uint64, error) {
	out, err := utf16LE.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, 0, err
	}
	return out, uint64(len(out) / 2), nil
}
