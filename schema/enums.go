package schema

import (
	"encoding/json"
	"fmt"
)

// Encoding is the text encoding the editor used to view a saved file.
// Codes outside the known set are kept as-is and report Known() == false.
type Encoding uint8

const (
	EncodingANSI    Encoding = 0x01
	EncodingUTF16LE Encoding = 0x02
	EncodingUTF16BE Encoding = 0x03
	EncodingUTF8BOM Encoding = 0x04
	EncodingUTF8    Encoding = 0x05
)

var encodingNames = map[Encoding]string{
	EncodingANSI:    "ANSI",
	EncodingUTF16LE: "UTF16LE",
	EncodingUTF16BE: "UTF16BE",
	EncodingUTF8BOM: "UTF8BOM",
	EncodingUTF8:    "UTF8",
}

// ResolveEncoding maps a raw byte to an Encoding. It never fails.
func ResolveEncoding(code byte) Encoding {
	return Encoding(code)
}

// Code returns the raw byte value.
func (e Encoding) Code() byte { return byte(e) }

// Known reports whether the code is one of the documented encodings.
func (e Encoding) Known() bool {
	_, ok := encodingNames[e]
	return ok
}

func (e Encoding) String() string {
	if name, ok := encodingNames[e]; ok {
		return name
	}
	return unknownLabel(byte(e))
}

// MarshalJSON renders known values as their name and unknown values as
// {"UNKNOWN": code}.
func (e Encoding) MarshalJSON() ([]byte, error) {
	if name, ok := encodingNames[e]; ok {
		return json.Marshal(name)
	}
	return marshalUnknown(byte(e))
}

// LineEnding is the line terminator style of a saved file.
type LineEnding uint8

const (
	LineEndingCRLF LineEnding = 0x01
	LineEndingCR   LineEnding = 0x02
	LineEndingLF   LineEnding = 0x03
)

var lineEndingNames = map[LineEnding]string{
	LineEndingCRLF: "CRLF",
	LineEndingCR:   "CR",
	LineEndingLF:   "LF",
}

// ResolveLineEnding maps a raw byte to a LineEnding. It never fails.
func ResolveLineEnding(code byte) LineEnding {
	return LineEnding(code)
}

// Code returns the raw byte value.
func (l LineEnding) Code() byte { return byte(l) }

// Known reports whether the code is one of the documented styles.
func (l LineEnding) Known() bool {
	_, ok := lineEndingNames[l]
	return ok
}

func (l LineEnding) String() string {
	if name, ok := lineEndingNames[l]; ok {
		return name
	}
	return unknownLabel(byte(l))
}

// MarshalJSON renders known values as their name and unknown values as
// {"UNKNOWN": code}.
func (l LineEnding) MarshalJSON() ([]byte, error) {
	if name, ok := lineEndingNames[l]; ok {
		return json.Marshal(name)
	}
	return marshalUnknown(byte(l))
}

func unknownLabel(code byte) string {
	return fmt.Sprintf("UNKNOWN(%d)", code)
}

func marshalUnknown(code byte) ([]byte, error) {
	return json.Marshal(map[string]uint8{"UNKNOWN": code})
}
