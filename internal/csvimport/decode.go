package csvimport

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
)

// Decode converts raw uploaded bytes to a string, trying encodings in fixed
// priority order: UTF-8 (with or without BOM), UTF-16 with BOM, UTF-16LE,
// UTF-16BE, CP1252, Latin-1. The first encoding that yields clean text wins.
// As a last resort the bytes are force-decoded as UTF-8 with replacement
// characters, so decoding never hard-fails. The second return value names
// the encoding used.
func Decode(raw []byte) (string, string) {
	hasUTF16BOM := bytes.HasPrefix(raw, bomUTF16LE) || bytes.HasPrefix(raw, bomUTF16BE)

	if !hasUTF16BOM && utf8.Valid(raw) {
		return string(bytes.TrimPrefix(raw, bomUTF8)), "utf-8"
	}

	if hasUTF16BOM {
		if s, ok := tryDecode(unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), raw); ok {
			return s, "utf-16"
		}
	}

	// BOM-less UTF-16 shows up as interleaved NUL bytes for ASCII-range text.
	if len(raw)%2 == 0 && bytes.IndexByte(raw, 0x00) >= 0 {
		if s, ok := tryDecode(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), raw); ok {
			return s, "utf-16le"
		}
		if s, ok := tryDecode(unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), raw); ok {
			return s, "utf-16be"
		}
	}

	// CP1252 errors on the handful of undefined code points; Latin-1 maps
	// every byte, so the lossy fallback below is rarely reached.
	if s, ok := tryDecode(charmap.Windows1252, raw); ok {
		return s, "cp1252"
	}
	if s, ok := tryDecode(charmap.ISO8859_1, raw); ok {
		return s, "latin-1"
	}

	return string(bytes.ToValidUTF8(raw, []byte("�"))), "utf-8-lossy"
}

func tryDecode(enc encoding.Encoding, raw []byte) (string, bool) {
	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", false
	}
	// x/text substitutes U+FFFD instead of erroring on some malformed
	// input; treat that as a failed attempt too.
	if !utf8.Valid(decoded) || bytes.ContainsRune(decoded, utf8.RuneError) {
		return "", false
	}
	return string(decoded), true
}
