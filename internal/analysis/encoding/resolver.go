// Package encoding turns uploaded transcript bytes into UTF-8 text.
package encoding

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Name identifies the encoding a transcript was decoded with.
type Name string

const (
	UTF8        Name = "utf-8"
	UTF8BOM     Name = "utf-8-bom"
	UTF16LE     Name = "utf-16le"
	UTF16BE     Name = "utf-16be"
	ShiftJIS    Name = "shift_jis"
	Windows1252 Name = "windows-1252"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Transcript is decoded text plus the encoding that produced it.
type Transcript struct {
	Text     string
	Encoding Name
}

// Decode resolves raw bytes to text. It never fails: strict UTF-8 first,
// then Shift-JIS, then Windows-1252, the last two with U+FFFD substitution.
func Decode(raw []byte) Transcript {
	switch {
	case bytes.HasPrefix(raw, bomUTF8) && utf8.Valid(raw[len(bomUTF8):]):
		return Transcript{Text: string(raw[len(bomUTF8):]), Encoding: UTF8BOM}
	case bytes.HasPrefix(raw, bomUTF16LE):
		return Transcript{Text: decodeWith(unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM), raw), Encoding: UTF16LE}
	case bytes.HasPrefix(raw, bomUTF16BE):
		return Transcript{Text: decodeWith(unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM), raw), Encoding: UTF16BE}
	case utf8.Valid(raw):
		return Transcript{Text: string(raw), Encoding: UTF8}
	}

	// BOM 后内容不是合法 UTF-8 时，回退解码前先去掉 BOM
	raw = bytes.TrimPrefix(raw, bomUTF8)

	sjis := decodeWith(japanese.ShiftJIS, raw)
	sjisLoss := strings.Count(sjis, string(utf8.RuneError))
	if sjisLoss == 0 {
		return Transcript{Text: sjis, Encoding: ShiftJIS}
	}

	western := decodeWith(charmap.Windows1252, raw)
	if strings.Count(western, string(utf8.RuneError)) < sjisLoss {
		return Transcript{Text: western, Encoding: Windows1252}
	}
	return Transcript{Text: sjis, Encoding: ShiftJIS}
}

func decodeWith(enc encoding.Encoding, raw []byte) string {
	// decoders substitute invalid input, so the only error left is a
	// truncated trailing sequence; keep what was decoded.
	out, _, _ := transform.Bytes(enc.NewDecoder(), raw)
	return strings.TrimPrefix(string(out), "\uFEFF")
}
