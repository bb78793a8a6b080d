package rtf2html

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Code pages commonly found in RTF output, keyed by lower case name.
var charsets = map[string]encoding.Encoding{
	"windows-1250": charmap.Windows1250,
	"windows-1251": charmap.Windows1251,
	"windows-1252": charmap.Windows1252,
	"windows-1253": charmap.Windows1253,
	"windows-1254": charmap.Windows1254,
	"windows-1255": charmap.Windows1255,
	"windows-1256": charmap.Windows1256,
	"windows-1257": charmap.Windows1257,
	"windows-1258": charmap.Windows1258,
	"macintosh":    charmap.Macintosh,
	"iso-8859-1":   charmap.ISO8859_1,
	"iso-8859-2":   charmap.ISO8859_2,
	"iso-8859-6":   charmap.ISO8859_6,
	"iso-8859-15":  charmap.ISO8859_15,
	"cp437":        charmap.CodePage437,
	"cp850":        charmap.CodePage850,
	"cp852":        charmap.CodePage852,
	"cp860":        charmap.CodePage860,
	"cp862":        charmap.CodePage862,
	"cp866":        charmap.CodePage866,
	"koi8-r":       charmap.KOI8R,
}

// DecodeCharset returns a reader converting r from the named code page to
// UTF-8. An empty name, "utf-8" and "utf8" return r unchanged.
func DecodeCharset(name string, r io.Reader) (io.Reader, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "", "utf-8", "utf8":
		return r, nil
	}
	if strings.HasPrefix(name, "ansicpg") {
		name = "windows-" + strings.TrimPrefix(name, "ansicpg")
	}
	enc, ok := charsets[name]
	if !ok {
		return nil, fmt.Errorf("rtf2html: unsupported charset %q", name)
	}
	return enc.NewDecoder().Reader(r), nil
}
