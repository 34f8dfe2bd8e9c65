package encoding

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/ebisa/contabil/internal/apperr"
)

type Decoded struct {
	Text     string
	Encoding string
}

type candidate struct {
	name   string
	decode func([]byte) (string, error)
}

// candidates are tried in order. ISO-8859-1 maps every byte, so in practice
// the chain always succeeds by the second step.
var candidates = []candidate{
	{name: "utf-8", decode: decodeUTF8},
	{name: "iso-8859-1", decode: decodeWith(charmap.ISO8859_1)},
	{name: "windows-1252", decode: decodeWith(charmap.Windows1252)},
}

// DecodeResilient returns the first successful decode of b.
func DecodeResilient(b []byte) (Decoded, error) {
	for _, c := range candidates {
		text, err := c.decode(b)
		if err != nil {
			continue
		}

		return Decoded{Text: text, Encoding: c.name}, nil
	}

	return Decoded{}, apperr.ErrDecode
}

func decodeUTF8(b []byte) (string, error) {
	b = bytes.TrimPrefix(b, bomUTF8)
	if !utf8.Valid(b) {
		return "", fmt.Errorf("invalid utf-8")
	}

	return string(b), nil
}

func decodeWith(enc encoding.Encoding) func([]byte) (string, error) {
	return func(b []byte) (string, error) {
		out, err := enc.NewDecoder().Bytes(b)
		if err != nil {
			return "", err
		}

		return string(out), nil
	}
}
