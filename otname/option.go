package otname

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// DecodeOption influences how name strings are turned into Go strings.
type DecodeOption func(*decodeConfig)

type decodeConfig struct {
	unicode bool
}

func newDecodeConfig(opts []DecodeOption) decodeConfig {
	var cfg decodeConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// LegacyDecoding is the default way of decoding strings:
//
// ▪︎ UTF-16 strings are read one code unit per character. Surrogate pairs are
// not combined; as Go strings cannot hold lone surrogates, every surrogate
// code unit turns into U+FFFD.
//
// ▪︎ Macintosh strings are read one byte per character, every byte being
// zero-extended (i.e., read as Latin-1, not as Mac Roman).
//
// This mirrors the behaviour of the font enumeration code in widespread use on
// Windows, and keeps alias names compatible with it.
func LegacyDecoding() DecodeOption {
	return func(cfg *decodeConfig) {
		cfg.unicode = false
	}
}

// UnicodeDecoding switches to proper decoding: UTF-16 surrogate pairs are
// combined into supplementary-plane characters, and Macintosh strings are
// mapped from Mac Roman.
func UnicodeDecoding() DecodeOption {
	return func(cfg *decodeConfig) {
		cfg.unicode = true
	}
}

// utf16 decodes big-endian UTF-16. A trailing odd byte is dropped.
func (cfg decodeConfig) utf16(b []byte) string {
	b = b[:len(b)&^1]
	if cfg.unicode {
		// unpaired surrogates are replaced by U+FFFD, the decoder does not fail
		s, _ := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder().Bytes(b)
		return string(s)
	}
	units := make([]rune, len(b)/2)
	for i := range units {
		units[i] = rune(u16(b[2*i:]))
	}
	return string(units)
}

func (cfg decodeConfig) singleByte(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		if cfg.unicode {
			sb.WriteRune(charmap.Macintosh.DecodeByte(c))
		} else {
			sb.WriteRune(rune(c))
		}
	}
	return sb.String()
}
