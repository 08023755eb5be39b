// Copyright 2026 The PKHeX Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package pkm

import (
	"encoding/binary"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"

	"github.com/kang1806/PKHeX/boxstore"
)

const (
	gbTerminator = 0x50
	gbSpace      = 0x7F
)

// Text converts record text.  Generations 1 and 2 use the Game Boy
// character set (Latin letters, digits and common punctuation; kana
// are not mapped).  Generation 5 and later use UTF-16.  Other
// generations decode to "" and encode to nil.
type Text struct{}

var _ boxstore.TextCodec = Text{}

var gbRunes, runeGB = gbTables()

func gbTables() (map[byte]rune, map[rune]byte) {
	toRune := map[byte]rune{
		gbSpace: ' ',
		0x9A:    '(',
		0x9B:    ')',
		0x9C:    ':',
		0x9D:    ';',
		0x9E:    '[',
		0x9F:    ']',
		0xE3:    '-',
		0xE6:    '?',
		0xE7:    '!',
		0xE8:    '.',
		0xEF:    '♂',
		0xF3:    '/',
		0xF4:    ',',
		0xF5:    '♀',
	}
	for i := 0; i < 26; i++ {
		toRune[byte(0x80+i)] = rune('A' + i)
		toRune[byte(0xA0+i)] = rune('a' + i)
	}
	for i := 0; i < 10; i++ {
		toRune[byte(0xF6+i)] = rune('0' + i)
	}

	toByte := make(map[rune]byte, len(toRune))
	for b, r := range toRune {
		toByte[r] = b
	}
	return toRune, toByte
}

func utf16Encoding(bigEndian bool) encoding.Encoding {
	if bigEndian {
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	}
	return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
}

type endian interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

func byteOrder(bigEndian bool) endian {
	if bigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// GetString decodes at most length bytes of data starting at offset,
// stopping at the format's terminator.
func (Text) GetString(data []byte, generation int, japanese, bigEndian bool, length, offset int) string {
	if offset < 0 || length <= 0 || offset >= len(data) {
		return ""
	}
	raw := data[offset:min(offset+length, len(data))]

	switch {
	case generation == 1 || generation == 2:
		return decodeGB(raw)
	case generation >= 5:
		return decodeUTF16(raw, bigEndian)
	}
	return ""
}

// SetString encodes at most maxLength characters of value followed by
// a terminator, then pads the result to padTo characters with padWith.
func (Text) SetString(value string, generation int, japanese, bigEndian bool, maxLength, padTo int, padWith uint16) []byte {
	runes := []rune(value)
	if maxLength >= 0 && len(runes) > maxLength {
		runes = runes[:maxLength]
	}

	switch {
	case generation == 1 || generation == 2:
		return encodeGB(runes, padTo, byte(padWith))
	case generation >= 5:
		terminator := uint16(0)
		if generation == 5 {
			terminator = 0xFFFF
		}
		return encodeUTF16(runes, bigEndian, terminator, padTo, padWith)
	}
	return nil
}

func decodeGB(raw []byte) string {
	out := make([]rune, 0, len(raw))
	for _, b := range raw {
		if b == gbTerminator {
			break
		}
		if r, ok := gbRunes[b]; ok {
			out = append(out, r)
		}
	}
	return string(out)
}

func encodeGB(runes []rune, padTo int, padWith byte) []byte {
	out := make([]byte, 0, max(len(runes)+1, padTo))
	for _, r := range runes {
		if b, ok := runeGB[r]; ok {
			out = append(out, b)
		}
	}
	out = append(out, gbTerminator)
	for len(out) < padTo {
		out = append(out, padWith)
	}
	return out
}

func decodeUTF16(raw []byte, bigEndian bool) string {
	order := byteOrder(bigEndian)
	n := 0
	for ; n+1 < len(raw); n += 2 {
		u := order.Uint16(raw[n:])
		if u == 0 || u == 0xFFFF {
			break
		}
	}
	out, err := utf16Encoding(bigEndian).NewDecoder().Bytes(raw[:n])
	if err != nil {
		return ""
	}
	return string(out)
}

func encodeUTF16(runes []rune, bigEndian bool, terminator uint16, padTo int, padWith uint16) []byte {
	out, err := utf16Encoding(bigEndian).NewEncoder().Bytes([]byte(string(runes)))
	if err != nil {
		return nil
	}
	order := byteOrder(bigEndian)
	out = order.AppendUint16(out, terminator)
	for len(out)/2 < padTo {
		out = order.AppendUint16(out, padWith)
	}
	return out
}
