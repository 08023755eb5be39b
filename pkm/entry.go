// Copyright 2026 The PKHeX Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package pkm provides the Game Boy era record kinds and formats used
// with the list and boxstore packages.  Records are kept as raw bytes;
// only the species byte at offset 0 is interpreted.
package pkm

import (
	"github.com/kang1806/PKHeX/internal/bytesutil"
	"github.com/kang1806/PKHeX/list"
)

// Entry is one raw record together with its OT name and nickname
// bytes, as they are laid out in a list.
type Entry struct {
	data     []byte
	ot       []byte
	nick     []byte
	Egg      bool
	Japanese bool
}

// NewEntry takes ownership of data, ot and nick.
func NewEntry(data, ot, nick []byte, japanese bool) *Entry {
	return &Entry{
		data:     data,
		ot:       ot,
		nick:     nick,
		Japanese: japanese,
	}
}

// NewBlankEntry returns an empty record of size bytes with blank text.
func NewBlankEntry(size int, japanese bool) *Entry {
	strLen := list.StringLength(japanese)
	return NewEntry(
		make([]byte, size),
		bytesutil.Repeat(list.BlankString, strLen),
		bytesutil.Repeat(list.BlankString, strLen),
		japanese)
}

// Species is the raw species byte.
func (e *Entry) Species() byte {
	if len(e.data) == 0 {
		return 0
	}
	return e.data[0]
}

// SetSpecies overwrites the raw species byte.
func (e *Entry) SetSpecies(species byte) {
	if len(e.data) > 0 {
		e.data[0] = species
	}
}

func (e *Entry) IsEmpty() bool         { return e.Species() == 0 }
func (e *Entry) Data() []byte          { return e.data }
func (e *Entry) OTTrash() []byte       { return e.ot }
func (e *Entry) NicknameTrash() []byte { return e.nick }

func (e *Entry) Clone() *Entry {
	return &Entry{
		data:     bytesutil.Clone(e.data),
		ot:       bytesutil.Clone(e.ot),
		nick:     bytesutil.Clone(e.nick),
		Egg:      e.Egg,
		Japanese: e.Japanese,
	}
}

func (e *Entry) OTName() string {
	return Text{}.GetString(e.ot, 1, e.Japanese, false, len(e.ot), 0)
}

func (e *Entry) Nickname() string {
	return Text{}.GetString(e.nick, 1, e.Japanese, false, len(e.nick), 0)
}

// SetOTName encodes name into the OT bytes, keeping their width.
func (e *Entry) SetOTName(name string) {
	e.ot = setTrash(name, e.ot, e.Japanese)
}

// SetNickname encodes name into the nickname bytes, keeping their width.
func (e *Entry) SetNickname(name string) {
	e.nick = setTrash(name, e.nick, e.Japanese)
}

func setTrash(name string, trash []byte, japanese bool) []byte {
	width := len(trash)
	// one byte is always left for the terminator
	return Text{}.SetString(name, 1, japanese, false, width-1, width, list.BlankString)
}
