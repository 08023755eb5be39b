// Copyright 2026 The PKHeX Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package pkm

import (
	"errors"
	"fmt"

	"github.com/kang1806/PKHeX/list"
)

const (
	SizeGen1Party  = 44
	SizeGen1Stored = 33
	SizeGen2Party  = 48
	SizeGen2Stored = 32
)

var (
	ErrUnsupportedGeneration = errors.New("unsupported generation")
)

// Gen1 lists store the internal species index as the identifier and
// have no eggs.
type Gen1 struct{}

func (Gen1) EntrySize(c list.Capacity) int {
	if c.IsPartyFormat() {
		return SizeGen1Party
	}
	return SizeGen1Stored
}

func (Gen1) Identifier(e *Entry) byte {
	return e.Species()
}

func (Gen1) Decode(data, otName, nickname []byte, marked bool) *Entry {
	return NewEntry(data, otName, nickname, len(otName) == list.StringLengthJP)
}

// Gen2 lists store the species as the identifier, or the marker byte
// for eggs.
type Gen2 struct{}

func (Gen2) EntrySize(c list.Capacity) int {
	if c.IsPartyFormat() {
		return SizeGen2Party
	}
	return SizeGen2Stored
}

func (Gen2) Identifier(e *Entry) byte {
	if e.Egg {
		return list.Marked
	}
	return e.Species()
}

func (Gen2) Decode(data, otName, nickname []byte, marked bool) *Entry {
	e := NewEntry(data, otName, nickname, len(otName) == list.StringLengthJP)
	e.Egg = marked
	return e
}

// KindFor returns the list kind for a Game Boy generation.
func KindFor(generation int) (list.Kind[*Entry], error) {
	switch generation {
	case 1:
		return Gen1{}, nil
	case 2:
		return Gen2{}, nil
	}
	return nil, fmt.Errorf("list kind for generation %d: %w", generation, ErrUnsupportedGeneration)
}
