// Copyright 2026 The PKHeX Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package boxstore

// Record is a decoded stored record.  Data returns its raw stored bytes.
type Record interface {
	Data() []byte
}

// Limits are the numeric ceilings of a record format.
type Limits struct {
	MaxEV        int
	MaxMoveID    int
	MaxSpeciesID int
	MaxAbilityID int
	MaxItemID    int
	MaxBallID    int
	MaxGameID    int
	OTLength     int
	NickLength   int
}

// Descriptor describes the record format kept in a Storage.
type Descriptor interface {
	SizeStored() int
	SizeParty() int
	Limits() Limits
	Generation() int
	Japanese() bool
	BigEndian() bool

	// IsPresent reports whether a record appears to start at offset in data.
	IsPresent(data []byte, offset int) bool
	// Decode builds a record from its stored bytes.
	Decode(data []byte) Record
	// Blank returns an empty record.
	Blank() Record
}

// TextCodec converts between raw text bytes and strings.
type TextCodec interface {
	GetString(data []byte, generation int, japanese, bigEndian bool, length, offset int) string
	SetString(value string, generation int, japanese, bigEndian bool, maxLength, padTo int, padWith uint16) []byte
}
