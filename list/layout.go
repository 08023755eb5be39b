// Copyright 2026 The PKHeX Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package list

import "fmt"

const (
	// Terminator marks the first unused slot in the index table.
	Terminator = 0xFF
	// Marked flags a slot that holds an egg.
	Marked = 0xFD

	// BlankString fills unused OT name and nickname bytes.
	BlankString = 0x50

	// StringLengthJP and StringLengthUS are the fixed widths of a
	// single OT name or nickname for each locale.
	StringLengthJP = 6
	StringLengthUS = 11

	// count byte + terminator pad byte
	headerSize = 2
)

// Capacity is the number of slots a list holds.  It is fixed for the
// lifetime of a List.
type Capacity uint8

const (
	Single   Capacity = 1
	Party    Capacity = 6
	Stored   Capacity = 20
	StoredJP Capacity = 30
)

// IsPartyFormat reports whether records in a list of this capacity
// are kept in their larger party form.
func (c Capacity) IsPartyFormat() bool {
	return c == Single || c == Party
}

func (c Capacity) String() string {
	switch c {
	case Single:
		return "single"
	case Party:
		return "party"
	case Stored:
		return "stored"
	case StoredJP:
		return "stored-jp"
	}
	return fmt.Sprintf("Capacity(%d)", uint8(c))
}

// StringLength returns the width of one text field for the locale.
func StringLength(japanese bool) int {
	if japanese {
		return StringLengthJP
	}
	return StringLengthUS
}

// Layout is the offset arithmetic for one list shape.  All methods
// are pure; none of them check that i is in range.
type Layout struct {
	Capacity     int
	EntrySize    int
	StringLength int
}

// NewLayout returns the layout for a list of capacity c holding
// entries of entrySize bytes.
func NewLayout(c Capacity, entrySize int, japanese bool) Layout {
	return Layout{
		Capacity:     int(c),
		EntrySize:    entrySize,
		StringLength: StringLength(japanese),
	}
}

// DataSize is the exact byte length of a list buffer.
func DataSize(c Capacity, japanese bool, entrySize int) int {
	return NewLayout(c, entrySize, japanese).Size()
}

// Size is the exact byte length of a buffer with this layout.
func (l Layout) Size() int {
	return headerSize + l.Capacity*(l.EntrySize+1+2*l.StringLength)
}

func (l Layout) base() int {
	return headerSize + l.Capacity
}

// IndexOffset is the position of slot i in the index table.
func (l Layout) IndexOffset(i int) int {
	return 1 + i
}

// DataOffset is where the record bytes of slot i start.
func (l Layout) DataOffset(i int) int {
	return l.base() + l.EntrySize*i
}

// OTOffset is where the OT name of slot i starts.
func (l Layout) OTOffset(i int) int {
	return l.DataOffset(l.Capacity) + l.StringLength*i
}

// NicknameOffset is where the nickname of slot i starts.
func (l Layout) NicknameOffset(i int) int {
	return l.OTOffset(l.Capacity) + l.StringLength*i
}
