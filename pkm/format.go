// Copyright 2026 The PKHeX Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package pkm

import (
	"fmt"

	"github.com/kang1806/PKHeX/boxstore"
	"github.com/kang1806/PKHeX/list"
)

// Format describes stored Game Boy records for a boxstore.Storage.
type Format struct {
	generation int
	japanese   bool
	sizeStored int
	sizeParty  int
	limits     boxstore.Limits
}

var _ boxstore.Descriptor = Format{}

// NewFormat returns the format for generation 1 or 2.
func NewFormat(generation int, japanese bool) (Format, error) {
	f := Format{generation: generation, japanese: japanese}
	switch generation {
	case 1:
		f.sizeStored, f.sizeParty = SizeGen1Stored, SizeGen1Party
		f.limits = boxstore.Limits{MaxSpeciesID: 151, MaxMoveID: 165, MaxItemID: 255}
	case 2:
		f.sizeStored, f.sizeParty = SizeGen2Stored, SizeGen2Party
		f.limits = boxstore.Limits{MaxSpeciesID: 251, MaxMoveID: 251, MaxItemID: 255}
	default:
		return Format{}, fmt.Errorf("format for generation %d: %w", generation, ErrUnsupportedGeneration)
	}
	f.limits.MaxEV = 65535
	if japanese {
		f.limits.OTLength, f.limits.NickLength = 5, 5
	} else {
		f.limits.OTLength, f.limits.NickLength = 7, 10
	}
	return f, nil
}

func (f Format) SizeStored() int         { return f.sizeStored }
func (f Format) SizeParty() int          { return f.sizeParty }
func (f Format) Limits() boxstore.Limits { return f.limits }
func (f Format) Generation() int         { return f.generation }
func (f Format) Japanese() bool          { return f.japanese }
func (f Format) BigEndian() bool         { return false }

// IsPresent treats any non-zero species byte as a record.
func (f Format) IsPresent(data []byte, offset int) bool {
	return offset >= 0 && offset < len(data) && data[offset] != 0
}

// Decode copies the stored bytes of data into a new Entry.  Stored
// records carry no text, so the OT name and nickname are blank.
func (f Format) Decode(data []byte) boxstore.Record {
	e := NewBlankEntry(f.sizeStored, f.japanese)
	copy(e.data, data)
	return e
}

func (f Format) Blank() boxstore.Record {
	return NewBlankEntry(f.sizeStored, f.japanese)
}

// Kind returns the list kind matching this format.
func (f Format) Kind() list.Kind[*Entry] {
	// NewFormat only accepts generations KindFor knows
	kind, _ := KindFor(f.generation)
	return kind
}
