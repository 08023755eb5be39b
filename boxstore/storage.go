// Copyright 2026 The PKHeX Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package boxstore addresses fixed-size record slots in a flat buffer
// made of nothing but concatenated stored records, grouped into boxes.
//
// Box b, slot s starts at
//
//	start + b*slotsPerBox*sizeStored + s*sizeStored
//
// There are no box names, no party and no checksums in this kind of
// storage.
package boxstore

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/dgryski/go-farm"

	"github.com/kang1806/PKHeX/internal/bitset"
	"github.com/kang1806/PKHeX/internal/bytesutil"
)

const (
	// DefaultSlotsPerBox is used unless WithSlotsPerBox says otherwise.
	DefaultSlotsPerBox = 30

	// NotApplicable is returned for addresses this storage does not have.
	NotApplicable = math.MinInt32
)

var (
	ErrSlotOutOfRange = errors.New("slot out of range")
)

// Option configures a Storage.
type Option func(*options)

type options struct {
	slotsPerBox int
	logger      *slog.Logger
}

// WithSlotsPerBox sets how many records each box holds.
func WithSlotsPerBox(n int) Option {
	return func(opts *options) {
		opts.slotsPerBox = n
	}
}

// WithLogger sets an optional logger.  If not provided, no logging
// output will be produced.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

// Storage is a flat buffer of stored records.  It owns data for its
// whole lifetime and is not safe for concurrent use.
type Storage struct {
	data        []byte
	bak         []byte
	start       int
	slotsPerBox int
	boxCount    int
	exportable  bool

	desc   Descriptor
	text   TextCodec
	logger *slog.Logger
}

// New wraps data, whose boxes start at offset start.  The storage
// takes ownership of data.  A backup copy is taken now and only
// refreshed by Snapshot.
func New(data []byte, desc Descriptor, text TextCodec, start int, opts ...Option) *Storage {
	o := options{
		slotsPerBox: DefaultSlotsPerBox,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.slotsPerBox <= 0 {
		o.slotsPerBox = DefaultSlotsPerBox
	}

	boxCount := 0
	if size := desc.SizeStored(); size > 0 && len(data) > start {
		slots := (len(data) - start) / size
		boxCount = slots / o.slotsPerBox
	}

	s := &Storage{
		data:        data,
		bak:         bytesutil.Clone(data),
		start:       start,
		slotsPerBox: o.slotsPerBox,
		boxCount:    boxCount,
		exportable:  !bytesutil.All(data, 0),
		desc:        desc,
		text:        text,
		logger:      o.logger,
	}
	s.logger.Debug("opened box storage",
		slog.Int("len", len(data)),
		slog.Int("start", start),
		slog.Int("slotsPerBox", s.slotsPerBox),
		slog.Int("boxCount", boxCount))
	return s
}

// Clone returns an independent Storage over a copy of the data.  The
// clone's backup is its own starting data.
func (s *Storage) Clone() *Storage {
	return New(bytesutil.Clone(s.data), s.desc, s.text, s.start,
		WithSlotsPerBox(s.slotsPerBox), WithLogger(s.logger))
}

func (s *Storage) Data() []byte           { return s.data }
func (s *Storage) Start() int             { return s.start }
func (s *Storage) SlotsPerBox() int       { return s.slotsPerBox }
func (s *Storage) BoxCount() int          { return s.boxCount }
func (s *Storage) SizeStored() int        { return s.desc.SizeStored() }
func (s *Storage) SizeParty() int         { return s.desc.SizeParty() }
func (s *Storage) Limits() Limits         { return s.desc.Limits() }
func (s *Storage) Generation() int        { return s.desc.Generation() }
func (s *Storage) Japanese() bool         { return s.desc.Japanese() }
func (s *Storage) BigEndian() bool        { return s.desc.BigEndian() }
func (s *Storage) Descriptor() Descriptor { return s.desc }
func (s *Storage) Extension() string      { return ".bin" }
func (s *Storage) Filter() string         { return "All Files|*.*" }

// Exportable reports whether the buffer held anything but zeros when
// the storage was created.
func (s *Storage) Exportable() bool { return s.exportable }

// BoxOffset is where box starts.  It does not check that box exists.
func (s *Storage) BoxOffset(box int) int {
	return s.start + box*(s.slotsPerBox*s.desc.SizeStored())
}

// SlotOffset is where slot of box starts.  It does not check bounds.
func (s *Storage) SlotOffset(box, slot int) int {
	return s.BoxOffset(box) + slot*s.desc.SizeStored()
}

// PartyOffset always returns NotApplicable.
func (s *Storage) PartyOffset(slot int) int {
	return NotApplicable
}

// BoxName is synthesized from the box number: "Box 01", "Box 02", ...
func (s *Storage) BoxName(box int) string {
	return fmt.Sprintf("Box %02d", box+1)
}

// SetBoxName does nothing; names are not stored.
func (s *Storage) SetBoxName(box int, name string) {}

// IsPresent reports whether a record appears to start at offset.
func (s *Storage) IsPresent(offset int) bool {
	return s.desc.IsPresent(s.data, offset)
}

// Decode builds a record from raw stored bytes.
func (s *Storage) Decode(data []byte) Record {
	return s.desc.Decode(data)
}

// Decrypt returns the raw bytes of data after a decode round trip.
// Stored records in this storage are never encrypted.
func (s *Storage) Decrypt(data []byte) []byte {
	return bytesutil.Clone(s.Decode(data).Data())
}

// Blank returns an empty record of the storage's format.
func (s *Storage) Blank() Record {
	return s.desc.Blank()
}

func (s *Storage) checkSlot(box, slot int) error {
	if box < 0 || box >= s.boxCount || slot < 0 || slot >= s.slotsPerBox {
		return fmt.Errorf("box %d slot %d (boxes %d, slots %d): %w",
			box, slot, s.boxCount, s.slotsPerBox, ErrSlotOutOfRange)
	}
	return nil
}

// ReadSlot decodes the record stored in slot of box.
func (s *Storage) ReadSlot(box, slot int) (Record, error) {
	if err := s.checkSlot(box, slot); err != nil {
		return nil, err
	}
	off := s.SlotOffset(box, slot)
	size := s.desc.SizeStored()
	return s.Decode(bytesutil.Clone(s.data[off : off+size])), nil
}

// WriteSlot stores rec's bytes in slot of box.  Bytes past the stored
// size are ignored; a short record leaves the tail of the slot zero.
func (s *Storage) WriteSlot(box, slot int, rec Record) error {
	if err := s.checkSlot(box, slot); err != nil {
		return err
	}
	off := s.SlotOffset(box, slot)
	dst := s.data[off : off+s.desc.SizeStored()]
	n := copy(dst, rec.Data())
	bytesutil.Fill(dst[n:], 0)
	return nil
}

// Occupancy returns one bit per slot, box-major, set where a record
// is present.
func (s *Storage) Occupancy() *bitset.Bitset {
	b := bitset.New(s.boxCount * s.slotsPerBox)
	for box := 0; box < s.boxCount; box++ {
		for slot := 0; slot < s.slotsPerBox; slot++ {
			if s.IsPresent(s.SlotOffset(box, slot)) {
				b.Set(box*s.slotsPerBox + slot)
			}
		}
	}
	return b
}

// ChecksumsValid is always true: there are no checksums to check.
func (s *Storage) ChecksumsValid() bool { return true }

func (s *Storage) ChecksumInfo() string { return "No Info." }

// SetChecksums does nothing.
func (s *Storage) SetChecksums() {}

// GetString decodes length bytes of text at offset.
func (s *Storage) GetString(offset, length int) string {
	return s.text.GetString(s.data, s.desc.Generation(), s.desc.Japanese(), s.desc.BigEndian(), length, offset)
}

// SetString encodes value for this storage's text format.
func (s *Storage) SetString(value string, maxLength, padTo int, padWith uint16) []byte {
	return s.text.SetString(value, s.desc.Generation(), s.desc.Japanese(), s.desc.BigEndian(), maxLength, padTo, padWith)
}

// Backup returns a copy of the snapshot taken at creation or by the
// last Snapshot.
func (s *Storage) Backup() []byte {
	return bytesutil.Clone(s.bak)
}

// Snapshot replaces the backup with the current data.
func (s *Storage) Snapshot() {
	s.bak = bytesutil.Clone(s.data)
}

// Changed reports whether data differs from the backup.
func (s *Storage) Changed() bool {
	return !bytes.Equal(s.data, s.bak)
}

// Rollback restores data from the backup in place.
func (s *Storage) Rollback() {
	copy(s.data, s.bak)
	s.logger.Debug("rolled back box storage", slog.String("fingerprint", s.BackupText()))
}

// BackupText is a short fingerprint of the box region, used to label
// backups.
func (s *Storage) BackupText() string {
	region := s.data
	if s.start >= 0 && s.start < len(region) {
		region = region[s.start:]
	} else {
		region = nil
	}
	return fmt.Sprintf("%08X", farm.Fingerprint32(region))
}
