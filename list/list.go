// Copyright 2026 The PKHeX Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package list

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/kang1806/PKHeX/internal/bytesutil"
)

var (
	ErrIndexOutOfRange = errors.New("index out of bounds")
)

// Record is the in-memory form of one list entry.  The zero value of
// T (a nil pointer, usually) means "no record".
type Record[T any] interface {
	comparable
	// IsEmpty reports whether the record's species is 0.  The first
	// empty record ends the active run when serializing.
	IsEmpty() bool
	Clone() T
	Data() []byte
	OTTrash() []byte
	NicknameTrash() []byte
}

// Kind supplies the per-format rules a List needs for its records.
type Kind[T any] interface {
	// EntrySize is the byte width of one record in a list of capacity c.
	EntrySize(c Capacity) int
	// Identifier is the index table byte written for rec.
	Identifier(rec T) byte
	// Decode builds a record from copies of its three raw columns.
	Decode(data, otName, nickname []byte, marked bool) T
}

// Option configures a List.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets an optional logger used to report buffers that had
// to be resized.  If not provided, no logging output will be produced.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

// List is a fixed-capacity list of records backed by a columnar buffer.
type List[T Record[T]] struct {
	kind     Kind[T]
	layout   Layout
	capacity Capacity
	japanese bool

	// encoded is only rewritten by Serialize (and SetCount, which
	// owns byte 0).  records always has exactly capacity entries.
	encoded []byte
	records []T
}

// New decodes buf into a list of capacity c.  A nil buf starts from a
// blank list with a count of 1.  A buf of the wrong length is copied
// and truncated or zero-padded to the expected length; buf itself is
// never retained or modified.
func New[T Record[T]](kind Kind[T], buf []byte, c Capacity, japanese bool, opts ...Option) *List[T] {
	var o options
	o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	for _, opt := range opts {
		opt(&o)
	}

	layout := NewLayout(c, kind.EntrySize(c), japanese)
	size := layout.Size()

	fresh := buf == nil
	if fresh {
		buf = blank(layout)
	} else {
		if len(buf) != size {
			o.logger.Debug("resizing list buffer",
				slog.String("capacity", c.String()),
				slog.Int("have", len(buf)),
				slog.Int("want", size))
		}
		buf = bytesutil.Resize(buf, size)
	}

	l := &List[T]{
		kind:     kind,
		layout:   layout,
		capacity: c,
		japanese: japanese,
		encoded:  buf,
		records:  decode(layout, kind, buf),
	}
	if fresh {
		l.SetCount(1)
	}
	return l
}

// NewEmpty returns a blank list of capacity c.
func NewEmpty[T Record[T]](kind Kind[T], c Capacity, japanese bool, opts ...Option) *List[T] {
	return New(kind, nil, c, japanese, opts...)
}

// NewSingle returns a one-slot list holding a copy of rec.
func NewSingle[T Record[T]](kind Kind[T], rec T, japanese bool, opts ...Option) *List[T] {
	l := NewEmpty(kind, Single, japanese, opts...)
	// slot 0 always exists in a Single list
	_ = l.Set(0, rec)
	l.SetCount(1)
	return l
}

// blank returns a buffer for an empty list: no active slots, every
// index byte (and the pad byte) set to the terminator, zeroed record
// data and blank text.
func blank(layout Layout) []byte {
	buf := make([]byte, layout.Size())
	bytesutil.Fill(buf[layout.IndexOffset(0):layout.DataOffset(0)], Terminator)
	bytesutil.Fill(buf[layout.OTOffset(0):], BlankString)
	return buf
}

func decode[T any](layout Layout, kind Kind[T], buf []byte) []T {
	records := make([]T, layout.Capacity)
	for i := range records {
		dataOff := layout.DataOffset(i)
		otOff := layout.OTOffset(i)
		nickOff := layout.NicknameOffset(i)

		data := bytesutil.Clone(buf[dataOff : dataOff+layout.EntrySize])
		ot := bytesutil.Clone(buf[otOff : otOff+layout.StringLength])
		nick := bytesutil.Clone(buf[nickOff : nickOff+layout.StringLength])

		records[i] = kind.Decode(data, ot, nick, buf[layout.IndexOffset(i)] == Marked)
	}
	return records
}

// encode is the pure mapping from a previous buffer and the decoded
// records to a new buffer.  Index bytes past the terminator keep
// whatever prev held there.
func encode[T Record[T]](layout Layout, kind Kind[T], records []T, prev []byte) []byte {
	buf := bytesutil.Resize(prev, layout.Size())

	count := activeCount(records)
	buf[0] = byte(count)
	for i := 0; i < count; i++ {
		rec := records[i]
		buf[layout.IndexOffset(i)] = kind.Identifier(rec)
		writeField(buf, layout.DataOffset(i), layout.EntrySize, rec.Data())
		writeField(buf, layout.OTOffset(i), layout.StringLength, rec.OTTrash())
		writeField(buf, layout.NicknameOffset(i), layout.StringLength, rec.NicknameTrash())
	}
	// when count == capacity this lands on the pad byte
	buf[layout.IndexOffset(count)] = Terminator

	return buf
}

// activeCount is the index of the first empty record, or len(records)
// when every slot is occupied.
func activeCount[T Record[T]](records []T) int {
	var none T
	for i, rec := range records {
		if rec == none || rec.IsEmpty() {
			return i
		}
	}
	return len(records)
}

// writeField copies src into the width-byte window at off, zeroing
// any part of the window src does not cover.
func writeField(buf []byte, off, width int, src []byte) {
	dst := buf[off : off+width]
	n := copy(dst, src)
	bytesutil.Fill(dst[n:], 0)
}

func (l *List[T]) checkIndex(i int) error {
	if i < 0 || i >= int(l.capacity) {
		return fmt.Errorf("list access %d (capacity %d): %w", i, l.capacity, ErrIndexOutOfRange)
	}
	return nil
}

// Get returns the decoded record in slot i.
func (l *List[T]) Get(i int) (T, error) {
	if err := l.checkIndex(i); err != nil {
		var none T
		return none, err
	}
	return l.records[i], nil
}

// Set stores a copy of rec in slot i.  The encoded buffer is not
// touched until Serialize.  A zero rec is ignored.
func (l *List[T]) Set(i int, rec T) error {
	var none T
	if rec == none {
		return nil
	}
	if err := l.checkIndex(i); err != nil {
		return err
	}
	l.records[i] = rec.Clone()
	return nil
}

// Serialize rewrites the encoded buffer from the decoded records and
// returns a copy of it.
func (l *List[T]) Serialize() []byte {
	l.encoded = encode(l.layout, l.kind, l.records, l.encoded)
	return l.Bytes()
}

// Bytes returns a copy of the encoded buffer as of the last Serialize.
func (l *List[T]) Bytes() []byte {
	return bytesutil.Clone(l.encoded)
}

// Count is the number of active slots recorded in the encoded buffer.
func (l *List[T]) Count() int {
	return int(min(l.encoded[0], byte(l.capacity)))
}

// SetCount stores n as the active slot count, clamped to the capacity.
func (l *List[T]) SetCount(n int) {
	if n < 0 {
		n = 0
	}
	l.encoded[0] = byte(min(n, int(l.capacity)))
}

// Records returns copies of every slot, active or not.
func (l *List[T]) Records() []T {
	var none T
	out := make([]T, len(l.records))
	for i, rec := range l.records {
		if rec != none {
			out[i] = rec.Clone()
		}
	}
	return out
}

func (l *List[T]) Capacity() Capacity {
	return l.capacity
}

func (l *List[T]) Japanese() bool {
	return l.japanese
}

func (l *List[T]) Layout() Layout {
	return l.layout
}
