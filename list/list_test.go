// Copyright 2026 The PKHeX Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package list

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kang1806/PKHeX/internal/bytesutil"
)

type testRecord struct {
	data []byte
	ot   []byte
	nick []byte
	egg  bool
}

func (r *testRecord) IsEmpty() bool         { return r.data[0] == 0 }
func (r *testRecord) Data() []byte          { return r.data }
func (r *testRecord) OTTrash() []byte       { return r.ot }
func (r *testRecord) NicknameTrash() []byte { return r.nick }

func (r *testRecord) Clone() *testRecord {
	return &testRecord{
		data: bytes.Clone(r.data),
		ot:   bytes.Clone(r.ot),
		nick: bytes.Clone(r.nick),
		egg:  r.egg,
	}
}

// testKind remaps species so identifiers differ from the raw data byte.
type testKind struct{}

func (testKind) EntrySize(c Capacity) int {
	if c.IsPartyFormat() {
		return 44
	}
	return 33
}

func (testKind) Identifier(r *testRecord) byte {
	if r.egg {
		return Marked
	}
	return r.data[0] + 100
}

func (testKind) Decode(data, otName, nickname []byte, marked bool) *testRecord {
	return &testRecord{data: data, ot: otName, nick: nickname, egg: marked}
}

func newTestRecord(c Capacity, japanese bool, species byte, name string) *testRecord {
	strLen := StringLength(japanese)
	r := &testRecord{
		data: make([]byte, testKind{}.EntrySize(c)),
		ot:   bytesutil.Repeat(BlankString, strLen),
		nick: bytesutil.Repeat(BlankString, strLen),
	}
	r.data[0] = species
	r.data[1] = species ^ 0x5A
	copy(r.ot, "OT")
	copy(r.nick, name)
	return r
}

func TestList_FreshBuffer(t *testing.T) {
	for _, c := range []Capacity{Single, Party, Stored} {
		for _, japanese := range []bool{false, true} {
			l := NewEmpty[*testRecord](testKind{}, c, japanese)
			layout := l.Layout()
			buf := l.Bytes()

			expectedLen := 2 + int(c)*(testKind{}.EntrySize(c)+1+2*StringLength(japanese))
			require.Equal(t, expectedLen, len(buf), "capacity %s japanese %t", c, japanese)

			require.Equal(t, 1, l.Count())
			require.Equal(t, byte(1), buf[0])
			require.True(t, bytesutil.All(buf[1:layout.DataOffset(0)], Terminator))
			require.True(t, bytesutil.All(buf[layout.DataOffset(0):layout.OTOffset(0)], 0))
			require.True(t, bytesutil.All(buf[layout.OTOffset(0):], BlankString))

			require.Len(t, l.Records(), int(c))
		}
	}
}

func TestList_NilBufferMatchesNewEmpty(t *testing.T) {
	a := New[*testRecord](testKind{}, nil, Party, false)
	b := NewEmpty[*testRecord](testKind{}, Party, false)
	require.Equal(t, a.Bytes(), b.Bytes())
	require.Equal(t, 1, a.Count())
}

func TestList_Resize(t *testing.T) {
	size := DataSize(Party, false, 44)
	full := make([]byte, size)
	for i := range full {
		full[i] = byte(i%251) + 1
	}

	t.Run("shorter input is zero padded", func(t *testing.T) {
		short := bytes.Clone(full[:size-10])
		l := New[*testRecord](testKind{}, short, Party, false)
		buf := l.Bytes()

		require.Equal(t, size, len(buf))
		require.Equal(t, full[:size-10], buf[:size-10])
		require.Equal(t, make([]byte, 10), buf[size-10:])
		// the caller's buffer is untouched
		require.Equal(t, size-10, len(short))
	})

	t.Run("longer input is truncated", func(t *testing.T) {
		long := append(bytes.Clone(full), 0xAA, 0xBB, 0xCC)
		l := New[*testRecord](testKind{}, long, Party, false)
		require.Equal(t, full, l.Bytes())
	})

	t.Run("exact input is copied", func(t *testing.T) {
		exact := bytes.Clone(full)
		l := New[*testRecord](testKind{}, exact, Party, false)
		exact[0] = 0
		require.Equal(t, full, l.Bytes())
	})

	t.Run("resize is logged", func(t *testing.T) {
		var logBuf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		New[*testRecord](testKind{}, full[:5], Party, false, WithLogger(logger))
		assert.Contains(t, logBuf.String(), "resizing list buffer")
	})
}

func TestList_RoundTrip(t *testing.T) {
	for _, tc := range []struct {
		name     string
		capacity Capacity
		japanese bool
		k        int
	}{
		{"party of three", Party, false, 3},
		{"full party", Party, false, 6},
		{"empty party", Party, false, 0},
		{"japanese box", Stored, true, 11},
		{"single", Single, false, 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			l := NewEmpty[*testRecord](testKind{}, tc.capacity, tc.japanese)
			expected := make([]*testRecord, tc.k)
			for i := 0; i < tc.k; i++ {
				expected[i] = newTestRecord(tc.capacity, tc.japanese, byte(i+1), "MON")
				require.NoError(t, l.Set(i, expected[i]))
			}

			buf := l.Serialize()
			require.Equal(t, tc.k, l.Count())

			decoded := New[*testRecord](testKind{}, buf, tc.capacity, tc.japanese)
			require.Equal(t, tc.k, decoded.Count())
			for i := 0; i < tc.k; i++ {
				rec, err := decoded.Get(i)
				require.NoError(t, err)
				require.Equal(t, expected[i], rec)
				require.Equal(t, byte(i+1+100), buf[decoded.Layout().IndexOffset(i)])
			}
			require.Equal(t, byte(Terminator), buf[decoded.Layout().IndexOffset(tc.k)])
		})
	}
}

func TestList_SerializeIsIdempotent(t *testing.T) {
	l := NewEmpty[*testRecord](testKind{}, Party, false)
	require.NoError(t, l.Set(0, newTestRecord(Party, false, 25, "PIKA")))
	require.NoError(t, l.Set(1, newTestRecord(Party, false, 4, "CHAR")))

	first := l.Serialize()
	second := l.Serialize()
	require.Equal(t, first, second)
	require.Equal(t, first, l.Bytes())
}

func TestList_SerializeKeepsStaleIndexBytes(t *testing.T) {
	l := NewEmpty[*testRecord](testKind{}, Party, false)
	for i := 0; i < 3; i++ {
		require.NoError(t, l.Set(i, newTestRecord(Party, false, byte(i+1), "MON")))
	}
	l.Serialize()

	// empty out slot 1, which ends the active run there
	require.NoError(t, l.Set(1, newTestRecord(Party, false, 0, "")))
	buf := l.Serialize()

	require.Equal(t, 1, l.Count())
	require.Equal(t, byte(101), buf[1])
	require.Equal(t, byte(Terminator), buf[2])
	// slot 2 still carries its old identifier
	require.Equal(t, byte(103), buf[3])
	require.Equal(t, byte(Terminator), buf[4])
}

func TestList_FullListWritesPadTerminator(t *testing.T) {
	l := NewEmpty[*testRecord](testKind{}, Party, false)
	for i := 0; i < int(Party); i++ {
		require.NoError(t, l.Set(i, newTestRecord(Party, false, byte(i+10), "MON")))
	}
	buf := l.Serialize()
	require.Equal(t, 6, l.Count())
	require.Equal(t, byte(6), buf[0])
	require.Equal(t, byte(Terminator), buf[l.Layout().IndexOffset(6)])
}

func TestList_MarkedSlot(t *testing.T) {
	layout := NewLayout(Party, 44, false)
	buf := blank(layout)
	buf[0] = 2
	buf[layout.IndexOffset(0)] = 105
	buf[layout.IndexOffset(1)] = Marked
	buf[layout.DataOffset(0)] = 5
	buf[layout.DataOffset(1)] = 172

	l := New[*testRecord](testKind{}, buf, Party, false)
	require.Equal(t, 2, l.Count())

	first, err := l.Get(0)
	require.NoError(t, err)
	require.False(t, first.egg)

	egg, err := l.Get(1)
	require.NoError(t, err)
	require.True(t, egg.egg)
	require.Equal(t, byte(172), egg.data[0])

	// eggs keep their marker through a round trip
	out := l.Serialize()
	require.Equal(t, byte(Marked), out[layout.IndexOffset(1)])
	require.Equal(t, byte(Terminator), out[layout.IndexOffset(2)])
	require.Equal(t, 2, l.Count())
}

func TestList_Bounds(t *testing.T) {
	l := NewEmpty[*testRecord](testKind{}, Party, false)

	rec, err := l.Get(0)
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.True(t, rec.IsEmpty())

	for _, i := range []int{-1, int(Party), int(Party) + 1} {
		_, err := l.Get(i)
		require.ErrorIs(t, err, ErrIndexOutOfRange, "index %d", i)
	}

	err = l.Set(int(Party), newTestRecord(Party, false, 1, "A"))
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestList_SetNilIsNoop(t *testing.T) {
	l := NewEmpty[*testRecord](testKind{}, Party, false)
	before, err := l.Get(2)
	require.NoError(t, err)

	require.NoError(t, l.Set(2, nil))
	// even out of range
	require.NoError(t, l.Set(99, nil))

	after, err := l.Get(2)
	require.NoError(t, err)
	require.Same(t, before, after)
}

func TestList_SetClones(t *testing.T) {
	l := NewEmpty[*testRecord](testKind{}, Party, false)
	rec := newTestRecord(Party, false, 9, "NINE")
	require.NoError(t, l.Set(0, rec))

	rec.data[0] = 77
	stored, err := l.Get(0)
	require.NoError(t, err)
	require.Equal(t, byte(9), stored.data[0])
	require.NotSame(t, rec, stored)

	// Set alone never touches the encoded buffer
	require.Equal(t, byte(0), l.Bytes()[l.Layout().DataOffset(0)])
}

func TestList_DecodedRecordsDoNotAlias(t *testing.T) {
	layout := NewLayout(Party, 44, false)
	buf := blank(layout)
	buf[layout.DataOffset(0)] = 3
	buf[layout.DataOffset(1)] = 3

	l := New[*testRecord](testKind{}, buf, Party, false)
	a, _ := l.Get(0)
	b, _ := l.Get(1)
	a.data[0] = 50
	require.Equal(t, byte(3), b.data[0])
	require.Equal(t, byte(3), l.Bytes()[layout.DataOffset(0)])

	copies := l.Records()
	copies[1].data[0] = 60
	b, _ = l.Get(1)
	require.Equal(t, byte(3), b.data[0])
}

func TestList_SetCountClamps(t *testing.T) {
	l := NewEmpty[*testRecord](testKind{}, Party, false)
	l.SetCount(200)
	require.Equal(t, 6, l.Count())
	l.SetCount(-3)
	require.Equal(t, 0, l.Count())
	l.SetCount(4)
	require.Equal(t, 4, l.Count())
	require.Equal(t, byte(4), l.Bytes()[0])
}

func TestList_CountFromForeignBufferIsClamped(t *testing.T) {
	layout := NewLayout(Party, 44, false)
	buf := blank(layout)
	buf[0] = 0xEE
	l := New[*testRecord](testKind{}, buf, Party, false)
	require.Equal(t, 6, l.Count())
}

func TestNewSingle(t *testing.T) {
	rec := newTestRecord(Single, true, 42, "SOLO")
	l := NewSingle[*testRecord](testKind{}, rec, true)

	require.Equal(t, Single, l.Capacity())
	require.True(t, l.Japanese())
	require.Equal(t, 1, l.Count())

	got, err := l.Get(0)
	require.NoError(t, err)
	require.Equal(t, rec, got)
	require.NotSame(t, rec, got)

	buf := l.Serialize()
	require.Equal(t, DataSize(Single, true, 44), len(buf))
	require.Equal(t, []byte{1, 142, Terminator}, buf[:3])
	require.Equal(t, rec.data, buf[3:3+44])
}
