// Copyright 2026 The PKHeX Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package list encodes and decodes fixed-capacity lists of records
// stored column by column in a single buffer, the way Game Boy era
// saves keep the party and the PC boxes.
//
// A list buffer looks like:
//
//	┌───────────────────┐
//	│ count             │ 1 byte
//	├───────────────────┤
//	│ index table       │ capacity bytes, then one terminator pad byte
//	├───────────────────┤
//	│ record data       │ capacity × entry size
//	├───────────────────┤
//	│ OT names          │ capacity × string length
//	├───────────────────┤
//	│ nicknames         │ capacity × string length
//	└───────────────────┘
//
// Each index table byte is either a record identifier chosen by the
// record Kind, 0xFD for an egg (the record is decoded as marked), or
// 0xFF for the first unused slot.  Everything after the first 0xFF is
// padding.
//
// A List keeps two states: the decoded records, which Get and Set
// work on, and the encoded buffer, which only changes on Serialize.
package list
