// Copyright 2026 The interlex-export Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ilx implements reading the Interlex .ilx binary file format.
//
// An .ilx file is a fixed-layout sequence of length-prefixed strings and
// little-endian integers. It starts with a header (program string, language
// ids, session counters, metadata strings, a reserved block, and an entry
// count) followed by exactly that many vocabulary entry records. String
// fields are kept as raw bytes here; decoding them to text requires the
// language information from the header and is a downstream concern.
package ilx

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrUnexpectedEOF indicates a stream that ends in the middle of a field or a
// length prefix pointing past the end of the buffer.
var ErrUnexpectedEOF = errors.New("unexpected end of input")

// ErrTrailingData indicates bytes remaining after the declared number of
// entries has been read.
var ErrTrailingData = errors.New("trailing data")

// LearnedPenalty is the penalty point sentinel marking an entry as already
// learned.
const LearnedPenalty = -1

// Header holds the raw fields of an .ilx file header. String fields are raw,
// undecoded bytes in the file's source code pages.
type Header struct {
	// ProgramAndVersion identifies the program that wrote the file, e.g.
	// "Interlex v2".
	ProgramAndVersion []byte

	ForeignLanguageID uint16
	NativeLanguageID  uint16

	QuestionsAttempted         uint32
	QuestionsAnsweredCorrectly uint32

	Description []byte
	Author      []byte
	Comments    []byte

	// Reserved has unknown meaning. Observed all zero, but preserved as-is
	// rather than validated since newer files may use it.
	Reserved [10]byte

	// WordCount is the declared number of entry records that follow.
	WordCount uint32
}

// Entry holds the raw fields of one vocabulary entry record.
type Entry struct {
	Word         []byte
	PartOfSpeech []byte
	Notes        []byte
	Translation  []byte

	// Counter is set to the session-wide question counter each time the
	// entry is tested. It records the order in which entries were last
	// asked; ties and gaps are legal.
	Counter int32

	// Reserved has unknown meaning. Observed all zero, preserved as-is.
	Reserved int32

	// PenaltyPoints is the entry's penalty score. LearnedPenalty marks the
	// entry as already learned.
	PenaltyPoints int32
}

// Learned reports whether the entry is marked as already learned.
func (e *Entry) Learned() bool {
	return e.PenaltyPoints == LearnedPenalty
}

// Decode parses a complete .ilx byte stream. It returns the header and
// exactly the number of entries the header declares. The stream must match
// the layout exactly; a truncated buffer, a length prefix pointing past the
// end of the buffer, or bytes remaining after the last entry are errors and
// no partial result is returned.
func Decode(data []byte) (*Header, []Entry, error) {
	r := reader{buf: data}

	var h Header
	var err error
	if h.ProgramAndVersion, err = r.pstring8("program and version"); err != nil {
		return nil, nil, err
	}
	if h.ForeignLanguageID, err = r.uint16("foreign language id"); err != nil {
		return nil, nil, err
	}
	if h.NativeLanguageID, err = r.uint16("native language id"); err != nil {
		return nil, nil, err
	}
	if h.QuestionsAttempted, err = r.uint32("questions attempted"); err != nil {
		return nil, nil, err
	}
	if h.QuestionsAnsweredCorrectly, err = r.uint32("questions answered correctly"); err != nil {
		return nil, nil, err
	}
	if h.Description, err = r.pstring16("description"); err != nil {
		return nil, nil, err
	}
	if h.Author, err = r.pstring16("author"); err != nil {
		return nil, nil, err
	}
	if h.Comments, err = r.pstring16("comments"); err != nil {
		return nil, nil, err
	}
	reserved, err := r.bytes(len(h.Reserved), "reserved block")
	if err != nil {
		return nil, nil, err
	}
	copy(h.Reserved[:], reserved)
	if h.WordCount, err = r.uint32("word count"); err != nil {
		return nil, nil, err
	}

	// An entry is at least 20 bytes, so the declared count cannot be trusted
	// for allocation beyond what the buffer could actually hold. The count is
	// compared in uint64 so that it cannot overflow int on 32-bit platforms.
	capHint := r.remaining()/20 + 1
	if uint64(h.WordCount) < uint64(capHint) {
		capHint = int(h.WordCount)
	}
	entries := make([]Entry, 0, capHint)
	for i := uint32(0); i < h.WordCount; i++ {
		e, err := decodeEntry(&r, i)
		if err != nil {
			return nil, nil, err
		}
		entries = append(entries, e)
	}

	if n := r.remaining(); n > 0 {
		return nil, nil, fmt.Errorf("%w: %d bytes after %d entries", ErrTrailingData, n, h.WordCount)
	}

	return &h, entries, nil
}

func decodeEntry(r *reader, i uint32) (Entry, error) {
	var e Entry
	var err error
	if e.Word, err = r.pstring16(entryField(i, "word")); err != nil {
		return Entry{}, err
	}
	if e.PartOfSpeech, err = r.pstring16(entryField(i, "part of speech")); err != nil {
		return Entry{}, err
	}
	if e.Notes, err = r.pstring16(entryField(i, "notes")); err != nil {
		return Entry{}, err
	}
	if e.Translation, err = r.pstring16(entryField(i, "translation")); err != nil {
		return Entry{}, err
	}
	if e.Counter, err = r.int32(entryField(i, "counter")); err != nil {
		return Entry{}, err
	}
	if e.Reserved, err = r.int32(entryField(i, "reserved")); err != nil {
		return Entry{}, err
	}
	if e.PenaltyPoints, err = r.int32(entryField(i, "penalty points")); err != nil {
		return Entry{}, err
	}
	return e, nil
}

func entryField(i uint32, name string) string {
	return fmt.Sprintf("entry %d %s", i, name)
}

// reader reads fields sequentially from a byte buffer, tracking the current
// offset for error reporting.
type reader struct {
	buf []byte
	off int
}

func (r *reader) remaining() int {
	return len(r.buf) - r.off
}

// bytes consumes the next n bytes. The returned slice aliases the input
// buffer.
func (r *reader) bytes(n int, field string) ([]byte, error) {
	if n > r.remaining() {
		return nil, fmt.Errorf("%w: reading %s at offset %d: need %d bytes, have %d", ErrUnexpectedEOF, field, r.off, n, r.remaining())
	}
	b := r.buf[r.off : r.off+n : r.off+n]
	r.off += n
	return b, nil
}

func (r *reader) uint8(field string) (uint8, error) {
	b, err := r.bytes(1, field)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *reader) uint16(field string) (uint16, error) {
	b, err := r.bytes(2, field)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (r *reader) uint32(field string) (uint32, error) {
	b, err := r.bytes(4, field)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *reader) int32(field string) (int32, error) {
	u, err := r.uint32(field)
	if err != nil {
		return 0, err
	}
	return int32(u), nil
}

// pstring8 reads a string prefixed with an 8-bit length. Only the program
// string uses this prefix width.
func (r *reader) pstring8(field string) ([]byte, error) {
	n, err := r.uint8(field)
	if err != nil {
		return nil, err
	}
	return r.bytes(int(n), field)
}

// pstring16 reads a string prefixed with a 16-bit length.
func (r *reader) pstring16(field string) ([]byte, error) {
	n, err := r.uint16(field)
	if err != nil {
		return nil, err
	}
	return r.bytes(int(n), field)
}
