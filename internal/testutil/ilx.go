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

// Package testutil builds .ilx byte streams for tests.
package testutil

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cameel/interlex-export/ilx"
)

// MakeILX builds an .ilx byte stream from the given header and entries. The
// header's WordCount is written as-is, so a count that disagrees with
// len(entries) can be used to build malformed streams.
func MakeILX(hdr *ilx.Header, entries []ilx.Entry) []byte {
	b := appendPString8(nil, hdr.ProgramAndVersion)
	b = binary.LittleEndian.AppendUint16(b, hdr.ForeignLanguageID)
	b = binary.LittleEndian.AppendUint16(b, hdr.NativeLanguageID)
	b = binary.LittleEndian.AppendUint32(b, hdr.QuestionsAttempted)
	b = binary.LittleEndian.AppendUint32(b, hdr.QuestionsAnsweredCorrectly)
	b = appendPString16(b, hdr.Description)
	b = appendPString16(b, hdr.Author)
	b = appendPString16(b, hdr.Comments)
	b = append(b, hdr.Reserved[:]...)
	b = binary.LittleEndian.AppendUint32(b, hdr.WordCount)
	for _, e := range entries {
		b = AppendEntry(b, e)
	}
	return b
}

// AppendEntry appends the byte representation of a single entry record.
func AppendEntry(b []byte, e ilx.Entry) []byte {
	b = appendPString16(b, e.Word)
	b = appendPString16(b, e.PartOfSpeech)
	b = appendPString16(b, e.Notes)
	b = appendPString16(b, e.Translation)
	b = binary.LittleEndian.AppendUint32(b, uint32(e.Counter))
	b = binary.LittleEndian.AppendUint32(b, uint32(e.Reserved))
	b = binary.LittleEndian.AppendUint32(b, uint32(e.PenaltyPoints))
	return b
}

func appendPString8(b, s []byte) []byte {
	if len(s) > math.MaxUint8 {
		panic(fmt.Sprintf("string too long for 8-bit length prefix: %d", len(s)))
	}
	b = append(b, uint8(len(s)))
	return append(b, s...)
}

func appendPString16(b, s []byte) []byte {
	if len(s) > math.MaxUint16 {
		panic(fmt.Sprintf("string too long for 16-bit length prefix: %d", len(s)))
	}
	b = binary.LittleEndian.AppendUint16(b, uint16(len(s)))
	return append(b, s...)
}
