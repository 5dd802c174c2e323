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

package interlex_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	interlex "github.com/cameel/interlex-export"
	"github.com/cameel/interlex-export/ilx"
	"github.com/cameel/interlex-export/internal/testutil"
	"github.com/cameel/interlex-export/lang"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	// English (UK) foreign, Polish native. Polish selects Windows-1250 for
	// the entry text.
	header := &ilx.Header{
		ProgramAndVersion:          []byte("Interlex v2"),
		ForeignLanguageID:          2057,
		NativeLanguageID:           1045,
		QuestionsAttempted:         10,
		QuestionsAnsweredCorrectly: 7,
		// "Słówka" in Windows-1250.
		Description: []byte{'S', 0xb3, 0xf3, 'w', 'k', 'a'},
		Author:      []byte("anonymous"),
		Comments:    []byte("lesson one"),
		WordCount:   2,
	}
	entries := []ilx.Entry{
		{
			Word:         []byte("horse"),
			PartOfSpeech: []byte("n."),
			Notes:        []byte{},
			// "koń" in Windows-1250.
			Translation:   []byte{'k', 'o', 0xf1},
			Counter:       3,
			PenaltyPoints: 1,
		},
		{
			Word:          []byte("yes"),
			PartOfSpeech:  []byte{},
			Notes:         []byte("exclamation"),
			Translation:   []byte("tak"),
			Counter:       3,
			PenaltyPoints: ilx.LearnedPenalty,
		},
	}

	meta, got, err := interlex.Decode("words.ilx", testutil.MakeILX(header, entries), lang.DefaultRegistry())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	expectedMeta := &interlex.Metadata{
		InputFilePath:              "words.ilx",
		ProgramAndVersion:          "Interlex v2",
		Description:                "Słówka",
		Author:                     "anonymous",
		Comments:                   "lesson one",
		ForeignLanguageID:          2057,
		ForeignLanguage:            lang.Info{Name: "English", Variant: "United Kingdom", CodePage: lang.Windows1252},
		NativeLanguageID:           1045,
		NativeLanguage:             lang.Info{Name: "Polish", CodePage: lang.Windows1250},
		WordCount:                  2,
		QuestionsAttempted:         10,
		QuestionsAnsweredCorrectly: 7,
	}
	if diff := cmp.Diff(expectedMeta, meta); diff != "" {
		t.Errorf("Decode metadata (-want +got):\n%s", diff)
	}

	expected := []interlex.Entry{
		{
			Word:            "horse",
			PartOfSpeech:    "n.",
			Notes:           "",
			Translation:     "koń",
			Counter:         3,
			PenaltyPoints:   1,
			FileDescription: "Słówka",
		},
		{
			Word:            "yes",
			PartOfSpeech:    "",
			Notes:           "exclamation",
			Translation:     "tak",
			Counter:         3,
			PenaltyPoints:   ilx.LearnedPenalty,
			FileDescription: "Słówka",
		},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("Decode entries (-want +got):\n%s", diff)
	}

	if got[1].Learned() != true {
		t.Errorf("Learned: false for penalty %d", got[1].PenaltyPoints)
	}
	if got[0].Learned() != false {
		t.Errorf("Learned: true for penalty %d", got[0].PenaltyPoints)
	}
}

// TestProject_nativeCodePageForWords checks that the word field decodes with
// the native language's code page like every other entry field. Interlex
// writes files this way even though words are foreign-language text, and
// files in the wild depend on it.
func TestProject_nativeCodePageForWords(t *testing.T) {
	t.Parallel()

	header := &ilx.Header{
		ProgramAndVersion: []byte("Interlex v2"),
		ForeignLanguageID: 2057, // Windows-1252
		NativeLanguageID:  1045, // Windows-1250
		Description:       []byte("test"),
		Author:            []byte{},
		Comments:          []byte{},
		WordCount:         1,
	}
	// 0x9c is "ś" in Windows-1250 but "œ" in Windows-1252.
	records := []ilx.Entry{
		{
			Word:         []byte{0x9c},
			PartOfSpeech: []byte{},
			Notes:        []byte{},
			Translation:  []byte{},
		},
	}

	_, entries, err := interlex.Project("words.ilx", header, records, lang.DefaultRegistry())
	if err != nil {
		t.Fatalf("Project: %v", err)
	}

	if got, want := entries[0].Word, "ś"; got != want {
		t.Errorf("Word: %q, expected: %q", got, want)
	}
}

func TestProject_errors(t *testing.T) {
	t.Parallel()

	validHeader := func() *ilx.Header {
		return &ilx.Header{
			ProgramAndVersion: []byte("Interlex v2"),
			ForeignLanguageID: 2057,
			NativeLanguageID:  1045,
			Description:       []byte("test"),
			Author:            []byte{},
			Comments:          []byte{},
		}
	}

	tests := []struct {
		name    string
		header  func() *ilx.Header
		records []ilx.Entry

		err error
	}{
		{
			name: "unknown foreign language",
			header: func() *ilx.Header {
				h := validHeader()
				h.ForeignLanguageID = 9999
				return h
			},

			err: lang.ErrUnknownLanguage,
		},
		{
			name: "unknown native language",
			header: func() *ilx.Header {
				h := validHeader()
				h.NativeLanguageID = 9999
				return h
			},

			err: lang.ErrUnknownLanguage,
		},
		{
			name: "invalid metadata text",
			header: func() *ilx.Header {
				h := validHeader()
				h.Description = []byte{0x81}
				return h
			},

			err: lang.ErrInvalidText,
		},
		{
			name:   "invalid entry text",
			header: validHeader,
			records: []ilx.Entry{
				{
					Word:         []byte{0x81},
					PartOfSpeech: []byte{},
					Notes:        []byte{},
					Translation:  []byte{},
				},
			},

			err: lang.ErrInvalidText,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			meta, entries, err := interlex.Project("words.ilx", test.header(), test.records, lang.DefaultRegistry())
			if !errors.Is(err, test.err) {
				t.Fatalf("Project: unexpected error: %v, expected: %v", err, test.err)
			}
			if meta != nil || entries != nil {
				t.Errorf("Project: partial result returned on error: %v, %v", meta, entries)
			}
		})
	}
}

func TestDecode_formatError(t *testing.T) {
	t.Parallel()

	header := &ilx.Header{
		ProgramAndVersion: []byte("Interlex v2"),
		ForeignLanguageID: 2057,
		NativeLanguageID:  1045,
		Description:       []byte("test"),
		Author:            []byte{},
		Comments:          []byte{},
		WordCount:         5,
	}

	// Declares five entries but contains none.
	data := testutil.MakeILX(header, nil)
	_, _, err := interlex.Decode("words.ilx", data, lang.DefaultRegistry())
	if !errors.Is(err, ilx.ErrUnexpectedEOF) {
		t.Fatalf("Decode: unexpected error: %v, expected: %v", err, ilx.ErrUnexpectedEOF)
	}
}
