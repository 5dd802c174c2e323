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

package interlex

import (
	"fmt"

	"github.com/cameel/interlex-export/ilx"
	"github.com/cameel/interlex-export/lang"
)

// Metadata is the fully resolved form of an .ilx file header. All text is
// UTF-8 except ProgramAndVersion, which is the header's raw ASCII-safe bytes.
type Metadata struct {
	// InputFilePath labels where the file's bytes came from. It is
	// provenance only; the decoder never opens it.
	InputFilePath string

	ProgramAndVersion string

	Description string
	Author      string
	Comments    string

	ForeignLanguageID uint16
	ForeignLanguage   lang.Info

	NativeLanguageID uint16
	NativeLanguage   lang.Info

	WordCount                  uint32
	QuestionsAttempted         uint32
	QuestionsAnsweredCorrectly uint32
}

// Entry is one vocabulary entry with all text resolved to UTF-8.
type Entry struct {
	Word         string
	PartOfSpeech string
	Notes        string
	Translation  string

	// Counter records the order in which entries were last tested.
	Counter int32

	// PenaltyPoints carries the raw penalty score, including the
	// ilx.LearnedPenalty sentinel.
	PenaltyPoints int32

	// FileDescription is a copy of the owning file's description so that
	// entries from multiple files keep their provenance in a flat export.
	FileDescription string
}

// Learned reports whether the entry is marked as already learned.
func (e *Entry) Learned() bool {
	return e.PenaltyPoints == ilx.LearnedPenalty
}

// Decode parses .ilx data and resolves it against the registry. inputPath
// labels the origin of the data in results and errors; it is never opened.
func Decode(inputPath string, data []byte, reg *lang.Registry) (*Metadata, []Entry, error) {
	hdr, records, err := ilx.Decode(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", inputPath, err)
	}
	return Project(inputPath, hdr, records, reg)
}

// Project resolves a decoded header and its entry records into exported
// values: language ids are resolved through the registry and all text fields
// are decoded from their legacy code pages to UTF-8. It is pure and performs
// no I/O.
func Project(inputPath string, hdr *ilx.Header, records []ilx.Entry, reg *lang.Registry) (*Metadata, []Entry, error) {
	foreign, err := reg.Lookup(hdr.ForeignLanguageID)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: foreign language: %w", inputPath, err)
	}
	native, err := reg.Lookup(hdr.NativeLanguageID)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: native language: %w", inputPath, err)
	}

	meta := &Metadata{
		InputFilePath:              inputPath,
		ProgramAndVersion:          string(hdr.ProgramAndVersion),
		ForeignLanguageID:          hdr.ForeignLanguageID,
		ForeignLanguage:            foreign,
		NativeLanguageID:           hdr.NativeLanguageID,
		NativeLanguage:             native,
		WordCount:                  hdr.WordCount,
		QuestionsAttempted:         hdr.QuestionsAttempted,
		QuestionsAnsweredCorrectly: hdr.QuestionsAnsweredCorrectly,
	}
	if meta.Description, err = lang.MetadataCodePage.Decode(hdr.Description); err != nil {
		return nil, nil, fmt.Errorf("%s: decoding description: %w", inputPath, err)
	}
	if meta.Author, err = lang.MetadataCodePage.Decode(hdr.Author); err != nil {
		return nil, nil, fmt.Errorf("%s: decoding author: %w", inputPath, err)
	}
	if meta.Comments, err = lang.MetadataCodePage.Decode(hdr.Comments); err != nil {
		return nil, nil, fmt.Errorf("%s: decoding comments: %w", inputPath, err)
	}

	// Interlex stores every entry field in the native language's code page,
	// including the word itself, which is foreign-language text. Files in
	// the wild depend on this quirk, so the foreign code page is
	// deliberately not used for any entry field.
	cp := native.CodePage

	entries := make([]Entry, 0, len(records))
	for i, rec := range records {
		entry := Entry{
			Counter:         rec.Counter,
			PenaltyPoints:   rec.PenaltyPoints,
			FileDescription: meta.Description,
		}
		if entry.Word, err = cp.Decode(rec.Word); err != nil {
			return nil, nil, fmt.Errorf("%s: entry %d: decoding word: %w", inputPath, i, err)
		}
		if entry.PartOfSpeech, err = cp.Decode(rec.PartOfSpeech); err != nil {
			return nil, nil, fmt.Errorf("%s: entry %d: decoding part of speech: %w", inputPath, i, err)
		}
		if entry.Notes, err = cp.Decode(rec.Notes); err != nil {
			return nil, nil, fmt.Errorf("%s: entry %d: decoding notes: %w", inputPath, i, err)
		}
		if entry.Translation, err = cp.Decode(rec.Translation); err != nil {
			return nil, nil, fmt.Errorf("%s: entry %d: decoding translation: %w", inputPath, i, err)
		}
		entries = append(entries, entry)
	}

	return meta, entries, nil
}
