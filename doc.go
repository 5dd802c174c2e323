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

// Package interlex reads vocabulary files written by the Interlex vocabulary
// trainer (.ilx format) in pure Go.
//
// An .ilx file contains:
//  1. A header with the writing program's name and version, the foreign and
//     native language ids of the vocabulary, session statistics, and
//     free-form description, author, and comments fields.
//  2. A list of vocabulary entries. Each entry holds a word, its part of
//     speech, notes, a translation, and learning-progress counters.
//
// Text in the file is stored in legacy 8-bit Windows code pages. The language
// ids in the header select the code page through a language registry (see the
// lang subpackage); decoding converts everything to UTF-8. The binary layout
// itself is handled by the ilx subpackage.
//
// Decoding works on a fully read byte buffer and never touches the
// filesystem:
//
//	data, err := os.ReadFile("words.ilx")
//	if err != nil {
//		return err
//	}
//	meta, entries, err := interlex.Decode("words.ilx", data, lang.DefaultRegistry())
package interlex
