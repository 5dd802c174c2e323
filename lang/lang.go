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

// Package lang maps Interlex language identifiers to language names and the
// legacy code pages their text is stored in.
package lang

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ErrUnknownLanguage indicates that a language id is not in the registry.
var ErrUnknownLanguage = errors.New("unknown language id")

// ErrUnknownCodePage indicates an unsupported code page name.
var ErrUnknownCodePage = errors.New("unknown code page")

// ErrInvalidText indicates bytes that are not valid in their code page.
var ErrInvalidText = errors.New("invalid text")

// ErrDuplicateInfo indicates two registry ids carrying identical language
// information.
var ErrDuplicateInfo = errors.New("duplicate language info")

// CodePage identifies a legacy 8-bit character encoding.
type CodePage string

const (
	// Windows1250 is the Central European Windows code page.
	Windows1250 = CodePage("windows-1250")

	// Windows1252 is the Western European Windows code page.
	Windows1252 = CodePage("windows-1252")
)

// MetadataCodePage is the encoding used for an Interlex file's own metadata
// text (description, author, comments). Interlex appears to use a fixed
// encoding for these fields regardless of which languages the file stores.
const MetadataCodePage = Windows1250

func (cp CodePage) charmap() (*charmap.Charmap, error) {
	switch cp {
	case Windows1250:
		return charmap.Windows1250, nil
	case Windows1252:
		return charmap.Windows1252, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodePage, string(cp))
	}
}

// Decode converts b from the code page to a UTF-8 string. A byte with no
// assignment in the code page is an error, never a replacement character.
func (cp CodePage) Decode(b []byte) (string, error) {
	m, err := cp.charmap()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(len(b))
	for i, c := range b {
		r := m.DecodeByte(c)
		// The charmap tables decode unassigned bytes to utf8.RuneError. No
		// byte in the supported code pages maps to U+FFFD itself.
		if r == utf8.RuneError {
			return "", fmt.Errorf("%w: byte 0x%02x at index %d is not valid in %s", ErrInvalidText, c, i, cp)
		}
		sb.WriteRune(r)
	}
	return sb.String(), nil
}

// Info describes a language locale: its name, an optional regional variant,
// and the code page its text is stored in.
type Info struct {
	Name     string
	Variant  string
	CodePage CodePage
}

// Label returns a human-readable label such as "English (United Kingdom)".
// The variant is omitted when the language has none.
func (i Info) Label() string {
	if i.Variant == "" {
		return i.Name
	}
	return fmt.Sprintf("%s (%s)", i.Name, i.Variant)
}

// Registry maps Windows language identifiers to language information. It is
// immutable after construction.
type Registry struct {
	languages map[uint16]Info
}

// NewRegistry returns a registry for the given language table. Two ids
// resolving to identical language information indicate a broken table and are
// rejected.
func NewRegistry(languages map[uint16]Info) (*Registry, error) {
	m := make(map[uint16]Info, len(languages))
	seen := make(map[Info]uint16, len(languages))
	for id, info := range languages {
		if other, ok := seen[info]; ok {
			return nil, fmt.Errorf("%w: ids %d and %d", ErrDuplicateInfo, min(id, other), max(id, other))
		}
		seen[info] = id
		m[id] = info
	}
	return &Registry{languages: m}, nil
}

// Lookup returns the language information for the given language id.
func (r *Registry) Lookup(id uint16) (Info, error) {
	info, ok := r.languages[id]
	if !ok {
		return Info{}, fmt.Errorf("%w: %d", ErrUnknownLanguage, id)
	}
	return info, nil
}

// Len returns the number of languages in the registry.
func (r *Registry) Len() int {
	return len(r.languages)
}
