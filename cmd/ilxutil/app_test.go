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

package main

import (
	"errors"
	"io"
	"testing"
)

func TestApp_flagParseError(t *testing.T) {
	t.Parallel()

	app := newIlxutilApp()
	app.Writer = io.Discard

	err := app.Run([]string{"ilxutil", "--bogus"})
	if !errors.Is(err, ErrFlagParse) {
		t.Fatalf("Run: unexpected error: %v, expected: %v", err, ErrFlagParse)
	}
}
