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

// Package export serializes vocabulary entries to delimited text.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	interlex "github.com/cameel/interlex-export"
)

// Columns is the fixed column order of exported entries.
var Columns = []string{
	"word",
	"part_of_speech",
	"notes",
	"translation",
	"counter",
	"penalty_points",
	"file_description",
}

// WriteCSV writes entries to w as spreadsheet-style comma-separated values in
// UTF-8, one row per entry in the order given. When header is true a header
// row with the column names precedes the data.
func WriteCSV(w io.Writer, entries []interlex.Entry, header bool) error {
	cw := csv.NewWriter(w)
	// The Excel CSV dialect terminates rows with \r\n.
	cw.UseCRLF = true

	if header {
		if err := cw.Write(Columns); err != nil {
			return fmt.Errorf("writing csv header: %w", err)
		}
	}

	for _, e := range entries {
		record := []string{
			e.Word,
			e.PartOfSpeech,
			e.Notes,
			e.Translation,
			strconv.FormatInt(int64(e.Counter), 10),
			strconv.FormatInt(int64(e.PenaltyPoints), 10),
			e.FileDescription,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv record: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}
