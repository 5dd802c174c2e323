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
	"fmt"
	"os"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	interlex "github.com/cameel/interlex-export"
	"github.com/cameel/interlex-export/lang"
)

var infoCommand = &cli.Command{
	Name:      "info",
	Usage:     "Print metadata of .ilx files",
	ArgsUsage: "FILE [FILE...]",
	Action: func(c *cli.Context) error {
		if c.NArg() < 1 {
			return ErrNoInput
		}

		registry := lang.DefaultRegistry()

		tbl := table.New("File", "Description", "Author", "Foreign", "Native", "Words", "Correct/All")
		tbl.WithWriter(c.App.Writer)

		for _, path := range c.Args().Slice() {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}

			meta, _, err := interlex.Decode(path, data, registry)
			if err != nil {
				return fmt.Errorf("decoding input: %w", err)
			}

			tbl.AddRow(
				meta.InputFilePath,
				meta.Description,
				meta.Author,
				meta.ForeignLanguage.Label(),
				meta.NativeLanguage.Label(),
				meta.WordCount,
				fmt.Sprintf("%d/%d", meta.QuestionsAnsweredCorrectly, meta.QuestionsAttempted),
			)
		}

		tbl.Print()
		return nil
	},
}
