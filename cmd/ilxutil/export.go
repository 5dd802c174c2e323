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

	"github.com/urfave/cli/v2"

	interlex "github.com/cameel/interlex-export"
	"github.com/cameel/interlex-export/export"
	"github.com/cameel/interlex-export/lang"
)

var exportCommand = &cli.Command{
	Name:      "export",
	Usage:     "Export .ilx files to a CSV file",
	ArgsUsage: "FILE [FILE...]",
	Description: "Export vocabulary entries from one or more .ilx files into a single\n" +
		"CSV file. Entries keep the order of the input files and the order\n" +
		"within each file.",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "output",
			Usage:    "write CSV to `FILE`",
			Aliases:  []string{"o"},
			Required: true,
		},
		&cli.BoolFlag{
			Name:  "no-header",
			Usage: "don't include a header row in the CSV file",
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() < 1 {
			return ErrNoInput
		}

		registry := lang.DefaultRegistry()

		var allEntries []interlex.Entry
		for _, path := range c.Args().Slice() {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}

			meta, entries, err := interlex.Decode(path, data, registry)
			if err != nil {
				return fmt.Errorf("decoding input: %w", err)
			}

			printMetadata(c.App.Writer, meta)
			fmt.Fprintln(c.App.Writer)

			allEntries = append(allEntries, entries...)
		}

		outputPath := c.String("output")
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("creating %q: %w", outputPath, err)
		}

		if err := export.WriteCSV(f, allEntries, !c.Bool("no-header")); err != nil {
			f.Close()
			return fmt.Errorf("writing %q: %w", outputPath, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing %q: %w", outputPath, err)
		}

		fmt.Fprintf(c.App.Writer, "Saving all %d entries in %s\n", len(allEntries), outputPath)
		return nil
	},
}
