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
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	interlex "github.com/cameel/interlex-export"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrIlxutil is a parent error for all command errors.
var ErrIlxutil = errors.New("ilxutil")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrIlxutil)

// ErrNoInput indicates that no input files were given.
var ErrNoInput = fmt.Errorf("%w: no input files", ErrIlxutil)

//nolint:gochecknoinits // init needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// but we don't use commands.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

func newIlxutilApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Export Interlex vocabulary files.",
		Description: "Utility for exporting data from the Interlex binary format.\n" +
			"https://github.com/cameel/interlex-export",
		Flags: []cli.Flag{
			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		HideHelp:        true,
		HideHelpCommand: true,
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return fmt.Errorf("%w: %v", ErrFlagParse, err)
		},
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			exportCommand,
			infoCommand,
		},
	}
}

// printMetadata prints a human-readable summary of one file's metadata.
func printMetadata(w io.Writer, m *interlex.Metadata) {
	fmt.Fprintf(w, "File:                  %s (%s)\n", m.InputFilePath, m.ProgramAndVersion)
	fmt.Fprintf(w, "Description:           %s\n", m.Description)
	fmt.Fprintf(w, "Author:                %s\n", m.Author)
	fmt.Fprintf(w, "Foreign language:      %s\n", m.ForeignLanguage.Label())
	fmt.Fprintf(w, "Native language:       %s\n", m.NativeLanguage.Label())
	fmt.Fprintf(w, "Words:                 %d\n", m.WordCount)
	fmt.Fprintf(w, "Answers (correct/all): %d/%d\n", m.QuestionsAnsweredCorrectly, m.QuestionsAttempted)
	fmt.Fprintf(w, "Comments:              %s\n", m.Comments)
}
