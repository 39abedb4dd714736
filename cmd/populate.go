/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/gnames/gn"
	"github.com/gnames/moviedb/internal/iopopulate"
	"github.com/gnames/moviedb/pkg/config"
	"github.com/spf13/cobra"
)

// getPopulateCmd returns the populate command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getPopulateCmd() *cobra.Command {
	var (
		dir        string
		noProgress bool
	)

	populateCmd := &cobra.Command{
		Use:   "populate",
		Short: "Populate database with movie dumps",
		Long: `Import movies, people, directors and their relationships.

This command:
  1. Connects to the database using configuration settings
  2. Reads sources.yaml to find the dump files
  3. Imports the dumps in the order required by foreign keys:
     - movies
     - persons
     - directors
     - cast (actsin)
     - movie directors (directs), through a staging table
       that drops links to missing movies or directors
  4. Saves lines that cannot be parsed to quarantine.csv
     in the log directory

Dump locations are configured in: ~/.config/moviedb/sources.yaml

Examples:
  # Import dumps from the directory given in sources.yaml
  moviedb populate

  # Import dumps from another directory
  moviedb populate --dir ~/data/imdb
  moviedb populate -d ~/data/imdb`,
		Aliases: []string{"add"},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runPopulate(cmd, dir, noProgress)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	populateCmd.Flags().StringVarP(
		&dir, "dir", "d", "",
		"directory with dump files (overrides sources.yaml)",
	)
	populateCmd.Flags().BoolVarP(
		&noProgress, "no-progress", "q", false,
		"do not show progress bars",
	)

	return populateCmd
}

func runPopulate(
	cmd *cobra.Command,
	dir string,
	noProgress bool,
) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Build options from explicitly set flags
	var populateOpts []config.Option

	if cmd.Flags().Changed("dir") {
		populateOpts = append(populateOpts, config.OptPopulateDir(dir))
	}

	if cmd.Flags().Changed("no-progress") {
		populateOpts = append(
			populateOpts,
			config.OptPopulateShowProgress(!noProgress),
		)
	}

	// Apply populate-specific options to config
	if len(populateOpts) > 0 {
		cfg.Update(populateOpts)
	}

	op, err := connect(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer op.Close()

	populator := iopopulate.New(cfg, op)

	gn.Info("Starting data population from movie dumps...")
	if err = populator.Populate(ctx); err != nil {
		return err
	}

	gn.Info(`Next steps:
	 - Run '<em>moviedb top 10 1990 2000</em>' to find the best movies
`)

	return nil
}
