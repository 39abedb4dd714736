package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/moviedb/internal/ioquery"
	"github.com/spf13/cobra"
)

// getTopCmd returns the top command.
func getTopCmd() *cobra.Command {
	var output string

	topCmd := &cobra.Command{
		Use:   "top [COUNT START END]",
		Short: "Find the best ranked movies of a period",
		Long: `Find COUNT movies with the highest rank released from START
to END year inclusive. Movies with the same rank are listed in the order
of their ids.

Without arguments the command asks for the three numbers.

With --output the names are also saved to a file with one column
'Best Movies' separated by ';'.

Examples:
  moviedb top 10 1990 2000
  moviedb top 3 2000 2010 -o best.csv
  moviedb top`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runTop(cmd, args, output)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	topCmd.Flags().StringVarP(
		&output, "output", "o", "",
		"save the result to a ';'-separated file",
	)

	return topCmd
}

func runTop(cmd *cobra.Command, args []string, output string) error {
	ctx := context.Background()

	if len(args) == 0 {
		args = promptTopArgs(cmd.InOrStdin())
	}

	count, start, end, err := parseTopArgs(args)
	if err != nil {
		return err
	}

	op, err := connect(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer op.Close()

	names, err := ioquery.New(op).TopN(ctx, count, start, end)
	if err != nil {
		return err
	}

	gn.Info("Found <em>%s</em> movies from %d to %d",
		humanize.Comma(int64(len(names))), start, end)
	for i, v := range names {
		fmt.Fprintf(cmd.OutOrStdout(), "%3d. %s\n", i+1, v)
	}

	if output == "" {
		return nil
	}

	if err = writeTop(output, names); err != nil {
		return err
	}
	gn.Info("Result is saved to <em>%s</em>", output)
	return nil
}

// parseTopArgs converts COUNT START END to integers.
func parseTopArgs(args []string) (count, start, end int, err error) {
	if len(args) != 3 {
		err = TopArgsError(args, fmt.Errorf(
			"expected 3 numbers, got %d", len(args),
		))
		return
	}

	res := make([]int, 3)
	for i, v := range args {
		res[i], err = strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			err = TopArgsError(args, err)
			return
		}
	}
	return res[0], res[1], res[2], nil
}

// promptTopArgs asks for the number of movies and the range of years.
func promptTopArgs(r io.Reader) []string {
	prompts := []string{
		"Number of movies: ",
		"Start year: ",
		"End year: ",
	}

	reader := bufio.NewReader(r)
	res := make([]string, 0, len(prompts))
	for _, v := range prompts {
		fmt.Print(v)
		line, err := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "" && err != nil {
			break
		}
		res = append(res, line)
	}
	return res
}

func writeTop(path string, names []string) error {
	f, err := os.Create(path)
	if err != nil {
		return ioquery.OutputError(path, err)
	}
	defer f.Close()

	if err = ioquery.WriteCSV(f, names); err != nil {
		return ioquery.OutputError(path, err)
	}

	if err = f.Close(); err != nil {
		return ioquery.OutputError(path, err)
	}
	return nil
}
