// Command wordfreq prints the most frequent words of a text file.
//
//	wordfreq -f input.txt -n 20
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"

	"github.com/homier/carr/sv"
)

var errNoInput = errors.New("no input file, use --file")

type config struct {
	file    string
	top     int
	verbose bool
}

func parseFlags(args []string, output io.Writer) (config, error) {
	var cfg config

	flags := pflag.NewFlagSet("wordfreq", pflag.ContinueOnError)
	flags.SetOutput(output)
	flags.StringVarP(&cfg.file, "file", "f", "", "text file to count words in")
	flags.IntVarP(&cfg.top, "top", "n", 10, "number of words to print, 0 prints all")
	flags.BoolVarP(&cfg.verbose, "verbose", "v", false, "log table statistics")

	if err := flags.Parse(args); err != nil {
		return cfg, err
	}

	if cfg.file == "" && flags.NArg() > 0 {
		cfg.file = flags.Arg(0)
	}
	if cfg.file == "" {
		return cfg, errNoInput
	}

	return cfg, nil
}

func run(args []string, fs afero.Fs, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	buf, err := sv.FromFile(fs, cfg.file)
	if err != nil {
		return fmt.Errorf("load input: %w", err)
	}
	defer buf.Free()

	freqs := countWords(sv.FromBuilder(buf))

	stats := freqs.Stats()
	logger.Debug("counted words",
		"file", cfg.file,
		"bytes", buf.Len(),
		"distinct", stats.Size,
		"capacity", stats.Capacity,
		"load_factor", stats.LoadFactor,
	)

	out := render(topWords(freqs, cfg.top))
	if _, err := stdout.Write(out.Bytes()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

func main() {
	if err := run(os.Args[1:], afero.NewOsFs(), os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}

		slog.Error("wordfreq failed", "error", err)
		os.Exit(1)
	}
}
