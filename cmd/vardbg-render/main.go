// Command vardbg-render renders a recorded program trace into a video.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/vardbg/vidframe"
	"github.com/vardbg/vidframe/config"
	"github.com/vardbg/vidframe/encoder"
	"github.com/vardbg/vidframe/text"
	"github.com/vardbg/vidframe/trace"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		configPath  string
		outputPath  string
		ffmpegPath  string
		verbose     bool
		showVersion bool
		showHelp    bool
		listFonts   bool
	)

	flags := pflag.NewFlagSet("vardbg-render", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&configPath, "config", "c", "", "Path to a TOML config file (defaults are built in)")
	flags.StringVarP(&outputPath, "output", "o", "out.gif", "Output file; the extension selects the format")
	flags.StringVar(&ffmpegPath, "ffmpeg", "", "ffmpeg binary used for MP4 and WebP output")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log per-frame progress to stderr")
	flags.BoolVar(&showVersion, "version", false, "Show version information")
	flags.BoolVarP(&showHelp, "help", "h", false, "Show help message")
	flags.BoolVar(&listFonts, "list-fonts", false, "List the built-in font names")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	if showHelp {
		printHelp(stdout, flags)
		return 0
	}
	if showVersion {
		fmt.Fprintf(stdout, "vardbg-render version %s (commit: %s, built: %s)\n", version, commit, date)
		return 0
	}
	if listFonts {
		for _, name := range text.BuiltinNames() {
			fmt.Fprintln(stdout, name)
		}
		return 0
	}

	if flags.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: expected exactly one trace file")
		printHelp(stderr, flags)
		return 1
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	vidframe.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer vidframe.SetLogger(nil)

	if err := render(flags.Arg(0), configPath, outputPath, ffmpegPath); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func render(tracePath, configPath, outputPath, ffmpegPath string) error {
	script, err := trace.ParseFile(tracePath)
	if err != nil {
		return err
	}

	file, err := config.LoadFile(configPath)
	if err != nil {
		return err
	}
	cfg, err := file.Resolve()
	if err != nil {
		return err
	}

	// Colors are checked before New creates the output and writes the intro
	palette := trace.NewPalette(cfg.Colors)
	if _, err := script.States(palette); err != nil {
		return fmt.Errorf("%s: %w", tracePath, err)
	}

	r, err := vidframe.New(outputPath, cfg, vidframe.WithFFmpeg(ffmpegPath))
	if err != nil {
		return err
	}
	if err := trace.Play(r, script, palette); err != nil {
		return err
	}

	log := vidframe.Logger()
	log.Info("rendered", "output", outputPath, "frames", r.Frames())
	if n := r.MissingReferences(); n > 0 {
		log.Warn("frames with unresolved references", "count", n)
	}
	return nil
}

func printHelp(w io.Writer, flags *pflag.FlagSet) {
	fmt.Fprintln(w, "Usage: vardbg-render [options] <trace.yaml>")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Output formats: %s\n", strings.Join(formatNames(), ", "))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprint(w, flags.FlagUsages())
}

func formatNames() []string {
	names := make([]string, len(encoder.Formats))
	for i, f := range encoder.Formats {
		names[i] = "." + string(f)
	}
	return names
}
