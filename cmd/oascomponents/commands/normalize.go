package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/erraggy/oascomponents"
	"github.com/erraggy/oascomponents/document"
	"github.com/erraggy/oascomponents/internal/cliutil"
	"github.com/erraggy/oascomponents/normalizer"
	"github.com/erraggy/oascomponents/oaserrors"
)

// NormalizeFlags contains flags for the normalize command
type NormalizeFlags struct {
	Output         string
	Quiet          bool
	Verbose        bool
	MinOccurrences int
	Prefix         string
	SkipSchemas    bool
	SkipPaths      bool
	DryRun         bool
	Diff           bool
	NoColor        bool
}

// SetupNormalizeFlags creates and configures a FlagSet for the normalize command.
// Returns the FlagSet and a NormalizeFlags struct with bound flag variables.
func SetupNormalizeFlags() (*flag.FlagSet, *NormalizeFlags) {
	fs := flag.NewFlagSet("normalize", flag.ContinueOnError)
	flags := &NormalizeFlags{}

	fs.StringVar(&flags.Output, "o", DefaultOutput, "output file path")
	fs.StringVar(&flags.Output, "output", DefaultOutput, "output file path")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: no diagnostic messages")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log every discovered type, component and path rewrite")
	fs.IntVar(&flags.MinOccurrences, "min-occurrences", normalizer.DefaultMinOccurrences, "inline occurrences a field name needs to be hoisted (1 hoists every field)")
	fs.StringVar(&flags.Prefix, "prefix", normalizer.DefaultPlaceholderPrefix, "prefix of path placeholder names")
	fs.BoolVar(&flags.SkipSchemas, "skip-schemas", false, "do not hoist property definitions")
	fs.BoolVar(&flags.SkipPaths, "skip-paths", false, "do not rewrite path templates")
	fs.BoolVar(&flags.DryRun, "dry-run", false, "report changes without writing the output file")
	fs.BoolVar(&flags.Diff, "diff", false, "print a line diff of the document changes")
	fs.BoolVar(&flags.NoColor, "no-color", false, "disable colored output")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: oascomponents normalize [flags] [input]\n\n")
		cliutil.Writef(fs.Output(), "Hoist repeated property definitions into components.schemas and\n")
		cliutil.Writef(fs.Output(), "replace literal identifiers in path templates with placeholders.\n\n")
		cliutil.Writef(fs.Output(), "The input defaults to %s and the output to %s. The encoding\n", DefaultInput, DefaultOutput)
		cliutil.Writef(fs.Output(), "(JSON or YAML) follows the file extension.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  oascomponents normalize\n")
		cliutil.Writef(fs.Output(), "  oascomponents normalize -o normalized.yaml openapi.yaml\n")
		cliutil.Writef(fs.Output(), "  oascomponents normalize --min-occurrences 1 --diff openapi.json\n")
		cliutil.Writef(fs.Output(), "  oascomponents normalize --dry-run --skip-paths openapi.yaml\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Document normalized (or no input file found)\n")
		cliutil.Writef(fs.Output(), "  1    Failed to parse, normalize or write the document\n")
	}

	return fs, flags
}

// HandleNormalize executes the normalize command
func HandleNormalize(args []string) error {
	return runNormalize(context.Background(), args, os.Stdout, os.Stderr)
}

func runNormalize(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs, flags := SetupNormalizeFlags()
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return fmt.Errorf("normalize command accepts at most one input file")
	}
	if err := ValidateMinOccurrences(flags.MinOccurrences); err != nil {
		return err
	}

	inputPath := DefaultInput
	if fs.NArg() == 1 {
		inputPath = fs.Arg(0)
	}
	outputPath := filepath.Clean(flags.Output)
	if !flags.DryRun {
		if err := ValidateOutputPath(outputPath, inputPath); err != nil {
			return err
		}
		if err := RejectSymlinkOutput(outputPath); err != nil {
			return err
		}
	}

	palette := cliutil.NewPalette(stderr, flags.NoColor)
	logger := document.Logger(document.NopLogger{})
	if flags.Verbose && !flags.Quiet {
		logger = document.NewSlogAdapter(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	startTime := time.Now()
	doc, format, err := document.Load(inputPath)
	if errors.Is(err, oaserrors.ErrNotFound) {
		cliutil.Writef(stderr, "%s\n", palette.Warn("No input file found!"))
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading %s: %w", inputPath, err)
	}

	var before []byte
	if flags.Diff {
		if before, err = document.Marshal(doc, document.FormatYAML); err != nil {
			return fmt.Errorf("encoding input for diff: %w", err)
		}
	}

	result, err := normalizer.NormalizeWithOptions(ctx,
		normalizer.WithDocument(doc),
		normalizer.WithMinOccurrences(flags.MinOccurrences),
		normalizer.WithPlaceholderPrefix(flags.Prefix),
		normalizer.WithSkipSchemas(flags.SkipSchemas),
		normalizer.WithSkipPaths(flags.SkipPaths),
		normalizer.WithDryRun(flags.DryRun),
		normalizer.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("normalizing %s: %w", inputPath, err)
	}
	totalTime := time.Since(startTime)

	if !flags.Quiet {
		cliutil.Writef(stderr, "Component Normalizer\n")
		cliutil.Writef(stderr, "====================\n\n")
		cliutil.Writef(stderr, "oascomponents version: %s\n", oascomponents.Version())
		cliutil.Writef(stderr, "Input: %s (%s)\n", inputPath, format)
		cliutil.Writef(stderr, "Total Time: %v\n\n", totalTime)
		printSummary(stderr, result, palette)
	}

	if flags.Diff {
		after, err := document.Marshal(result.Document, document.FormatYAML)
		if err != nil {
			return fmt.Errorf("encoding output for diff: %w", err)
		}
		cliutil.Writef(stdout, "%s", cliutil.LineDiff(string(before), string(after), palette))
	}

	if flags.DryRun {
		if !flags.Quiet {
			cliutil.Writef(stderr, "\nDry run: %s not written\n", outputPath)
		}
		return nil
	}

	if err := document.Write(outputPath, result.Document, OutputFormat(outputPath, format)); err != nil {
		cliutil.Writef(stderr, "%s\n", palette.Removed("Failed to write %s: %v", outputPath, err))
		return err
	}
	if !flags.Quiet {
		cliutil.Writef(stderr, "\nOutput written to: %s\n", outputPath)
	}
	return nil
}

func printSummary(w io.Writer, result *normalizer.Result, p cliutil.Palette) {
	if !result.HasChanges() {
		cliutil.Writef(w, "%s\n", p.Added("✓ Nothing to normalize"))
		return
	}
	if len(result.Hoists) > 0 {
		cliutil.Writef(w, "Components (%d):\n", len(result.Hoists))
		for _, h := range result.Hoists {
			typ := h.Type
			if typ == "" {
				typ = "-"
			}
			cliutil.Writef(w, "  + %s [%s, %s] %d occurrence(s), %d shape(s)\n",
				p.Name("%s", h.Name), h.Kind, typ, h.Occurrences, h.Shapes)
		}
	}
	if len(result.PathRewrites) > 0 {
		cliutil.Writef(w, "Paths (%d):\n", len(result.PathRewrites))
		for _, r := range result.PathRewrites {
			suffix := ""
			if r.Merged {
				suffix = p.Warn(" (merged)")
			}
			cliutil.Writef(w, "  %s -> %s%s\n", r.From, p.Name("%s", r.To), suffix)
		}
	}
	cliutil.Writef(w, "%s\n", p.Added("✓ Hoisted %d component(s), rewrote %d path(s)", len(result.Hoists), len(result.PathRewrites)))
}
