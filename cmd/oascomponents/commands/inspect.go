package commands

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/erraggy/oascomponents/document"
	"github.com/erraggy/oascomponents/internal/cliutil"
	"github.com/erraggy/oascomponents/internal/schemautil"
	"github.com/erraggy/oascomponents/normalizer"
	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// InspectFlags contains flags for the inspect command
type InspectFlags struct {
	Format         string
	MinOccurrences int
	NoColor        bool
}

// SetupInspectFlags creates and configures a FlagSet for the inspect command.
func SetupInspectFlags() (*flag.FlagSet, *InspectFlags) {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	flags := &InspectFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.IntVar(&flags.MinOccurrences, "min-occurrences", normalizer.DefaultMinOccurrences, "inline occurrences a field name needs to be hoisted")
	fs.BoolVar(&flags.NoColor, "no-color", false, "disable colored output")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: oascomponents inspect [flags] [input]\n\n")
		cliutil.Writef(fs.Output(), "Show the property groups, canonical field types and hoisting order\n")
		cliutil.Writef(fs.Output(), "of a document without changing it.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  oascomponents inspect openapi.yaml\n")
		cliutil.Writef(fs.Output(), "  oascomponents inspect --format json --min-occurrences 1 openapi.json\n")
	}

	return fs, flags
}

// InspectReport is the structured output of the inspect command.
type InspectReport struct {
	Groups     int                `json:"groups"     yaml:"groups"`
	Fields     int                `json:"fields"     yaml:"fields"`
	Types      map[string]string  `json:"types"      yaml:"types"`
	Candidates []InspectCandidate `json:"candidates" yaml:"candidates"`
}

// InspectCandidate is one field name scheduled for hoisting.
type InspectCandidate struct {
	Name     string `json:"name"           yaml:"name"`
	Kind     string `json:"kind"           yaml:"kind"`
	Type     string `json:"type,omitempty" yaml:"type,omitempty"`
	Variants int    `json:"variants"       yaml:"variants"`
	Shapes   int    `json:"shapes"         yaml:"shapes"`
}

// HandleInspect executes the inspect command
func HandleInspect(args []string) error {
	return runInspect(context.Background(), args, os.Stdout, os.Stderr)
}

func runInspect(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs, flags := SetupInspectFlags()
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return fmt.Errorf("inspect command accepts at most one input file")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	if err := ValidateMinOccurrences(flags.MinOccurrences); err != nil {
		return err
	}

	inputPath := DefaultInput
	if fs.NArg() == 1 {
		inputPath = fs.Arg(0)
	}
	doc, _, err := document.Load(inputPath)
	if err != nil {
		return fmt.Errorf("loading %s: %w", inputPath, err)
	}

	n := normalizer.New()
	n.MinOccurrences = flags.MinOccurrences
	plan, err := n.Plan(ctx, doc)
	if err != nil {
		return fmt.Errorf("inspecting %s: %w", inputPath, err)
	}

	report := InspectReport{
		Groups:     len(plan.Groups),
		Fields:     len(plan.Variants.Names()),
		Types:      plan.TypeTable,
		Candidates: make([]InspectCandidate, 0, len(plan.Worklist)),
	}
	for _, item := range plan.Worklist {
		report.Candidates = append(report.Candidates, InspectCandidate{
			Name:     item.Name,
			Kind:     item.Kind.String(),
			Type:     plan.TypeTable[item.Name],
			Variants: item.Variants,
			Shapes:   schemautil.CountShapes(plan.Variants.Nodes(item.Name)),
		})
	}

	switch flags.Format {
	case FormatJSON:
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling to json: %w", err)
		}
		cliutil.Writef(stdout, "%s\n", data)
	case FormatYAML:
		data, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("marshaling to yaml: %w", err)
		}
		cliutil.Writef(stdout, "%s", data)
	default:
		printReport(stdout, inputPath, report, cliutil.NewPalette(stdout, flags.NoColor))
	}
	return nil
}

func printReport(w io.Writer, inputPath string, r InspectReport, p cliutil.Palette) {
	cliutil.Writef(w, "Document: %s\n", inputPath)
	cliutil.Writef(w, "Property groups: %d\n", r.Groups)
	cliutil.Writef(w, "Field names: %d\n", r.Fields)
	cliutil.Writef(w, "Typed fields: %d\n\n", len(r.Types))

	if len(r.Candidates) == 0 {
		cliutil.Writef(w, "No field name would be hoisted\n")
		return
	}
	cliutil.Writef(w, "Hoisting order (%d):\n", len(r.Candidates))
	for i, c := range r.Candidates {
		typ := c.Type
		if typ == "" {
			typ = "-"
		}
		cliutil.Writef(w, "  %3d. %s [%s, %s] %d variant(s), %d shape(s)\n",
			i+1, p.Name("%s", c.Name), c.Kind, typ, c.Variants, c.Shapes)
	}
}
