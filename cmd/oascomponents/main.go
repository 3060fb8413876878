package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/erraggy/oascomponents"
	"github.com/erraggy/oascomponents/cmd/oascomponents/commands"
	"github.com/erraggy/oascomponents/internal/mcpserver"
)

// commandNames lists every subcommand, used for typo suggestions.
var commandNames = []string{"normalize", "inspect", "mcp", "version", "help"}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Without arguments (or with only flags) the tool normalizes input.json.
	if len(args) == 0 || (strings.HasPrefix(args[0], "-") && !isGlobalFlag(args[0])) {
		return exitCode(commands.HandleNormalize(args))
	}

	command := args[0]
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("oascomponents %s\n", oascomponents.Version())
		fmt.Println(oascomponents.BuildInfo())
		return 0
	case "help", "-h", "--help":
		printUsage()
		return 0
	case "normalize":
		return exitCode(commands.HandleNormalize(args[1:]))
	case "inspect":
		return exitCode(commands.HandleInspect(args[1:]))
	case "mcp":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return exitCode(mcpserver.Run(ctx))
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		return 1
	}
}

func isGlobalFlag(arg string) bool {
	switch arg {
	case "-v", "--version", "-h", "--help":
		return true
	}
	return false
}

func exitCode(err error) int {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// suggestCommand returns the known command closest to input, or "" when
// none is within an edit distance of 2.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := levenshtein(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func levenshtein(a, b string) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`oascomponents - shared component extraction for API description documents

Usage:
  oascomponents [command] [options]

Commands:
  normalize   Hoist repeated property definitions and normalize path templates (default)
  inspect     Show what normalize would hoist, without changing anything
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  oascomponents
  oascomponents normalize -o normalized.yaml openapi.yaml
  oascomponents inspect --format json openapi.json
  oascomponents mcp

Run 'oascomponents <command> --help' for more information on a command.`)
}
