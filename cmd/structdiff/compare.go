package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/apiprobe/structdiff/pkg/differ"
	"github.com/apiprobe/structdiff/pkg/loader"
	"github.com/apiprobe/structdiff/pkg/logging"
)

var compareCmd = &cobra.Command{
	Use:   "compare --origin <origin-file> --current <current-file>",
	Short: "Compare two JSON/YAML documents and report structural differences",
	Long: `Compares the current document against the origin document and lists
every missing field, redundant field, type conflict, value change and
list difference. Documents may be JSON or YAML.`,
	RunE: runCompare,
}

var (
	originFile     string
	currentFile    string
	startPath      string
	checkValue     bool
	checkMissing   bool
	checkRedundant bool
	checkType      bool
	excludeFields  []string
	typeGroups     []string
	ignoreOrder    bool
	configFile     string
	format         string
	outputFile     string
	verbose        bool
)

func init() {
	compareCmd.Flags().StringVar(&originFile, "origin", "", "Path to the origin (expected) document")
	compareCmd.Flags().StringVar(&currentFile, "current", "", "Path to the current (actual) document")
	compareCmd.Flags().StringVar(&startPath, "path", "", "Path prefix for reported differences")
	compareCmd.Flags().BoolVar(&checkValue, "check-value", true, "Report value changes")
	compareCmd.Flags().BoolVar(&checkMissing, "check-missing", true, "Report fields missing from current")
	compareCmd.Flags().BoolVar(&checkRedundant, "check-redundant", false, "Report fields only present in current")
	compareCmd.Flags().BoolVar(&checkType, "check-type", true, "Report type conflicts")
	compareCmd.Flags().StringSliceVar(&excludeFields, "exclude", nil, "Field paths to exclude (supports [*] index wildcards)")
	compareCmd.Flags().StringArrayVar(&typeGroups, "type-group", nil, "Comma-separated type tags treated as compatible, e.g. 'int,float,str' (repeatable)")
	compareCmd.Flags().BoolVar(&ignoreOrder, "ignore-order", true, "Match list elements regardless of position")
	compareCmd.Flags().StringVar(&configFile, "config", "", "Optional YAML file with comparison defaults")
	compareCmd.Flags().StringVar(&format, "format", "text", "Output format (text, table, json)")
	compareCmd.Flags().StringVar(&outputFile, "output", "", "Output file for results (default: stdout)")
	compareCmd.Flags().BoolVar(&verbose, "verbose", false, "Log traversal diagnostics to stderr")

	compareCmd.MarkFlagRequired("origin")
	compareCmd.MarkFlagRequired("current")

	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	opts, err := buildOptions(cmd)
	if err != nil {
		return err
	}

	origin, err := loader.LoadFile(originFile)
	if err != nil {
		return fmt.Errorf("loading origin: %w", err)
	}
	current, err := loader.LoadFile(currentFile)
	if err != nil {
		return fmt.Errorf("loading current: %w", err)
	}

	result, err := differ.Compare(origin, current, opts)
	if err != nil {
		return err
	}

	output, err := renderResult(result, format)
	if err != nil {
		return err
	}

	if outputFile != "" {
		if err := os.WriteFile(outputFile, output, 0644); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		fmt.Printf("Results written to %s\n", outputFile)
	} else if len(output) > 0 {
		fmt.Println(strings.TrimRight(string(output), "\n"))
	}

	if result.HasChanges {
		fmt.Fprintf(os.Stderr, "\n✓ Comparison complete: %s\n", result.Summary)
	} else {
		fmt.Fprintln(os.Stderr, "\n✓ No differences found")
	}

	return nil
}

// buildOptions layers the comparison settings: library defaults, then the
// optional config file, then any flag the user actually set.
func buildOptions(cmd *cobra.Command) (*differ.Options, error) {
	opts := differ.DefaultOptions()

	logCfg := logging.Config{Level: "info", Format: "console"}

	if configFile != "" {
		fileOpts, err := loadOptionsFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("loading config '%s': %w", configFile, err)
		}
		if err := fileOpts.apply(opts, &logCfg); err != nil {
			return nil, fmt.Errorf("applying config '%s': %w", configFile, err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("path") {
		opts.Path = startPath
	}
	if flags.Changed("check-value") {
		opts.CheckValue = checkValue
	}
	if flags.Changed("check-missing") {
		opts.CheckMissing = checkMissing
	}
	if flags.Changed("check-redundant") {
		opts.CheckRedundant = checkRedundant
	}
	if flags.Changed("check-type") {
		opts.CheckType = checkType
	}
	if flags.Changed("ignore-order") {
		opts.IgnoreOrder = ignoreOrder
	}
	if flags.Changed("exclude") {
		opts.ExcludeFields = excludeFields
	}
	if flags.Changed("type-group") {
		opts.TypeGroups = nil
		for _, spec := range typeGroups {
			group, err := differ.ParseTypeGroup(spec)
			if err != nil {
				return nil, err
			}
			opts.TypeGroups = append(opts.TypeGroups, group)
		}
	}

	if verbose {
		logCfg.Level = "debug"
		logger, err := logging.New(logCfg)
		if err != nil {
			return nil, fmt.Errorf("building logger: %w", err)
		}
		opts.Logger = logger
	}

	return opts, nil
}

// CompareOutput is the JSON envelope written in json format mode.
type CompareOutput struct {
	Success         bool     `json:"success"`
	Differences     []string `json:"differences"`
	DifferenceCount int      `json:"difference_count"`
	IsIdentical     bool     `json:"is_identical"`
	Summary         string   `json:"summary"`
}

func renderResult(result *differ.Result, format string) ([]byte, error) {
	switch format {
	case "json":
		envelope := CompareOutput{
			Success:         true,
			Differences:     result.Strings(),
			DifferenceCount: len(result.Records),
			IsIdentical:     !result.HasChanges,
			Summary:         result.Summary,
		}
		if envelope.Differences == nil {
			envelope.Differences = []string{}
		}
		return json.MarshalIndent(envelope, "", "  ")
	case "table":
		return []byte(formatAsTable(result)), nil
	case "text", "":
		return []byte(strings.Join(result.Strings(), "\n")), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: text, table, json)", format)
	}
}

func formatAsTable(result *differ.Result) string {
	var b strings.Builder

	b.WriteString("Structural Comparison\n")
	b.WriteString("=====================\n\n")
	b.WriteString(fmt.Sprintf("Files:\n  Origin:  %s\n  Current: %s\n\n", originFile, currentFile))

	if !result.HasChanges {
		b.WriteString("No differences found.\n")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("Summary: %s\n\n", result.Summary))
	b.WriteString("Differences:\n")
	b.WriteString("------------\n")
	for _, rec := range result.Records {
		b.WriteString(fmt.Sprintf("  %s\n", rec.String()))
	}

	return b.String()
}
