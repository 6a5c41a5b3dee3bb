package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/krail/prototags/internal/tags"
	"github.com/krail/prototags/internal/walk"
)

var (
	scanKinds  string
	scanFormat string
)

var scanCmd = &cobra.Command{
	Use:   "scan [path...]",
	Short: "Scan definition files and print their tags",
	Long: `Scan protobuf definition files and print the extracted tags.

Paths may be files or directories; directories are walked using the
configured include/exclude globs (default: all .proto files).

Examples:
  prototags scan .                      # Scan current directory
  prototags scan api.proto              # Scan a single file
  prototags scan --kinds=pmfegsr .      # Include RPC methods
  prototags scan --format=tags . > tags # Write a tag file`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVar(&scanKinds, "kinds", "", "kind letters to emit (e.g. \"pmfegsr\")")
	scanCmd.Flags().StringVar(&scanFormat, "format", "", "output format: tags, pretty or json")
	rootCmd.AddCommand(scanCmd)
}

// collectInputs resolves path arguments to the list of files to scan.
func collectInputs(args []string) ([]string, error) {
	if len(args) == 0 {
		args = []string{GetRootDir()}
	}

	walker := walk.NewWalker(cfg.Scan.Includes, cfg.Scan.Excludes)

	var paths []string
	for _, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid path: %w", err)
		}

		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("path does not exist: %w", err)
		}

		if !info.IsDir() {
			paths = append(paths, abs)
			continue
		}

		files, err := walker.Walk(abs)
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", abs, err)
		}
		for _, f := range files {
			paths = append(paths, f.Path)
		}
	}

	return paths, nil
}

func runScan(cmd *cobra.Command, args []string) error {
	enabled, err := enabledKinds(scanKinds)
	if err != nil {
		return err
	}

	format := scanFormat
	if format == "" {
		format = cfg.Output.Format
	}

	paths, err := collectInputs(args)
	if err != nil {
		return err
	}

	var all []tags.Tag
	for _, path := range paths {
		ts, err := tags.ScanFile(path, enabled)
		if err != nil {
			return fmt.Errorf("failed to scan %s: %w", path, err)
		}
		all = append(all, ts...)
	}

	return tags.Write(os.Stdout, format, all)
}
