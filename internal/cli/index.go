package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/krail/prototags/internal/store"
	"github.com/krail/prototags/internal/tags"
	"github.com/krail/prototags/internal/walk"
)

var (
	indexKinds   string
	indexRebuild bool
)

var indexCmd = &cobra.Command{
	Use:   "index [path]",
	Short: "Scan definition files into a persistent tag index",
	Long: `Scan protobuf definition files under the given directory and store the
extracted tags in a persistent index for later lookup. Files whose
modification time is unchanged since the last run are skipped.

Examples:
  prototags index .            # Index current directory
  prototags index --rebuild .  # Drop and rebuild the index`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().StringVar(&indexKinds, "kinds", "", "kind letters to index (e.g. \"pmfegsr\")")
	indexCmd.Flags().BoolVar(&indexRebuild, "rebuild", false, "clear the index before scanning")
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	path := GetRootDir()
	if len(args) > 0 {
		var err error
		path, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}

	enabled, err := enabledKinds(indexKinds)
	if err != nil {
		return err
	}

	st, err := store.Open(indexPath(path))
	if err != nil {
		return fmt.Errorf("failed to open tag index: %w", err)
	}
	defer st.Close()

	if indexRebuild {
		if err := st.Clear(); err != nil {
			return fmt.Errorf("failed to clear index: %w", err)
		}
	}

	walker := walk.NewWalker(cfg.Scan.Includes, cfg.Scan.Excludes)
	files, err := walker.Walk(path)
	if err != nil {
		return fmt.Errorf("failed to walk %s: %w", path, err)
	}

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("Indexing"),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)

	indexed := 0
	skipped := 0
	total := 0
	for _, f := range files {
		meta, found, err := st.FileMeta(f.Path)
		if err != nil {
			return err
		}
		if found && meta.ModTime == f.ModTime && !indexRebuild {
			skipped++
			total += meta.TagCount
			_ = bar.Add(1)
			continue
		}

		ts, err := tags.ScanFile(f.Path, enabled)
		if err != nil {
			return fmt.Errorf("failed to scan %s: %w", f.Path, err)
		}

		err = st.PutFileTags(store.FileMeta{Path: f.Path, ModTime: f.ModTime}, ts)
		if err != nil {
			return fmt.Errorf("failed to store tags for %s: %w", f.Path, err)
		}
		indexed++
		total += len(ts)
		_ = bar.Add(1)
	}

	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	fmt.Printf("%s indexed %d files (%d unchanged), %d tags\n", green("SUCCESS:"), indexed, skipped, total)
	return nil
}

// indexPath resolves the index database location; relative config paths are
// anchored at the indexed directory.
func indexPath(dir string) string {
	p := cfg.Index.Path
	if !filepath.IsAbs(p) {
		p = filepath.Join(dir, p)
	}
	return p
}
