package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/krail/prototags/internal/store"
	"github.com/krail/prototags/internal/tags"
)

var lookupPrefix bool

var lookupCmd = &cobra.Command{
	Use:   "lookup <name>",
	Short: "Query the tag index by symbol name",
	Long: `Look up tags in the persistent index built by "prototags index".

Examples:
  prototags lookup MyMessage           # Exact name match
  prototags lookup --prefix My         # All names starting with "My"`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().BoolVar(&lookupPrefix, "prefix", false, "match by name prefix instead of exact name")
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	st, err := store.Open(indexPath(GetRootDir()))
	if err != nil {
		return fmt.Errorf("failed to open tag index: %w", err)
	}
	defer st.Close()

	var ts []tags.Tag
	if lookupPrefix {
		ts, err = st.LookupPrefix(args[0])
	} else {
		ts, err = st.Lookup(args[0])
	}
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}

	if len(ts) == 0 {
		yellow := color.New(color.FgYellow, color.Bold).SprintFunc()
		fmt.Printf("%s no tags matching `%s`\n", yellow("NOT FOUND:"), args[0])
		return nil
	}

	return tags.WritePretty(os.Stdout, ts)
}
