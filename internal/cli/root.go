package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/krail/prototags/config"
	"github.com/krail/prototags/internal/scan"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "prototags",
	Short: "Extract symbol tags from protobuf definition files",
	Long: `prototags scans protobuf definition files and extracts a flat list of
named symbols: packages, messages, fields, enums, enum constants, services
and RPC methods.

Example usage:
  prototags scan .               # Print tags for all .proto files
  prototags index .              # Build a persistent tag index
  prototags lookup MyMessage     # Query the index by symbol name`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./prototags.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}

// enabledKinds resolves the kind selection: the --kinds flag wins over the
// config file, which wins over the kind-table defaults.
func enabledKinds(flagLetters string) (scan.KindSet, error) {
	letters := flagLetters
	if letters == "" {
		letters = cfg.Scan.Kinds
	}
	if letters == "" {
		return scan.DefaultKinds(), nil
	}
	return scan.KindsFromLetters(letters)
}
