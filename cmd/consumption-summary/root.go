package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"git.sr.ht/~whereswaldon/energy-viewer/backend"
	"git.sr.ht/~whereswaldon/energy-viewer/config"
)

var (
	cfgFile  string
	dataPath string
	typeKey  string
)

var rootCmd = &cobra.Command{
	Use:   "consumption-summary",
	Short: "Summarize consumption data grouped by type and state",
	Long: `consumption-summary loads a consumption CSV the same way energy-viewer does and
prints the resulting groups. Without --type it lists every consumption type with
its peak value; with --type it lists the states of that type.`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./"+config.DefaultConfigPath()+")")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "CSV file of consumption data (default is the configured data file)")
	rootCmd.Flags().StringVar(&typeKey, "type", "", "list the states of one consumption type")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// getConfigPath returns the config file path
func getConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultConfigPath()
}

// openDataset loads the CSV named by --data or the config file
func openDataset() (*backend.Dataset, error) {
	path := dataPath
	if path == "" {
		cfg, err := config.Load(getConfigPath())
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		path = cfg.Data
	}
	if path == "" {
		return nil, fmt.Errorf("no data file: pass --data or set data in %s", getConfigPath())
	}
	return backend.LoadFile(path)
}

func runSummary(cmd *cobra.Command, args []string) error {
	ds, err := openDataset()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if typeKey == "" {
		printTypes(out, ds)
		return nil
	}
	group, ok := ds.Type(typeKey)
	if !ok {
		return fmt.Errorf("no consumption type %q in data", typeKey)
	}
	printStates(out, group)
	return nil
}
