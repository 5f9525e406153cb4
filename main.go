package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/x/explorer"
	"github.com/spf13/cobra"

	"git.sr.ht/~whereswaldon/energy-viewer/backend"
	"git.sr.ht/~whereswaldon/energy-viewer/chart"
	"git.sr.ht/~whereswaldon/energy-viewer/config"
)

var (
	cfgFile     string
	dataPath    string
	defaultType string
)

var rootCmd = &cobra.Command{
	Use:   "energy-viewer",
	Short: "Chart nonrenewable energy consumption by state",
	Long: `energy-viewer plots yearly energy consumption for every state as one line per
state. Choose the consumption type to compare and a state to highlight from the
two selectors above the chart; hover a line to see which state it belongs to.

The data is a CSV file with Year, ConsumptionValue, ConsumptionType and State
columns. Without --data the window offers to open one.`,
	Args: cobra.NoArgs,
	RunE: runViewer,
}

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file (default is ./"+config.DefaultConfigPath()+")")
	rootCmd.Flags().StringVar(&dataPath, "data", "", "CSV file of consumption data")
	rootCmd.Flags().StringVar(&defaultType, "type", "", "consumption type to show first (default \""+chart.DefaultType+"\")")
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig loads the configuration file
func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		path = config.DefaultConfigPath()
	}
	return config.Load(path)
}

func runViewer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	source := dataPath
	if source == "" {
		source = cfg.Data
	}
	initialType := defaultType
	if initialType == "" {
		initialType = cfg.GetDefaultType(chart.DefaultType)
	}
	width, height := cfg.GetWindowSize()

	go func() {
		w := app.NewWindow(
			app.Title("Nonrenewable Energy Consumption"),
			app.Size(unit.Dp(width), unit.Dp(height)),
		)
		if err := loop(w, source, initialType); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
	return nil
}

func loop(w *app.Window, source, initialType string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ws := backend.NewWindowState(ctx, backend.NewBundle(), w)
	expl := explorer.NewExplorer(w)
	ui := NewUI(ws, expl, initialType)
	if source != "" {
		if err := ws.Datasource.LoadFromFile(source); err != nil {
			return fmt.Errorf("failed loading %s: %w", source, err)
		}
	}

	var ops op.Ops
	for {
		ev := w.NextEvent()
		expl.ListenEvents(ev)
		switch ev := ev.(type) {
		case app.DestroyEvent:
			return ev.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, ev)
			ui.Layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
}
