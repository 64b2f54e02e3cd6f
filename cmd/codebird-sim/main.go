// codebird-sim plays cave levels headlessly.
//
// Usage:
//
//	codebird-sim levels                  - List the levels and their layout
//	codebird-sim run --script <file>     - Play a scripted input timeline
//
// Global flags:
//
//	--physics <file>     - Physics tuning YAML (default search order applies)
//	--levels-dir <dir>   - Load .tmx maps from a directory instead of the embedded ones
//	--verbose            - Log every step event
package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/cbag/codebird-cave/assets"
	"github.com/cbag/codebird-cave/config"
	"github.com/cbag/codebird-cave/shared/leveldata"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagPhysics   string
	flagLevelsDir string
	flagVerbose   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "codebird-sim",
	Short: "Play Codebird Cave levels without a window",
	Long: `codebird-sim runs the level physics headlessly, driven by a YAML input
script, and reports the events and the final player state.

Examples:
  codebird-sim levels
  codebird-sim run --script configs/sim-script.yaml
  codebird-sim run --script run.yaml --level level2 --idle 120 --verbose
  codebird-sim run --script run.yaml --levels-dir ./maps --physics ./floaty.yaml`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagVerbose {
			log.SetLevel(log.DebugLevel)
		}
		physics, err := config.LoadPhysics(flagPhysics)
		if err != nil {
			return err
		}
		config.Physics = physics
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagPhysics, "physics", "", "Path to a physics tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory of .tmx maps (default: embedded levels)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log every step event")

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(runCmd)
}

// loadLevels reads the embedded maps, or the maps in --levels-dir.
func loadLevels() (map[string]*leveldata.Level, []string, error) {
	if flagLevelsDir == "" {
		return assets.LoadLevels()
	}
	var fsys fs.FS = os.DirFS(flagLevelsDir)
	return leveldata.LoadAllLevels(fsys, ".", config.Level.Options())
}
