package main

import (
	"fmt"
	"sort"

	"github.com/cbag/codebird-cave/config"
	"github.com/cbag/codebird-cave/shared/levelseq"
	"github.com/cbag/codebird-cave/shared/physics"
	"github.com/cbag/codebird-cave/shared/replay"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagScript string
	flagLevel  string
	flagIdle   int
	flagDT     float64
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Width(12)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Play a scripted input timeline",
	Long: `Plays the level sequence from the first level (or --level) using the
input steps in --script. Each step holds its inputs for "ticks" ticks;
reset and teleport fire once at the start of their step.

Script format:
  level: level1        # optional
  steps:
    - ticks: 90
      right: true
    - ticks: 2
      right: true
      jump: true`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVarP(&flagScript, "script", "s", "", "Path to the input script YAML")
	runCmd.Flags().StringVar(&flagLevel, "level", "", "Level to start on (overrides the script)")
	runCmd.Flags().IntVar(&flagIdle, "idle", 0, "Ticks to run with no input after the script")
	runCmd.Flags().Float64Var(&flagDT, "dt", 0, "Seconds per tick (default: 1/TPS)")
	_ = runCmd.MarkFlagRequired("script")
}

func runRun(cmd *cobra.Command, args []string) error {
	script, err := replay.LoadScript(flagScript)
	if err != nil {
		return err
	}
	levels, names, err := loadLevels()
	if err != nil {
		return err
	}

	dt := flagDT
	if dt <= 0 {
		dt = 1 / float64(config.C.TPS)
	}

	runner, err := replay.NewRunner(levels, levelseq.Order(config.Level.Order, names),
		config.Physics.Session(), dt, log.Default())
	if err != nil {
		return err
	}

	start := script.Level
	if flagLevel != "" {
		start = flagLevel
	}
	if start != "" {
		if err := runner.StartAt(start); err != nil {
			return err
		}
	}

	log.Info("running", "script", flagScript, "ticks", script.Ticks(), "idle", flagIdle, "dt", dt)
	res, err := runner.Run(script, flagIdle)
	if err != nil {
		return err
	}
	printResult(res)
	return nil
}

func printResult(res replay.Result) {
	p := res.Player
	fmt.Println(headerStyle.Render("Result"))
	row := func(label, value string) {
		fmt.Println(labelStyle.Render(label) + value)
	}
	row("ticks", fmt.Sprint(res.Ticks))
	if res.Finished {
		row("level", okStyle.Render(res.Level+" (all levels cleared)"))
	} else {
		row("level", res.Level)
	}
	row("position", fmt.Sprintf("%.3f, %.3f", p.Pos.X, p.Pos.Y))
	row("velocity", fmt.Sprintf("%.3f, %.3f", p.Vel.X, p.Vel.Y))
	row("state", fmt.Sprintf("%s grounded=%t facing-right=%t", p.State, p.Grounded, p.FacingRight))

	kinds := make([]physics.EventKind, 0, len(res.Events))
	for k := range res.Events {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	for _, k := range kinds {
		row(k.String(), fmt.Sprint(res.Events[k]))
	}
}
