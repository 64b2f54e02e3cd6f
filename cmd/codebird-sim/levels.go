package main

import (
	"fmt"

	"github.com/cbag/codebird-cave/config"
	"github.com/cbag/codebird-cave/shared/levelseq"
	"github.com/cbag/codebird-cave/shared/tilegrid"
	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the levels in play order",
	Long:  `Shows every loaded level with its size, spawn point, end and tile counts.`,
	RunE:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	levels, names, err := loadLevels()
	if err != nil {
		return err
	}
	order := levelseq.Order(config.Level.Order, names)

	fmt.Println(headerStyle.Render(fmt.Sprintf("  %-10s %-8s %-14s %-6s %-6s %-6s %-6s %s",
		"NAME", "SIZE", "SPAWN", "END", "SOLID", "BREAK", "EXIT", "HAZARDS")))
	for _, name := range order {
		l := levels[name]
		g := l.Grid
		fmt.Printf("  %-10s %-8s %-14s %-6.1f %-6d %-6d %-6d %d\n",
			l.Name,
			fmt.Sprintf("%dx%d", g.Width, g.Height),
			fmt.Sprintf("(%.1f, %.1f)", l.Spawn.X, l.Spawn.Y),
			l.End,
			g.Layer(tilegrid.SolidA).Count(),
			g.Layer(tilegrid.SolidB).Count(),
			g.Layer(tilegrid.Exit).Count(),
			len(l.Hazards),
		)
	}
	return nil
}
