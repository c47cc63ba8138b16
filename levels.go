package main

import (
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/automoto/ninja/assets"
	"github.com/automoto/ninja/config"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the bundled levels",
	Long:  `Shows every level bundled with the game, its size and its zones.`,
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	loader := levelLoader()
	names, err := loader.Names()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No levels available.")
		return nil
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("name", "size", "cells", "spawn", "dead zones", "finish lines")
	for _, name := range names {
		l, err := loader.LoadData(name)
		if err != nil {
			return err
		}
		g := l.Grid
		spawn := l.Spawn()
		tbl.Row(
			name,
			fmt.Sprintf("%gx%g", g.PixelWidth(), g.PixelHeight()),
			fmt.Sprintf("%dx%d", g.Cols(), g.Rows()),
			fmt.Sprintf("%g,%g", spawn.X, spawn.Y),
			strconv.Itoa(len(l.DeadZones)),
			strconv.Itoa(len(l.FinishLines)),
		)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, tbl.String())
	fmt.Fprintln(out, "Run 'ninja play --level <name>' to play a level.")
	return nil
}

// levelLoader reads levels from config.Level.Dir when that directory exists
// under the working directory, and from the embedded levels otherwise.
func levelLoader() *assets.LevelLoader {
	dir := config.Level.Dir
	if dir != "" && fs.ValidPath(dir) {
		if st, err := os.Stat(dir); err == nil && st.IsDir() {
			log.Debug("loading levels from disk", "dir", dir)
			return assets.NewLevelLoaderFS(os.DirFS("."), dir)
		}
	}
	return assets.NewLevelLoader()
}
