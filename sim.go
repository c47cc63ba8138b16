package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/automoto/ninja/config"
	"github.com/automoto/ninja/shared/leveldata"
	"github.com/automoto/ninja/sim"
)

var (
	flagSimLevel  string
	flagScript    string
	flagDt        float64
	flagRealtime  bool
	flagEvery     int
	flagTraceYAML bool
)

// demoScript runs right, jumps twice and stops.
var demoScript = sim.Script{
	Dt: sim.DefaultDt,
	Steps: []sim.Segment{
		{Frames: 30},
		{Frames: 60, Hold: []string{"move_right"}},
		{Frames: 15, Hold: []string{"move_right", "jump"}},
		{Frames: 60, Hold: []string{"move_right", "run"}},
		{Frames: 20, Hold: []string{"move_right", "run", "jump"}},
		{Frames: 60},
	},
}

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Replay an input script without a window",
	Long: `Run the movement core headless over a level and print a per-frame trace.

A script is YAML:

  level: level01
  dt: 0.0166667
  steps:
    - frames: 60
      hold: [move_right, run]
    - frames: 10
      hold: [move_right, jump]

Without --script a short demo run is used.

Examples:
  ninja sim
  ninja sim --script run.yaml --every 10
  ninja sim --level ./mylevel.tmx --yaml`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagSimLevel, "level", "", "Level name or path to a .tmx file (overrides the script)")
	simCmd.Flags().StringVar(&flagScript, "script", "", "Path to an input script YAML")
	simCmd.Flags().Float64Var(&flagDt, "dt", sim.DefaultDt, "Frame time in seconds (overrides the script)")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace frames at the configured TPS")
	simCmd.Flags().IntVar(&flagEvery, "every", 1, "Print every n-th frame (notable frames are always printed)")
	simCmd.Flags().BoolVar(&flagTraceYAML, "yaml", false, "Print the full trace as YAML")
}

func runSim(cmd *cobra.Command, args []string) error {
	script := demoScript
	if flagScript != "" {
		s, err := sim.LoadScript(flagScript)
		if err != nil {
			return err
		}
		script = s
	}
	if cmd.Flags().Changed("dt") {
		script.Dt = flagDt
	}

	name := script.Level
	if flagSimLevel != "" {
		name = flagSimLevel
	}
	if name == "" {
		name = config.Level.Default
	}
	level, err := loadSimLevel(name)
	if err != nil {
		return err
	}

	runner, err := sim.NewRunner(level, config.Physics.Params(), sim.Options{
		W:            config.Player.CollisionWidth,
		H:            config.Player.CollisionHeight,
		SearchRadius: config.Physics.SearchRadius,
		FallMargin:   config.DeathZone.FallMargin,
		Spawn:        script.Spawn,
	})
	if err != nil {
		return err
	}
	if flagRealtime {
		runner.TickRate = config.C.TPS
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	trace, err := runner.Run(ctx, script)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	out := cmd.OutOrStdout()
	if flagTraceYAML {
		data, err := yaml.Marshal(trace)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}

	fmt.Fprintln(out, trace.Table(flagEvery))
	fmt.Fprintln(out, summaryLine(trace.Summary()))
	return nil
}

// loadSimLevel treats names ending in .tmx as paths, anything else as a
// bundled level.
func loadSimLevel(name string) (*leveldata.Level, error) {
	if strings.HasSuffix(name, ".tmx") {
		dir, file := filepath.Split(name)
		if dir == "" {
			dir = "."
		}
		log.Debug("loading level from disk", "path", name)
		return leveldata.LoadLevel(os.DirFS(dir), file)
	}
	return levelLoader().LoadData(name)
}

var (
	summaryLabel = lipgloss.NewStyle().Bold(true)
	summaryGood  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	summaryBad   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func summaryLine(s sim.Summary) string {
	finish := summaryBad.Render("not finished")
	if s.Finished {
		finish = summaryGood.Render(fmt.Sprintf("finished at frame %d", s.FinishFrame))
	}
	return fmt.Sprintf("%s %d frames, %d jumps, %d landings, %d deaths, max x %.1f, %s",
		summaryLabel.Render("summary:"), s.Frames, s.Jumps, s.Landings, s.Deaths, s.MaxX, finish)
}
