package sim

import (
	"fmt"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/automoto/ninja/shared/zones"
)

// Sample is the actor's state after one frame.
type Sample struct {
	Frame   int         `yaml:"frame"`
	TimeMs  float64     `yaml:"time_ms"`
	X       float64     `yaml:"x"`
	Y       float64     `yaml:"y"`
	DX      float64     `yaml:"dx"`
	DY      float64     `yaml:"dy"`
	OnFloor bool        `yaml:"on_floor"`
	Landed  bool        `yaml:"landed,omitempty"`
	Jumped  bool        `yaml:"jumped,omitempty"`
	Contact string      `yaml:"contact"`
	Gap     float64     `yaml:"gap"`
	Clip    string      `yaml:"clip"`
	Event   zones.Event `yaml:"event,omitempty"`
}

type Trace []Sample

// Summary condenses a trace.
type Summary struct {
	Frames      int
	Landings    int
	Jumps       int
	Deaths      int
	Finished    bool
	FinishFrame int
	MaxX        float64
	HighestY    float64
}

func (t Trace) Summary() Summary {
	s := Summary{Frames: len(t), FinishFrame: -1, MaxX: math.Inf(-1), HighestY: math.Inf(1)}
	for _, f := range t {
		if f.Landed {
			s.Landings++
		}
		if f.Jumped {
			s.Jumps++
		}
		switch f.Event {
		case zones.Dead:
			s.Deaths++
		case zones.Finish:
			if !s.Finished {
				s.Finished = true
				s.FinishFrame = f.Frame
			}
		}
		s.MaxX = math.Max(s.MaxX, f.X)
		s.HighestY = math.Min(s.HighestY, f.Y)
	}
	return s
}

// Table renders every every-th sample, plus any frame where something
// happened, as a terminal table.
func (t Trace) Table(every int) string {
	if every < 1 {
		every = 1
	}
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("frame", "x", "y", "dx", "dy", "floor", "contact", "gap", "clip", "event")

	for _, f := range t {
		notable := f.Landed || f.Jumped || f.Event != zones.None
		if f.Frame%every != 0 && !notable {
			continue
		}
		event := ""
		switch {
		case f.Event != zones.None:
			event = f.Event.String()
		case f.Jumped:
			event = "jump"
		case f.Landed:
			event = "land"
		}
		tbl.Row(
			strconv.Itoa(f.Frame),
			num(f.X), num(f.Y), num(f.DX), num(f.DY),
			strconv.FormatBool(f.OnFloor),
			f.Contact,
			num(f.Gap),
			f.Clip,
			event,
		)
	}
	return tbl.String()
}

func num(v float64) string {
	if math.IsInf(v, 0) {
		return "-"
	}
	return fmt.Sprintf("%.2f", v)
}
