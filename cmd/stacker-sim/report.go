package main

import (
	"io"
	"text/template"
	"time"

	"github.com/plus3/stacker/engine"
	"github.com/plus3/stacker/stacker"
)

type Report struct {
	// Configuration
	Duration  time.Duration
	FrameTime time.Duration
	Config    stacker.Config

	// Results
	Frames     int64
	TotalTime  time.Duration
	UpdateTime Stats
	Game       stacker.Stats
	Level      int
	Speed      float64
	Aligned    int64
	Forced     int64
	Scheduler  *engine.SchedulerStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Stacker Simulation Report

## Configuration
- **Grid:** {{.Config.Width}}x{{.Config.Height}} cells of {{.Config.GridSize}}
- **Spawn:** {{.Config.Spawn}} (seed {{.Config.Seed}})
- **Wall-clock Limit:** {{.Duration}}
- **Frame Time:** {{.FrameTime}}

## Game Results
- **Frames:** {{.Frames}}
- **Simulated Time:** {{simulated .Frames .FrameTime}}
- **Placements:** {{.Game.Placements}} ({{.Aligned}} aligned, {{.Forced}} forced)
- **Final Level:** {{.Level}}
- **Final Speed:** {{printf "%.3f" .Speed}}
- **Bounces:** {{.Game.Bounces}}
- **Wraps:** {{.Game.Wraps}}

## Performance Results
- **Total Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
{{if .Scheduler}}
## Systems
| System | Runs | Avg | Max |
|--------|------|-----|-----|
{{range .Scheduler.Systems}}| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{end}}{{end}}`

	fm := template.FuncMap{
		"simulated": func(frames int64, dt time.Duration) time.Duration {
			return time.Duration(frames) * dt
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
