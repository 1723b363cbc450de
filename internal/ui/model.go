package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/OZORDI/spring-animations/internal/anim"
	"github.com/OZORDI/spring-animations/internal/spring"
	"github.com/OZORDI/spring-animations/internal/surface"
	"github.com/OZORDI/spring-animations/internal/timeline"
	"github.com/OZORDI/spring-animations/internal/util"
)

// The demo animates three lanes in sequence over a fixed virtual distance;
// rendering maps virtual pixels onto however many cells are available.
const (
	slideDistance = 240.0
	growFrom      = 0.5
)

// Model is the Bubbletea model for the spring playground.
type Model struct {
	label string // preset name or shorthand spec that built the spring
	sp    spring.Spring
	curve anim.Curve
	tl    *timeline.Timeline

	surf  *surface.State
	chase follower
	fade  progress.Model

	stepStart time.Time
	elapsed   time.Duration
	playing   bool

	width    int
	height   int
	quitting bool
}

// New creates a playground model from a shorthand spec string (a preset
// name, key:value pairs, or "" for the defaults).
func New(spec string) (Model, error) {
	cfg, err := spring.Parse(spec)
	if err != nil {
		return Model{}, err
	}
	sp, err := spring.Resolve(cfg)
	if err != nil {
		return Model{}, err
	}

	label := spec
	if label == "" {
		label = fmt.Sprintf("duration:%s, bounce:%s",
			util.FormatNumber(spring.DefaultDuration), util.FormatNumber(spring.DefaultBounce))
	}

	fade := progress.New(
		progress.WithScaledGradient("#FF8C00", "#FF5F1F"),
		progress.WithoutPercentage(),
	)

	m := Model{
		label: label,
		sp:    sp,
		tl:    buildTimeline(sp, anim.CurveSpring),
		surf:  surface.NewState(),
		fade:  fade,
	}
	return m.restarted(), nil
}

func buildTimeline(sp spring.Spring, curve anim.Curve) *timeline.Timeline {
	return timeline.New([]timeline.Step{
		{Label: "slide", Request: anim.Request{From: 0, To: slideDistance, Spring: sp, Properties: []string{"transform"}, Curve: curve}},
		{Label: "fade", Request: anim.Request{From: 0, To: 1, Spring: sp, Properties: []string{"opacity"}, Curve: curve}},
		{Label: "grow", Request: anim.Request{From: growFrom, To: 1, Spring: sp, Properties: []string{"scale"}, Curve: curve}},
	})
}

// restarted rewinds the timeline and the surface to their start values and
// begins playing.
func (m Model) restarted() Model {
	m.tl.Restart()
	m.surf.Set("transform", 0)
	m.surf.Set("opacity", 0)
	m.surf.Set("scale", growFrom)
	m.chase = newFollower(fps, m.sp)
	m.chase.reset(0)
	m.stepStart = time.Now()
	m.elapsed = 0
	m.playing = true
	return m
}

// withSpring swaps in a new spring model, rebuilding the timeline with the
// current curve flavor.
func (m Model) withSpring(sp spring.Spring, label string) Model {
	m.sp = sp
	m.label = label
	m.tl = buildTimeline(sp, m.curve)
	return m.restarted()
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(frameCmd(), tea.SetWindowTitle("springs"))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.handleMsg(msg)
	return next, cmd
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isQuit(msg) {
			m.quitting = true
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		}
		switch msg.String() {
		case " ":
			return m.restarted(), nil
		case "b", "tab":
			m.curve = m.curve.Toggle()
			m.tl.SetCurve(m.curve)
			return m.restarted(), nil
		default:
			if sp, name, ok := presetForKey(msg.String()); ok {
				return m.withSpring(sp, name), nil
			}
		}
		return m, nil

	case frameMsg:
		return m.handleFrame()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.fade.Width = laneWidth(msg.Width)
		return m, nil
	}

	return m, nil
}

// handleFrame advances the in-flight animation by one tick: evaluate the
// current step, write its properties to the surface, advance the timeline
// once the step passes its settle cutoff. The harmonica lane chases the
// slide target on every frame regardless of which step is in flight.
func (m Model) handleFrame() (Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	m.chase.step(slideDistance)

	if m.playing {
		if step := m.tl.Current(); step != nil {
			m.elapsed = time.Since(m.stepStart)
			v := step.Request.At(m.elapsed)
			for _, prop := range step.Request.Properties {
				m.surf.Set(prop, v)
			}
			if step.Request.Done(m.elapsed) {
				if m.tl.Advance() {
					m.stepStart = time.Now()
					m.elapsed = 0
				} else {
					m.playing = false
				}
			}
		} else {
			m.playing = false
		}
	}

	return m, frameCmd()
}

// presetForKey maps the digit keys onto the preset table in name order.
func presetForKey(key string) (spring.Spring, string, bool) {
	names := spring.PresetNames()
	for i, name := range names {
		if key == fmt.Sprintf("%d", i+1) {
			sp, err := spring.FromPreset(name)
			if err != nil {
				return spring.Spring{}, "", false
			}
			return sp, name, true
		}
	}
	return spring.Spring{}, "", false
}

func laneWidth(termWidth int) int {
	w := termWidth - 34
	if w < 16 {
		w = 16
	}
	if w > 48 {
		w = 48
	}
	return w
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	laneW := laneWidth(m.width)

	header := headerStyle.Render("springs")
	title := titleStyle.Render(m.label)
	params := paramStyle.Render(fmt.Sprintf(
		"duration %s  bounce %s  ·  mass %s  stiffness %s  damping %s",
		util.FormatSeconds(m.sp.Duration), util.FormatNumber(m.sp.Bounce),
		util.FormatNumber(m.sp.Mass), util.FormatNumber(m.sp.Stiffness),
		util.FormatNumber(m.sp.Damping)))

	transform := m.surf.GetOr("transform", 0)
	opacity := m.surf.GetOr("opacity", 0)
	scale := m.surf.GetOr("scale", growFrom)

	slideLane := fmt.Sprintf("%s  %s  %s",
		labelStyle.Render("slide"),
		renderLane(transform/slideDistance, laneW),
		valueStyle.Render("transform: "+surface.FormatValue("transform", transform)))
	fadeLane := fmt.Sprintf("%s   %s  %s",
		labelStyle.Render("fade"),
		m.fade.ViewAs(opacity),
		valueStyle.Render("opacity: "+surface.FormatValue("opacity", opacity)))
	growLane := fmt.Sprintf("%s   %s  %s",
		labelStyle.Render("grow"),
		renderScaleBar(scale, laneW),
		valueStyle.Render("scale: "+surface.FormatValue("scale", scale)))
	chaseLane := fmt.Sprintf("%s  %s  %s",
		labelStyle.Render("chase"),
		renderLane(m.chase.pos/slideDistance, laneW),
		helpStyle.Render("(harmonica)"))

	curveLine := statusStyle.Render(fmt.Sprintf("curve: %s", m.curve)) +
		"   " + valueStyle.Render(m.sp.Bezier().CSS())

	status := m.statusLine()

	lines := "\n"
	lines += "  " + header + "\n"
	lines += "\n"
	lines += "  " + title + "\n"
	lines += "  " + params + "\n"
	lines += "\n"
	lines += "  " + slideLane + "\n"
	lines += "  " + fadeLane + "\n"
	lines += "  " + growLane + "\n"
	lines += "  " + chaseLane + "\n"
	lines += "\n"
	lines += "  " + curveLine + "\n"
	lines += "  " + status + "\n"
	lines += "\n"
	lines += "  " + helpStyle.Render(helpText()) + "\n"

	return lines
}

func (m Model) statusLine() string {
	if !m.playing {
		return statusStyle.Render("settled") + "   " + helpStyle.Render("space to replay")
	}
	step := m.tl.Current()
	if step == nil {
		return statusStyle.Render("settled")
	}
	return statusStyle.Render(fmt.Sprintf("%s / %s   step %d/%d: %s",
		util.FormatSeconds(m.elapsed.Seconds()),
		util.FormatSeconds(m.sp.Duration),
		m.tl.Index()+1, m.tl.Len(), step.Label))
}
