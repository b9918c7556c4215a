// tether-sandbox is an interactive demo of the FABRIK chain:
// a chain pinned to a slowly sweeping base tracks the mouse (or an orbiting
// autopilot), with joint and mid-segment attachment markers overlaid.
// Keys: q/esc quit, space toggles drawing, m toggles sound
package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/tether/audio"
	"github.com/lixenwraith/tether/chain"
	"github.com/lixenwraith/tether/core"
	"github.com/lixenwraith/tether/registry"
	"github.com/lixenwraith/tether/render"
	"github.com/lixenwraith/tether/system"
)

var (
	flagConfig    string
	flagSegments  int
	flagLength    float64
	flagThickness int
	flagSound     bool
)

var rootCmd = &cobra.Command{
	Use:   "tether-sandbox",
	Short: "Interactive FABRIK chain demo in the terminal",
	Long: `tether-sandbox animates a fixed-length segment chain pinned to a moving
base anchor while its end effector tracks the mouse pointer. Move the mouse
out of reach to see the chain fully extend and point at the target.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := DefaultConfig()
		if flagConfig != "" {
			if err := LoadConfig(flagConfig, &cfg); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("segments") {
			cfg.Segments = flagSegments
		}
		if cmd.Flags().Changed("length") {
			cfg.Length = flagLength
		}
		if cmd.Flags().Changed("thickness") {
			cfg.Thickness = flagThickness
		}
		if cmd.Flags().Changed("sound") {
			cfg.Sound = flagSound
		}
		return run(cfg)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "TOML config file")
	rootCmd.Flags().IntVarP(&flagSegments, "segments", "n", 8, "segment count")
	rootCmd.Flags().Float64VarP(&flagLength, "length", "l", 4, "segment length in cells")
	rootCmd.Flags().IntVarP(&flagThickness, "thickness", "t", 1, "stroke thickness in cells")
	rootCmd.Flags().BoolVar(&flagSound, "sound", false, "chime on reachability transitions")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	w, h := screen.Size()

	base := &core.StaticAnchor{X: float64(w) / 2, Y: float64(h - 2)}
	target := &core.StaticAnchor{X: float64(w) / 2, Y: float64(h) / 2}

	c, err := chain.New(cfg.Segments, cfg.Length, base, target)
	if err != nil {
		return err
	}
	c.Thickness = cfg.Thickness
	c.Color = core.RGB{R: cfg.Color[0], G: cfg.Color[1], B: cfg.Color[2]}

	// Attachment markers: one per joint plus a mid-segment probe
	joints := make([]*core.StaticAnchor, c.JointCount())
	for i := range joints {
		joints[i] = &core.StaticAnchor{}
		c.AttachJoint(i, joints[i])
	}
	midProbe := &core.StaticAnchor{}
	c.AttachMid(cfg.Segments/2, 0.5, midProbe)

	reg := registry.New()
	reg.Register(c)

	sys := system.NewChainSystem(reg)
	sys.Surface = render.NewScreen(screen)
	sys.Iterations = cfg.Iterations

	chime := audio.NewChime()
	soundOn := cfg.Sound
	if soundOn {
		if err := chime.Init(); err != nil {
			soundOn = false
		}
	}
	defer chime.Cleanup()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)

	mouseDriven := false
	wasReachable := true
	start := time.Now()

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventKey:
				switch {
				case e.Key() == tcell.KeyEscape, e.Rune() == 'q':
					close(quit)
					return nil
				case e.Rune() == ' ':
					c.DrawEnabled = !c.DrawEnabled
				case e.Rune() == 'm':
					if !soundOn {
						if err := chime.Init(); err == nil {
							soundOn = true
						}
					} else {
						soundOn = false
					}
				}
			case *tcell.EventMouse:
				mx, my := e.Position()
				target.SetPosition(float64(mx), float64(my))
				mouseDriven = true
			case *tcell.EventResize:
				screen.Sync()
				w, h = screen.Size()
			}

		case now := <-ticker.C:
			t := now.Sub(start).Seconds()

			// Base sweeps along the bottom edge
			base.X = float64(w)/2 + math.Sin(t*0.4)*float64(w)/4
			base.Y = float64(h - 2)

			// Autopilot orbit until the mouse takes over
			if !mouseDriven {
				r := c.TotalLength() * 0.8
				target.X = float64(w)/2 + math.Cos(t)*r
				target.Y = float64(h)/2 + math.Sin(t*1.3)*r/2
			}

			bp, _ := c.BasePosition()
			tp, _ := c.TargetPosition()
			reachable := math.Hypot(tp.X-bp.X, tp.Y-bp.Y) <= c.TotalLength()
			if soundOn && reachable != wasReachable {
				if reachable {
					chime.Play(880, 120*time.Millisecond)
				} else {
					chime.Play(330, 120*time.Millisecond)
				}
			}
			wasReachable = reachable

			screen.Clear()
			sys.Update()
			drawMarkers(screen, joints, midProbe)
			drawStatus(screen, h, c, reachable)
			screen.Show()
		}
	}
}

// drawMarkers overlays joint and mid-segment attachment positions
func drawMarkers(screen tcell.Screen, joints []*core.StaticAnchor, mid *core.StaticAnchor) {
	jointStyle := tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 200, 80))
	for _, j := range joints {
		screen.SetContent(int(math.Round(j.X)), int(math.Round(j.Y)), 'o', nil, jointStyle)
	}
	midStyle := tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 80, 120))
	screen.SetContent(int(math.Round(mid.X)), int(math.Round(mid.Y)), '+', nil, midStyle)
}

// drawStatus renders the one-line HUD at the bottom of the screen
func drawStatus(screen tcell.Screen, h int, c *chain.Chain, reachable bool) {
	state := "reachable"
	if !reachable {
		state = "out of reach"
	}
	draw := "on"
	if !c.DrawEnabled {
		draw = "off"
	}
	msg := fmt.Sprintf(" %d segments  reach %.0f  target %s  draw %s  [q]uit [space]draw [m]sound ",
		c.SegmentCount(), c.TotalLength(), state, draw)
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, r := range msg {
		screen.SetContent(i, h-1, r, nil, style)
	}
}
