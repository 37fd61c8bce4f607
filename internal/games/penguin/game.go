package penguin

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/penguin-flap/internal/config"
	"github.com/vovakirdan/penguin-flap/internal/core"
	"github.com/vovakirdan/penguin-flap/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "penguin"

// Visual characters for rendering
const (
	PlayerBody    = '●'
	PlayerHead    = '▶'
	PlayerDead    = '✗'
	ObstacleChar  = '█'
	CapTop        = '▄'
	CapBottom     = '▀'
	GroundChar    = '═'
	backdropEvery = 29
)

// Host settings set from the CLI before the game is created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	themeID          = DefaultThemeID
	listener         Listener
	logger           *log.Logger
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the
// configured gap values.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetTheme selects the background theme. It returns false for unknown IDs.
func SetTheme(id string) bool {
	if _, ok := ThemeByID(id); !ok {
		return false
	}
	themeID = id
	return true
}

// SetListener registers the flap and hit listener for new games.
func SetListener(l Listener) {
	listener = l
}

// SetLogger sets the logger handed to new sessions.
func SetLogger(l *log.Logger) {
	logger = l
}

// Game adapts a Session to the registry.Game host interface.
type Game struct {
	session *Session
	runtime core.RuntimeConfig
	queue   core.SignalQueue
	frame   FrameResult
	theme   Theme
	paused  bool

	themeSet bool
}

// New creates an unstarted game. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Penguin Flap"
}

// Reset loads the configuration and builds a new session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.queue.Drain()

	lg := logger
	if lg == nil {
		lg = log.New(io.Discard)
	}

	cfg, err := LoadConfig()
	if err != nil {
		lg.Warn("using default config", "err", err)
		cfg = config.DefaultPenguinConfig()
	}

	if !g.themeSet {
		g.theme, _ = ThemeByID(themeID)
	}
	g.session = MustNewSession(cfg,
		WithSeed(runtime.Seed),
		WithListener(listener),
		WithLogger(lg),
	)
	g.frame = g.session.Frame()
}

// LoadConfig loads the configuration the way Reset does: the custom path
// or search path, then the difficulty preset, then validation.
func LoadConfig() (config.PenguinConfig, error) {
	cfg, err := config.LoadPenguin(configPath)
	if err != nil {
		return config.PenguinConfig{}, err
	}
	if difficultyPreset != "" {
		config.ApplyPenguinPreset(&cfg, difficultyPreset)
	}
	if err := cfg.Validate(); err != nil {
		return config.PenguinConfig{}, err
	}
	return cfg, nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && g.session.State() == StatePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	core.SignalsFor(in, &g.queue)
	g.frame = g.session.Step(g.runtime.Dt(), g.queue.Drain())
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	state := g.session.State()
	return core.GameState{
		Score:    g.session.Score(),
		Started:  state != StateIdle,
		GameOver: state == StateGameOver,
		Paused:   g.paused,
	}
}

// Themes implements registry.Themer.
func (g *Game) Themes() []registry.ThemeInfo {
	out := make([]registry.ThemeInfo, 0, len(themes))
	for _, t := range themes {
		out = append(out, registry.ThemeInfo{ID: t.ID, Title: t.Title})
	}
	return out
}

// CurrentTheme implements registry.Themer.
func (g *Game) CurrentTheme() string {
	if g.theme.ID == "" {
		return themeID
	}
	return g.theme.ID
}

// UseTheme implements registry.Themer. The choice survives Reset.
func (g *Game) UseTheme(id string) bool {
	t, ok := ThemeByID(id)
	if !ok {
		return false
	}
	g.theme = t
	g.themeSet = true
	return true
}

// Session exposes the underlying simulation.
func (g *Game) Session() *Session {
	return g.session
}

// Frame returns the last frame produced by Step.
func (g *Game) Frame() FrameResult {
	return g.frame
}

// LastRun implements registry.Reporter.
func (g *Game) LastRun() (registry.RunSummary, bool) {
	if g.session == nil || g.session.State() != StateGameOver {
		return registry.RunSummary{}, false
	}
	return registry.RunSummary{
		RunID:    g.session.RunID(),
		Score:    g.session.Score(),
		Pairs:    g.session.Pairs(),
		Duration: time.Duration(g.session.RunTime() * float64(time.Second)),
		Reason:   g.session.Reason().String(),
	}, true
}

// viewport maps world pixels to screen cells. The bottom row is ground.
type viewport struct {
	sx, sy float64
}

func (g *Game) viewport(dst *core.Screen) viewport {
	cfg := g.session.Config()
	return viewport{
		sx: float64(dst.Width()) / cfg.Screen.Width,
		sy: float64(dst.Height()-1) / cfg.Screen.Height,
	}
}

func (v viewport) rect(b core.Box) core.Rect {
	x0 := int(math.Floor(b.Min.X * v.sx))
	y0 := int(math.Floor(b.Min.Y * v.sy))
	x1 := int(math.Ceil(b.Max.X * v.sx))
	y1 := int(math.Ceil(b.Max.Y * v.sy))
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// Render draws the current frame to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}
	vp := g.viewport(dst)
	groundY := dst.Height() - 1

	g.drawBackdrop(dst, groundY)
	for _, o := range g.frame.Obstacles {
		g.drawObstacle(dst, vp, o)
	}
	g.drawPlayer(dst, vp, g.frame.Player)
	dst.DrawHLine(0, groundY, dst.Width(), GroundChar, g.theme.GroundColor)

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.frame.Score))

	switch {
	case g.paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case g.frame.State == StateIdle:
		drawCenteredMessage(dst, "PENGUIN FLAP", "Press SPACE to start")
	case g.frame.State == StateGameOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.frame.Score))
	}
}

func (g *Game) drawBackdrop(dst *core.Screen, groundY int) {
	for y := 1; y < groundY; y++ {
		for x := 0; x < dst.Width(); x++ {
			if (x*7+y*13)%backdropEvery == 0 {
				dst.SetColored(x, y, g.theme.Backdrop, g.theme.BackdropColor)
			}
		}
	}
}

// drawObstacle draws the collider of an obstacle with a cap on the gap side.
func (g *Game) drawObstacle(dst *core.Screen, vp viewport, o ObstaclePose) {
	r := vp.rect(o.Collider.Bounds())
	dst.DrawRect(r, ObstacleChar, g.theme.ObstacleColor)

	capY, capRune := r.Bottom()-1, CapTop
	if o.Role == RoleBottom {
		capY, capRune = r.Y, CapBottom
	}
	dst.DrawHLine(r.X, capY, r.W, capRune, g.theme.CapColor)
}

func (g *Game) drawPlayer(dst *core.Screen, vp viewport, p PlayerPose) {
	r := vp.rect(p.Collider.Bounds())
	color := g.theme.PlayerColor
	if p.Alive == AliveDead {
		color = core.ColorRed
	}
	dst.DrawRect(r, PlayerBody, color)

	head := PlayerHead
	switch p.Sprite {
	case SpriteDead:
		head = PlayerDead
	case SpriteJump:
		head = '▲'
	}
	dst.SetColored(r.Right()-1, r.Y, head, color)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
