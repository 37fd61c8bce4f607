package penguin

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/penguin-flap/internal/config"
	"github.com/vovakirdan/penguin-flap/internal/core"
)

// State is the game state machine tag.
type State int

const (
	StateIdle State = iota
	StatePlaying
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// EndReason tells why a run ended.
type EndReason int

const (
	EndNone EndReason = iota
	EndHit
	EndOutOfBounds
)

// String returns the reason name.
func (r EndReason) String() string {
	switch r {
	case EndHit:
		return "hit"
	case EndOutOfBounds:
		return "out_of_bounds"
	default:
		return "none"
	}
}

// FrameResult is the snapshot returned by every Step. Slices are copies and
// may be kept by the caller.
type FrameResult struct {
	Player    PlayerPose
	Obstacles []ObstaclePose
	Score     int
	State     State
	Reason    EndReason
	Events    []Event
}

// Has reports whether the frame carries the given event.
func (f FrameResult) Has(e Event) bool {
	for _, got := range f.Events {
		if got == e {
			return true
		}
	}
	return false
}

// Session is one game instance. It is not safe for concurrent use.
type Session struct {
	cfg       config.PenguinConfig
	spawner   *Spawner
	player    Player
	obstacles []Obstacle
	state     State
	score     int
	reason    EndReason

	// spawnTimer is non-nil exactly while the state is Playing.
	spawnTimer *Interval

	idleTime float64
	runTime  float64
	runID    string
	events   []Event

	seed     int64
	listener Listener
	logger   *log.Logger
	newRunID func() string
}

// Option configures a Session.
type Option func(*Session)

// WithSeed sets the seed of the gap placement RNG.
func WithSeed(seed int64) Option {
	return func(s *Session) { s.seed = seed }
}

// WithListener registers the flap and hit listener.
func WithListener(l Listener) Option {
	return func(s *Session) {
		if l != nil {
			s.listener = l
		}
	}
}

// WithLogger sets the logger. Sessions are silent by default.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRunIDs replaces the run identifier generator.
func WithRunIDs(gen func() string) Option {
	return func(s *Session) {
		if gen != nil {
			s.newRunID = gen
		}
	}
}

// NewSession validates cfg and creates a session in the Idle state.
func NewSession(cfg config.PenguinConfig, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("penguin: invalid config: %w", err)
	}

	s := &Session{
		cfg:      cfg,
		listener: nopListener{},
		logger:   log.New(io.Discard),
		newRunID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.spawner = NewSpawner(cfg, s.seed)
	s.resetRun()
	s.logger.Debug("session created", "seed", s.seed, "run", s.runID)
	return s, nil
}

// MustNewSession is NewSession that panics on an invalid config.
func MustNewSession(cfg config.PenguinConfig, opts ...Option) *Session {
	s, err := NewSession(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// resetRun puts the session into its initial Idle pose without reallocating
// the player or the obstacle storage.
func (s *Session) resetRun() {
	s.player = newPlayer(s.cfg)
	clear(s.obstacles)
	s.obstacles = s.obstacles[:0]
	s.state = StateIdle
	s.score = 0
	s.reason = EndNone
	s.spawnTimer = nil
	s.idleTime = 0
	s.runTime = 0
	s.runID = s.newRunID()
	s.spawner.ResetCount()
}

// Step applies the queued signals in order and advances the simulation by
// dt seconds.
func (s *Session) Step(dt float64, signals []core.Signal) FrameResult {
	s.events = s.events[:0]
	for _, sig := range signals {
		s.handle(sig)
	}

	switch s.state {
	case StateIdle:
		s.stepIdle(dt)
	case StatePlaying:
		s.stepPlaying(dt)
	case StateGameOver:
		s.stepGameOver(dt)
	}

	return s.Frame()
}

func (s *Session) handle(sig core.Signal) {
	switch sig {
	case core.SignalStart:
		if s.state == StateIdle {
			s.start()
		}
	case core.SignalFlap:
		if s.state == StatePlaying {
			s.flap()
		}
	case core.SignalRestart:
		if s.state == StateGameOver {
			s.restart()
		}
	}
}

func (s *Session) start() {
	s.transition(StatePlaying)
	s.player.Alive = AliveFlying
	s.player.Gravity = true
	s.idleTime = 0
	s.emit(EventStart)

	s.spawnPair()
	s.spawnTimer = NewInterval(s.cfg.Spawn.Interval)
}

func (s *Session) flap() {
	s.player.Vel.Y = -s.cfg.Physics.FlapImpulse
	s.player.Sprite = SpriteJump
	s.emit(EventFlap)
	s.listener.OnFlap()
}

func (s *Session) restart() {
	s.logger.Debug("restart", "run", s.runID, "score", s.score)
	s.resetRun()
	s.emit(EventRestart)
}

// end moves a running game to GameOver. It does nothing outside Playing.
func (s *Session) end(reason EndReason) {
	if s.state != StatePlaying {
		return
	}
	s.transition(StateGameOver)
	s.reason = reason

	s.spawnTimer.Stop()
	s.spawnTimer = nil
	for i := range s.obstacles {
		s.obstacles[i].Vel = core.Vec{}
	}

	s.player.Vel = core.Vec{}
	s.player.Alive = AliveDead
	s.player.Sprite = SpriteDead
	s.player.Gravity = s.cfg.Physics.Ragdoll

	s.emit(EventHit)
	s.listener.OnHit()
	s.logger.Info("run ended",
		"run", s.runID,
		"score", s.score,
		"reason", reason,
		"pairs", s.spawner.Pairs(),
		"duration", fmt.Sprintf("%.2fs", s.runTime),
	)
}

func (s *Session) transition(to State) {
	s.logger.Debug("state transition", "from", s.state, "to", to, "run", s.runID)
	s.state = to
}

func (s *Session) spawnPair() {
	top, bottom := s.spawner.SpawnPair(s.score)
	s.obstacles = append(s.obstacles, top, bottom)
	s.emit(EventSpawn)
	s.logger.Debug("spawned pair",
		"pair", top.Pair,
		"gap", bottom.Pos.Y-top.Pos.Y,
		"center", (top.Pos.Y+bottom.Pos.Y)/2,
	)
}

func (s *Session) stepIdle(dt float64) {
	start := s.cfg.PlayerStart()
	s.player.Pos.Y = start.Y + s.bobOffset(s.idleTime)
	s.idleTime += dt
}

// bobOffset is a sine in-out yoyo between 0 and the bob amplitude.
func (s *Session) bobOffset(t float64) float64 {
	period := s.cfg.Idle.BobPeriod.Seconds()
	if period <= 0 || s.cfg.Idle.BobAmplitude == 0 {
		return 0
	}
	u := math.Mod(t/period, 2)
	if u > 1 {
		u = 2 - u
	}
	return s.cfg.Idle.BobAmplitude * (1 - math.Cos(math.Pi*u)) / 2
}

func (s *Session) stepPlaying(dt float64) {
	for n := s.spawnTimer.Advance(dt); n > 0; n-- {
		s.spawnPair()
	}

	StepPlayer(&s.player, s.cfg.Physics, dt)
	if s.player.Sprite == SpriteJump && s.player.Vel.Y > 0 {
		s.player.Sprite = SpriteIdle
	}
	StepObstacles(s.obstacles, dt)
	s.obstacles = Prune(s.obstacles)
	s.runTime += dt

	if points := ApplyScoring(&s.player, s.obstacles); points > 0 {
		s.score += points
		s.emit(EventScore)
	}

	switch {
	case CheckHit(&s.player, s.obstacles):
		s.end(EndHit)
	case OutOfBounds(&s.player, s.cfg.Screen.Height):
		s.end(EndOutOfBounds)
	}
}

func (s *Session) stepGameOver(dt float64) {
	if !s.player.Gravity {
		return
	}
	StepPlayer(&s.player, s.cfg.Physics, dt)
	restOnFloor(&s.player, s.cfg.Screen.Height)
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}

// Frame returns the current snapshot without advancing time.
func (s *Session) Frame() FrameResult {
	obs := make([]ObstaclePose, len(s.obstacles))
	for i := range s.obstacles {
		obs[i] = s.obstacles[i].pose()
	}
	var events []Event
	if len(s.events) > 0 {
		events = append([]Event(nil), s.events...)
	}
	return FrameResult{
		Player:    s.player.pose(),
		Obstacles: obs,
		Score:     s.score,
		State:     s.state,
		Reason:    s.reason,
		Events:    events,
	}
}

// State returns the current state.
func (s *Session) State() State { return s.state }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Reason returns why the last run ended, or EndNone.
func (s *Session) Reason() EndReason { return s.reason }

// SpawnArmed reports whether the spawn timer is running.
func (s *Session) SpawnArmed() bool { return s.spawnTimer != nil }

// RunID identifies the current run. It changes on restart.
func (s *Session) RunID() string { return s.runID }

// Pairs returns how many obstacle pairs the current run spawned.
func (s *Session) Pairs() int { return s.spawner.Pairs() }

// RunTime returns the simulated seconds spent in Playing.
func (s *Session) RunTime() float64 { return s.runTime }

// Config returns the session configuration.
func (s *Session) Config() config.PenguinConfig { return s.cfg }
