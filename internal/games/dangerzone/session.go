package dangerzone

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dangerzone/internal/config"
	"github.com/vovakirdan/tui-dangerzone/internal/core"
	"github.com/vovakirdan/tui-dangerzone/internal/ledger"
)

// ErrNotEnteringName is returned by SubmitName outside the name prompt.
var ErrNotEnteringName = errors.New("dangerzone: no high score entry in progress")

// Options holds the collaborators of a session. Zero values get defaults.
type Options struct {
	Rand   Rand        // Defaults to a math/rand source seeded with Seed
	Seed   int64       // Used only when Rand is nil
	Audio  AudioSink   // Defaults to NopAudio
	Logger *log.Logger // Defaults to a discarding logger
}

// TickResult reports the transitions that happened during one Update.
type TickResult struct {
	EnteredGameOver       bool
	EnteredHighScoreEntry bool
	Spawned               int
	Recycled              int
}

// InputResult reports how the session reacted to an action.
type InputResult struct {
	Quit    bool
	Started bool
	Jumped  bool
	Reset   bool
	Ignored bool
}

// Session owns the whole simulation: player, obstacles, particles, score and
// round state. It is single-threaded; the host drives it with Update and
// OnInput from one goroutine.
type Session struct {
	cfg        config.Config
	difficulty *config.DifficultyModel
	rng        Rand
	audio      AudioSink
	logger     *log.Logger
	ledger     *ledger.Ledger

	state        State
	player       Player
	pool         *DangerPool
	particles    *ParticleSystem
	history      *History
	score        float64
	clock        float64 // Seconds of play in the current round
	lastSpawn    float64
	gameOverTime float64
	scroll       float64
	uptime       float64
}

// NewSession creates an idle session. A nil ledger gets an in-memory one.
func NewSession(cfg config.Config, l *ledger.Ledger, opts Options) *Session {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(opts.Seed))
	}
	if opts.Audio == nil {
		opts.Audio = NopAudio{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if l == nil {
		l = ledger.New(cfg.Session.MaxScores)
	}

	s := &Session{
		cfg:        cfg,
		difficulty: config.NewDifficultyModel(cfg.Difficulty),
		rng:        opts.Rand,
		audio:      opts.Audio,
		logger:     opts.Logger,
		ledger:     l,
		pool:       NewDangerPool(cfg.Dangers.PoolSize),
		particles:  NewParticleSystem(cfg.Particles.Count),
		history:    NewHistory(cfg.Motion.BlurSamples),
	}
	s.Reset()
	return s
}

// Reset returns the session to Idle with a fresh round.
func (s *Session) Reset() {
	s.state = StateIdle
	s.player = Player{Pos: s.cfg.World.Height / 2}
	s.pool.ResetAll()
	s.particles.Clear()
	s.history.Clear()
	s.score = 0
	s.clock = 0
	s.lastSpawn = 0
	s.gameOverTime = 0
	s.scroll = 0
}

// sanitizeDelta applies the frame-delta policy: invalid deltas become 0 and
// long stalls are clamped.
func (s *Session) sanitizeDelta(dt float64) float64 {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return 0
	}
	if limit := s.cfg.Session.MaxFrameDelta; limit > 0 && dt > limit {
		return limit
	}
	return dt
}

// Update advances the simulation by dt seconds of wall time.
func (s *Session) Update(dt float64) TickResult {
	var res TickResult
	dt = s.sanitizeDelta(dt)
	if dt == 0 {
		return res
	}
	s.uptime += dt

	steps := 1
	if maxStep := s.cfg.Session.MaxStep; maxStep > 0 && dt > maxStep {
		steps = int(math.Ceil(dt / maxStep))
	}
	step := dt / float64(steps)
	for i := 0; i < steps; i++ {
		s.step(step, &res)
	}
	return res
}

func (s *Session) step(dt float64, res *TickResult) {
	speed := s.cfg.Dangers.Speed
	s.scroll += dt * speed

	wasPlaying := s.state == StatePlaying
	if wasPlaying {
		s.player.Integrate(dt, s.cfg.Player.Gravity)
		s.clock += dt

		if s.clock-s.lastSpawn >= s.cfg.Dangers.Period {
			s.lastSpawn = s.clock
			n := s.difficulty.SpawnCount(s.score, s.rng.Float64())
			for j := 0; j < n; j++ {
				s.pool.Allocate(s.rng, &s.cfg)
			}
			res.Spawned += n
		}

		s.pool.ForEachActive(func(d *Danger) { d.Update(dt, speed) })

		if s.player.OutOfBounds(s.cfg.Player.HalfHeight, s.cfg.World.Height) {
			s.enterGameOver(res, "out of bounds")
		} else if s.collides() {
			s.enterGameOver(res, "hit a danger")
		} else {
			s.score += s.cfg.Score.PerSecond * dt
		}
	}

	if !s.state.IsOver() {
		gx := s.cfg.Player.Gravity * dt
		gy := speed * dt
		if core.LengthSq(gx, gy) > core.Squared(s.cfg.Motion.HistoryDistance) {
			s.history.Push(s.player.Pos)
		}
	} else {
		if s.gameOverTime < s.cfg.Session.GameOverDelay {
			s.gameOverTime += dt
		}
		if s.maybeOpenEntry() {
			res.EnteredHighScoreEntry = true
		}
	}

	if !wasPlaying {
		s.pool.ForEachActive(func(d *Danger) { d.Update(dt, speed) })
	}
	res.Recycled += s.pool.SweepExpired(s.cfg.Dangers.Offset)
	s.particles.Update(dt)
}

func (s *Session) collides() bool {
	px := s.cfg.Player.OffsetX
	py := s.player.Pos
	pr := s.cfg.Player.Radius
	dr := s.cfg.Dangers.Radius
	return s.pool.AnyActive(func(d *Danger) bool {
		return d.CloseTo(px, py, pr, dr)
	})
}

// enterGameOver ends the round. It runs at most once per round.
func (s *Session) enterGameOver(res *TickResult, reason string) {
	if s.state != StatePlaying {
		return
	}
	s.state = StateGameOver
	s.gameOverTime = 0
	s.audio.Play(CueExplode)
	s.particles.Seed(s.cfg.Player.OffsetX, s.player.Pos, s.rng, &s.cfg)
	res.EnteredGameOver = true
	s.logger.Debug("round over", "reason", reason, "score", s.Score(), "duration", s.clock)
}

// maybeOpenEntry opens the name prompt once the debounce has passed and the
// score makes the table.
func (s *Session) maybeOpenEntry() bool {
	if s.state != StateGameOver || !s.debounced() {
		return false
	}
	if !s.ledger.Qualifies(s.Score()) {
		return false
	}
	s.state = StateHighScoreEntry
	s.logger.Debug("high score entry opened", "score", s.Score())
	return true
}

func (s *Session) debounced() bool {
	return s.gameOverTime >= s.cfg.Session.GameOverDelay
}

// OnInput applies a discrete action.
func (s *Session) OnInput(a core.Action) InputResult {
	if a == core.ActionQuit {
		return InputResult{Quit: true}
	}
	if a == core.ActionNone {
		return InputResult{Ignored: true}
	}

	switch s.state {
	case StateIdle:
		s.start()
		return InputResult{Started: true}
	case StatePlaying:
		s.player.Jump(s.cfg.Player.Bounce)
		s.audio.Play(CueJump)
		return InputResult{Jumped: true}
	case StateGameOver:
		if !s.debounced() {
			return InputResult{Ignored: true}
		}
		if s.maybeOpenEntry() {
			return InputResult{Ignored: true}
		}
		s.Reset()
		s.logger.Debug("session reset")
		return InputResult{Reset: true}
	}
	// Name entry takes text through SubmitName.
	return InputResult{Ignored: true}
}

func (s *Session) start() {
	s.state = StatePlaying
	s.clock = 0
	s.lastSpawn = -s.cfg.Dangers.Period
	s.audio.Play(CueBegin)
	s.logger.Debug("round started", "tier", s.difficulty.Tier(0))
}

// SubmitName records the current score under name and returns to Idle.
// A persistence failure is returned after the state change has happened.
func (s *Session) SubmitName(name string) error {
	if s.state != StateHighScoreEntry {
		return ErrNotEnteringName
	}
	score := s.Score()
	rank := s.ledger.Insert(score, name)
	s.logger.Debug("high score recorded", "score", score, "rank", rank)
	err := s.ledger.Save()
	s.Reset()
	if err != nil && !errors.Is(err, ledger.ErrNoPersister) {
		return fmt.Errorf("dangerzone: %w", err)
	}
	return nil
}

// State returns the current round phase.
func (s *Session) State() State { return s.state }

// Score returns the score truncated to an integer.
func (s *Session) Score() int { return int(s.score) }

// RawScore returns the accumulated fractional score.
func (s *Session) RawScore() float64 { return s.score }

// RoundTime returns the seconds played in the current round.
func (s *Session) RoundTime() float64 { return s.clock }

// GameOverTime returns the seconds since the round ended, capped just past the debounce.
func (s *Session) GameOverTime() float64 { return s.gameOverTime }

// Uptime returns the total simulated seconds since the session was created.
func (s *Session) Uptime() float64 { return s.uptime }

// Player returns the player.
func (s *Session) Player() Player { return s.player }

// Pool returns the obstacle pool.
func (s *Session) Pool() *DangerPool { return s.pool }

// Particles returns the explosion particles.
func (s *Session) Particles() *ParticleSystem { return s.particles }

// History returns the motion-trail history.
func (s *Session) History() *History { return s.history }

// Ledger returns the high-score ledger.
func (s *Session) Ledger() *ledger.Ledger { return s.ledger }

// Config returns the session's configuration.
func (s *Session) Config() config.Config { return s.cfg }

// Difficulty returns the difficulty model.
func (s *Session) Difficulty() *config.DifficultyModel { return s.difficulty }

// Tier returns the current difficulty tier.
func (s *Session) Tier() int { return s.difficulty.Tier(s.score) }

// ScrollOffset returns the parallax scroll distance.
func (s *Session) ScrollOffset() float64 { return s.scroll }
