// Package recorder applies the side effects of game events that every
// frontend shares: sounds, high-score persistence and logging.
package recorder

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/H4wk507/terminal-flappy-bird/internal/core"
	"github.com/H4wk507/terminal-flappy-bird/internal/platform/audio"
)

// ScoreStore is the part of storage.Store the recorder needs.
type ScoreStore interface {
	SaveScore(variant string, score int) (int64, error)
	HighScore(variant string) (int, error)
}

// Recorder watches step results for one game.
type Recorder struct {
	variant string
	store   ScoreStore
	sound   audio.Player
	logger  *log.Logger
	best    int
	saved   bool // Score of the current session already persisted
}

// New creates a recorder. A nil store disables persistence, a nil player
// disables sound and a nil logger discards messages.
func New(variant string, store ScoreStore, sound audio.Player, logger *log.Logger) *Recorder {
	if sound == nil {
		sound = audio.Nop{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	r := &Recorder{
		variant: variant,
		store:   store,
		sound:   sound,
		logger:  logger.With("variant", variant),
	}

	if store != nil {
		best, err := store.HighScore(variant)
		if err != nil {
			r.logger.Warn("cannot load high score", "err", err)
		}
		r.best = best
	}
	return r
}

// Observe handles the events and state of one step.
func (r *Recorder) Observe(result core.StepResult) {
	for _, e := range result.Events {
		switch e {
		case core.EventFlap:
			r.sound.Flap()
		case core.EventScore:
			r.sound.Score()
			r.logger.Debug("gap passed", "score", result.State.Score)
		case core.EventCrash:
			r.sound.Crash()
			r.logger.Info("crashed", "score", result.State.Score)
		case core.EventRestart:
			r.saved = false
			r.logger.Debug("restarted")
		}
	}

	if result.State.Score > r.best {
		r.best = result.State.Score
	}
	if result.State.GameOver || result.State.Exited {
		r.save(result.State.Score)
	}
}

// EndSession closes the current session without a crash, for example when a
// resize replaces it. An unsaved positive score is recorded.
func (r *Recorder) EndSession(score int) {
	r.save(score)
	r.saved = false
}

// save persists a finished session once. Zero scores are not recorded.
func (r *Recorder) save(score int) {
	if r.saved || score <= 0 {
		return
	}
	r.saved = true

	if r.store == nil {
		return
	}
	if _, err := r.store.SaveScore(r.variant, score); err != nil {
		r.logger.Warn("cannot save score", "score", score, "err", err)
		return
	}
	r.logger.Info("score saved", "score", score)
}

// Best returns the higher of the stored high score and any score seen since.
func (r *Recorder) Best() int {
	return r.best
}
