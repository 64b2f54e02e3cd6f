// Package levelseq walks the ordered level list: exits advance, resets and
// hazards reload, and clearing the last level finishes the run.
package levelseq

import (
	"errors"
	"fmt"

	"github.com/cbag/codebird-cave/shared/physics"
	"github.com/cbag/codebird-cave/shared/progress"
	"github.com/charmbracelet/log"
)

var (
	ErrNoLevels         = errors.New("no levels")
	ErrSequenceFinished = errors.New("level sequence finished")
)

// Transition is what the host must do after a tick's events.
type Transition int

const (
	Stay Transition = iota
	Reload
	Advance
	Finished
)

func (t Transition) String() string {
	switch t {
	case Stay:
		return "stay"
	case Reload:
		return "reload"
	case Advance:
		return "advance"
	case Finished:
		return "finished"
	}
	return fmt.Sprintf("Transition(%d)", int(t))
}

// Saver persists progress after each advance. *progress.Store implements it.
type Saver interface {
	Save(p progress.Saved) error
}

type Sequencer struct {
	names    []string
	index    int
	finished bool

	Avatar progress.Avatar

	saver  Saver
	logger *log.Logger
}

// Order keeps the configured order, dropping names that were not loaded.
// With nothing configured it falls back to the loaded names.
func Order(order, loaded []string) []string {
	have := make(map[string]bool, len(loaded))
	for _, name := range loaded {
		have[name] = true
	}
	out := make([]string, 0, len(order))
	for _, name := range order {
		if have[name] {
			out = append(out, name)
		}
	}
	if len(out) == 0 {
		return append(out, loaded...)
	}
	return out
}

func New(names []string, saver Saver, logger *log.Logger) (*Sequencer, error) {
	if len(names) == 0 {
		return nil, ErrNoLevels
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Sequencer{
		names:  append([]string(nil), names...),
		saver:  saver,
		logger: logger,
	}, nil
}

func (s *Sequencer) Current() string { return s.names[s.index] }
func (s *Sequencer) Index() int      { return s.index }
func (s *Sequencer) Len() int        { return len(s.names) }
func (s *Sequencer) Done() bool      { return s.finished }

// Resume continues from saved progress. Records naming an unknown level
// fall back to the stored index, then to the first level.
func (s *Sequencer) Resume(saved *progress.Saved) {
	if saved == nil {
		return
	}
	s.Avatar = saved.Avatar
	for i, name := range s.names {
		if name == saved.Level {
			s.index = i
			return
		}
	}
	if saved.LevelIndex >= 0 && saved.LevelIndex < len(s.names) {
		s.index = saved.LevelIndex
		return
	}
	s.logger.Warn("ignoring saved progress", "level", saved.Level, "index", saved.LevelIndex)
}

// Restart goes back to the first level.
func (s *Sequencer) Restart() {
	s.index = 0
	s.finished = false
}

// Handle folds one tick's events into a transition. Level completion wins
// over a reset or hazard raised in the same tick.
func (s *Sequencer) Handle(events []physics.Event) (Transition, error) {
	if s.finished {
		return Finished, ErrSequenceFinished
	}

	reload := false
	for _, ev := range events {
		switch ev.Kind {
		case physics.EventLevelComplete:
			return s.advance(), nil
		case physics.EventResetRequested, physics.EventHazard:
			reload = true
		}
	}
	if reload {
		s.logger.Info("reloading level", "level", s.Current())
		return Reload, nil
	}
	return Stay, nil
}

func (s *Sequencer) advance() Transition {
	if s.index+1 >= len(s.names) {
		s.finished = true
		s.logger.Info("all levels complete", "last", s.Current())
		return Finished
	}
	s.index++
	s.logger.Info("advancing", "level", s.Current(), "index", s.index)
	if s.saver != nil {
		if err := s.saver.Save(progress.Saved{LevelIndex: s.index, Level: s.Current(), Avatar: s.Avatar}); err != nil {
			s.logger.Warn("could not save progress", "error", err)
		}
	}
	return Advance
}
