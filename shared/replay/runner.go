package replay

import (
	"fmt"

	"github.com/cbag/codebird-cave/shared/leveldata"
	"github.com/cbag/codebird-cave/shared/levelseq"
	"github.com/cbag/codebird-cave/shared/physics"
	"github.com/cbag/codebird-cave/shared/progress"
	"github.com/cbag/codebird-cave/shared/session"
	"github.com/charmbracelet/log"
)

// Result summarizes a run.
type Result struct {
	Ticks    int
	Level    string
	Finished bool
	Player   physics.Actor
	Events   map[physics.EventKind]int
}

// Runner plays a level sequence tick by tick, applying the same
// transitions as the game: reload on reset or hazard, advance on exit.
type Runner struct {
	Levels  map[string]*leveldata.Level
	Seq     *levelseq.Sequencer
	Session *session.Session

	cfg    session.Config
	dt     float64
	logger *log.Logger
	tick   int
	counts map[physics.EventKind]int
}

func NewRunner(levels map[string]*leveldata.Level, names []string, cfg session.Config, dt float64, logger *log.Logger) (*Runner, error) {
	if logger == nil {
		logger = log.Default()
	}
	seq, err := levelseq.New(names, nil, logger)
	if err != nil {
		return nil, err
	}
	r := &Runner{
		Levels: levels,
		Seq:    seq,
		cfg:    cfg,
		dt:     dt,
		logger: logger,
		counts: map[physics.EventKind]int{},
	}
	if err := r.start(); err != nil {
		return nil, err
	}
	return r, nil
}

// StartAt jumps to a named level.
func (r *Runner) StartAt(name string) error {
	r.Seq.Resume(&progress.Saved{Level: name, LevelIndex: -1})
	if r.Seq.Current() != name {
		return fmt.Errorf("level %q is not in the sequence", name)
	}
	return r.start()
}

func (r *Runner) start() error {
	level, ok := r.Levels[r.Seq.Current()]
	if !ok {
		return fmt.Errorf("level %q not loaded", r.Seq.Current())
	}
	r.Session = session.New(level, r.cfg)
	return nil
}

// Step runs one tick and reports whether the sequence is finished.
func (r *Runner) Step(in physics.Intent) (bool, error) {
	r.tick++
	events := r.Session.Tick(r.dt, in)
	for _, ev := range events {
		r.counts[ev.Kind]++
		r.logger.Debug("event", "tick", r.tick, "level", r.Session.Level.Name, "event", ev)
	}

	tr, err := r.Seq.Handle(events)
	if err != nil {
		return true, err
	}
	switch tr {
	case levelseq.Reload:
		r.Session.Restart()
	case levelseq.Advance:
		if err := r.start(); err != nil {
			return false, err
		}
	case levelseq.Finished:
		return true, nil
	}
	return false, nil
}

// Run plays the script followed by idle ticks of no input, stopping early
// once the last level is cleared.
func (r *Runner) Run(script Script, idle int) (Result, error) {
	for _, st := range script.Steps {
		for i := 0; i < st.Ticks; i++ {
			done, err := r.Step(st.Intent(i))
			if err != nil || done {
				return r.result(), err
			}
		}
	}
	for i := 0; i < idle; i++ {
		done, err := r.Step(physics.Intent{})
		if err != nil || done {
			return r.result(), err
		}
	}
	return r.result(), nil
}

func (r *Runner) result() Result {
	counts := make(map[physics.EventKind]int, len(r.counts))
	for k, v := range r.counts {
		counts[k] = v
	}
	return Result{
		Ticks:    r.tick,
		Level:    r.Seq.Current(),
		Finished: r.Seq.Done(),
		Player:   *r.Session.Player,
		Events:   counts,
	}
}
