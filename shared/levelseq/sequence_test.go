package levelseq

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/cbag/codebird-cave/shared/physics"
	"github.com/cbag/codebird-cave/shared/progress"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSaver struct {
	saved []progress.Saved
}

func (r *recordingSaver) Save(p progress.Saved) error {
	r.saved = append(r.saved, p)
	return nil
}

type failingSaver struct{}

func (failingSaver) Save(progress.Saved) error {
	return errors.New("disk full")
}

var (
	complete = physics.Event{Kind: physics.EventLevelComplete}
	reset    = physics.Event{Kind: physics.EventResetRequested}
	hazard   = physics.Event{Kind: physics.EventHazard}
	broken   = physics.Event{Kind: physics.EventTileBroken}
)

func newSeq(t *testing.T, saver Saver) *Sequencer {
	t.Helper()
	s, err := New([]string{"level1", "level2", "level3"}, saver, log.New(io.Discard))
	require.NoError(t, err)
	return s
}

func TestNewRequiresLevels(t *testing.T) {
	_, err := New(nil, nil, nil)
	assert.ErrorIs(t, err, ErrNoLevels)
}

func TestSequenceAdvancesAndFinishes(t *testing.T) {
	saver := &recordingSaver{}
	s := newSeq(t, saver)
	s.Avatar = progress.Magpie

	tr, err := s.Handle([]physics.Event{broken})
	require.NoError(t, err)
	assert.Equal(t, Stay, tr)

	tr, err = s.Handle([]physics.Event{complete})
	require.NoError(t, err)
	assert.Equal(t, Advance, tr)
	assert.Equal(t, "level2", s.Current())

	tr, _ = s.Handle([]physics.Event{complete})
	assert.Equal(t, Advance, tr)
	tr, _ = s.Handle([]physics.Event{complete})
	assert.Equal(t, Finished, tr)
	assert.True(t, s.Done())
	assert.Equal(t, "level3", s.Current())

	_, err = s.Handle(nil)
	assert.ErrorIs(t, err, ErrSequenceFinished)

	assert.Equal(t, []progress.Saved{
		{LevelIndex: 1, Level: "level2", Avatar: progress.Magpie},
		{LevelIndex: 2, Level: "level3", Avatar: progress.Magpie},
	}, saver.saved)

	s.Restart()
	assert.False(t, s.Done())
	assert.Equal(t, "level1", s.Current())
}

func TestSequenceReloads(t *testing.T) {
	s := newSeq(t, nil)

	for _, ev := range []physics.Event{reset, hazard} {
		tr, err := s.Handle([]physics.Event{ev})
		require.NoError(t, err)
		assert.Equal(t, Reload, tr, ev.String())
		assert.Equal(t, 0, s.Index())
	}
}

func TestCompletionWinsOverReset(t *testing.T) {
	s := newSeq(t, nil)

	tr, err := s.Handle([]physics.Event{reset, complete})
	require.NoError(t, err)
	assert.Equal(t, Advance, tr)
}

func TestResume(t *testing.T) {
	s := newSeq(t, nil)
	s.Resume(&progress.Saved{Level: "level3", LevelIndex: 0, Avatar: progress.Falcon})
	assert.Equal(t, 2, s.Index())
	assert.Equal(t, progress.Falcon, s.Avatar)

	s = newSeq(t, nil)
	s.Resume(&progress.Saved{Level: "renamed", LevelIndex: 1})
	assert.Equal(t, "level2", s.Current())

	s = newSeq(t, nil)
	s.Resume(&progress.Saved{Level: "renamed", LevelIndex: 9})
	assert.Equal(t, 0, s.Index())

	s.Resume(nil)
	assert.Equal(t, 0, s.Index())
}

func TestOrder(t *testing.T) {
	loaded := []string{"bonus", "level1", "level2", "level3"}

	assert.Equal(t, []string{"level1", "level2", "level3"},
		Order([]string{"level1", "level2", "level3"}, loaded))
	assert.Equal(t, []string{"level2", "level1"},
		Order([]string{"level2", "missing", "level1"}, loaded))
	assert.Equal(t, loaded, Order(nil, loaded))
}

func TestAdvanceLogsFailedSave(t *testing.T) {
	var buf bytes.Buffer
	s, err := New([]string{"level1", "level2"}, failingSaver{}, log.New(&buf))
	require.NoError(t, err)

	tr, err := s.Handle([]physics.Event{complete})
	require.NoError(t, err)
	assert.Equal(t, Advance, tr)
	assert.Equal(t, "level2", s.Current())
	assert.Contains(t, buf.String(), "could not save progress")
	assert.Contains(t, buf.String(), "disk full")
}
