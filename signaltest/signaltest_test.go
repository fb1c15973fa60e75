package signaltest_test

import (
	"testing"

	"github.com/delaneyj/signalhelpers/signals"
	"github.com/delaneyj/signalhelpers/signaltest"
	"github.com/stretchr/testify/assert"
)

func TestScriptReplaysThenTerminates(t *testing.T) {
	s := signaltest.NewScript(signals.PollReady("a"), signals.PollPending[string]())
	rec := &signaltest.Recorder{}
	cx := signals.NewContext(rec)

	assert.Equal(t, signals.PollReady("a"), s.PollChange(cx))
	assert.Equal(t, signals.PollPending[string](), s.PollChange(cx))
	assert.Equal(t, 1, rec.Wakes())
	assert.True(t, s.PollChange(cx).IsDone())
	assert.Zero(t, s.PolledAfterDone())

	assert.True(t, s.PollChange(cx).IsDone())
	assert.Equal(t, 1, s.PolledAfterDone())
	assert.Equal(t, 4, s.Polls())
}

func TestScriptStopsAtScriptedDone(t *testing.T) {
	s := signaltest.NewScript(signals.PollDone[int](), signals.PollReady(1))
	trace := signaltest.Drain[int](s, 0)
	assert.Equal(t, signaltest.Trace[int]{signals.PollDone[int]()}, trace)
	assert.True(t, s.PollChange(signals.Background()).IsDone())
}

func TestMutable(t *testing.T) {
	m := signaltest.NewMutable(1)
	rec := &signaltest.Recorder{}
	cx := signals.NewContext(rec)

	assert.Equal(t, signals.PollReady(1), m.PollChange(cx))
	assert.True(t, m.PollChange(cx).IsPending())

	m.SetValue(1)
	assert.Zero(t, rec.Wakes(), "setting an equal value is not a change")

	m.SetValue(2)
	m.SetValue(3)
	assert.Equal(t, 1, rec.Wakes())
	assert.Equal(t, 3, m.Value())
	assert.Equal(t, signals.PollReady(3), m.PollChange(cx))

	m.Close()
	m.SetValue(4)
	assert.Equal(t, 3, m.Value())
	assert.True(t, m.PollChange(cx).IsDone())
	assert.True(t, m.PollChange(cx).IsDone())
}

func TestMutableDeliversChangeBeforeClose(t *testing.T) {
	m := signaltest.NewMutable("x")
	m.SetValue("y")
	m.Close()

	trace := signaltest.Drain[string](m, 0)
	assert.Equal(t, []string{"y"}, trace.Values())
	assert.True(t, trace.Done())
}

func TestDrainStopsWhenNothingWakes(t *testing.T) {
	m := signaltest.NewMutable(0)
	trace := signaltest.Drain[int](m, 0)
	assert.Equal(t, signaltest.Trace[int]{signals.PollReady(0), signals.PollPending[int]()}, trace)
	assert.False(t, trace.Done())
}

func TestDrainLimit(t *testing.T) {
	trace := signaltest.Drain[int](signaltest.Values(1, 2, 3, 4), 2)
	assert.Equal(t, []int{1, 2}, trace.Values())
	assert.False(t, trace.Done())
}

func TestTraceDigest(t *testing.T) {
	a := signaltest.Drain[int](signaltest.Values(1, 2), 0)
	b := signaltest.Drain[int](signaltest.Values(1, 2), 0)
	c := signaltest.Drain[int](signaltest.Values(2, 1), 0)

	assert.Equal(t, a.Digest(), b.Digest())
	assert.NotEqual(t, a.Digest(), c.Digest())
}
