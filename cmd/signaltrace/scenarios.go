package main

import (
	"errors"
	"fmt"

	"github.com/delaneyj/signalhelpers/cmd/signaltrace/templates"
	"github.com/delaneyj/signalhelpers/signals"
	"github.com/delaneyj/signalhelpers/signaltest"
)

var ErrUnknownScenario = errors.New("unknown scenario")

type scenario struct {
	name  string
	about string
	run   func(limit int) [][]templates.Row
}

var scenarios = []scenario{
	{
		name:  "default-const",
		about: "DefaultSignal without an inner signal",
		run: func(limit int) [][]templates.Row {
			s := signals.NewDefault(42, signals.None[*signaltest.Script[int]]())
			return [][]templates.Row{record[int](s, limit)}
		},
	},
	{
		name:  "default-inner",
		about: "DefaultSignal forwarding to a mutable source",
		run: func(limit int) [][]templates.Row {
			m := signaltest.NewMutable(1)
			s := signals.NewDefault(42, signals.Some(m))
			cx := signals.NewContext(signals.WakerFunc(func() {}))
			var polls []signals.Poll[int]
			polls = append(polls, s.PollChange(cx), s.PollChange(cx))
			m.SetValue(2)
			polls = append(polls, s.PollChange(cx))
			m.Close()
			polls = append(polls, s.PollChange(cx))
			return [][]templates.Row{rows(truncate(polls, limit))}
		},
	},
	{
		name:  "option-none",
		about: "OptionSignal without an inner signal",
		run: func(limit int) [][]templates.Row {
			s := signals.NewOption[string](signals.None[*signaltest.Script[string]]())
			return [][]templates.Row{record[signals.Option[string]](s, limit)}
		},
	},
	{
		name:  "option-some",
		about: "OptionSignal wrapping values of an inner signal",
		run: func(limit int) [][]templates.Row {
			s := signals.NewOption[int](signals.Some(signaltest.Values(1, 2)))
			return [][]templates.Row{record[signals.Option[int]](s, limit)}
		},
	},
	{
		name:  "either-left",
		about: "EitherSignal holding a constant",
		run: func(limit int) [][]templates.Row {
			e := constOrValues(nil)
			return [][]templates.Row{record[string](&e, limit)}
		},
	},
	{
		name:  "either-right",
		about: "EitherSignal holding a scripted source",
		run: func(limit int) [][]templates.Row {
			e := constOrValues([]string{"<b>", "&"})
			return [][]templates.Row{record[string](&e, limit)}
		},
	},
	{
		name:  "factory-box",
		about: "BoxSignalFn called twice by its single owner",
		run: func(limit int) [][]templates.Row {
			f := signals.BoxFn[int](func() *signaltest.Script[int] {
				return signaltest.Values(7, 8)
			})
			return [][]templates.Row{
				record(f.Call(), limit),
				record(f.Call(), limit),
			}
		},
	},
	{
		name:  "factory-rc",
		about: "RcSignalFn shared by two owners",
		run: func(limit int) [][]templates.Row {
			f := signals.RcFn[bool](func() *signaltest.Script[bool] {
				return signaltest.Values(true)
			})
			g := f.Clone()
			defer f.Release()
			defer g.Release()
			return [][]templates.Row{
				record(f.Call(), limit),
				record(g.Call(), limit),
			}
		},
	},
}

type eitherString = signals.EitherSignal[string, *signals.DefaultSignal[string, *signaltest.Script[string]], *signaltest.Script[string]]

func constOrValues(vs []string) eitherString {
	if len(vs) == 0 {
		return signals.Left[string, *signaltest.Script[string]](
			signals.NewDefault("empty", signals.None[*signaltest.Script[string]]()),
		)
	}
	return signals.Right[string, *signals.DefaultSignal[string, *signaltest.Script[string]]](signaltest.Values(vs...))
}

func record[T any](sig signals.Signal[T], limit int) []templates.Row {
	return rows[T](signaltest.Drain(sig, limit))
}

func truncate[T any](polls []signals.Poll[T], limit int) []signals.Poll[T] {
	if limit > 0 && len(polls) > limit {
		return polls[:limit]
	}
	return polls
}

func rows[T any](polls []signals.Poll[T]) []templates.Row {
	out := make([]templates.Row, len(polls))
	for i, p := range polls {
		out[i] = templates.Row{
			Poll:  i + 1,
			State: p.State.String(),
		}
		if p.IsReady() {
			out[i].Value = fmt.Sprint(p.Value)
		}
	}
	return out
}

// runScenarios runs the named scenario, or every scenario for "all".
func runScenarios(name string, limit int) ([]templates.Row, error) {
	var out []templates.Row
	found := false
	for _, sc := range scenarios {
		if name != "all" && name != sc.name {
			continue
		}
		found = true
		for i, instance := range sc.run(limit) {
			for _, r := range instance {
				r.Scenario = sc.name
				r.Instance = i + 1
				out = append(out, r)
			}
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScenario, name)
	}
	return out, nil
}
