package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/signalhelpers/signals"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

const (
	pgoKey   = "pgo"
	itersKey = "iters"
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Time polling through each combinator",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  pgoKey,
				Usage: "Write a CPU profile to this path, empty to skip",
				Value: "default.pgo",
			},
			&cli.UintFlag{
				Name:  itersKey,
				Usage: "Timed runs per benchmark",
				Value: 100,
			},
		},
		Action: benchmarkAll,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func benchmarkAll(ctx context.Context, cmd *cli.Command) error {
	if path := cmd.String(pgoKey); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("starting profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	iters := int(cmd.Uint(itersKey))
	log.Printf("warming up")
	run(iters, false)
	run(iters, true)
	return nil
}

var lengths = []int{1, 10, 100, 1_000, 10_000}

// countdown yields n, n-1, ... 1 and then terminates.
type countdown struct {
	n int
}

func (c *countdown) PollChange(cx *signals.Context) signals.Poll[int] {
	if c.n <= 0 {
		return signals.PollDone[int]()
	}
	v := c.n
	c.n--
	return signals.PollReady(v)
}

func drain[T any, S signals.Signal[T]](s S) (polls int) {
	cx := signals.Background()
	for {
		polls++
		if s.PollChange(cx).IsDone() {
			return polls
		}
	}
}

type benchmark struct {
	name string
	fn   func(n int) int
}

var benchmarks = []benchmark{
	{"direct", func(n int) int {
		return drain[int](&countdown{n: n})
	}},
	{"boxed interface", func(n int) int {
		var s signals.Signal[int] = &countdown{n: n}
		return drain[int](s)
	}},
	{"either", func(n int) int {
		e := signals.Right[int, *signals.DefaultSignal[int, *countdown]](&countdown{n: n})
		return drain[int](&e)
	}},
	{"default pass-through", func(n int) int {
		return drain[int](signals.NewDefault(0, signals.Some(&countdown{n: n})))
	}},
	{"option", func(n int) int {
		return drain[signals.Option[int]](signals.NewOption[int](signals.Some(&countdown{n: n})))
	}},
	{"box factory", func(n int) int {
		f := signals.BoxFn[int](func() *countdown { return &countdown{n: n} })
		return drain[int](f.Call())
	}},
	{"rc factory", func(n int) int {
		f := signals.RcFn[int](func() *countdown { return &countdown{n: n} })
		defer f.Release()
		return drain[int](f.Clone().Call())
	}},
}

func run(iters int, shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Signal combinators")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, b := range benchmarks {
		for _, n := range lengths {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			for i := 0; i < iters; i++ {
				start := time.Now()
				if polls := b.fn(n); polls != n+1 {
					log.Panicf("%s: expected %d polls, got %d", b.name, n+1, polls)
				}
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("%s: %d values", b.name, n),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
		tbl.AppendSeparator()
	}

	if shouldRender {
		tbl.Render()
	}
}
