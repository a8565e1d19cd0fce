package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/signalforge/ripple"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
)

var (
	ww    = []int{1, 10, 100, 1_000}
	hh    = []int{1, 10, 100, 1_000}
	iters = 100
)

func read(s ripple.Source[int]) (int, error) {
	switch v := s.(type) {
	case *ripple.WriteableSignal[int]:
		return v.Value(), nil
	case *ripple.ReadonlySignal[int]:
		return v.Value()
	default:
		panic("unknown source type")
	}
}

func chain(rs *ripple.ReactiveSystem, prev ripple.Source[int]) ripple.Source[int] {
	return ripple.Computed(rs, func(oldValue int) (int, error) {
		v, err := read(prev)
		if err != nil {
			return oldValue, err
		}
		return v + 1, nil
	})
}

func main() {
	flag.Parse()

	f, err := os.Create("default.pgo")
	if err != nil {
		log.Fatal(err)
	}
	pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	log.Printf("warming up")
	benchmarkPropagate(false)

	benchmarkPropagate(true)
	benchmarkBatch(true)
}

// benchmarkPropagate times a write at the root of a w*h grid of chained
// computeds, each chain terminated by an effect.
func benchmarkPropagate(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Ripple Signals")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			rs := ripple.CreateReactiveSystem(func(from *ripple.EffectRunner, err error) {
				log.Panic(err)
			})
			src := ripple.Signal(rs, 1)
			for i := 0; i < w; i++ {
				var last ripple.Source[int] = src
				for j := 0; j < h; j++ {
					last = chain(rs, last)
				}

				terminal := last
				ripple.Effect(rs, func() (ripple.CleanupFunc, error) {
					_, err := read(terminal)
					return nil, err
				})
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				src.SetValue(src.Value() + 1)
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

// benchmarkBatch times a batched burst of writes against a shared effect.
func benchmarkBatch(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Ripple Batching")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		rs := ripple.CreateReactiveSystem(func(from *ripple.EffectRunner, err error) {
			log.Panic(err)
		})
		signals := make([]*ripple.WriteableSignal[int], w)
		for i := range signals {
			signals[i] = ripple.Signal(rs, 0)
		}
		ripple.Effect(rs, func() (ripple.CleanupFunc, error) {
			total := 0
			for _, s := range signals {
				total += s.Value()
			}
			_ = total
			return nil, nil
		})

		for i := 0; i < iters; i++ {
			start := time.Now()
			rs.Batch(func() {
				for _, s := range signals {
					s.SetValue(s.Value() + 1)
				}
			})
			tach.AddTime(time.Since(start))
		}

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("batch: %d writes", w),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})
	}

	if shouldRender {
		tbl.Render()
	}
}
