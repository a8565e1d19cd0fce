package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/delaneyj/signalforge/ripple"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

const (
	bufferKey   = "buffer"
	scenarioKey = "scenario"
)

func main() {
	cmd := &cli.Command{
		Name:  "inspect",
		Usage: "Replay a reactive scenario and dump its instrumentation events",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  bufferKey,
				Usage: "Recorder ring buffer size",
				Value: 4096,
			},
			&cli.StringFlag{
				Name:  scenarioKey,
				Usage: "Scenario to replay: diamond or batch",
				Value: "diamond",
			},
		},
		Action: inspect,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func inspect(ctx context.Context, cmd *cli.Command) error {
	rec := ripple.NewRecorder(int(cmd.Uint(bufferKey)))
	rs := ripple.CreateReactiveSystem(func(from *ripple.EffectRunner, err error) {
		log.Fatal(err)
	}, ripple.WithProbe(rec.Probe()))

	scenario := cmd.String(scenarioKey)
	switch scenario {
	case "diamond":
		if err := runDiamond(rs); err != nil {
			return err
		}
	case "batch":
		runBatch(rs)
	default:
		return fmt.Errorf("unknown scenario %q", scenario)
	}

	renderEvents(rec)
	renderSummary(rec)
	return nil
}

// runDiamond builds a -> {b, c} -> d, writes a once, and pulls d, showing one
// recompute per node.
func runDiamond(rs *ripple.ReactiveSystem) error {
	a := ripple.Signal(rs, 1)
	b := ripple.Computed(rs, func(int) (int, error) {
		return a.Value() * 2, nil
	})
	c := ripple.Computed(rs, func(int) (int, error) {
		return a.Value() * 3, nil
	})
	d := ripple.Computed2(rs, b, c, func(bv, cv int) (int, error) {
		return bv + cv, nil
	})

	if _, err := d.Value(); err != nil {
		return err
	}
	a.SetValue(2)
	v, err := d.Value()
	if err != nil {
		return err
	}
	log.Printf("diamond: d = %d", v)
	return nil
}

// runBatch writes one signal three times inside a batch; the effect runs once.
func runBatch(rs *ripple.ReactiveSystem) {
	s := ripple.Signal(rs, 0)
	runs := 0
	ripple.Effect(rs, func() (ripple.CleanupFunc, error) {
		s.Value()
		runs++
		return nil, nil
	})

	rs.Batch(func() {
		s.SetValue(1)
		s.SetValue(2)
		s.SetValue(3)
	})
	log.Printf("batch: effect ran %d times, value %d", runs, s.Peek())
}

func renderEvents(rec *ripple.Recorder) {
	events := rec.Events()
	if len(events) == 0 {
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"#", "event", "node", "version", "offset"})
	start := events[0].At
	for i, ev := range events {
		table.Append([]string{
			humanize.Comma(int64(i)),
			ev.Type.String(),
			fmt.Sprintf("%d", ev.Node),
			fmt.Sprintf("%d", ev.Version),
			ev.At.Sub(start).String(),
		})
	}
	table.Render()
}

func renderSummary(rec *ripple.Recorder) {
	counts := map[ripple.EventType]int64{}
	for _, ev := range rec.Events() {
		counts[ev.Type]++
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"event", "count"})
	for _, typ := range []ripple.EventType{
		ripple.EventNodeCreated,
		ripple.EventRead,
		ripple.EventWrite,
		ripple.EventRecomputeStart,
		ripple.EventRecomputeEnd,
		ripple.EventDispose,
	} {
		table.Append([]string{typ.String(), humanize.Comma(counts[typ])})
	}
	table.Append([]string{"dropped", humanize.Comma(int64(rec.Dropped()))})
	table.Render()
}
