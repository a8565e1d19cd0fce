package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/delaneyj/signalforge/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	arityKey = "arity"
	outKey   = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the typed tuple combinators for ripple",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  arityKey,
				Usage: "Highest combinator arity to generate",
				Value: 8,
			},
			&cli.StringFlag{
				Name:  outKey,
				Usage: "Output path",
				Value: "ripple/tuples.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for ripple started!")
	defer func() {
		log.Printf("Codegen for ripple finished in %v", time.Since(start))
	}()

	maxArity := int(cmd.Uint(arityKey))
	out := cmd.String(outKey)
	log.Printf("Max arity: %d", maxArity)

	contents := templates.TuplesGen(maxArity)
	return os.WriteFile(out, []byte(contents), 0644)
}
