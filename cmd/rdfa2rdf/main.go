package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/geoknoesis/rdfa-go/rdfa"
)

func main() {
	app := &cli.App{
		Name:      "rdfa2rdf",
		Version:   "v0.1.0",
		Compiled:  time.Now(),
		Usage:     "extract RDF statements from HTML, XHTML, SVG and XML documents",
		UsageText: "rdfa2rdf [options] [INPUT_FILE] (default input is stdin)",
		Action:    process,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "base",
				Aliases: []string{"b"},
				Usage:   "base `IRI` for resolving relative references",
			},
			&cli.StringFlag{
				Name:    "profile",
				Aliases: []string{"p"},
				Usage:   "feature `PROFILE`: core, html, xhtml or xml (default is the full profile)",
			},
			&cli.StringFlag{
				Name:  "content-type",
				Usage: "derive the profile from a media `TYPE` (e.g. text/html)",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "use the strict XML tokenizer",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "nq",
				Usage:   "output `FORMAT`: nq, nt or jsonld",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write output to `FILE` (default is stdout)",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "run in debug mode",
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func process(c *cli.Context) error {
	var z *zap.Logger
	var err error
	if c.Bool("debug") {
		z, err = zap.NewDevelopment()
	} else {
		z, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	sugar := z.Sugar()
	defer sugar.Sync()

	input := io.Reader(os.Stdin)
	inputName := "stdin"
	if c.Args().Present() {
		inputName = c.Args().First()
		file, err := os.Open(inputName)
		if err != nil {
			return err
		}
		defer file.Close()
		input = file
	}

	options := []rdfa.Option{rdfa.OptBaseIRI(c.String("base"))}
	if value := c.String("profile"); value != "" {
		profile, ok := rdfa.ParseProfile(value)
		if !ok {
			return fmt.Errorf("unknown profile %q", value)
		}
		options = append(options, rdfa.OptProfile(profile))
	}
	if value := c.String("content-type"); value != "" {
		options = append(options, rdfa.OptContentType(value))
	}
	if c.Bool("strict") {
		options = append(options, rdfa.OptStrict())
	}

	output := io.Writer(os.Stdout)
	if name := c.String("output"); name != "" {
		file, err := os.Create(name)
		if err != nil {
			return err
		}
		defer file.Close()
		output = file
	}

	ctx := context.Background()
	start := time.Now()

	format := c.String("format")
	switch format {
	case "nq", "nt":
		var writer rdfa.Writer
		if format == "nq" {
			writer = rdfa.NewNQuadsWriter(output)
		} else {
			writer = rdfa.NewNTriplesWriter(output)
		}
		count := 0
		err := rdfa.Parse(ctx, input, func(q rdfa.Quad) error {
			count++
			return writer.Write(q)
		}, options...)
		if err != nil {
			sugar.Errorw("extraction failed", "input", inputName, "code", rdfa.Code(err), "error", err)
			return err
		}
		if err := writer.Close(); err != nil {
			return err
		}
		sugar.Debugw("extraction done", "input", inputName, "statements", count, "elapsed", time.Since(start))

	case "jsonld":
		doc, err := rdfa.ExtractJSONLD(ctx, input, rdfa.JSONLDOptions{BaseIRI: c.String("base")}, options...)
		if err != nil {
			sugar.Errorw("extraction failed", "input", inputName, "code", rdfa.Code(err), "error", err)
			return err
		}
		enc := json.NewEncoder(output)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return err
		}
		sugar.Debugw("extraction done", "input", inputName, "elapsed", time.Since(start))

	default:
		return fmt.Errorf("unknown output format %q", format)
	}

	return nil
}
