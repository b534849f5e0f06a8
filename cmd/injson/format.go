package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"
	"k8s.io/klog/v2"

	"github.com/rpcpool/injson/document"
	"github.com/rpcpool/injson/document/jsonparse"
	"github.com/rpcpool/injson/document/jsonprint"
	"github.com/rpcpool/injson/document/jsonsrc"
)

func newCmd_Format() *cli.Command {
	return &cli.Command{
		Name:        "format",
		Aliases:     []string{"fmt"},
		Description: "Parse a JSON document and reformat it, pretty or compact.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "in",
				Usage: "input path; reads stdin if unset",
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "output path; writes stdout if unset",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "pretty-print with 4-space indentation",
			},
			&cli.BoolFlag{
				Name:  "escape-unicode",
				Usage: `emit non-ASCII codepoints as \uXXXX escapes`,
			},
			&cli.BoolFlag{
				Name:  "crlf",
				Usage: "use \\r\\n newlines (only meaningful with --pretty)",
			},
			&cli.BoolFlag{
				Name:  "parse-only",
				Usage: "parse and validate only; suppress output",
			},
			&cli.BoolFlag{
				Name:  "stats",
				Usage: "print per-arena memory statistics to stderr",
			},
		},
		Action: func(cctx *cli.Context) error {
			src, closeSrc, err := openSource(cctx.String("in"))
			if err != nil {
				return fmt.Errorf("opening input: %w", err)
			}
			defer closeSrc()

			doc, err := jsonparse.Parse(src)
			if err != nil {
				return err
			}

			if cctx.Bool("stats") {
				printStats(doc)
			}

			if cctx.Bool("parse-only") {
				klog.V(1).Info("parse-only: document is valid")
				return nil
			}

			var flags jsonprint.Flag
			if cctx.Bool("pretty") {
				flags |= jsonprint.Pretty
			}
			if cctx.Bool("escape-unicode") {
				flags |= jsonprint.EscapeUnicode
			}
			if cctx.Bool("crlf") {
				flags |= jsonprint.NewlineWindows
			}

			out, closeOut, err := openSink(cctx.String("out"))
			if err != nil {
				return fmt.Errorf("opening output: %w", err)
			}
			defer closeOut()

			if _, err := jsonprint.PrintWriter(doc, flags, out); err != nil {
				return err
			}
			return nil
		},
	}
}

func openSource(path string) (*jsonsrc.Source, func(), error) {
	if path == "" {
		return jsonsrc.FromReader("<stdin>", os.Stdin), func() {}, nil
	}
	src, err := jsonsrc.FromPath(path)
	if err != nil {
		return nil, nil, err
	}
	return src, func() { src.Close() }, nil
}

func openSink(path string) (*os.File, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func printStats(doc *document.Document) {
	s := doc.MemoryStats()
	report := func(name string, a document.ArenaStats) {
		klog.Infof("  %-8s used=%-10s reserved=%s", name, humanize.Bytes(uint64(a.Used)), humanize.Bytes(uint64(a.Reserved)))
	}
	klog.Info("memory stats:")
	report("nums", s.Nums)
	report("ints", s.Ints)
	report("objects", s.Objects)
	report("arrays", s.Arrays)
	report("strings", s.Strings)
	klog.Infof("  %-8s used=%-10s reserved=%s", "total", humanize.Bytes(uint64(s.TotalUsed())), humanize.Bytes(uint64(s.TotalReserved())))
}
