package main

import (
	"fmt"

	jd "github.com/josephburnett/jd/v2"
	"github.com/urfave/cli/v2"

	"github.com/rpcpool/injson/document/jsonparse"
	"github.com/rpcpool/injson/document/jsonprint"
	"github.com/rpcpool/injson/document/jsonsrc"
)

func newCmd_Diff() *cli.Command {
	return &cli.Command{
		Name:        "diff",
		Description: "Compare two JSON documents: load both through injson (validating them), then render a structural diff.",
		ArgsUsage:   "<a.json> <b.json>",
		Action: func(cctx *cli.Context) error {
			if cctx.NArg() != 2 {
				return fmt.Errorf("diff requires exactly two file arguments")
			}
			aPath, bPath := cctx.Args().Get(0), cctx.Args().Get(1)

			aStr, err := loadAndCanonicalize(aPath)
			if err != nil {
				return fmt.Errorf("loading %s: %w", aPath, err)
			}
			bStr, err := loadAndCanonicalize(bPath)
			if err != nil {
				return fmt.Errorf("loading %s: %w", bPath, err)
			}

			a, err := jd.ReadJsonString(aStr)
			if err != nil {
				return fmt.Errorf("jd parse of %s: %w", aPath, err)
			}
			b, err := jd.ReadJsonString(bStr)
			if err != nil {
				return fmt.Errorf("jd parse of %s: %w", bPath, err)
			}

			diff := a.Diff(b)
			rendered := diff.Render()
			if rendered == "" {
				fmt.Println("no differences")
				return nil
			}
			fmt.Print(rendered)
			return nil
		},
	}
}

// loadAndCanonicalize parses a JSON file through the injson parser (so it
// is subject to the library's own validation) and re-renders it compactly
// for jd to consume.
func loadAndCanonicalize(path string) (string, error) {
	src, err := jsonsrc.FromPath(path)
	if err != nil {
		return "", err
	}
	defer src.Close()

	doc, err := jsonparse.Parse(src)
	if err != nil {
		return "", err
	}
	return jsonprint.ToString(doc, 0)
}
