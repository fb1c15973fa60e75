package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/delaneyj/signalhelpers/cmd/signaltrace/templates"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

const (
	scenarioKey = "scenario"
	pollsKey    = "polls"
	htmlKey     = "html"
)

func main() {
	cmd := &cli.Command{
		Name:  "signaltrace",
		Usage: "Poll signal combinators and print what every poll returned",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  scenarioKey,
				Usage: "Scenario to run, or all",
				Value: "all",
			},
			&cli.UintFlag{
				Name:  pollsKey,
				Usage: "Maximum polls per signal instance",
				Value: 8,
			},
			&cli.StringFlag{
				Name:  htmlKey,
				Usage: "Also write an HTML report to this path",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List the available scenarios",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					listScenarios(os.Stdout)
					return nil
				},
			},
		},
		Action: trace,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func trace(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	name := cmd.String(scenarioKey)

	rows, err := runScenarios(name, int(cmd.Uint(pollsKey)))
	if err != nil {
		return err
	}
	renderTable(os.Stdout, rows)

	ready, pending, done := templates.Summary(rows)
	log.Printf(
		"%s polls: %s ready, %s pending, %s done in %v",
		humanize.Comma(int64(len(rows))),
		humanize.Comma(int64(ready)),
		humanize.Comma(int64(pending)),
		humanize.Comma(int64(done)),
		time.Since(start),
	)

	if path := cmd.String(htmlKey); path != "" {
		title := fmt.Sprintf("signaltrace: %s", name)
		if err := os.WriteFile(path, []byte(templates.TraceReport(title, rows)), 0644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		log.Printf("Report written to %s", path)
	}
	return nil
}

func renderTable(w io.Writer, rows []templates.Row) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"scenario", "instance", "poll", "state", "value"})
	table.SetAutoMergeCells(true)
	for _, r := range rows {
		table.Append([]string{
			r.Scenario,
			strconv.Itoa(r.Instance),
			humanize.Ordinal(r.Poll),
			r.State,
			r.Value,
		})
	}
	table.Render()
}

func listScenarios(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"scenario", "description"})
	for _, sc := range scenarios {
		table.Append([]string{sc.name, sc.about})
	}
	table.Render()
}
