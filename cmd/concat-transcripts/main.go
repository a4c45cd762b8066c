package main

import (
	"github.com/urfave/cli/v2"

	"github.com/nguyentantai21042004/textify/internal/app"
	"github.com/nguyentantai21042004/textify/internal/concat"
)

func main() {
	app.Main(&cli.App{
		Name:  "concat-transcripts",
		Usage: "join the .txt transcripts of every unit folder, in unit order, into one file",
		Flags: append(app.Flags(), &cli.StringFlag{
			Name:  "root",
			Usage: "directory holding the unit folders (overrides concat.root)",
		}),
		Action: run,
	})
}

func run(c *cli.Context) error {
	cfg, log, err := app.Setup(c)
	if err != nil {
		return err
	}
	if root := c.String("root"); root != "" {
		cfg.Concat.Root = root
	}

	ctx, stop := app.SignalContext(c.Context)
	defer stop()

	if _, err := concat.New(cfg.Concat, log).Run(ctx); err != nil {
		log.Error(ctx, "Error writing to output file: %v", err)
		return err
	}
	return nil
}
