package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/bodgit/snesmap"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func export(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	e := snesmap.New(newLogger(c))

	for _, path := range c.Args().Slice() {
		info, err := os.Stat(path)
		if err != nil {
			return cli.Exit(err, 1)
		}

		if info.IsDir() {
			err = e.ExportDir(path, c.String("output"))
		} else {
			err = e.ExportFile(path, c.String("output"))
		}
		if err != nil {
			return cli.Exit(err, 1)
		}
	}

	return nil
}

func check(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	var failed bool
	for _, file := range c.Args().Slice() {
		m, err := snesmap.CheckFile(file)
		if err != nil {
			fmt.Fprintf(c.App.ErrWriter, "%s: %v\n", file, err)
			failed = true
			continue
		}
		fmt.Fprintf(c.App.Writer, "%s: %dx%d, %d layers\n", file, m.Width(), m.Height(), m.LayerCount())
	}

	if failed {
		return cli.Exit("", 1)
	}

	return nil
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "snesmap"
	app.Usage = "Export Tiled maps as " + snesmap.FormatName + "s"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "export",
			Usage:       "Export TMX files as ." + snesmap.Extension + " include files",
			Description: "Each tile layer is split into 32x32 screenblocks and written as .dw rows. Directories are searched for .tmx files.",
			ArgsUsage:   "FILE|DIRECTORY...",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					EnvVars: []string{"SNESMAP_OUTPUT"},
					Usage:   "write include files to `DIRECTORY` instead of next to each map",
				},
			},
			Action: export,
		},
		{
			Name:        "check",
			Usage:       "Check TMX files can be exported",
			Description: "",
			ArgsUsage:   "FILE...",
			Action:      check,
		},
		{
			Name:   "man",
			Usage:  "Print the manual page",
			Hidden: true,
			Action: func(c *cli.Context) error {
				man, err := c.App.ToMan()
				if err != nil {
					return cli.Exit(err, 1)
				}
				fmt.Fprintln(c.App.Writer, man)
				return nil
			},
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
