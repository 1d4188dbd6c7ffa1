// Command datasplit shuffles a JSON array dataset with a seeded generator,
// splits it into a held-out part and a remainder, and records the seed and
// source file so the split can be repeated.
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/sirupsen/logrus"
)

type cli struct {
	app     *kingpin.Application
	verbose *bool

	split struct {
		cmd      *kingpin.CmdClause
		source   *string
		seed     *int64
		fraction *float64
		out      *string
	}
	reproduce struct {
		cmd      *kingpin.CmdClause
		dir      *string
		fraction *float64
		out      *string
	}
	config struct {
		cmd *kingpin.CmdClause
		dir *string
	}
}

func newCLI(stdout, stderr io.Writer) *cli {
	c := &cli{app: kingpin.New("datasplit", "Seeded held-out/remainder splits of JSON datasets.")}
	c.app.UsageWriter(stdout)
	c.app.ErrorWriter(stderr)
	c.app.Terminate(nil)

	c.verbose = c.app.Flag("verbose", "Enable debug logging.").Short('v').Bool()

	c.split.cmd = c.app.Command("split", "Shuffle and split a JSON array dataset.")
	c.split.source = c.split.cmd.Arg("source", "JSON file holding a top-level array.").Required().String()
	c.split.seed = c.split.cmd.Flag("seed", "Generator seed in [0, 2^32-1].").Default("42").Int64()
	c.split.fraction = c.split.cmd.Flag("fraction", "Share of records held out.").Default("0.2").Float64()
	c.split.out = c.split.cmd.Flag("out", "Directory receiving config.json and both parts.").String()

	c.reproduce.cmd = c.app.Command("reproduce", "Repeat the split recorded in a config.json directory.")
	c.reproduce.dir = c.reproduce.cmd.Arg("dir", "Directory holding config.json.").Required().String()
	c.reproduce.fraction = c.reproduce.cmd.Flag("fraction", "Share of records held out.").Default("0.2").Float64()
	c.reproduce.out = c.reproduce.cmd.Flag("out", "Directory receiving config.json and both parts.").String()

	c.config.cmd = c.app.Command("config", "Print a stored config.json.")
	c.config.dir = c.config.cmd.Arg("dir", "Directory holding config.json.").Required().String()
	return c
}

func newLogger(stderr io.Writer, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(stderr)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	kingpin.FatalIfError(err, "datasplit")
}
