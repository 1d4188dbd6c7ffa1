package main

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/Velocidex/ordereddict"
	"github.com/sirupsen/logrus"
	"github.com/yyyoichi/datasplit"
)

const (
	heldOutFilename   = "held_out.json"
	remainderFilename = "remainder.json"
)

func run(args []string, stdout, stderr io.Writer) error {
	c := newCLI(stdout, stderr)
	command, err := c.app.Parse(args)
	if err != nil {
		return err
	}
	logger := newLogger(stderr, *c.verbose)

	switch command {
	case c.split.cmd.FullCommand():
		s, err := datasplit.New(*c.split.source,
			datasplit.WithSeed(*c.split.seed),
			datasplit.WithLogger(logger))
		if err != nil {
			return err
		}
		return splitAndStore(s, *c.split.fraction, *c.split.out, stdout, logger)

	case c.reproduce.cmd.FullCommand():
		cfg, err := datasplit.LoadConfig(*c.reproduce.dir)
		if err != nil {
			return err
		}
		s, err := datasplit.FromConfig(cfg, datasplit.WithLogger(logger))
		if err != nil {
			return err
		}
		return splitAndStore(s, *c.reproduce.fraction, *c.reproduce.out, stdout, logger)

	case c.config.cmd.FullCommand():
		cfg, err := datasplit.LoadConfig(*c.config.dir)
		if err != nil {
			return err
		}
		data, err := cfg.Encode()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, string(data))
		return err
	}
	return fmt.Errorf("unknown command %q", command)
}

// splitAndStore splits once, prints a summary and, when out is set, stores
// the config and both parts under out.
func splitAndStore(s *datasplit.Splitter, fraction float64, out string, stdout io.Writer, logger logrus.FieldLogger) error {
	heldOut, remainder, err := s.Split(fraction)
	if err != nil {
		return err
	}
	cfg := s.Config()
	total := len(heldOut) + len(remainder)
	summary := ordereddict.NewDict().
		Set("seed", cfg.Seed).
		Set("data_filename", cfg.DataFilename).
		Set("fraction", fraction).
		Set("records", total).
		Set("boundary", datasplit.Boundary(total, fraction)).
		Set("held_out", len(heldOut)).
		Set("remainder", len(remainder))

	if out != "" {
		if err := s.StoreResults(out); err != nil {
			return err
		}
		if err := datasplit.WriteDataset(filepath.Join(out, heldOutFilename), heldOut); err != nil {
			return err
		}
		if err := datasplit.WriteDataset(filepath.Join(out, remainderFilename), remainder); err != nil {
			return err
		}
		logger.WithField("out", out).Info("split stored")
		summary.Set("out", out)
	}

	data, err := json.MarshalIndent(summary, "", "    ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, string(data))
	return err
}
