package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/Jeevana090908/stdgrd/core/roster"
	exportsvc "github.com/Jeevana090908/stdgrd/services/export"
)

func (cli *commandLine) export(rawMode, out string) error {
	mode, err := roster.ParseMode(rawMode)
	if err != nil {
		return err
	}
	rows, err := cli.svc.Project(mode)
	if err != nil {
		return err
	}
	if out == "" {
		out = exportsvc.Filename(mode)
	}

	f, err := os.Create(out)
	if err != nil {
		return errors.Wrap(err, "creating export file")
	}
	if err = exportsvc.WriteRoster(f, mode, rows); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return errors.Wrap(err, "closing export file")
	}
	fmt.Fprintf(cli.out, "%d rows written to %s\n", len(rows), out)
	return nil
}
