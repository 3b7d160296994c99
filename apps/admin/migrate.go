package main

import "errors"

var errNoMigrations = errors.New("migrations only apply to the postgres store")

// migrator is implemented by stores with a schema.
type migrator interface {
	Migrate(command string, args ...string) error
}

func (cli *commandLine) migrate(args []string) error {
	if cli.migrator == nil {
		return errNoMigrations
	}
	arguments := make([]string, 0)
	if len(args) > 1 {
		arguments = append(arguments, args[1:]...)
	}
	return cli.migrator.Migrate(args[0], arguments...)
}
