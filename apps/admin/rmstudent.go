package main

import (
	"context"
	"fmt"
)

func (cli *commandLine) removeStudent(id string) error {
	if err := cli.svc.DeleteStudent(context.Background(), id); err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "student %q removed\n", id)
	return nil
}
