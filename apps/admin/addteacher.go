package main

import (
	"context"
	"fmt"

	"github.com/Jeevana090908/stdgrd/core"
)

// addTeacher appends a teacher login, even when the username is taken.
func (cli *commandLine) addTeacher(uname, pwd string) error {
	uname = core.CleanString(uname)
	if err := cli.svc.AddTeacher(context.Background(), uname, pwd); err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "teacher %q added\n", uname)
	return nil
}
