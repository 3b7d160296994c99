package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"syscall"

	"golang.org/x/term"

	"github.com/Jeevana090908/stdgrd/core/gradebook"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	svc      *gradebook.Service
	migrator migrator // nil unless the store has a schema
	out      io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  addteacher -username USERNAME - add a teacher login")
	fmt.Fprintln(cli.out, "  roster [-mode all|rank-high|failed] - print the student roster")
	fmt.Fprintln(cli.out, "  export [-mode all|rank-high|failed] [-out FILE] - write the roster to an xlsx file")
	fmt.Fprintln(cli.out, "  rmstudent -id ID - remove a student record")
	fmt.Fprintln(cli.out, "  migrate COMMAND [ARGS] - run a goose migration command (postgres store only)")
}

func (cli *commandLine) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.out)
	return fs
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addTeacherCmd := cli.flagSet("addteacher")
	addTeacherUname := addTeacherCmd.String("username", "", "The teacher's username. The password will be prompted next.")

	rosterCmd := cli.flagSet("roster")
	rosterMode := rosterCmd.String("mode", "all", "View mode: all, rank-high or failed.")

	exportCmd := cli.flagSet("export")
	exportMode := exportCmd.String("mode", "all", "View mode: all, rank-high or failed.")
	exportOut := exportCmd.String("out", "", "Output file, roster_MODE.xlsx by default.")

	rmStudentCmd := cli.flagSet("rmstudent")
	rmStudentID := rmStudentCmd.String("id", "", "The ID of the student to remove.")

	switch args[1] {
	case "addteacher":
		if err := addTeacherCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *addTeacherUname == "" {
			addTeacherCmd.Usage()
			return errHelp
		}
		fmt.Fprint(cli.out, "Enter password:")
		pwd, err := readPasswordFunc(int(syscall.Stdin))
		fmt.Fprintln(cli.out)
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			addTeacherCmd.Usage()
			return errHelp
		}
		return cli.addTeacher(*addTeacherUname, string(pwd))
	case "roster":
		if err := rosterCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		return cli.roster(*rosterMode)
	case "export":
		if err := exportCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		return cli.export(*exportMode, *exportOut)
	case "rmstudent":
		if err := rmStudentCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *rmStudentID == "" {
			rmStudentCmd.Usage()
			return errHelp
		}
		return cli.removeStudent(*rmStudentID)
	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(args[2:])
	default:
		cli.printUsage()
		return errHelp
	}
}
