package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/Jeevana090908/stdgrd/core/roster"
)

func (cli *commandLine) roster(rawMode string) error {
	mode, err := roster.ParseMode(rawMode)
	if err != nil {
		return err
	}
	rows, err := cli.svc.Project(mode)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Fprintln(cli.out, "no students")
		return nil
	}

	w := tabwriter.NewWriter(cli.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tID\tNAME\tBRANCH\tTOTAL\tCGPA\tGRADE")
	for _, r := range rows {
		s := r.Student
		total := "-"
		if s.Total != nil {
			total = strconv.FormatFloat(*s.Total, 'f', -1, 64)
		}
		grd := s.Grade
		if grd == "" {
			grd = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n", r.Rank, s.ID, s.Name, s.Branch, total, s.CGPA, grd)
	}
	return w.Flush()
}
