package query_test

import (
	"testing"

	"github.com/edudata/scorecard/internal/table"
	"gotest.tools/assert"
)

var schoolColumns = []string{
	table.SchoolId, table.SchoolName, table.TuitionInState, table.TuitionOutState,
	table.AdmissionRate, table.GraduationRate, table.MedianEarnings,
}

var programColumns = []string{
	table.ProgramSchoolId, table.ProgramCipCode, table.ProgramDescription, table.ProgramEarnings,
}

func schoolRow(id, name, tuition_in, tuition_out, adm, grad, earn any) table.Row {
	return table.Row{
		table.SchoolId:        id,
		table.SchoolName:      name,
		table.TuitionInState:  tuition_in,
		table.TuitionOutState: tuition_out,
		table.AdmissionRate:   adm,
		table.GraduationRate:  grad,
		table.MedianEarnings:  earn,
	}
}

func programRow(school_id, cip, desc, earn any) table.Row {
	return table.Row{
		table.ProgramSchoolId:    school_id,
		table.ProgramCipCode:     cip,
		table.ProgramDescription: desc,
		table.ProgramEarnings:    earn,
	}
}

func newTestStore(t *testing.T, school_rows, program_rows []table.Row) *table.Store {
	t.Helper()
	store, err := table.NewStore(
		table.New("schools", schoolColumns, school_rows),
		table.New("programs", programColumns, program_rows),
	)
	assert.NilError(t, err)
	return store
}
