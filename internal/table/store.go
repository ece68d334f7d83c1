package table

import (
	"os"

	"github.com/edudata/scorecard/pkg"
	"github.com/pkg/errors"
	sorted "github.com/tobshub/go-sortedmap"
)

// College Scorecard column names.
//
// School table.
const (
	SchoolId        = "UNITID"
	SchoolName      = "INSTNM"
	TuitionInState  = "TUITIONFEE_IN"
	TuitionOutState = "TUITIONFEE_OUT"
	AdmissionRate   = "ADM_RATE"
	GraduationRate  = "C150_4_POOLED"
	MedianEarnings  = "MD_EARN_WNE_P10"
)

// Program (field-of-study) table.
const (
	ProgramSchoolId    = "UNITID"
	ProgramCipCode     = "CIPCODE"
	ProgramDescription = "CIPDESC"
	ProgramEarnings    = "EARN_MDN_HI_1YR"
)

// Store holds the two loaded datasets for the process lifetime.
// It is immutable after construction, so readers never coordinate.
type Store struct {
	Schools  *Table
	Programs *Table

	// school id -> program rows in source order
	program_idx *sorted.SortedMap[int, []Row]
}

func programIdxComparisonFunc(a, b []Row) bool {
	a_id, _ := CellInt(a[0].Get(ProgramSchoolId))
	b_id, _ := CellInt(b[0].Get(ProgramSchoolId))
	return a_id < b_id
}

// NewStore validates the column contract of both datasets and
// indexes program rows by school id. Rows whose school id cell
// is not an integer are unreachable by key and get skipped.
func NewStore(schools, programs *Table) (*Store, error) {
	if err := schools.RequireColumns(
		SchoolId, SchoolName, TuitionInState, TuitionOutState,
		AdmissionRate, GraduationRate, MedianEarnings,
	); err != nil {
		return nil, err
	}
	if err := programs.RequireColumns(
		ProgramSchoolId, ProgramCipCode, ProgramDescription, ProgramEarnings,
	); err != nil {
		return nil, err
	}

	idx := sorted.New[int, []Row](0, programIdxComparisonFunc)
	skipped := 0
	for _, row := range programs.Rows() {
		id, ok := CellInt(row.Get(ProgramSchoolId))
		if !ok {
			skipped++
			continue
		}
		if rows, ok := idx.Get(id); ok {
			idx.Replace(id, append(rows, row))
		} else {
			idx.Insert(id, []Row{row})
		}
	}
	if skipped > 0 {
		pkg.WarnLog("skipped", skipped, "program rows without an integer school id")
	}

	return &Store{Schools: schools, Programs: programs, program_idx: idx}, nil
}

// Open loads both datasets from disk. Called once at startup;
// any failure here is fatal to the process.
func Open(schools_path, programs_path string) (*Store, error) {
	schools, err := openCSV("schools", schools_path)
	if err != nil {
		return nil, err
	}
	programs, err := openCSV("programs", programs_path)
	if err != nil {
		return nil, err
	}

	store, err := NewStore(schools, programs)
	if err != nil {
		return nil, err
	}
	pkg.InfoLog("loaded", schools.Len(), "schools and", programs.Len(), "programs")
	return store, nil
}

func openCSV(name, path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s dataset", name)
	}
	defer f.Close()
	return FromCSV(name, f)
}

func (s *Store) SchoolRows() []Row { return s.Schools.Rows() }

// ProgramsFor returns the program rows joined to a school id,
// preserving source order. An unknown id yields zero rows.
func (s *Store) ProgramsFor(school_id int) []Row {
	rows, ok := s.program_idx.Get(school_id)
	if !ok {
		return nil
	}
	return rows
}
