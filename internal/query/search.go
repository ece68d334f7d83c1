package query

import (
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/edudata/scorecard/internal/table"
	"github.com/edudata/scorecard/pkg"
)

const (
	MinQueryLength   = 2
	MaxSearchResults = 10
)

type SchoolRecord struct {
	Id             int      `json:"id"`
	Name           string   `json:"name"`
	Tuition        *float64 `json:"tuition"`
	AdmissionRate  *float64 `json:"admission_rate"`
	GraduationRate *float64 `json:"graduation_rate"`
	MedianEarnings *float64 `json:"median_earnings"`
}

// SearchSchools scans the school table for names containing the
// query, case-insensitively. Matches keep table order and are
// capped at MaxSearchResults; this is a cap, not a ranking.
// Schools without a name cell never match.
func SearchSchools(store *table.Store, search string, in_state bool) ([]SchoolRecord, error) {
	if utf8.RuneCountInString(search) < MinQueryLength {
		return nil, NewQueryError(http.StatusBadRequest,
			fmt.Sprintf("query must be at least %d characters", MinQueryLength))
	}

	tuition_column := table.TuitionOutState
	if in_state {
		tuition_column = table.TuitionInState
	}

	search = strings.ToLower(search)
	matches := pkg.Filter(store.SchoolRows(), func(row table.Row) bool {
		name, ok := row.Get(table.SchoolName).(string)
		return ok && strings.Contains(strings.ToLower(name), search)
	})
	if len(matches) > MaxSearchResults {
		matches = matches[:MaxSearchResults]
	}

	schools := []SchoolRecord{}
	for _, row := range matches {
		id, _ := table.CellInt(row.Get(table.SchoolId))
		schools = append(schools, SchoolRecord{
			Id:             id,
			Name:           row.Get(table.SchoolName).(string),
			Tuition:        Clean(row.Get(tuition_column)),
			AdmissionRate:  Clean(row.Get(table.AdmissionRate)),
			GraduationRate: Clean(row.Get(table.GraduationRate)),
			MedianEarnings: Clean(row.Get(table.MedianEarnings)),
		})
	}
	return schools, nil
}
