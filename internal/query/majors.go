package query

import (
	"sort"

	"github.com/edudata/scorecard/internal/table"
	"github.com/edudata/scorecard/pkg"
)

type MajorRecord struct {
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Salary      float64 `json:"salary"`
}

// SchoolMajors returns at most one major per CIP category for a
// school, keeping the highest-earning row of each category, sorted
// by salary descending. Rows without earnings data never appear.
// An unknown school id yields an empty result, not an error.
func SchoolMajors(store *table.Store, school_id int) []MajorRecord {
	best := pkg.NewInsertSortMap[string, MajorRecord]()
	for _, row := range store.ProgramsFor(school_id) {
		salary := Clean(row.Get(table.ProgramEarnings))
		if salary == nil {
			continue
		}

		major := MajorRecord{
			Category:    MajorName(row.Get(table.ProgramCipCode)),
			Description: stripLast(row.Get(table.ProgramDescription)),
			Salary:      *salary,
		}

		// running best per category; ties keep the first seen
		if best.Has(major.Category) && best.Get(major.Category).Salary >= major.Salary {
			continue
		}
		best.Set(major.Category, major)
	}

	majors := best.Values()
	sort.SliceStable(majors, func(i, j int) bool {
		return majors[i].Salary > majors[j].Salary
	})
	return majors
}

// stripLast drops the trailing period the source data carries on
// every CIPDESC value. Missing and empty descriptions stay empty.
func stripLast(cell any) string {
	description, _ := cell.(string)
	if len(description) == 0 {
		return ""
	}
	return description[:len(description)-1]
}
