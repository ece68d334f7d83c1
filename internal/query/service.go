package query

import "github.com/edudata/scorecard/internal/table"

// Service is the seam between the transport layer and the query
// engine. It owns no state beyond the immutable store reference,
// so calls are safe from any number of goroutines.
type Service struct {
	store *table.Store
}

func NewService(store *table.Store) *Service {
	return &Service{store: store}
}

func (s *Service) SearchSchools(search string, in_state bool) ([]SchoolRecord, error) {
	return SearchSchools(s.store, search, in_state)
}

func (s *Service) SchoolMajors(school_id int) []MajorRecord {
	return SchoolMajors(s.store, school_id)
}
