// list.go: sanitized case listings for operator inspection
package workflow

// ListCases returns the sanitized projection of every case, ordered by ID.
// Intended for operator tooling, not for the conversational caller.
func (s *Service) ListCases() ([]CaseSummary, error) {
	cases, err := s.ds.GetAllCases()
	if err != nil {
		return nil, err
	}

	summaries := make([]CaseSummary, 0, len(cases))
	for i := range cases {
		summaries = append(summaries, *summarize(&cases[i]))
	}
	return summaries, nil
}

// GetCase returns the sanitized projection of a single case. The outcome
// note is a transition audit field, so it rides along here but not in the
// conversational projection.
func (s *Service) GetCase(id uint) (*CaseSummary, string, error) {
	fraudCase, err := s.ds.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	return summarize(fraudCase), fraudCase.OutcomeNote, nil
}
