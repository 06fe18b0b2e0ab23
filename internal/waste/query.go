package waste

import (
	"sort"

	"github.com/cleanninja/clean_ninja_api/internal/model"
)

const filterAll = "ALL"

func criterionMatches(criterion, value string) bool {
	return criterion == "" || criterion == filterAll || criterion == value
}

// FilterReports narrows the full listing by exact status/type/severity match.
// Empty or ALL criteria are no-ops; set criteria compose by AND.
func (s *Service) FilterReports(filter model.ReportFilter) []model.WasteReport {
	all := s.ListReports()
	matched := make([]model.WasteReport, 0, len(all))
	for _, report := range all {
		if !criterionMatches(filter.Status, report.Status) {
			continue
		}
		if !criterionMatches(filter.WasteType, report.WasteType) {
			continue
		}
		if !criterionMatches(filter.Severity, report.Severity) {
			continue
		}
		matched = append(matched, report)
	}
	return matched
}

// ReportsByUser returns reports the given user filed.
func (s *Service) ReportsByUser(userID string) []model.WasteReport {
	all := s.ListReports()
	matched := make([]model.WasteReport, 0)
	for _, report := range all {
		if report.Reporter.ID == userID {
			matched = append(matched, report)
		}
	}
	return matched
}

// CleanedByUser returns reports the given user is cleaning or has cleaned.
// A report IN_PROGRESS has a cleaner but is not yet cleaned; callers that
// want finished work only should filter the result by status.
func (s *Service) CleanedByUser(userID string) []model.WasteReport {
	all := s.ListReports()
	matched := make([]model.WasteReport, 0)
	for _, report := range all {
		if report.Cleaner != nil && report.Cleaner.ID == userID {
			matched = append(matched, report)
		}
	}
	return matched
}

// RecentReports returns the n most recently created reports, newest first.
// Ties on createdAt keep insertion order, earlier-inserted first.
func (s *Service) RecentReports(n int) []model.WasteReport {
	all := s.ListReports()

	// ListReports is newest-first by insertion; reverse to insertion order
	// so the stable sort below breaks createdAt ties the documented way.
	for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
		all[i], all[j] = all[j], all[i]
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	if n < 0 {
		n = 0
	}
	if n > len(all) {
		n = len(all)
	}
	return all[:n]
}
