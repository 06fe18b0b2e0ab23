package waste

import (
	"github.com/cleanninja/clean_ninja_api/internal/model"
	"github.com/cleanninja/clean_ninja_api/util"
)

// AddComment appends a comment to the report's sequence. Comments are
// append-only; nothing ever reorders or rewrites them.
func (s *Service) AddComment(reportID, text string, author model.UserSnapshot) (model.Comment, error) {
	if !util.NotBlank(text) {
		return model.Comment{}, &ValidationError{Field: "text", Message: "comment text is required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reports[reportID]; !ok {
		return model.Comment{}, &NotFoundError{Kind: "report", ID: reportID}
	}

	comment := model.Comment{
		ID:        s.newID(),
		ReportID:  reportID,
		Text:      text,
		Author:    author,
		CreatedAt: s.now(),
	}
	s.comments[reportID] = append(s.comments[reportID], comment)

	return comment, nil
}

// ListComments returns the report's comments in append order. A report with
// no comments yields an empty slice, not an error.
func (s *Service) ListComments(reportID string) ([]model.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.reports[reportID]; !ok {
		return nil, &NotFoundError{Kind: "report", ID: reportID}
	}
	return append([]model.Comment(nil), s.comments[reportID]...), nil
}
