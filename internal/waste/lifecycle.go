package waste

import (
	"github.com/cleanninja/clean_ninja_api/internal/model"
)

// legalTransitions is the full status state machine. Anything not listed,
// including same-state requests and anything out of CLEANED, is rejected.
var legalTransitions = map[string][]string{
	model.StatusReported:   {model.StatusInProgress, model.StatusCleaned},
	model.StatusInProgress: {model.StatusCleaned},
	model.StatusCleaned:    {},
}

func transitionAllowed(from, to string) bool {
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// TransitionStatus moves a report through the lifecycle. On entry to
// IN_PROGRESS or CLEANED the caller becomes the cleaner; CLEANED additionally
// requires a cleanup photo and bumps the caller's cleanedCount. Status,
// cleaner and cleanedImage update as one unit.
func (s *Service) TransitionStatus(id, target string, cleanedImage *string, caller model.UserSnapshot) (model.WasteReport, error) {
	s.mu.RLock()
	rec, ok := s.reports[id]
	s.mu.RUnlock()
	if !ok {
		return model.WasteReport{}, &NotFoundError{Kind: "report", ID: id}
	}

	// At most one in-flight mutation per report; a loser backs off and
	// retries the whole operation rather than queueing behind stale state.
	if !rec.mu.TryLock() {
		return model.WasteReport{}, &ConflictError{ID: id}
	}
	defer rec.mu.Unlock()

	from := rec.report.Status
	if !transitionAllowed(from, target) {
		return model.WasteReport{}, &InvalidTransitionError{From: from, To: target}
	}
	if target == model.StatusCleaned && cleanedImage == nil {
		return model.WasteReport{}, &ValidationError{Field: "cleaned_image", Message: "cleanup photo required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec.report.Status = target
	rec.report.UpdatedAt = s.now()
	cleaner := caller
	rec.report.Cleaner = &cleaner
	if target == model.StatusCleaned {
		img := *cleanedImage
		rec.report.CleanedImage = &img
		// Guard against double counting if a cleaned report were ever
		// re-cleaned through a relaxed transition table.
		if from != model.StatusCleaned {
			profile := s.ensureProfileLocked(caller)
			profile.CleanedCount++
		}
	}

	return copyReport(rec.report), nil
}
