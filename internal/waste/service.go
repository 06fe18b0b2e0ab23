package waste

import (
	"sync"
	"time"

	"github.com/cleanninja/clean_ninja_api/internal/model"
	"github.com/cleanninja/clean_ninja_api/util"
)

// Service is the single owner of report, comment and profile state. All
// mutations go through it and apply atomically under its lock; readers get
// independent copies, never aliases into the store.
type Service struct {
	mu       sync.RWMutex
	reports  map[string]*reportRecord
	order    []string // report ids, most recent first
	comments map[string][]model.Comment
	profiles map[string]*model.UserProfile

	now   func() time.Time
	newID func() string
}

// reportRecord carries a per-report mutex so at most one mutation is in
// flight per id; a second concurrent attempt is rejected with ConflictError.
type reportRecord struct {
	mu     sync.Mutex
	report model.WasteReport
}

type Option func(*Service)

// WithClock overrides the service clock, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithIDGenerator overrides report/comment id generation.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) {
		s.newID = newID
	}
}

func NewService(opts ...Option) *Service {
	s := &Service{
		reports:  make(map[string]*reportRecord),
		comments: make(map[string][]model.Comment),
		profiles: make(map[string]*model.UserProfile),
		now:      time.Now,
		newID:    func() string { return util.GenerateUUID().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateReport validates the draft, inserts the new report at the front of
// the iteration order and bumps the reporter's reportsCount in the same
// critical section.
func (s *Service) CreateReport(draft model.ReportDraft, caller model.UserSnapshot) (model.WasteReport, error) {
	if err := validateDraft(draft); err != nil {
		return model.WasteReport{}, err
	}

	now := s.now()
	report := model.WasteReport{
		ID:          s.newID(),
		Title:       draft.Title,
		Description: draft.Description,
		WasteType:   draft.WasteType,
		Severity:    draft.Severity,
		Location:    *draft.Location,
		Images:      append([]string(nil), draft.Images...),
		Status:      model.StatusReported,
		Reporter:    caller,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.reports[report.ID] = &reportRecord{report: report}
	s.order = append([]string{report.ID}, s.order...)

	profile := s.ensureProfileLocked(caller)
	profile.ReportsCount++

	return copyReport(report), nil
}

func validateDraft(draft model.ReportDraft) error {
	if !util.NotBlank(draft.Title) {
		return &ValidationError{Field: "title", Message: "title is required"}
	}
	if !util.NotBlank(draft.Description) {
		return &ValidationError{Field: "description", Message: "description is required"}
	}
	if draft.Location == nil {
		return &ValidationError{Field: "location", Message: "latitude and longitude are required"}
	}
	if err := util.ValidateStruct(draft.Location); err != nil {
		return &ValidationError{Field: "location", Message: "latitude and longitude must be valid coordinates"}
	}
	if !util.NotBlank(draft.Location.Address) {
		return &ValidationError{Field: "address", Message: "address is required"}
	}
	if len(draft.Images) == 0 {
		return &ValidationError{Field: "images", Message: "at least one image is required"}
	}
	return nil
}

// GetReport returns a copy of the report with the given id.
func (s *Service) GetReport(id string) (model.WasteReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.reports[id]
	if !ok {
		return model.WasteReport{}, &NotFoundError{Kind: "report", ID: id}
	}
	return copyReport(rec.report), nil
}

// ListReports returns all reports, most recently created first.
func (s *Service) ListReports() []model.WasteReport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reports := make([]model.WasteReport, 0, len(s.order))
	for _, id := range s.order {
		reports = append(reports, copyReport(s.reports[id].report))
	}
	return reports
}

func copyReport(r model.WasteReport) model.WasteReport {
	out := r
	out.Images = append([]string(nil), r.Images...)
	if r.CleanedImage != nil {
		img := *r.CleanedImage
		out.CleanedImage = &img
	}
	if r.Cleaner != nil {
		cleaner := *r.Cleaner
		out.Cleaner = &cleaner
	}
	return out
}
