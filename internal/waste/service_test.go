package waste

import (
	"testing"

	"github.com/cleanninja/clean_ninja_api/internal/model"
)

var (
	budi = model.UserSnapshot{ID: "user-123456", DisplayName: "Budi Santoso"}
	dewi = model.UserSnapshot{ID: "user-345678", DisplayName: "Dewi Lestari"}
)

func validDraft() model.ReportDraft {
	return model.ReportDraft{
		Title:       "Tumpukan sampah plastik di pinggir sungai",
		Description: "Botol dan kantong plastik menumpuk di tepi sungai.",
		WasteType:   model.WastePlastic,
		Severity:    model.SeverityHigh,
		Location: &model.Location{
			Latitude:  -6.2088,
			Longitude: 106.8456,
			Address:   "Jl. Jenderal Sudirman, Jakarta Pusat",
		},
		Images: []string{"https://img.example/waste-1.jpg"},
	}
}

func TestCreateReportValidationOrder(t *testing.T) {
	testCases := []struct {
		name          string
		mutate        func(*model.ReportDraft)
		expectedField string
	}{
		{"Empty Title", func(d *model.ReportDraft) { d.Title = "" }, "title"},
		{"Blank Title", func(d *model.ReportDraft) { d.Title = "   " }, "title"},
		{"Empty Description", func(d *model.ReportDraft) { d.Description = "" }, "description"},
		{"Missing Location", func(d *model.ReportDraft) { d.Location = nil }, "location"},
		{"Latitude Out Of Range", func(d *model.ReportDraft) { d.Location.Latitude = 91 }, "location"},
		{"Longitude Out Of Range", func(d *model.ReportDraft) { d.Location.Longitude = -181 }, "location"},
		{"Empty Address", func(d *model.ReportDraft) { d.Location.Address = "" }, "address"},
		{"No Images", func(d *model.ReportDraft) { d.Images = nil }, "images"},
		{"Title Checked Before Images", func(d *model.ReportDraft) {
			d.Title = ""
			d.Images = nil
		}, "title"},
		{"Description Checked Before Address", func(d *model.ReportDraft) {
			d.Description = ""
			d.Location.Address = ""
		}, "description"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewService()
			draft := validDraft()
			tc.mutate(&draft)

			_, err := svc.CreateReport(draft, budi)
			validationErr, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if validationErr.Field != tc.expectedField {
				t.Errorf("expected field %q, got %q", tc.expectedField, validationErr.Field)
			}
		})
	}
}

func TestCreateReportInitialState(t *testing.T) {
	svc := NewService()

	report, err := svc.CreateReport(validDraft(), budi)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if report.ID == "" {
		t.Error("report should have an id")
	}
	if report.Status != model.StatusReported {
		t.Errorf("new report status = %q, want %q", report.Status, model.StatusReported)
	}
	if report.Reporter != budi {
		t.Errorf("reporter snapshot = %+v, want %+v", report.Reporter, budi)
	}
	if report.Cleaner != nil {
		t.Error("new report should have no cleaner")
	}
	if report.CleanedImage != nil {
		t.Error("new report should have no cleaned image")
	}
	if !report.CreatedAt.Equal(report.UpdatedAt) {
		t.Error("createdAt and updatedAt should match at creation")
	}
}

func TestCreateReportInsertsAtFront(t *testing.T) {
	svc := NewService()

	first, _ := svc.CreateReport(validDraft(), budi)
	second, _ := svc.CreateReport(validDraft(), budi)

	reports := svc.ListReports()
	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reports))
	}
	if reports[0].ID != second.ID || reports[1].ID != first.ID {
		t.Error("listing should be most-recent-first")
	}
}

func TestGetReportNotFound(t *testing.T) {
	svc := NewService()

	_, err := svc.GetReport("missing")
	if _, ok := err.(*NotFoundError); !ok {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestReportsCountTracksCreates(t *testing.T) {
	svc := NewService()

	for i := 0; i < 3; i++ {
		if _, err := svc.CreateReport(validDraft(), budi); err != nil {
			t.Fatalf("create %d failed: %v", i, err)
		}
		profile := svc.Profile(budi)
		if profile.ReportsCount != i+1 {
			t.Fatalf("after %d creates reportsCount = %d", i+1, profile.ReportsCount)
		}
	}

	if svc.Profile(dewi).ReportsCount != 0 {
		t.Error("other users' counters should be untouched")
	}
}

func TestResultsAreSnapshots(t *testing.T) {
	svc := NewService()
	report, _ := svc.CreateReport(validDraft(), budi)

	before := svc.ListReports()

	img := "https://img.example/clean-1.jpg"
	if _, err := svc.TransitionStatus(report.ID, model.StatusCleaned, &img, dewi); err != nil {
		t.Fatalf("transition failed: %v", err)
	}

	if before[0].Status != model.StatusReported {
		t.Error("already-returned sequence changed after a later mutation")
	}

	// Mutating a returned copy must not leak into the store either.
	before[0].Images[0] = "tampered"
	stored, _ := svc.GetReport(report.ID)
	if stored.Images[0] == "tampered" {
		t.Error("returned slice aliases store internals")
	}
}

func TestConcurrentMutationConflicts(t *testing.T) {
	svc := NewService()
	report, _ := svc.CreateReport(validDraft(), budi)

	// Hold the record lock as an in-flight mutation would.
	svc.reports[report.ID].mu.Lock()
	defer svc.reports[report.ID].mu.Unlock()

	_, err := svc.TransitionStatus(report.ID, model.StatusInProgress, nil, dewi)
	if _, ok := err.(*ConflictError); !ok {
		t.Fatalf("expected ConflictError, got %v", err)
	}

	// The losing attempt must leave the record untouched.
	stored, _ := svc.GetReport(report.ID)
	if stored.Status != model.StatusReported || stored.Cleaner != nil {
		t.Error("rejected mutation partially applied")
	}
}
