package waste

import (
	"testing"
	"time"

	"github.com/cleanninja/clean_ninja_api/internal/model"
)

// fakeClock hands out a controllable current time.
type fakeClock struct {
	current time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.current
}

func (c *fakeClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}

func newClockedService() (*Service, *fakeClock) {
	clock := &fakeClock{current: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	return NewService(WithClock(clock.Now)), clock
}

func createWith(t *testing.T, svc *Service, mutate func(*model.ReportDraft)) model.WasteReport {
	t.Helper()
	draft := validDraft()
	if mutate != nil {
		mutate(&draft)
	}
	report, err := svc.CreateReport(draft, budi)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	return report
}

func TestFilterReports(t *testing.T) {
	svc := NewService()
	img := "https://img.example/clean.jpg"

	plastic := createWith(t, svc, nil)
	household := createWith(t, svc, func(d *model.ReportDraft) {
		d.WasteType = model.WasteHousehold
		d.Severity = model.SeverityLow
	})
	industrial := createWith(t, svc, func(d *model.ReportDraft) {
		d.WasteType = model.WasteIndustrial
		d.Severity = model.SeverityHigh
	})
	if _, err := svc.TransitionStatus(industrial.ID, model.StatusCleaned, &img, dewi); err != nil {
		t.Fatalf("setup transition failed: %v", err)
	}

	testCases := []struct {
		name     string
		filter   model.ReportFilter
		expected []string
	}{
		{"Empty Filter Returns All", model.ReportFilter{}, []string{industrial.ID, household.ID, plastic.ID}},
		{"ALL Values Are Noops", model.ReportFilter{Status: "ALL", WasteType: "ALL", Severity: "ALL"}, []string{industrial.ID, household.ID, plastic.ID}},
		{"By Status", model.ReportFilter{Status: model.StatusCleaned}, []string{industrial.ID}},
		{"By Waste Type", model.ReportFilter{WasteType: model.WasteHousehold}, []string{household.ID}},
		{"By Severity", model.ReportFilter{Severity: model.SeverityHigh}, []string{industrial.ID, plastic.ID}},
		{"Criteria Compose By AND", model.ReportFilter{Severity: model.SeverityHigh, Status: model.StatusReported}, []string{plastic.ID}},
		{"No Match", model.ReportFilter{Status: model.StatusCleaned, WasteType: model.WasteHousehold}, []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			matched := svc.FilterReports(tc.filter)
			if len(matched) != len(tc.expected) {
				t.Fatalf("got %d reports, want %d", len(matched), len(tc.expected))
			}
			for i, id := range tc.expected {
				if matched[i].ID != id {
					t.Errorf("result[%d] = %s, want %s", i, matched[i].ID, id)
				}
			}
		})
	}
}

func TestReportsByUser(t *testing.T) {
	svc := NewService()

	mine, _ := svc.CreateReport(validDraft(), budi)
	if _, err := svc.CreateReport(validDraft(), dewi); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	reports := svc.ReportsByUser(budi.ID)
	if len(reports) != 1 || reports[0].ID != mine.ID {
		t.Errorf("byReporter should only return budi's report, got %d", len(reports))
	}
	if len(svc.ReportsByUser("nobody")) != 0 {
		t.Error("unknown user should have no reports")
	}
}

func TestCleanedByUserIncludesInProgress(t *testing.T) {
	svc := NewService()
	img := "https://img.example/clean.jpg"

	inProgress, _ := svc.CreateReport(validDraft(), budi)
	cleaned, _ := svc.CreateReport(validDraft(), budi)
	untouched, _ := svc.CreateReport(validDraft(), budi)

	svc.TransitionStatus(inProgress.ID, model.StatusInProgress, nil, dewi)
	svc.TransitionStatus(cleaned.ID, model.StatusCleaned, &img, dewi)

	got := svc.CleanedByUser(dewi.ID)
	if len(got) != 2 {
		t.Fatalf("expected 2 reports with dewi as cleaner, got %d", len(got))
	}
	for _, r := range got {
		if r.ID == untouched.ID {
			t.Error("report without a cleaner should not appear")
		}
	}
}

func TestRecentReportsOrdering(t *testing.T) {
	svc, clock := newClockedService()

	oldest := createWith(t, svc, nil)
	clock.Advance(time.Hour)
	tieA := createWith(t, svc, nil)
	tieB := createWith(t, svc, nil) // same timestamp, inserted after tieA
	clock.Advance(time.Hour)
	newest := createWith(t, svc, nil)

	got := svc.RecentReports(4)
	want := []string{newest.ID, tieA.ID, tieB.ID, oldest.ID}
	if len(got) != len(want) {
		t.Fatalf("got %d reports, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("recent[%d] = %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestRecentReportsTruncation(t *testing.T) {
	svc, clock := newClockedService()

	createWith(t, svc, nil)
	clock.Advance(time.Minute)
	newest := createWith(t, svc, nil)

	if got := svc.RecentReports(1); len(got) != 1 || got[0].ID != newest.ID {
		t.Error("recent(1) should return only the newest report")
	}
	if got := svc.RecentReports(10); len(got) != 2 {
		t.Errorf("recent(10) over 2 reports should return 2, got %d", len(got))
	}
	if got := svc.RecentReports(0); len(got) != 0 {
		t.Errorf("recent(0) should be empty, got %d", len(got))
	}
	if got := svc.RecentReports(-1); len(got) != 0 {
		t.Errorf("recent(-1) should be empty, got %d", len(got))
	}
}
