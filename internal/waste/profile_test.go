package waste

import (
	"testing"

	"github.com/cleanninja/clean_ninja_api/internal/model"
)

func TestProfileCreatedOncePerIdentity(t *testing.T) {
	svc := NewService()

	first := svc.Profile(budi)
	if first.ID != budi.ID || first.DisplayName != budi.DisplayName {
		t.Errorf("profile identity mismatch: %+v", first)
	}
	if first.Username != "budi_santoso" {
		t.Errorf("username = %q, want budi_santoso", first.Username)
	}

	// A rename on a later call must not replace the existing profile.
	renamed := model.UserSnapshot{ID: budi.ID, DisplayName: "Budi S."}
	second := svc.Profile(renamed)
	if second.DisplayName != budi.DisplayName {
		t.Error("profile should be created once and kept")
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Error("createdAt should not change on later access")
	}
}

func TestProfileByID(t *testing.T) {
	svc := NewService()
	svc.Profile(budi)

	profile, err := svc.ProfileByID(budi.ID)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if profile.ID != budi.ID {
		t.Errorf("profile id = %q", profile.ID)
	}

	if _, err := svc.ProfileByID("missing"); err == nil {
		t.Error("unknown profile should be a NotFoundError")
	}
}

func TestSnapshotsSurviveRename(t *testing.T) {
	svc := NewService()

	report, _ := svc.CreateReport(validDraft(), budi)

	// Historical attribution keeps the name captured at event time.
	svc.Profile(model.UserSnapshot{ID: budi.ID, DisplayName: "Someone Else"})

	stored, _ := svc.GetReport(report.ID)
	if stored.Reporter.DisplayName != budi.DisplayName {
		t.Errorf("reporter snapshot rewritten to %q", stored.Reporter.DisplayName)
	}
}
