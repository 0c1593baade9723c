package types

import (
	"encoding/json"
	"testing"
	"time"
)

func TestInferAssetType(t *testing.T) {
	cases := []struct {
		fileName string
		want     AssetType
	}{
		{"Sarah_Mitchell_Resume.pdf", AssetResume},
		{"jones-CV-2024.docx", AssetResume},
		{"project_profile_courthouse.pdf", AssetProjectProfile},
		{"firm-profile.docx", AssetProjectProfile},
		{"AIA_certificate.pdf", AssetCertificate},
		{"state_license.pdf", AssetCertificate},
		{"notes.txt", AssetOther},
	}
	for _, tc := range cases {
		if got := InferAssetType(tc.fileName); got != tc.want {
			t.Errorf("InferAssetType(%q) = %q, want %q", tc.fileName, got, tc.want)
		}
	}
}

func TestNormalizeFormType(t *testing.T) {
	cases := []struct {
		in   string
		want FormType
	}{
		{"SF330", FormTypeSF330},
		{"SF330_PART_I", FormTypeSF330},
		{"SF330_PART_II", FormTypeSF330},
		{"SF254", FormTypeSF254},
		{"SF255", FormTypeSF255},
		{"SF252", FormTypeSF252},
		{"", FormTypeSF330},
		{"garbage", FormTypeSF330},
	}
	for _, tc := range cases {
		if got := NormalizeFormType(tc.in); got != tc.want {
			t.Errorf("NormalizeFormType(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNewDashboardState(t *testing.T) {
	state := NewDashboardState()

	if state.ActiveForm != FormTypeSF330 {
		t.Errorf("ActiveForm = %q, want SF330", state.ActiveForm)
	}
	if len(state.Projects) != 1 || state.Projects[0].ID != DefaultProjectID {
		t.Fatalf("Projects = %+v, want single default project", state.Projects)
	}
	if state.ActiveProjectID != DefaultProjectID {
		t.Errorf("ActiveProjectID = %q, want %q", state.ActiveProjectID, DefaultProjectID)
	}
	if state.FormData.SF330PartI.Country != "USA" {
		t.Errorf("SF330PartI.Country = %q, want USA default", state.FormData.SF330PartI.Country)
	}
	if state.FormData.SF330PartI.KeyPersonnel == nil {
		t.Error("KeyPersonnel should be an empty slice, not nil")
	}
}

func TestNewUploadedAssetDefaultsProject(t *testing.T) {
	asset := NewUploadedAsset("resume.pdf", 2048, "")
	if asset.ProjectID != DefaultProjectID {
		t.Errorf("ProjectID = %q, want default sentinel", asset.ProjectID)
	}
	if asset.Type != AssetResume {
		t.Errorf("Type = %q, want resume", asset.Type)
	}
	if asset.ID == "" {
		t.Error("asset id should be generated")
	}
}

func TestNewProjectUniqueIDs(t *testing.T) {
	a := NewProject("Federal HQ Reno", "")
	b := NewProject("Federal HQ Reno", "")
	if a.ID == b.ID {
		t.Error("two projects should never share an id")
	}
	if a.CreatedAt.IsZero() || a.UpdatedAt.IsZero() {
		t.Error("timestamps should be set")
	}
}

func TestDashboardStateSerializesDatesAsISO(t *testing.T) {
	state := NewDashboardState()
	state.Projects[0].CreatedAt = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	raw, err := json.Marshal(state)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var parsed map[string]any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	projects := parsed["projects"].([]any)
	created := projects[0].(map[string]any)["createdAt"].(string)
	if created != "2026-03-14T09:30:00Z" {
		t.Errorf("createdAt = %q, want ISO-8601", created)
	}
}

func TestCreateProjectRequestValidate(t *testing.T) {
	ok := CreateProjectRequest{Name: "Courthouse Annex"}
	if err := ok.Validate(); err != nil {
		t.Errorf("valid request rejected: %v", err)
	}
	empty := CreateProjectRequest{}
	if err := empty.Validate(); err == nil {
		t.Error("empty name should be rejected")
	}
}
