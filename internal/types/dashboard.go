// Package types provides type definitions for the form dashboard: projects,
// uploaded assets, the five federal form shapes, and the aggregate state tree.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// FormType identifies which form surface is active in the UI.
// SF330 covers both Part I and Part II.
type FormType string

// Known form surfaces.
const (
	FormTypeSF330 FormType = "SF330"
	FormTypeSF254 FormType = "SF254"
	FormTypeSF255 FormType = "SF255"
	FormTypeSF252 FormType = "SF252"
)

// NormalizeFormType maps deprecated active-form values from older persisted
// blobs to their current equivalents. Unknown values fall back to SF330.
func NormalizeFormType(v string) FormType {
	switch v {
	case "SF330_PART_I", "SF330_PART_II", string(FormTypeSF330):
		return FormTypeSF330
	case string(FormTypeSF254):
		return FormTypeSF254
	case string(FormTypeSF255):
		return FormTypeSF255
	case string(FormTypeSF252):
		return FormTypeSF252
	default:
		return FormTypeSF330
	}
}

// DefaultProjectID is the sentinel id of the project that always exists.
const DefaultProjectID = "default"

// Project groups uploaded assets and form work under a named effort.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewProject constructs a project with a fresh id and timestamps.
func NewProject(name, description string) Project {
	now := time.Now()
	return Project{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// AssetType classifies an uploaded document by what it likely contains.
type AssetType string

// Known asset types.
const (
	AssetResume         AssetType = "resume"
	AssetProjectProfile AssetType = "project_profile"
	AssetCertificate    AssetType = "certificate"
	AssetOther          AssetType = "other"
)

// InferAssetType guesses the asset type from filename substrings.
func InferAssetType(fileName string) AssetType {
	name := strings.ToLower(fileName)
	switch {
	case strings.Contains(name, "resume") || strings.Contains(name, "cv"):
		return AssetResume
	case strings.Contains(name, "project") || strings.Contains(name, "profile"):
		return AssetProjectProfile
	case strings.Contains(name, "cert") || strings.Contains(name, "license"):
		return AssetCertificate
	default:
		return AssetOther
	}
}

// UploadedAsset records a document received for a project. ExtractedData
// holds the raw extraction payload for later inspection; it is advisory and
// never read back into form state.
type UploadedAsset struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Type          AssetType      `json:"type"`
	Size          int64          `json:"size"`
	UploadedAt    time.Time      `json:"uploadedAt"`
	ProjectID     string         `json:"projectId"`
	ExtractedData map[string]any `json:"extractedData,omitempty"`
}

// NewUploadedAsset constructs an asset record for a received file. An empty
// projectID falls back to the default sentinel project.
func NewUploadedAsset(fileName string, size int64, projectID string) UploadedAsset {
	if projectID == "" {
		projectID = DefaultProjectID
	}
	return UploadedAsset{
		ID:         uuid.NewString(),
		Name:       fileName,
		Type:       InferAssetType(fileName),
		Size:       size,
		UploadedAt: time.Now(),
		ProjectID:  projectID,
	}
}

// UnifiedFormData aggregates the five form shapes. All five are always
// populated; only field values change over the life of a session.
type UnifiedFormData struct {
	SF330PartI  SF330PartIData  `json:"sf330PartI"`
	SF330PartII SF330PartIIData `json:"sf330PartII"`
	SF254       SF254Data       `json:"sf254"`
	SF255       SF255Data       `json:"sf255"`
	SF252       SF252Data       `json:"sf252"`
}

// DashboardState is the full serializable state tree.
type DashboardState struct {
	ActiveForm      FormType        `json:"activeForm"`
	Projects        []Project       `json:"projects"`
	ActiveProjectID string          `json:"activeProjectId,omitempty"`
	UploadedAssets  []UploadedAsset `json:"uploadedAssets"`
	FormData        UnifiedFormData `json:"formData"`
	IsLoading       bool            `json:"isLoading"`
}
