package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/ae-qualify/internal/types"
)

// MockExtractor returns canned extraction results keyed by document class.
// It stands in for the Gemini extractor in tests and offline demos. Child
// entries get fresh ids on every call, like a real extractor would mint.
type MockExtractor struct {
	// Latency, when positive, delays each call by a random duration up to
	// this bound to mimic a remote model.
	Latency time.Duration
}

// NewMockExtractor creates a mock extractor with no artificial latency.
func NewMockExtractor() *MockExtractor {
	return &MockExtractor{}
}

// Extract returns a fixture result for the document's class.
func (m *MockExtractor) Extract(ctx context.Context, doc Document) (Result, error) {
	if m.Latency > 0 {
		select {
		case <-time.After(time.Duration(rand.Int63n(int64(m.Latency)))):
		case <-ctx.Done():
			return Result{}, ctx.Err()
		}
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	switch ClassifyDocument(doc.FileName) {
	case DocResume:
		return encodeResult(types.KindSF330PartI, mockResumeFields(), 0.92)
	case DocProject:
		return encodeResult(types.KindSF330PartI, mockProjectProfileFields(), 0.88)
	case DocCertificate:
		return encodeResult(types.KindSF330PartII, mockCertificateFields(), 0.95)
	case DocContract:
		return encodeResult(types.KindSF252, mockContractFields(), 0.91)
	default:
		return encodeResult(types.KindSF330PartI, map[string]any{
			"firmName": "Extracted Firm Name",
		}, 0.65)
	}
}

// Close implements Extractor; the mock holds no resources.
func (m *MockExtractor) Close() error { return nil }

func encodeResult(target types.FormKind, fields map[string]any, confidence float64) (Result, error) {
	raw, err := json.Marshal(fields)
	if err != nil {
		return Result{}, fmt.Errorf("failed to encode fixture fields: %w", err)
	}
	return Result{
		Success:    true,
		Target:     target,
		Fields:     raw,
		Confidence: confidence,
	}, nil
}

func mockResumeFields() map[string]any {
	return map[string]any{
		"keyPersonnel": []types.KeyPersonnel{
			{
				ID:               uuid.NewString(),
				Name:             "Dr. Sarah Mitchell",
				Title:            "Principal Architect",
				YearsExperience:  18,
				FirmName:         "Mitchell & Associates",
				Education:        "Ph.D. Architecture, MIT",
				Certifications:   []string{"LEED AP", "AIA", "NCARB"},
				RelevantProjects: []string{"Federal Courthouse Renovation", "DOD Campus Master Plan"},
			},
		},
		"pointOfContactName":  "Dr. Sarah Mitchell",
		"pointOfContactTitle": "Principal Architect",
		"pointOfContactEmail": "sarah.mitchell@maa-architects.com",
		"pointOfContactPhone": "(202) 555-0147",
	}
}

func mockProjectProfileFields() map[string]any {
	return map[string]any{
		"exampleProjects": []types.ExampleProject{
			{
				ID:                  uuid.NewString(),
				ProjectName:         "Federal Reserve Bank Modernization",
				ProjectOwner:        "Federal Reserve System",
				OwnerPointOfContact: "James Wellington",
				OwnerPhone:          "(202) 555-0198",
				CompletionDate:      "2024-06",
				ProjectLocation:     "Washington, DC",
				EstimatedCost:       45000000,
				BriefDescription:    "Complete renovation and modernization of the historic Federal Reserve building including HVAC upgrades, seismic retrofitting, and sustainable design implementation.",
			},
		},
		"firmName":            "Mitchell & Associates Architects",
		"primeContractorName": "Mitchell & Associates Architects",
	}
}

func mockCertificateFields() map[string]any {
	return map[string]any{
		"firmName":                "Mitchell & Associates Architects, PLLC",
		"yearEstablished":         "1995",
		"dunsNumber":              "078451236",
		"taxIdNumber":             "52-1234567",
		"ownershipType":           "Professional Limited Liability Company",
		"smallBusinessStatus":     "Small Business",
		"totalEmployees":          127,
		"totalArchitects":         35,
		"totalEngineers":          42,
		"totalOtherProfessionals": 30,
		"totalAdministrative":     20,
		"employeesByDiscipline": []types.EmployeeByDiscipline{
			{ID: uuid.NewString(), FunctionCode: "12", Discipline: "Architect", EmployeeCount: 35},
			{ID: uuid.NewString(), FunctionCode: "21", Discipline: "Civil Engineer", EmployeeCount: 15},
			{ID: uuid.NewString(), FunctionCode: "23", Discipline: "Structural Engineer", EmployeeCount: 12},
			{ID: uuid.NewString(), FunctionCode: "30", Discipline: "Mechanical Engineer", EmployeeCount: 8},
			{ID: uuid.NewString(), FunctionCode: "32", Discipline: "Electrical Engineer", EmployeeCount: 7},
		},
	}
}

func mockContractFields() map[string]any {
	return map[string]any{
		"contractNumber":           "GS-00P-00-CYD-0009",
		"deliveryOrderNumber":      "DO-2024-0145",
		"effectiveDate":            "2024-01-15",
		"contractorName":           "Mitchell & Associates Architects, PLLC",
		"contractorAddress":        "1250 Connecticut Avenue NW",
		"contractorCity":           "Washington",
		"contractorState":          "DC",
		"contractorZipCode":        "20036",
		"contractorPhone":          "(202) 555-0100",
		"contractorTIN":            "52-1234567",
		"contractDate":             "2024-01-15",
		"contractAmount":           2500000,
		"obligatedAmount":          750000,
		"periodOfPerformanceStart": "2024-02-01",
		"periodOfPerformanceEnd":   "2026-01-31",
		"servicesDescription":      "Architectural and Engineering Services for Federal Building Renovation Project",
	}
}
