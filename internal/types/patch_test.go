package types

import (
	"encoding/json"
	"testing"
)

func strPtr(s string) *string    { return &s }
func intPtr(n int) *int          { return &n }
func f64Ptr(f float64) *float64  { return &f }

func TestSF330PartIPatchApplyPreservesUntouchedFields(t *testing.T) {
	base := NewSF330PartI()
	base.FirmName = "Mitchell & Associates"
	base.City = "Washington"
	base.KeyPersonnel = []KeyPersonnel{{ID: "kp-1", Name: "Sarah Mitchell"}}

	patch := SF330PartIPatch{
		ContractNumber: strPtr("GS-00P-00-CYD-0009"),
	}
	got := patch.Apply(base)

	if got.ContractNumber != "GS-00P-00-CYD-0009" {
		t.Errorf("ContractNumber = %q, want patched value", got.ContractNumber)
	}
	if got.FirmName != "Mitchell & Associates" {
		t.Errorf("FirmName = %q, want preserved value", got.FirmName)
	}
	if got.City != "Washington" {
		t.Errorf("City = %q, want preserved value", got.City)
	}
	if len(got.KeyPersonnel) != 1 || got.KeyPersonnel[0].ID != "kp-1" {
		t.Errorf("KeyPersonnel perturbed by unrelated patch: %+v", got.KeyPersonnel)
	}
}

func TestPatchCollectionReplacesWholesale(t *testing.T) {
	base := NewSF330PartI()
	base.KeyPersonnel = []KeyPersonnel{
		{ID: "old-1", Name: "Existing Person"},
		{ID: "old-2", Name: "Another Person"},
	}

	patch := SF330PartIPatch{
		KeyPersonnel: []KeyPersonnel{{ID: "new-1", Name: "Extracted Person"}},
	}
	got := patch.Apply(base)

	if len(got.KeyPersonnel) != 1 {
		t.Fatalf("KeyPersonnel length = %d, want 1 (replace, not append)", len(got.KeyPersonnel))
	}
	if got.KeyPersonnel[0].ID != "new-1" {
		t.Errorf("KeyPersonnel[0].ID = %q, want new-1", got.KeyPersonnel[0].ID)
	}
}

func TestPatchZeroValueOverwrites(t *testing.T) {
	base := NewSF330PartII()
	base.TotalEmployees = 127

	// An explicit zero is a real value, distinct from an absent field.
	patch := SF330PartIIPatch{TotalEmployees: intPtr(0)}
	got := patch.Apply(base)
	if got.TotalEmployees != 0 {
		t.Errorf("TotalEmployees = %d, want 0", got.TotalEmployees)
	}
}

func TestDecodePatchAbsentKeysStayNil(t *testing.T) {
	raw := []byte(`{"contractAmount": 500000}`)
	p, err := DecodePatch(KindSF252, raw)
	if err != nil {
		t.Fatalf("DecodePatch failed: %v", err)
	}

	patch, ok := p.(SF252Patch)
	if !ok {
		t.Fatalf("DecodePatch returned %T, want SF252Patch", p)
	}
	if patch.ContractAmount == nil || *patch.ContractAmount != 500000 {
		t.Errorf("ContractAmount = %v, want 500000", patch.ContractAmount)
	}
	if patch.ContractorName != nil {
		t.Errorf("ContractorName = %v, want nil for absent key", patch.ContractorName)
	}

	// Applying the decoded patch must only touch the present field.
	base := NewSF252()
	base.ContractorName = "Mitchell & Associates Architects, PLLC"
	got := patch.Apply(base)
	if got.ContractAmount != 500000 {
		t.Errorf("ContractAmount = %v, want 500000", got.ContractAmount)
	}
	if got.ContractorName != "Mitchell & Associates Architects, PLLC" {
		t.Errorf("ContractorName perturbed: %q", got.ContractorName)
	}
}

func TestDecodePatchUnknownKind(t *testing.T) {
	if _, err := DecodePatch(FormKind("SF999"), []byte(`{}`)); err == nil {
		t.Error("expected error for unknown form kind")
	}
}

func TestPatchRoundTripJSON(t *testing.T) {
	patch := SF254Patch{
		FirmName:             strPtr("Acme Architects"),
		AnnualAverageRevenue: f64Ptr(1250000.50),
	}
	raw, err := json.Marshal(patch)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	decoded, err := DecodePatch(KindSF254, raw)
	if err != nil {
		t.Fatalf("DecodePatch failed: %v", err)
	}
	got := decoded.(SF254Patch)
	if got.FirmName == nil || *got.FirmName != "Acme Architects" {
		t.Errorf("FirmName = %v, want Acme Architects", got.FirmName)
	}
	if got.TotalPersonnel != nil {
		t.Errorf("TotalPersonnel = %v, want nil", got.TotalPersonnel)
	}
}

func TestPatchKinds(t *testing.T) {
	cases := []struct {
		patch FormPatch
		want  FormKind
	}{
		{SF330PartIPatch{}, KindSF330PartI},
		{SF330PartIIPatch{}, KindSF330PartII},
		{SF254Patch{}, KindSF254},
		{SF255Patch{}, KindSF255},
		{SF252Patch{}, KindSF252},
	}
	for _, tc := range cases {
		if got := tc.patch.Kind(); got != tc.want {
			t.Errorf("%T.Kind() = %q, want %q", tc.patch, got, tc.want)
		}
	}
}

func TestParseFormKind(t *testing.T) {
	if _, err := ParseFormKind("SF330_PART_I"); err != nil {
		t.Errorf("ParseFormKind(SF330_PART_I) failed: %v", err)
	}
	if _, err := ParseFormKind("SF330"); err == nil {
		t.Error("ParseFormKind(SF330) should fail: SF330 is a surface, not a data shape")
	}
}
