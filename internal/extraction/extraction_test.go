package extraction

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ae-qualify/internal/types"
)

func TestClassifyDocument(t *testing.T) {
	cases := []struct {
		fileName string
		want     DocClass
	}{
		{"Sarah_Mitchell_Resume.pdf", DocResume},
		{"key-personnel.docx", DocResume},
		{"courthouse_project_profile.pdf", DocProject},
		{"portfolio2024.pdf", DocProject},
		{"firm_qualification.pdf", DocCertificate},
		{"state_license.pdf", DocCertificate},
		{"sf252_signed.pdf", DocContract},
		{"services agreement.pdf", DocContract},
		{"meeting-notes.txt", DocOther},
	}
	for _, tc := range cases {
		if got := ClassifyDocument(tc.fileName); got != tc.want {
			t.Errorf("ClassifyDocument(%q) = %q, want %q", tc.fileName, got, tc.want)
		}
	}
}

func TestMockExtractorTargets(t *testing.T) {
	m := NewMockExtractor()
	ctx := context.Background()

	cases := []struct {
		fileName   string
		target     types.FormKind
		confidence float64
	}{
		{"resume.pdf", types.KindSF330PartI, 0.92},
		{"project_profile.pdf", types.KindSF330PartI, 0.88},
		{"firm_certificate.pdf", types.KindSF330PartII, 0.95},
		{"contract.pdf", types.KindSF252, 0.91},
		{"unknown.txt", types.KindSF330PartI, 0.65},
	}
	for _, tc := range cases {
		result, err := m.Extract(ctx, Document{FileName: tc.fileName})
		require.NoError(t, err, tc.fileName)
		assert.True(t, result.Success)
		assert.Equal(t, tc.target, result.Target, tc.fileName)
		assert.Equal(t, tc.confidence, result.Confidence, tc.fileName)

		// Every fixture must decode against its declared target.
		_, err = result.Patch()
		assert.NoError(t, err, tc.fileName)
	}
}

func TestMockExtractorMintsFreshIDs(t *testing.T) {
	m := NewMockExtractor()
	ctx := context.Background()

	first, err := m.Extract(ctx, Document{FileName: "resume.pdf"})
	require.NoError(t, err)
	second, err := m.Extract(ctx, Document{FileName: "resume.pdf"})
	require.NoError(t, err)

	p1, err := first.Patch()
	require.NoError(t, err)
	p2, err := second.Patch()
	require.NoError(t, err)

	kp1 := p1.(types.SF330PartIPatch).KeyPersonnel
	kp2 := p2.(types.SF330PartIPatch).KeyPersonnel
	require.Len(t, kp1, 1)
	require.Len(t, kp2, 1)
	assert.NotEqual(t, kp1[0].ID, kp2[0].ID)
}

func TestMockExtractorHonorsCancelledContext(t *testing.T) {
	m := NewMockExtractor()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Extract(ctx, Document{FileName: "resume.pdf"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuildExtractionPrompt(t *testing.T) {
	schema := ContractSchema()
	prompt := BuildExtractionPrompt(schema, "Contract No. GS-00P-00-CYD-0009")

	assert.Contains(t, prompt, "contractNumber")
	assert.Contains(t, prompt, "(required)")
	assert.Contains(t, prompt, "Contract No. GS-00P-00-CYD-0009")
	assert.Contains(t, prompt, "Return ONLY valid JSON")
}

func TestSchemaForClassTargets(t *testing.T) {
	assert.Equal(t, types.KindSF330PartI, SchemaForClass(DocResume).Target)
	assert.Equal(t, types.KindSF330PartI, SchemaForClass(DocProject).Target)
	assert.Equal(t, types.KindSF330PartII, SchemaForClass(DocCertificate).Target)
	assert.Equal(t, types.KindSF252, SchemaForClass(DocContract).Target)
	assert.Equal(t, types.KindSF330PartI, SchemaForClass(DocOther).Target)
}

func TestCleanJSONBlock(t *testing.T) {
	wrapped := "```json\n{\"firmName\": \"Acme\"}\n```"
	assert.Equal(t, `{"firmName": "Acme"}`, cleanJSONBlock(wrapped))
	assert.Equal(t, `{"a":1}`, cleanJSONBlock("{\"a\":1}"))
}

func TestAssignChildIDs(t *testing.T) {
	fields := map[string]any{
		"keyPersonnel": []any{
			map[string]any{"id": "", "name": "Sarah"},
			map[string]any{"id": "keep-me", "name": "James"},
		},
		"firmName": "Acme",
	}
	assignChildIDs(fields)

	entries := fields["keyPersonnel"].([]any)
	first := entries[0].(map[string]any)
	second := entries[1].(map[string]any)
	assert.NotEmpty(t, first["id"])
	assert.Equal(t, "keep-me", second["id"])
	assert.Equal(t, "Acme", fields["firmName"])
}

func TestNewGeminiExtractorRequiresKey(t *testing.T) {
	_, err := NewGeminiExtractor(context.Background(), "", "")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "API key"))
}
