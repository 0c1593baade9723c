package ingestion

import (
	"strings"
	"testing"
)

func TestValidateFile(t *testing.T) {
	cases := []struct {
		name     string
		fileName string
		size     int64
		wantErr  bool
	}{
		{"valid pdf", "resume.pdf", 1024, false},
		{"valid docx", "profile.docx", 2048, false},
		{"valid html", "firm_page.html", 512, false},
		{"empty file", "resume.pdf", 0, true},
		{"empty name", "   ", 1024, true},
		{"oversized", "resume.pdf", 11 * 1024 * 1024, true},
		{"exe rejected", "malware.exe", 1024, true},
		{"no extension", "README", 1024, true},
		{"uppercase extension", "RESUME.PDF", 1024, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateFile(tc.fileName, tc.size, 0)
			if (err != nil) != tc.wantErr {
				t.Errorf("ValidateFile(%q, %d) error = %v, wantErr %v", tc.fileName, tc.size, err, tc.wantErr)
			}
		})
	}
}

func TestValidateFileCustomLimit(t *testing.T) {
	if err := ValidateFile("big.pdf", 3*1024*1024, 2); err == nil {
		t.Error("3MB file should exceed a 2MB limit")
	}
	if err := ValidateFile("big.pdf", 3*1024*1024, 4); err != nil {
		t.Errorf("3MB file under a 4MB limit rejected: %v", err)
	}
}

func TestValidateBatch(t *testing.T) {
	if err := ValidateBatch(0, 0); err == nil {
		t.Error("empty batch should be rejected")
	}
	if err := ValidateBatch(10, 0); err != nil {
		t.Errorf("batch at default limit rejected: %v", err)
	}
	if err := ValidateBatch(11, 0); err == nil {
		t.Error("batch over default limit should be rejected")
	}
}

func TestSanitizeString(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain text", "plain text"},
		{"<script>alert(1)</script>", "scriptalert(1)/script"},
		{"javascript:alert(1)", "alert(1)"},
		{"x onclick=bad", "x bad"},
		{"  padded  ", "padded"},
	}
	for _, tc := range cases {
		if got := SanitizeString(tc.in); got != tc.want {
			t.Errorf("SanitizeString(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitizeFileName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"resume.pdf", "resume.pdf"},
		{"../../etc/passwd", "passwd"},
		{`..\..\windows\system32`, "system32"},
		{"my resume (final).pdf", "my resume _final_.pdf"},
		{"", "upload"},
		{"..", "upload"},
	}
	for _, tc := range cases {
		if got := SanitizeFileName(tc.in); got != tc.want {
			t.Errorf("SanitizeFileName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitizeFieldsRecurses(t *testing.T) {
	fields := map[string]any{
		"firmName": "<b>Acme</b>",
		"keyPersonnel": []any{
			map[string]any{"name": "Sarah <script>"},
		},
		"totalEmployees": 127,
	}
	out := SanitizeFields(fields)

	if out["firmName"] != "bAcme/b" {
		t.Errorf("firmName = %q", out["firmName"])
	}
	person := out["keyPersonnel"].([]any)[0].(map[string]any)
	if person["name"] != "Sarah script" {
		t.Errorf("nested name = %q", person["name"])
	}
	if out["totalEmployees"] != 127 {
		t.Errorf("numbers must pass through, got %v", out["totalEmployees"])
	}
}

func TestExtractTextFromHTML(t *testing.T) {
	html := `<html><head><style>body{color:red}</style></head>
<body><h1>Mitchell &amp; Associates</h1>
<script>evil()</script>
<p>Established  1995</p></body></html>`

	text, err := ExtractText("firm.html", []byte(html))
	if err != nil {
		t.Fatalf("ExtractText failed: %v", err)
	}
	if !strings.Contains(text, "Mitchell & Associates") {
		t.Errorf("heading text missing: %q", text)
	}
	if !strings.Contains(text, "Established 1995") {
		t.Errorf("paragraph text not normalized: %q", text)
	}
	if strings.Contains(text, "evil()") || strings.Contains(text, "color:red") {
		t.Errorf("script/style content leaked: %q", text)
	}
}

func TestExtractTextPlain(t *testing.T) {
	text, err := ExtractText("notes.txt", []byte("line one\r\n\r\n\r\n\r\nline   two"))
	if err != nil {
		t.Fatalf("ExtractText failed: %v", err)
	}
	if text != "line one\n\nline two" {
		t.Errorf("CleanText output = %q", text)
	}
}

func TestCleanTextPreservesIndentation(t *testing.T) {
	got := CleanText("  indented   line")
	if got != "indented line" {
		// Leading space survives cleanLine but the final TrimSpace drops it
		// at the edges of the document.
		t.Errorf("CleanText = %q", got)
	}
}
