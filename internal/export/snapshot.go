// Package export renders form state to HTML and prints it to PDF through
// headless Chrome. Exports work from frozen snapshots: nothing handed out
// here can mutate the live state tree.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/ae-qualify/internal/progress"
	"github.com/jonathan/ae-qualify/internal/types"
)

// Field is one labeled, already-formatted form value.
type Field struct {
	Name  string
	Label string
	Value string
}

// Table is a rendered child-entity collection.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// Snapshot is a frozen view of one form surface at a point in time. All
// values are formatted strings; mutating a snapshot never touches the state
// it was taken from.
type Snapshot struct {
	Form     types.FormType
	Title    string
	Subtitle string
	TakenAt  time.Time
	Fields   []Field
	Tables   []Table
}

// FileName derives the download name from the form and capture date.
func (s Snapshot) FileName() string {
	return fmt.Sprintf("%s_%s.pdf", s.Form, s.TakenAt.Format("2006-01-02"))
}

// Take freezes one form surface for export. Field order and labels follow
// the canonical per-form checklists.
func Take(form types.FormType, data types.UnifiedFormData) (Snapshot, error) {
	snap := Snapshot{
		Form:    form,
		TakenAt: time.Now(),
	}

	switch form {
	case types.FormTypeSF330:
		snap.Title = "SF330"
		snap.Subtitle = "Architect-Engineer Qualifications"
		snap.Fields = append(
			formatFields(data.SF330PartI.FieldMap(), progress.SF330PartIFields),
			formatFields(data.SF330PartII.FieldMap(), progress.SF330PartIIFields)...,
		)
		snap.Tables = sf330Tables(data.SF330PartI, data.SF330PartII)
	case types.FormTypeSF254:
		snap.Title = "SF254"
		snap.Subtitle = "Architect-Engineer and Related Services Questionnaire"
		snap.Fields = formatFields(data.SF254.FieldMap(), progress.SF254Fields)
		snap.Tables = sf254Tables(data.SF254)
	case types.FormTypeSF255:
		snap.Title = "SF255"
		snap.Subtitle = "Project-Specific Questionnaire"
		snap.Fields = formatFields(data.SF255.FieldMap(), progress.SF255Fields)
		snap.Tables = sf255Tables(data.SF255)
	case types.FormTypeSF252:
		snap.Title = "SF252"
		snap.Subtitle = "Architect-Engineer Contract"
		snap.Fields = formatFields(data.SF252.FieldMap(), progress.SF252Fields)
	default:
		return Snapshot{}, NewExportError(string(form), "snapshot", ErrUnknownForm)
	}

	return snap, nil
}

// formatFields renders scalar checklist fields in canonical order.
// Collection-valued fields are skipped here; they render as tables.
func formatFields(values map[string]any, rules []progress.FieldRule) []Field {
	fields := make([]Field, 0, len(rules))
	for _, r := range rules {
		value, ok := formatScalar(values[r.Field])
		if !ok {
			continue
		}
		fields = append(fields, Field{Name: r.Field, Label: r.Label, Value: value})
	}
	return fields
}

func formatScalar(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", true
	case string:
		return t, true
	case int:
		return fmt.Sprintf("%d", t), true
	case float64:
		return formatNumber(t), true
	default:
		return "", false
	}
}

// formatNumber drops a trailing .00 so whole-dollar amounts print clean.
func formatNumber(f float64) string {
	s := fmt.Sprintf("%.2f", f)
	return strings.TrimSuffix(s, ".00")
}

func sf330Tables(partI types.SF330PartIData, partII types.SF330PartIIData) []Table {
	kp := Table{
		Title:   "Section E — Key Personnel",
		Headers: []string{"Name", "Title", "Years", "Firm", "Education", "Certifications"},
	}
	for _, p := range partI.KeyPersonnel {
		kp.Rows = append(kp.Rows, []string{
			p.Name, p.Title, fmt.Sprintf("%d", p.YearsExperience),
			p.FirmName, p.Education, strings.Join(p.Certifications, ", "),
		})
	}

	ep := Table{
		Title:   "Section F — Example Projects",
		Headers: []string{"Project", "Owner", "Location", "Completed", "Cost", "Description"},
	}
	for _, p := range partI.ExampleProjects {
		ep.Rows = append(ep.Rows, []string{
			p.ProjectName, p.ProjectOwner, p.ProjectLocation,
			p.CompletionDate, formatNumber(p.EstimatedCost), p.BriefDescription,
		})
	}

	ebd := Table{
		Title:   "Section 9 — Employees by Discipline",
		Headers: []string{"Function Code", "Discipline", "Employees"},
	}
	for _, row := range partII.EmployeesByDiscipline {
		ebd.Rows = append(ebd.Rows, []string{
			row.FunctionCode, row.Discipline, fmt.Sprintf("%d", row.EmployeeCount),
		})
	}

	return []Table{kp, ep, ebd}
}

func sf254Tables(data types.SF254Data) []Table {
	sc := Table{
		Title:   "Service Capabilities",
		Headers: []string{"Code", "Description", "Years"},
	}
	for _, c := range data.ServiceCapabilities {
		sc.Rows = append(sc.Rows, []string{c.Code, c.Description, fmt.Sprintf("%d", c.YearsExperience)})
	}
	return []Table{sc}
}

func sf255Tables(data types.SF255Data) []Table {
	team := Table{
		Title:   "Project Team",
		Headers: []string{"Name", "Title", "Role", "Years", "Education"},
	}
	for _, m := range data.ProjectTeamResumes {
		team.Rows = append(team.Rows, []string{
			m.Name, m.Title, m.ProjectRole, fmt.Sprintf("%d", m.YearsExperience), m.Education,
		})
	}

	rp := Table{
		Title:   "Relevant Projects",
		Headers: []string{"Project", "Owner", "Completed", "Cost", "Role"},
	}
	for _, p := range data.RelevantProjects {
		rp.Rows = append(rp.Rows, []string{
			p.ProjectName, p.ProjectOwner, p.CompletionDate, formatNumber(p.ProjectCost), p.ProjectRole,
		})
	}

	return []Table{team, rp}
}
