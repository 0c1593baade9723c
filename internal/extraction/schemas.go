package extraction

import (
	"fmt"
	"strings"

	"github.com/jonathan/ae-qualify/internal/types"
)

// ExtractionSchema defines the structure for LLM-based document extraction.
type ExtractionSchema struct {
	Name        string         // Schema name (e.g., "PersonnelResume")
	Target      types.FormKind // Form the extracted fields belong to
	Description string         // System prompt preamble describing the extraction task
	Fields      []SchemaField  // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "number", "[object]"
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "\"string\""
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract information directly from the document, do not invent values.\n")
	sb.WriteString("- Omit any field the document does not support; never guess.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	sb.WriteString("Document text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// SchemaForClass returns the extraction schema for a document class.
func SchemaForClass(class DocClass) ExtractionSchema {
	switch class {
	case DocResume:
		return PersonnelResumeSchema()
	case DocProject:
		return ProjectProfileSchema()
	case DocCertificate:
		return FirmQualificationSchema()
	case DocContract:
		return ContractSchema()
	default:
		return GenericDocumentSchema()
	}
}

// PersonnelResumeSchema extracts Section E resume data for SF330 Part I.
func PersonnelResumeSchema() ExtractionSchema {
	return ExtractionSchema{
		Name:   "PersonnelResume",
		Target: types.KindSF330PartI,
		Description: `You are an expert parser of architect-engineer personnel resumes.
Your task is to extract key personnel details for a federal qualification form.
Copy names, titles, and credentials exactly as written in the document.`,
		Fields: []SchemaField{
			{
				Name:        "keyPersonnel",
				Type:        "[{\"id\": \"\", \"name\": \"string\", \"title\": \"string\", \"yearsExperience\": number, \"firmName\": \"string\", \"education\": \"string\", \"certifications\": [\"string\"], \"relevantProjects\": [\"string\"]}]",
				Description: "One entry per person described in the document; leave id empty",
				Required:    true,
			},
			{Name: "pointOfContactName", Description: "Name of the primary contact, if the document names one"},
			{Name: "pointOfContactTitle", Description: "Title of the primary contact"},
			{Name: "pointOfContactEmail", Description: "Email address of the primary contact"},
			{Name: "pointOfContactPhone", Description: "Phone number of the primary contact"},
		},
	}
}

// ProjectProfileSchema extracts Section F example projects for SF330 Part I.
func ProjectProfileSchema() ExtractionSchema {
	return ExtractionSchema{
		Name:   "ProjectProfile",
		Target: types.KindSF330PartI,
		Description: `You are an expert parser of architect-engineer project profiles and portfolios.
Your task is to extract example project details for a federal qualification form.
Copy project names, owners, and figures exactly as written in the document.`,
		Fields: []SchemaField{
			{
				Name:        "exampleProjects",
				Type:        "[{\"id\": \"\", \"projectName\": \"string\", \"projectOwner\": \"string\", \"ownerPointOfContact\": \"string\", \"ownerPhone\": \"string\", \"completionDate\": \"string\", \"projectLocation\": \"string\", \"estimatedCost\": number, \"briefDescription\": \"string\"}]",
				Description: "One entry per project described in the document; leave id empty",
				Required:    true,
			},
			{Name: "firmName", Description: "Name of the firm that performed the work"},
			{Name: "primeContractorName", Description: "Prime contractor, if named"},
		},
	}
}

// FirmQualificationSchema extracts general firm data for SF330 Part II.
func FirmQualificationSchema() ExtractionSchema {
	return ExtractionSchema{
		Name:   "FirmQualification",
		Target: types.KindSF330PartII,
		Description: `You are an expert parser of firm qualification statements, business certificates, and licenses.
Your task is to extract general firm details for a federal qualification form.
Copy identifiers like DUNS and tax id exactly as written.`,
		Fields: []SchemaField{
			{Name: "firmName", Description: "Legal firm name", Required: true},
			{Name: "yearEstablished", Description: "Year the firm was established"},
			{Name: "dunsNumber", Description: "DUNS number"},
			{Name: "taxIdNumber", Description: "Federal tax identification number"},
			{Name: "ownershipType", Description: "Legal ownership form, e.g. PLLC, corporation"},
			{Name: "smallBusinessStatus", Description: "Small business designation, if stated"},
			{Name: "totalEmployees", Type: "number", Description: "Total employee count"},
			{Name: "totalArchitects", Type: "number", Description: "Number of architects"},
			{Name: "totalEngineers", Type: "number", Description: "Number of engineers"},
			{Name: "totalOtherProfessionals", Type: "number", Description: "Number of other professionals"},
			{Name: "totalAdministrative", Type: "number", Description: "Number of administrative staff"},
			{
				Name:        "employeesByDiscipline",
				Type:        "[{\"id\": \"\", \"functionCode\": \"string\", \"discipline\": \"string\", \"employeeCount\": number}]",
				Description: "Discipline breakdown, if the document lists one; leave id empty",
			},
		},
	}
}

// ContractSchema extracts SF252 contract details.
func ContractSchema() ExtractionSchema {
	return ExtractionSchema{
		Name:   "Contract",
		Target: types.KindSF252,
		Description: `You are an expert parser of federal architect-engineer contracts and delivery orders.
Your task is to extract contract identifiers, parties, amounts, and dates.
Copy contract numbers and dollar amounts exactly as written.`,
		Fields: []SchemaField{
			{Name: "contractNumber", Description: "Contract number", Required: true},
			{Name: "deliveryOrderNumber", Description: "Delivery order number, if any"},
			{Name: "effectiveDate", Description: "Effective date"},
			{Name: "contractorName", Description: "Contractor legal name"},
			{Name: "contractorAddress", Description: "Contractor street address"},
			{Name: "contractorCity", Description: "Contractor city"},
			{Name: "contractorState", Description: "Contractor state"},
			{Name: "contractorZipCode", Description: "Contractor ZIP code"},
			{Name: "contractorPhone", Description: "Contractor phone"},
			{Name: "contractorTIN", Description: "Contractor taxpayer identification number"},
			{Name: "contractDate", Description: "Contract date"},
			{Name: "contractAmount", Type: "number", Description: "Contract amount in dollars"},
			{Name: "obligatedAmount", Type: "number", Description: "Obligated amount in dollars"},
			{Name: "periodOfPerformanceStart", Description: "Performance period start date"},
			{Name: "periodOfPerformanceEnd", Description: "Performance period end date"},
			{Name: "servicesDescription", Description: "Description of the contracted services"},
		},
	}
}

// GenericDocumentSchema is the fallback for unclassifiable documents. It
// pulls only the firm name, routed to SF330 Part I.
func GenericDocumentSchema() ExtractionSchema {
	return ExtractionSchema{
		Name:   "GenericDocument",
		Target: types.KindSF330PartI,
		Description: `You are parsing a document of unknown type for an architect-engineer firm.
Extract only what you are confident about.`,
		Fields: []SchemaField{
			{Name: "firmName", Description: "Firm name, if the document names one"},
		},
	}
}
