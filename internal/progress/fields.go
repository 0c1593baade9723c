package progress

// FieldRule names one field of a form's completion checklist. Field matches
// the wire name used in the form's FieldMap.
type FieldRule struct {
	Field    string
	Label    string
	Required bool
}

// SF330PartIFields is the completion checklist for SF330 Part I.
var SF330PartIFields = []FieldRule{
	{Field: "contractNumber", Label: "Contract Number", Required: true},
	{Field: "firmName", Label: "Firm Name", Required: true},
	{Field: "streetAddress", Label: "Street Address", Required: true},
	{Field: "city", Label: "City", Required: true},
	{Field: "state", Label: "State", Required: true},
	{Field: "zipCode", Label: "ZIP Code", Required: true},
	{Field: "pointOfContactName", Label: "Point of Contact Name", Required: true},
	{Field: "pointOfContactEmail", Label: "Point of Contact Email", Required: true},
	{Field: "pointOfContactPhone", Label: "Point of Contact Phone", Required: true},
	{Field: "taskOrderNumber", Label: "Task Order Number", Required: false},
	{Field: "country", Label: "Country", Required: false},
	{Field: "pointOfContactTitle", Label: "Point of Contact Title", Required: false},
	{Field: "pointOfContactFax", Label: "Point of Contact Fax", Required: false},
	{Field: "primeContractorName", Label: "Prime Contractor Name", Required: false},
	{Field: "primeContractorAddress", Label: "Prime Contractor Address", Required: false},
	{Field: "organizationalChartDescription", Label: "Organizational Chart", Required: false},
	{Field: "keyPersonnel", Label: "Key Personnel", Required: true},
	{Field: "exampleProjects", Label: "Example Projects", Required: true},
}

// SF330PartIIFields is the completion checklist for SF330 Part II.
var SF330PartIIFields = []FieldRule{
	{Field: "firmName", Label: "Firm Name", Required: true},
	{Field: "yearEstablished", Label: "Year Established", Required: true},
	{Field: "dunsNumber", Label: "DUNS Number", Required: false},
	{Field: "taxIdNumber", Label: "Tax ID Number", Required: false},
	{Field: "ownershipType", Label: "Ownership Type", Required: true},
	{Field: "smallBusinessStatus", Label: "Small Business Status", Required: false},
	{Field: "principalOfficeName", Label: "Principal Office Name", Required: true},
	{Field: "principalOfficeAddress", Label: "Principal Office Address", Required: true},
	{Field: "principalOfficeCity", Label: "Principal Office City", Required: true},
	{Field: "principalOfficeState", Label: "Principal Office State", Required: true},
	{Field: "principalOfficeZipCode", Label: "Principal Office ZIP", Required: true},
	{Field: "totalEmployees", Label: "Total Employees", Required: true},
	{Field: "employeesByDiscipline", Label: "Employees by Discipline", Required: false},
}

// SF254Fields is the completion checklist for the SF254 questionnaire.
var SF254Fields = []FieldRule{
	{Field: "firmName", Label: "Firm Name", Required: true},
	{Field: "streetAddress", Label: "Street Address", Required: true},
	{Field: "city", Label: "City", Required: true},
	{Field: "state", Label: "State", Required: true},
	{Field: "zipCode", Label: "ZIP Code", Required: true},
	{Field: "contactName", Label: "Contact Name", Required: true},
	{Field: "contactEmail", Label: "Contact Email", Required: true},
	{Field: "contactPhone", Label: "Contact Phone", Required: true},
	{Field: "contactTitle", Label: "Contact Title", Required: false},
	{Field: "yearEstablished", Label: "Year Established", Required: true},
	{Field: "totalPersonnel", Label: "Total Personnel", Required: false},
	{Field: "serviceCapabilities", Label: "Service Capabilities", Required: false},
	{Field: "parentCompanyName", Label: "Parent Company Name", Required: false},
	{Field: "parentCompanyAddress", Label: "Parent Company Address", Required: false},
	{Field: "dateSubmitted", Label: "Date Submitted", Required: false},
	{Field: "geographicExperience", Label: "Geographic Experience", Required: false},
	{Field: "annualAverageRevenue", Label: "Annual Average Revenue", Required: false},
	{Field: "federalWorkPercentage", Label: "Federal Work Percentage", Required: false},
	{Field: "nonFederalWorkPercentage", Label: "Non-Federal Work Percentage", Required: false},
}

// SF255Fields is the completion checklist for the SF255 project-specific
// questionnaire.
var SF255Fields = []FieldRule{
	{Field: "projectTitle", Label: "Project Title", Required: true},
	{Field: "projectLocation", Label: "Project Location", Required: true},
	{Field: "solicitationNumber", Label: "Solicitation Number", Required: true},
	{Field: "firmName", Label: "Firm Name", Required: true},
	{Field: "firmAddress", Label: "Firm Address", Required: true},
	{Field: "firmCity", Label: "Firm City", Required: true},
	{Field: "firmState", Label: "Firm State", Required: true},
	{Field: "firmZipCode", Label: "Firm ZIP Code", Required: true},
	{Field: "pocName", Label: "POC Name", Required: true},
	{Field: "pocEmail", Label: "POC Email", Required: true},
	{Field: "pocPhone", Label: "POC Phone", Required: true},
	{Field: "pocTitle", Label: "POC Title", Required: false},
	{Field: "projectTeamResumes", Label: "Project Team", Required: false},
	{Field: "relevantProjects", Label: "Relevant Projects", Required: false},
	{Field: "authorizedRepName", Label: "Authorized Representative", Required: true},
	{Field: "authorizedRepDate", Label: "Authorization Date", Required: true},
	{Field: "jointVenturePartners", Label: "JV Partners", Required: false},
	{Field: "outsideConsultants", Label: "Outside Consultants", Required: false},
	{Field: "additionalInformation", Label: "Additional Information", Required: false},
}

// SF252Fields is the completion checklist for the SF252 contract form.
var SF252Fields = []FieldRule{
	{Field: "contractNumber", Label: "Contract Number", Required: true},
	{Field: "contractDate", Label: "Contract Date", Required: true},
	{Field: "contractAmount", Label: "Contract Amount", Required: true},
	{Field: "contractorName", Label: "Contractor Name", Required: true},
	{Field: "contractorAddress", Label: "Contractor Address", Required: true},
	{Field: "contractorCity", Label: "Contractor City", Required: true},
	{Field: "contractorState", Label: "Contractor State", Required: true},
	{Field: "contractorZipCode", Label: "Contractor ZIP", Required: true},
	{Field: "contractorPhone", Label: "Contractor Phone", Required: true},
	{Field: "periodOfPerformanceStart", Label: "Performance Start", Required: true},
	{Field: "periodOfPerformanceEnd", Label: "Performance End", Required: true},
	{Field: "servicesDescription", Label: "Services Description", Required: true},
	{Field: "issuingOfficeName", Label: "Issuing Office", Required: true},
	{Field: "contractorSignatureName", Label: "Contractor Signature", Required: true},
	{Field: "contractorSignatureDate", Label: "Signature Date", Required: true},
	{Field: "deliveryOrderNumber", Label: "Delivery Order Number", Required: false},
	{Field: "amendmentNumber", Label: "Amendment Number", Required: false},
	{Field: "effectiveDate", Label: "Effective Date", Required: false},
	{Field: "contractorTIN", Label: "Contractor TIN", Required: false},
	{Field: "obligatedAmount", Label: "Obligated Amount", Required: false},
}
