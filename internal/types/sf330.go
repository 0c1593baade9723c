package types

// SF330PartIData holds Standard Form 330 Part I (contract-specific
// qualifications). Sections A through F of the paper form.
type SF330PartIData struct {
	// Section A - Contract Information
	ContractNumber  string `json:"contractNumber"`
	TaskOrderNumber string `json:"taskOrderNumber"`

	// Section B - Architect-Engineer Point of Contact
	FirmName            string `json:"firmName"`
	StreetAddress       string `json:"streetAddress"`
	City                string `json:"city"`
	State               string `json:"state"`
	ZipCode             string `json:"zipCode"`
	Country             string `json:"country"`
	PointOfContactName  string `json:"pointOfContactName"`
	PointOfContactTitle string `json:"pointOfContactTitle"`
	PointOfContactPhone string `json:"pointOfContactPhone"`
	PointOfContactFax   string `json:"pointOfContactFax"`
	PointOfContactEmail string `json:"pointOfContactEmail"`

	// Section C - Proposed Team
	PrimeContractorName    string `json:"primeContractorName"`
	PrimeContractorAddress string `json:"primeContractorAddress"`

	// Section D - Organizational Chart
	OrganizationalChartDescription string `json:"organizationalChartDescription"`

	// Section E - Resumes
	KeyPersonnel []KeyPersonnel `json:"keyPersonnel"`

	// Section F - Example Projects
	ExampleProjects []ExampleProject `json:"exampleProjects"`
}

// KeyPersonnel is one Section E resume entry.
type KeyPersonnel struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Title            string   `json:"title"`
	YearsExperience  int      `json:"yearsExperience"`
	FirmName         string   `json:"firmName"`
	Education        string   `json:"education"`
	Certifications   []string `json:"certifications"`
	RelevantProjects []string `json:"relevantProjects"`
}

// ExampleProject is one Section F example project entry.
type ExampleProject struct {
	ID                  string  `json:"id"`
	ProjectName         string  `json:"projectName"`
	ProjectOwner        string  `json:"projectOwner"`
	OwnerPointOfContact string  `json:"ownerPointOfContact"`
	OwnerPhone          string  `json:"ownerPhone"`
	CompletionDate      string  `json:"completionDate"`
	ProjectLocation     string  `json:"projectLocation"`
	EstimatedCost       float64 `json:"estimatedCost"`
	BriefDescription    string  `json:"briefDescription"`
}

// SF330PartIIData holds Standard Form 330 Part II (general firm
// qualifications). Sections 4 through 10 of the paper form.
type SF330PartIIData struct {
	// Section 4 - Firm Information
	FirmName        string `json:"firmName"`
	YearEstablished string `json:"yearEstablished"`
	DunsNumber      string `json:"dunsNumber"`
	TaxIDNumber     string `json:"taxIdNumber"`

	// Section 5 - Ownership
	OwnershipType       string `json:"ownershipType"`
	SmallBusinessStatus string `json:"smallBusinessStatus"`

	// Section 6 - Principal Office
	PrincipalOfficeName    string `json:"principalOfficeName"`
	PrincipalOfficeAddress string `json:"principalOfficeAddress"`
	PrincipalOfficeCity    string `json:"principalOfficeCity"`
	PrincipalOfficeState   string `json:"principalOfficeState"`
	PrincipalOfficeZipCode string `json:"principalOfficeZipCode"`

	// Section 7 - Branch Offices
	BranchOffices []BranchOffice `json:"branchOffices"`

	// Section 8 - Total Personnel
	TotalEmployees          int `json:"totalEmployees"`
	TotalArchitects         int `json:"totalArchitects"`
	TotalEngineers          int `json:"totalEngineers"`
	TotalOtherProfessionals int `json:"totalOtherProfessionals"`
	TotalAdministrative     int `json:"totalAdministrative"`

	// Section 9 - Employees by Discipline
	EmployeesByDiscipline []EmployeeByDiscipline `json:"employeesByDiscipline"`

	// Section 10 - Profile of Firm's Experience
	FirmExperienceProfile []ExperienceProfile `json:"firmExperienceProfile"`
}

// BranchOffice is one Section 7 branch office entry.
type BranchOffice struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zipCode"`
	EmployeeCount int    `json:"employeeCount"`
}

// EmployeeByDiscipline is one Section 9 (Block 9) discipline row.
type EmployeeByDiscipline struct {
	ID            string `json:"id"`
	FunctionCode  string `json:"functionCode"`
	Discipline    string `json:"discipline"`
	EmployeeCount int    `json:"employeeCount"`
}

// ExperienceProfile is one Section 10 experience profile row.
type ExperienceProfile struct {
	ID               string  `json:"id"`
	ProfileCode      string  `json:"profileCode"`
	ExperienceType   string  `json:"experienceType"`
	NumberOfProjects int     `json:"numberOfProjects"`
	GrossRevenue     float64 `json:"grossRevenue"`
}
