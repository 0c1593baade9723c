package types

// SF254Data holds Standard Form 254 (Architect-Engineer and Related Services
// Questionnaire), the general firm qualification statement.
type SF254Data struct {
	FirmName      string `json:"firmName"`
	StreetAddress string `json:"streetAddress"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zipCode"`

	ContactName  string `json:"contactName"`
	ContactTitle string `json:"contactTitle"`
	ContactPhone string `json:"contactPhone"`
	ContactEmail string `json:"contactEmail"`

	ParentCompanyName    string `json:"parentCompanyName"`
	ParentCompanyAddress string `json:"parentCompanyAddress"`
	YearEstablished      string `json:"yearEstablished"`
	DateSubmitted        string `json:"dateSubmitted"`

	TotalPersonnel        int                 `json:"totalPersonnel"`
	PersonnelByDiscipline []string            `json:"personnelByDiscipline"`
	ServiceCapabilities   []ServiceCapability `json:"serviceCapabilities"`
	GeographicExperience  []string            `json:"geographicExperience"`

	AnnualAverageRevenue     float64 `json:"annualAverageRevenue"`
	FederalWorkPercentage    float64 `json:"federalWorkPercentage"`
	NonFederalWorkPercentage float64 `json:"nonFederalWorkPercentage"`
}

// ServiceCapability is one service profile row of the SF254.
type ServiceCapability struct {
	ID              string `json:"id"`
	Code            string `json:"code"`
	Description     string `json:"description"`
	YearsExperience int    `json:"yearsExperience"`
}
