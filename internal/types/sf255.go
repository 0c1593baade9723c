package types

// SF255Data holds Standard Form 255 (Architect-Engineer and Related Services
// Questionnaire for Specific Project).
type SF255Data struct {
	ProjectTitle       string `json:"projectTitle"`
	ProjectLocation    string `json:"projectLocation"`
	SolicitationNumber string `json:"solicitationNumber"`

	FirmName    string `json:"firmName"`
	FirmAddress string `json:"firmAddress"`
	FirmCity    string `json:"firmCity"`
	FirmState   string `json:"firmState"`
	FirmZipCode string `json:"firmZipCode"`

	POCName  string `json:"pocName"`
	POCTitle string `json:"pocTitle"`
	POCPhone string `json:"pocPhone"`
	POCEmail string `json:"pocEmail"`

	JointVenturePartners  []JointVenturePartner `json:"jointVenturePartners"`
	PersonnelByDiscipline []string              `json:"personnelByDiscipline"`
	OutsideConsultants    []OutsideConsultant   `json:"outsideConsultants"`
	ProjectTeamResumes    []ProjectTeamMember   `json:"projectTeamResumes"`
	RelevantProjects      []RelevantProject     `json:"relevantProjects"`

	AdditionalInformation string `json:"additionalInformation"`

	AuthorizedRepName      string `json:"authorizedRepName"`
	AuthorizedRepTitle     string `json:"authorizedRepTitle"`
	AuthorizedRepDate      string `json:"authorizedRepDate"`
	AuthorizedRepSignature string `json:"authorizedRepSignature"`
}

// JointVenturePartner is one joint-venture partner row of the SF255.
type JointVenturePartner struct {
	ID                   string  `json:"id"`
	FirmName             string  `json:"firmName"`
	Address              string  `json:"address"`
	PercentParticipation float64 `json:"percentParticipation"`
}

// OutsideConsultant is one outside-consultant row of the SF255.
type OutsideConsultant struct {
	ID       string `json:"id"`
	FirmName string `json:"firmName"`
	Address  string `json:"address"`
	Services string `json:"services"`
}

// ProjectTeamMember is one project-team resume entry of the SF255.
type ProjectTeamMember struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Title           string   `json:"title"`
	ProjectRole     string   `json:"projectRole"`
	YearsExperience int      `json:"yearsExperience"`
	Education       string   `json:"education"`
	Certifications  []string `json:"certifications"`
}

// RelevantProject is one relevant-project row of the SF255.
type RelevantProject struct {
	ID               string  `json:"id"`
	ProjectName      string  `json:"projectName"`
	ProjectOwner     string  `json:"projectOwner"`
	CompletionDate   string  `json:"completionDate"`
	ProjectCost      float64 `json:"projectCost"`
	ProjectRole      string  `json:"projectRole"`
	BriefDescription string  `json:"briefDescription"`
}
