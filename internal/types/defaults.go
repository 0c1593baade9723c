package types

import "time"

// NewSF330PartI returns Part I with empty/default values. Collections are
// non-nil so the persisted blob serializes them as [] rather than null.
func NewSF330PartI() SF330PartIData {
	return SF330PartIData{
		Country:         "USA",
		KeyPersonnel:    []KeyPersonnel{},
		ExampleProjects: []ExampleProject{},
	}
}

// NewSF330PartII returns Part II with empty/default values.
func NewSF330PartII() SF330PartIIData {
	return SF330PartIIData{
		BranchOffices:         []BranchOffice{},
		EmployeesByDiscipline: []EmployeeByDiscipline{},
		FirmExperienceProfile: []ExperienceProfile{},
	}
}

// NewSF254 returns an SF254 with empty/default values.
func NewSF254() SF254Data {
	return SF254Data{
		PersonnelByDiscipline: []string{},
		ServiceCapabilities:   []ServiceCapability{},
		GeographicExperience:  []string{},
	}
}

// NewSF255 returns an SF255 with empty/default values.
func NewSF255() SF255Data {
	return SF255Data{
		JointVenturePartners:  []JointVenturePartner{},
		PersonnelByDiscipline: []string{},
		OutsideConsultants:    []OutsideConsultant{},
		ProjectTeamResumes:    []ProjectTeamMember{},
		RelevantProjects:      []RelevantProject{},
	}
}

// NewSF252 returns an SF252 with empty/default values.
func NewSF252() SF252Data {
	return SF252Data{}
}

// NewUnifiedFormData returns all five form shapes fully populated with
// defaults. No shape is ever absent from the aggregate.
func NewUnifiedFormData() UnifiedFormData {
	return UnifiedFormData{
		SF330PartI:  NewSF330PartI(),
		SF330PartII: NewSF330PartII(),
		SF254:       NewSF254(),
		SF255:       NewSF255(),
		SF252:       NewSF252(),
	}
}

// NewDefaultProject returns the sentinel project that guarantees the project
// collection is never empty.
func NewDefaultProject() Project {
	now := time.Now()
	return Project{
		ID:          DefaultProjectID,
		Name:        "Untitled Project",
		Description: "Default project",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// NewDashboardState returns the initial state tree: the default project
// active, no assets, all forms at defaults.
func NewDashboardState() DashboardState {
	return DashboardState{
		ActiveForm:      FormTypeSF330,
		Projects:        []Project{NewDefaultProject()},
		ActiveProjectID: DefaultProjectID,
		UploadedAssets:  []UploadedAsset{},
		FormData:        NewUnifiedFormData(),
	}
}
