package types

import (
	"encoding/json"
	"fmt"
)

// FormKind identifies one of the five form data shapes. It is the routing
// discriminator for partial updates and extraction results.
type FormKind string

// Known form data shapes.
const (
	KindSF330PartI  FormKind = "SF330_PART_I"
	KindSF330PartII FormKind = "SF330_PART_II"
	KindSF254       FormKind = "SF254"
	KindSF255       FormKind = "SF255"
	KindSF252       FormKind = "SF252"
)

// ParseFormKind validates a form-kind string.
func ParseFormKind(v string) (FormKind, error) {
	switch FormKind(v) {
	case KindSF330PartI, KindSF330PartII, KindSF254, KindSF255, KindSF252:
		return FormKind(v), nil
	default:
		return "", fmt.Errorf("unknown form kind %q", v)
	}
}

// FormPatch is a partial update for exactly one form shape. Each patch type
// uses pointer fields for scalars: nil leaves the current value untouched,
// non-nil overwrites it. Child collections are non-pointer slices where nil
// means untouched and a non-nil slice replaces the whole collection.
type FormPatch interface {
	// Kind reports which form shape the patch targets.
	Kind() FormKind
	isFormPatch()
}

// DecodePatch unmarshals raw extraction or request JSON into the patch type
// for the given form kind.
func DecodePatch(kind FormKind, raw []byte) (FormPatch, error) {
	var (
		p   FormPatch
		err error
	)
	switch kind {
	case KindSF330PartI:
		var v SF330PartIPatch
		err = json.Unmarshal(raw, &v)
		p = v
	case KindSF330PartII:
		var v SF330PartIIPatch
		err = json.Unmarshal(raw, &v)
		p = v
	case KindSF254:
		var v SF254Patch
		err = json.Unmarshal(raw, &v)
		p = v
	case KindSF255:
		var v SF255Patch
		err = json.Unmarshal(raw, &v)
		p = v
	case KindSF252:
		var v SF252Patch
		err = json.Unmarshal(raw, &v)
		p = v
	default:
		return nil, fmt.Errorf("unknown form kind %q", kind)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s patch: %w", kind, err)
	}
	return p, nil
}

// SF330PartIPatch is a partial update for SF330 Part I.
type SF330PartIPatch struct {
	ContractNumber                 *string          `json:"contractNumber,omitempty"`
	TaskOrderNumber                *string          `json:"taskOrderNumber,omitempty"`
	FirmName                       *string          `json:"firmName,omitempty"`
	StreetAddress                  *string          `json:"streetAddress,omitempty"`
	City                           *string          `json:"city,omitempty"`
	State                          *string          `json:"state,omitempty"`
	ZipCode                        *string          `json:"zipCode,omitempty"`
	Country                        *string          `json:"country,omitempty"`
	PointOfContactName             *string          `json:"pointOfContactName,omitempty"`
	PointOfContactTitle            *string          `json:"pointOfContactTitle,omitempty"`
	PointOfContactPhone            *string          `json:"pointOfContactPhone,omitempty"`
	PointOfContactFax              *string          `json:"pointOfContactFax,omitempty"`
	PointOfContactEmail            *string          `json:"pointOfContactEmail,omitempty"`
	PrimeContractorName            *string          `json:"primeContractorName,omitempty"`
	PrimeContractorAddress         *string          `json:"primeContractorAddress,omitempty"`
	OrganizationalChartDescription *string          `json:"organizationalChartDescription,omitempty"`
	KeyPersonnel                   []KeyPersonnel   `json:"keyPersonnel,omitempty"`
	ExampleProjects                []ExampleProject `json:"exampleProjects,omitempty"`
}

// Kind implements FormPatch.
func (SF330PartIPatch) Kind() FormKind { return KindSF330PartI }
func (SF330PartIPatch) isFormPatch() {}

// Apply merges the patch into d and returns the result. Fields not present
// in the patch are preserved unchanged.
func (p SF330PartIPatch) Apply(d SF330PartIData) SF330PartIData {
	if p.ContractNumber != nil {
		d.ContractNumber = *p.ContractNumber
	}
	if p.TaskOrderNumber != nil {
		d.TaskOrderNumber = *p.TaskOrderNumber
	}
	if p.FirmName != nil {
		d.FirmName = *p.FirmName
	}
	if p.StreetAddress != nil {
		d.StreetAddress = *p.StreetAddress
	}
	if p.City != nil {
		d.City = *p.City
	}
	if p.State != nil {
		d.State = *p.State
	}
	if p.ZipCode != nil {
		d.ZipCode = *p.ZipCode
	}
	if p.Country != nil {
		d.Country = *p.Country
	}
	if p.PointOfContactName != nil {
		d.PointOfContactName = *p.PointOfContactName
	}
	if p.PointOfContactTitle != nil {
		d.PointOfContactTitle = *p.PointOfContactTitle
	}
	if p.PointOfContactPhone != nil {
		d.PointOfContactPhone = *p.PointOfContactPhone
	}
	if p.PointOfContactFax != nil {
		d.PointOfContactFax = *p.PointOfContactFax
	}
	if p.PointOfContactEmail != nil {
		d.PointOfContactEmail = *p.PointOfContactEmail
	}
	if p.PrimeContractorName != nil {
		d.PrimeContractorName = *p.PrimeContractorName
	}
	if p.PrimeContractorAddress != nil {
		d.PrimeContractorAddress = *p.PrimeContractorAddress
	}
	if p.OrganizationalChartDescription != nil {
		d.OrganizationalChartDescription = *p.OrganizationalChartDescription
	}
	if p.KeyPersonnel != nil {
		d.KeyPersonnel = p.KeyPersonnel
	}
	if p.ExampleProjects != nil {
		d.ExampleProjects = p.ExampleProjects
	}
	return d
}

// SF330PartIIPatch is a partial update for SF330 Part II.
type SF330PartIIPatch struct {
	FirmName                *string                `json:"firmName,omitempty"`
	YearEstablished         *string                `json:"yearEstablished,omitempty"`
	DunsNumber              *string                `json:"dunsNumber,omitempty"`
	TaxIDNumber             *string                `json:"taxIdNumber,omitempty"`
	OwnershipType           *string                `json:"ownershipType,omitempty"`
	SmallBusinessStatus     *string                `json:"smallBusinessStatus,omitempty"`
	PrincipalOfficeName     *string                `json:"principalOfficeName,omitempty"`
	PrincipalOfficeAddress  *string                `json:"principalOfficeAddress,omitempty"`
	PrincipalOfficeCity     *string                `json:"principalOfficeCity,omitempty"`
	PrincipalOfficeState    *string                `json:"principalOfficeState,omitempty"`
	PrincipalOfficeZipCode  *string                `json:"principalOfficeZipCode,omitempty"`
	BranchOffices           []BranchOffice         `json:"branchOffices,omitempty"`
	TotalEmployees          *int                   `json:"totalEmployees,omitempty"`
	TotalArchitects         *int                   `json:"totalArchitects,omitempty"`
	TotalEngineers          *int                   `json:"totalEngineers,omitempty"`
	TotalOtherProfessionals *int                   `json:"totalOtherProfessionals,omitempty"`
	TotalAdministrative     *int                   `json:"totalAdministrative,omitempty"`
	EmployeesByDiscipline   []EmployeeByDiscipline `json:"employeesByDiscipline,omitempty"`
	FirmExperienceProfile   []ExperienceProfile    `json:"firmExperienceProfile,omitempty"`
}

// Kind implements FormPatch.
func (SF330PartIIPatch) Kind() FormKind { return KindSF330PartII }
func (SF330PartIIPatch) isFormPatch() {}

// Apply merges the patch into d and returns the result.
func (p SF330PartIIPatch) Apply(d SF330PartIIData) SF330PartIIData {
	if p.FirmName != nil {
		d.FirmName = *p.FirmName
	}
	if p.YearEstablished != nil {
		d.YearEstablished = *p.YearEstablished
	}
	if p.DunsNumber != nil {
		d.DunsNumber = *p.DunsNumber
	}
	if p.TaxIDNumber != nil {
		d.TaxIDNumber = *p.TaxIDNumber
	}
	if p.OwnershipType != nil {
		d.OwnershipType = *p.OwnershipType
	}
	if p.SmallBusinessStatus != nil {
		d.SmallBusinessStatus = *p.SmallBusinessStatus
	}
	if p.PrincipalOfficeName != nil {
		d.PrincipalOfficeName = *p.PrincipalOfficeName
	}
	if p.PrincipalOfficeAddress != nil {
		d.PrincipalOfficeAddress = *p.PrincipalOfficeAddress
	}
	if p.PrincipalOfficeCity != nil {
		d.PrincipalOfficeCity = *p.PrincipalOfficeCity
	}
	if p.PrincipalOfficeState != nil {
		d.PrincipalOfficeState = *p.PrincipalOfficeState
	}
	if p.PrincipalOfficeZipCode != nil {
		d.PrincipalOfficeZipCode = *p.PrincipalOfficeZipCode
	}
	if p.BranchOffices != nil {
		d.BranchOffices = p.BranchOffices
	}
	if p.TotalEmployees != nil {
		d.TotalEmployees = *p.TotalEmployees
	}
	if p.TotalArchitects != nil {
		d.TotalArchitects = *p.TotalArchitects
	}
	if p.TotalEngineers != nil {
		d.TotalEngineers = *p.TotalEngineers
	}
	if p.TotalOtherProfessionals != nil {
		d.TotalOtherProfessionals = *p.TotalOtherProfessionals
	}
	if p.TotalAdministrative != nil {
		d.TotalAdministrative = *p.TotalAdministrative
	}
	if p.EmployeesByDiscipline != nil {
		d.EmployeesByDiscipline = p.EmployeesByDiscipline
	}
	if p.FirmExperienceProfile != nil {
		d.FirmExperienceProfile = p.FirmExperienceProfile
	}
	return d
}

// SF254Patch is a partial update for the SF254.
type SF254Patch struct {
	FirmName                 *string             `json:"firmName,omitempty"`
	StreetAddress            *string             `json:"streetAddress,omitempty"`
	City                     *string             `json:"city,omitempty"`
	State                    *string             `json:"state,omitempty"`
	ZipCode                  *string             `json:"zipCode,omitempty"`
	ContactName              *string             `json:"contactName,omitempty"`
	ContactTitle             *string             `json:"contactTitle,omitempty"`
	ContactPhone             *string             `json:"contactPhone,omitempty"`
	ContactEmail             *string             `json:"contactEmail,omitempty"`
	ParentCompanyName        *string             `json:"parentCompanyName,omitempty"`
	ParentCompanyAddress     *string             `json:"parentCompanyAddress,omitempty"`
	YearEstablished          *string             `json:"yearEstablished,omitempty"`
	DateSubmitted            *string             `json:"dateSubmitted,omitempty"`
	TotalPersonnel           *int                `json:"totalPersonnel,omitempty"`
	PersonnelByDiscipline    []string            `json:"personnelByDiscipline,omitempty"`
	ServiceCapabilities      []ServiceCapability `json:"serviceCapabilities,omitempty"`
	GeographicExperience     []string            `json:"geographicExperience,omitempty"`
	AnnualAverageRevenue     *float64            `json:"annualAverageRevenue,omitempty"`
	FederalWorkPercentage    *float64            `json:"federalWorkPercentage,omitempty"`
	NonFederalWorkPercentage *float64            `json:"nonFederalWorkPercentage,omitempty"`
}

// Kind implements FormPatch.
func (SF254Patch) Kind() FormKind { return KindSF254 }
func (SF254Patch) isFormPatch() {}

// Apply merges the patch into d and returns the result.
func (p SF254Patch) Apply(d SF254Data) SF254Data {
	if p.FirmName != nil {
		d.FirmName = *p.FirmName
	}
	if p.StreetAddress != nil {
		d.StreetAddress = *p.StreetAddress
	}
	if p.City != nil {
		d.City = *p.City
	}
	if p.State != nil {
		d.State = *p.State
	}
	if p.ZipCode != nil {
		d.ZipCode = *p.ZipCode
	}
	if p.ContactName != nil {
		d.ContactName = *p.ContactName
	}
	if p.ContactTitle != nil {
		d.ContactTitle = *p.ContactTitle
	}
	if p.ContactPhone != nil {
		d.ContactPhone = *p.ContactPhone
	}
	if p.ContactEmail != nil {
		d.ContactEmail = *p.ContactEmail
	}
	if p.ParentCompanyName != nil {
		d.ParentCompanyName = *p.ParentCompanyName
	}
	if p.ParentCompanyAddress != nil {
		d.ParentCompanyAddress = *p.ParentCompanyAddress
	}
	if p.YearEstablished != nil {
		d.YearEstablished = *p.YearEstablished
	}
	if p.DateSubmitted != nil {
		d.DateSubmitted = *p.DateSubmitted
	}
	if p.TotalPersonnel != nil {
		d.TotalPersonnel = *p.TotalPersonnel
	}
	if p.PersonnelByDiscipline != nil {
		d.PersonnelByDiscipline = p.PersonnelByDiscipline
	}
	if p.ServiceCapabilities != nil {
		d.ServiceCapabilities = p.ServiceCapabilities
	}
	if p.GeographicExperience != nil {
		d.GeographicExperience = p.GeographicExperience
	}
	if p.AnnualAverageRevenue != nil {
		d.AnnualAverageRevenue = *p.AnnualAverageRevenue
	}
	if p.FederalWorkPercentage != nil {
		d.FederalWorkPercentage = *p.FederalWorkPercentage
	}
	if p.NonFederalWorkPercentage != nil {
		d.NonFederalWorkPercentage = *p.NonFederalWorkPercentage
	}
	return d
}

// SF255Patch is a partial update for the SF255.
type SF255Patch struct {
	ProjectTitle           *string               `json:"projectTitle,omitempty"`
	ProjectLocation        *string               `json:"projectLocation,omitempty"`
	SolicitationNumber     *string               `json:"solicitationNumber,omitempty"`
	FirmName               *string               `json:"firmName,omitempty"`
	FirmAddress            *string               `json:"firmAddress,omitempty"`
	FirmCity               *string               `json:"firmCity,omitempty"`
	FirmState              *string               `json:"firmState,omitempty"`
	FirmZipCode            *string               `json:"firmZipCode,omitempty"`
	POCName                *string               `json:"pocName,omitempty"`
	POCTitle               *string               `json:"pocTitle,omitempty"`
	POCPhone               *string               `json:"pocPhone,omitempty"`
	POCEmail               *string               `json:"pocEmail,omitempty"`
	JointVenturePartners   []JointVenturePartner `json:"jointVenturePartners,omitempty"`
	PersonnelByDiscipline  []string              `json:"personnelByDiscipline,omitempty"`
	OutsideConsultants     []OutsideConsultant   `json:"outsideConsultants,omitempty"`
	ProjectTeamResumes     []ProjectTeamMember   `json:"projectTeamResumes,omitempty"`
	RelevantProjects       []RelevantProject     `json:"relevantProjects,omitempty"`
	AdditionalInformation  *string               `json:"additionalInformation,omitempty"`
	AuthorizedRepName      *string               `json:"authorizedRepName,omitempty"`
	AuthorizedRepTitle     *string               `json:"authorizedRepTitle,omitempty"`
	AuthorizedRepDate      *string               `json:"authorizedRepDate,omitempty"`
	AuthorizedRepSignature *string               `json:"authorizedRepSignature,omitempty"`
}

// Kind implements FormPatch.
func (SF255Patch) Kind() FormKind { return KindSF255 }
func (SF255Patch) isFormPatch() {}

// Apply merges the patch into d and returns the result.
func (p SF255Patch) Apply(d SF255Data) SF255Data {
	if p.ProjectTitle != nil {
		d.ProjectTitle = *p.ProjectTitle
	}
	if p.ProjectLocation != nil {
		d.ProjectLocation = *p.ProjectLocation
	}
	if p.SolicitationNumber != nil {
		d.SolicitationNumber = *p.SolicitationNumber
	}
	if p.FirmName != nil {
		d.FirmName = *p.FirmName
	}
	if p.FirmAddress != nil {
		d.FirmAddress = *p.FirmAddress
	}
	if p.FirmCity != nil {
		d.FirmCity = *p.FirmCity
	}
	if p.FirmState != nil {
		d.FirmState = *p.FirmState
	}
	if p.FirmZipCode != nil {
		d.FirmZipCode = *p.FirmZipCode
	}
	if p.POCName != nil {
		d.POCName = *p.POCName
	}
	if p.POCTitle != nil {
		d.POCTitle = *p.POCTitle
	}
	if p.POCPhone != nil {
		d.POCPhone = *p.POCPhone
	}
	if p.POCEmail != nil {
		d.POCEmail = *p.POCEmail
	}
	if p.JointVenturePartners != nil {
		d.JointVenturePartners = p.JointVenturePartners
	}
	if p.PersonnelByDiscipline != nil {
		d.PersonnelByDiscipline = p.PersonnelByDiscipline
	}
	if p.OutsideConsultants != nil {
		d.OutsideConsultants = p.OutsideConsultants
	}
	if p.ProjectTeamResumes != nil {
		d.ProjectTeamResumes = p.ProjectTeamResumes
	}
	if p.RelevantProjects != nil {
		d.RelevantProjects = p.RelevantProjects
	}
	if p.AdditionalInformation != nil {
		d.AdditionalInformation = *p.AdditionalInformation
	}
	if p.AuthorizedRepName != nil {
		d.AuthorizedRepName = *p.AuthorizedRepName
	}
	if p.AuthorizedRepTitle != nil {
		d.AuthorizedRepTitle = *p.AuthorizedRepTitle
	}
	if p.AuthorizedRepDate != nil {
		d.AuthorizedRepDate = *p.AuthorizedRepDate
	}
	if p.AuthorizedRepSignature != nil {
		d.AuthorizedRepSignature = *p.AuthorizedRepSignature
	}
	return d
}

// SF252Patch is a partial update for the SF252.
type SF252Patch struct {
	ContractNumber              *string  `json:"contractNumber,omitempty"`
	DeliveryOrderNumber         *string  `json:"deliveryOrderNumber,omitempty"`
	AmendmentNumber             *string  `json:"amendmentNumber,omitempty"`
	EffectiveDate               *string  `json:"effectiveDate,omitempty"`
	ContractorName              *string  `json:"contractorName,omitempty"`
	ContractorAddress           *string  `json:"contractorAddress,omitempty"`
	ContractorCity              *string  `json:"contractorCity,omitempty"`
	ContractorState             *string  `json:"contractorState,omitempty"`
	ContractorZipCode           *string  `json:"contractorZipCode,omitempty"`
	ContractorPhone             *string  `json:"contractorPhone,omitempty"`
	ContractorTIN               *string  `json:"contractorTIN,omitempty"`
	ContractDate                *string  `json:"contractDate,omitempty"`
	ContractAmount              *float64 `json:"contractAmount,omitempty"`
	ObligatedAmount             *float64 `json:"obligatedAmount,omitempty"`
	IssuingOfficeName           *string  `json:"issuingOfficeName,omitempty"`
	IssuingOfficeAddress        *string  `json:"issuingOfficeAddress,omitempty"`
	AdministrationOfficeName    *string  `json:"administrationOfficeName,omitempty"`
	AdministrationOfficeAddress *string  `json:"administrationOfficeAddress,omitempty"`
	PeriodOfPerformanceStart    *string  `json:"periodOfPerformanceStart,omitempty"`
	PeriodOfPerformanceEnd      *string  `json:"periodOfPerformanceEnd,omitempty"`
	PaymentOfficeName           *string  `json:"paymentOfficeName,omitempty"`
	PaymentOfficeAddress        *string  `json:"paymentOfficeAddress,omitempty"`
	ServicesDescription         *string  `json:"servicesDescription,omitempty"`
	AccountingData              *string  `json:"accountingData,omitempty"`
	ContractorSignatureName     *string  `json:"contractorSignatureName,omitempty"`
	ContractorSignatureTitle    *string  `json:"contractorSignatureTitle,omitempty"`
	ContractorSignatureDate     *string  `json:"contractorSignatureDate,omitempty"`
	ContractingOfficerName      *string  `json:"contractingOfficerName,omitempty"`
	ContractingOfficerTitle     *string  `json:"contractingOfficerTitle,omitempty"`
	ContractingOfficerDate      *string  `json:"contractingOfficerDate,omitempty"`
}

// Kind implements FormPatch.
func (SF252Patch) Kind() FormKind { return KindSF252 }
func (SF252Patch) isFormPatch() {}

// Apply merges the patch into d and returns the result.
func (p SF252Patch) Apply(d SF252Data) SF252Data {
	if p.ContractNumber != nil {
		d.ContractNumber = *p.ContractNumber
	}
	if p.DeliveryOrderNumber != nil {
		d.DeliveryOrderNumber = *p.DeliveryOrderNumber
	}
	if p.AmendmentNumber != nil {
		d.AmendmentNumber = *p.AmendmentNumber
	}
	if p.EffectiveDate != nil {
		d.EffectiveDate = *p.EffectiveDate
	}
	if p.ContractorName != nil {
		d.ContractorName = *p.ContractorName
	}
	if p.ContractorAddress != nil {
		d.ContractorAddress = *p.ContractorAddress
	}
	if p.ContractorCity != nil {
		d.ContractorCity = *p.ContractorCity
	}
	if p.ContractorState != nil {
		d.ContractorState = *p.ContractorState
	}
	if p.ContractorZipCode != nil {
		d.ContractorZipCode = *p.ContractorZipCode
	}
	if p.ContractorPhone != nil {
		d.ContractorPhone = *p.ContractorPhone
	}
	if p.ContractorTIN != nil {
		d.ContractorTIN = *p.ContractorTIN
	}
	if p.ContractDate != nil {
		d.ContractDate = *p.ContractDate
	}
	if p.ContractAmount != nil {
		d.ContractAmount = *p.ContractAmount
	}
	if p.ObligatedAmount != nil {
		d.ObligatedAmount = *p.ObligatedAmount
	}
	if p.IssuingOfficeName != nil {
		d.IssuingOfficeName = *p.IssuingOfficeName
	}
	if p.IssuingOfficeAddress != nil {
		d.IssuingOfficeAddress = *p.IssuingOfficeAddress
	}
	if p.AdministrationOfficeName != nil {
		d.AdministrationOfficeName = *p.AdministrationOfficeName
	}
	if p.AdministrationOfficeAddress != nil {
		d.AdministrationOfficeAddress = *p.AdministrationOfficeAddress
	}
	if p.PeriodOfPerformanceStart != nil {
		d.PeriodOfPerformanceStart = *p.PeriodOfPerformanceStart
	}
	if p.PeriodOfPerformanceEnd != nil {
		d.PeriodOfPerformanceEnd = *p.PeriodOfPerformanceEnd
	}
	if p.PaymentOfficeName != nil {
		d.PaymentOfficeName = *p.PaymentOfficeName
	}
	if p.PaymentOfficeAddress != nil {
		d.PaymentOfficeAddress = *p.PaymentOfficeAddress
	}
	if p.ServicesDescription != nil {
		d.ServicesDescription = *p.ServicesDescription
	}
	if p.AccountingData != nil {
		d.AccountingData = *p.AccountingData
	}
	if p.ContractorSignatureName != nil {
		d.ContractorSignatureName = *p.ContractorSignatureName
	}
	if p.ContractorSignatureTitle != nil {
		d.ContractorSignatureTitle = *p.ContractorSignatureTitle
	}
	if p.ContractorSignatureDate != nil {
		d.ContractorSignatureDate = *p.ContractorSignatureDate
	}
	if p.ContractingOfficerName != nil {
		d.ContractingOfficerName = *p.ContractingOfficerName
	}
	if p.ContractingOfficerTitle != nil {
		d.ContractingOfficerTitle = *p.ContractingOfficerTitle
	}
	if p.ContractingOfficerDate != nil {
		d.ContractingOfficerDate = *p.ContractingOfficerDate
	}
	return d
}
