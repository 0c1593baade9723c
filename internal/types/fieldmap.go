package types

// FieldMap methods expose each form's values keyed by wire field name, for
// the progress engine and the export renderer. Keys match the json tags.

// FieldMap returns Part I values keyed by field name.
func (d SF330PartIData) FieldMap() map[string]any {
	return map[string]any{
		"contractNumber":                 d.ContractNumber,
		"taskOrderNumber":                d.TaskOrderNumber,
		"firmName":                       d.FirmName,
		"streetAddress":                  d.StreetAddress,
		"city":                           d.City,
		"state":                          d.State,
		"zipCode":                        d.ZipCode,
		"country":                        d.Country,
		"pointOfContactName":             d.PointOfContactName,
		"pointOfContactTitle":            d.PointOfContactTitle,
		"pointOfContactPhone":            d.PointOfContactPhone,
		"pointOfContactFax":              d.PointOfContactFax,
		"pointOfContactEmail":            d.PointOfContactEmail,
		"primeContractorName":            d.PrimeContractorName,
		"primeContractorAddress":         d.PrimeContractorAddress,
		"organizationalChartDescription": d.OrganizationalChartDescription,
		"keyPersonnel":                   d.KeyPersonnel,
		"exampleProjects":                d.ExampleProjects,
	}
}

// FieldMap returns Part II values keyed by field name.
func (d SF330PartIIData) FieldMap() map[string]any {
	return map[string]any{
		"firmName":                d.FirmName,
		"yearEstablished":         d.YearEstablished,
		"dunsNumber":              d.DunsNumber,
		"taxIdNumber":             d.TaxIDNumber,
		"ownershipType":           d.OwnershipType,
		"smallBusinessStatus":     d.SmallBusinessStatus,
		"principalOfficeName":     d.PrincipalOfficeName,
		"principalOfficeAddress":  d.PrincipalOfficeAddress,
		"principalOfficeCity":     d.PrincipalOfficeCity,
		"principalOfficeState":    d.PrincipalOfficeState,
		"principalOfficeZipCode":  d.PrincipalOfficeZipCode,
		"branchOffices":           d.BranchOffices,
		"totalEmployees":          d.TotalEmployees,
		"totalArchitects":         d.TotalArchitects,
		"totalEngineers":          d.TotalEngineers,
		"totalOtherProfessionals": d.TotalOtherProfessionals,
		"totalAdministrative":     d.TotalAdministrative,
		"employeesByDiscipline":   d.EmployeesByDiscipline,
		"firmExperienceProfile":   d.FirmExperienceProfile,
	}
}

// FieldMap returns SF254 values keyed by field name.
func (d SF254Data) FieldMap() map[string]any {
	return map[string]any{
		"firmName":                 d.FirmName,
		"streetAddress":            d.StreetAddress,
		"city":                     d.City,
		"state":                    d.State,
		"zipCode":                  d.ZipCode,
		"contactName":              d.ContactName,
		"contactTitle":             d.ContactTitle,
		"contactPhone":             d.ContactPhone,
		"contactEmail":             d.ContactEmail,
		"parentCompanyName":        d.ParentCompanyName,
		"parentCompanyAddress":     d.ParentCompanyAddress,
		"yearEstablished":          d.YearEstablished,
		"dateSubmitted":            d.DateSubmitted,
		"totalPersonnel":           d.TotalPersonnel,
		"personnelByDiscipline":    d.PersonnelByDiscipline,
		"serviceCapabilities":      d.ServiceCapabilities,
		"geographicExperience":     d.GeographicExperience,
		"annualAverageRevenue":     d.AnnualAverageRevenue,
		"federalWorkPercentage":    d.FederalWorkPercentage,
		"nonFederalWorkPercentage": d.NonFederalWorkPercentage,
	}
}

// FieldMap returns SF255 values keyed by field name.
func (d SF255Data) FieldMap() map[string]any {
	return map[string]any{
		"projectTitle":           d.ProjectTitle,
		"projectLocation":        d.ProjectLocation,
		"solicitationNumber":     d.SolicitationNumber,
		"firmName":               d.FirmName,
		"firmAddress":            d.FirmAddress,
		"firmCity":               d.FirmCity,
		"firmState":              d.FirmState,
		"firmZipCode":            d.FirmZipCode,
		"pocName":                d.POCName,
		"pocTitle":               d.POCTitle,
		"pocPhone":               d.POCPhone,
		"pocEmail":               d.POCEmail,
		"jointVenturePartners":   d.JointVenturePartners,
		"personnelByDiscipline":  d.PersonnelByDiscipline,
		"outsideConsultants":     d.OutsideConsultants,
		"projectTeamResumes":     d.ProjectTeamResumes,
		"relevantProjects":       d.RelevantProjects,
		"additionalInformation":  d.AdditionalInformation,
		"authorizedRepName":      d.AuthorizedRepName,
		"authorizedRepTitle":     d.AuthorizedRepTitle,
		"authorizedRepDate":      d.AuthorizedRepDate,
		"authorizedRepSignature": d.AuthorizedRepSignature,
	}
}

// FieldMap returns SF252 values keyed by field name.
func (d SF252Data) FieldMap() map[string]any {
	return map[string]any{
		"contractNumber":              d.ContractNumber,
		"deliveryOrderNumber":         d.DeliveryOrderNumber,
		"amendmentNumber":             d.AmendmentNumber,
		"effectiveDate":               d.EffectiveDate,
		"contractorName":              d.ContractorName,
		"contractorAddress":           d.ContractorAddress,
		"contractorCity":              d.ContractorCity,
		"contractorState":             d.ContractorState,
		"contractorZipCode":           d.ContractorZipCode,
		"contractorPhone":             d.ContractorPhone,
		"contractorTIN":               d.ContractorTIN,
		"contractDate":                d.ContractDate,
		"contractAmount":              d.ContractAmount,
		"obligatedAmount":             d.ObligatedAmount,
		"issuingOfficeName":           d.IssuingOfficeName,
		"issuingOfficeAddress":        d.IssuingOfficeAddress,
		"administrationOfficeName":    d.AdministrationOfficeName,
		"administrationOfficeAddress": d.AdministrationOfficeAddress,
		"periodOfPerformanceStart":    d.PeriodOfPerformanceStart,
		"periodOfPerformanceEnd":      d.PeriodOfPerformanceEnd,
		"paymentOfficeName":           d.PaymentOfficeName,
		"paymentOfficeAddress":        d.PaymentOfficeAddress,
		"servicesDescription":         d.ServicesDescription,
		"accountingData":              d.AccountingData,
		"contractorSignatureName":     d.ContractorSignatureName,
		"contractorSignatureTitle":    d.ContractorSignatureTitle,
		"contractorSignatureDate":     d.ContractorSignatureDate,
		"contractingOfficerName":      d.ContractingOfficerName,
		"contractingOfficerTitle":     d.ContractingOfficerTitle,
		"contractingOfficerDate":      d.ContractingOfficerDate,
	}
}
