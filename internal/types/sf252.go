package types

// SF252Data holds Standard Form 252 (Architect-Engineer Contract).
type SF252Data struct {
	// Contract Identification
	ContractNumber      string `json:"contractNumber"`
	DeliveryOrderNumber string `json:"deliveryOrderNumber"`
	AmendmentNumber     string `json:"amendmentNumber"`
	EffectiveDate       string `json:"effectiveDate"`

	// Contractor Information
	ContractorName    string `json:"contractorName"`
	ContractorAddress string `json:"contractorAddress"`
	ContractorCity    string `json:"contractorCity"`
	ContractorState   string `json:"contractorState"`
	ContractorZipCode string `json:"contractorZipCode"`
	ContractorPhone   string `json:"contractorPhone"`
	ContractorTIN     string `json:"contractorTIN"`

	// Contract Details
	ContractDate    string  `json:"contractDate"`
	ContractAmount  float64 `json:"contractAmount"`
	ObligatedAmount float64 `json:"obligatedAmount"`

	// Issuing Office
	IssuingOfficeName    string `json:"issuingOfficeName"`
	IssuingOfficeAddress string `json:"issuingOfficeAddress"`

	// Administration Office
	AdministrationOfficeName    string `json:"administrationOfficeName"`
	AdministrationOfficeAddress string `json:"administrationOfficeAddress"`

	// Period of Performance
	PeriodOfPerformanceStart string `json:"periodOfPerformanceStart"`
	PeriodOfPerformanceEnd   string `json:"periodOfPerformanceEnd"`

	// Payment Information
	PaymentOfficeName    string `json:"paymentOfficeName"`
	PaymentOfficeAddress string `json:"paymentOfficeAddress"`

	// Services Description
	ServicesDescription string `json:"servicesDescription"`
	AccountingData      string `json:"accountingData"`

	// Signatures
	ContractorSignatureName  string `json:"contractorSignatureName"`
	ContractorSignatureTitle string `json:"contractorSignatureTitle"`
	ContractorSignatureDate  string `json:"contractorSignatureDate"`
	ContractingOfficerName   string `json:"contractingOfficerName"`
	ContractingOfficerTitle  string `json:"contractingOfficerTitle"`
	ContractingOfficerDate   string `json:"contractingOfficerDate"`
}
