package document

import "time"

type DocumentType string

const (
	DocTypeContract    DocumentType = "CONTRACT"
	DocTypeIDCopy      DocumentType = "ID_COPY"
	DocTypeResume      DocumentType = "RESUME"
	DocTypeCertificate DocumentType = "CERTIFICATE"
	DocTypeReference   DocumentType = "REFERENCE"
	DocTypeMedical     DocumentType = "MEDICAL"
	DocTypeOther       DocumentType = "OTHER"
)

var DocumentTypes = []string{
	string(DocTypeContract),
	string(DocTypeIDCopy),
	string(DocTypeResume),
	string(DocTypeCertificate),
	string(DocTypeReference),
	string(DocTypeMedical),
	string(DocTypeOther),
}

// EmployeeDocument entity. UploadedBy and UploadDate are stamped once
// at creation and never changed afterwards.
type EmployeeDocument struct {
	ID         string
	EmployeeID string

	DocumentType DocumentType
	Title        string
	DocumentFile string
	Description  string

	ExpiryDate     *time.Time
	IsConfidential bool

	UploadedBy *string
	UploadDate time.Time

	// Joined for responses
	EmployeeName *string
}
