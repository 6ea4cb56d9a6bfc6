package constants

// DocType is the detected document type for rows in processed_documents.
type DocType string

// Stable values (store these exact strings in DB).
const (
	DocTypeOrder       DocType = "ORDER"       // judicial order (oficio)
	DocTypeCertificate DocType = "CERTIFICATE" // vehicle registration certificate (CAV)
	DocTypeUnknown     DocType = "UNKNOWN"     // could not be classified; held for review
)

// DocTypes holds the allowed values for the doc_type field.
var DocTypes = []string{string(DocTypeOrder), string(DocTypeCertificate), string(DocTypeUnknown)}

// Complement returns the opposite pairable type, or UNKNOWN when the
// receiver has no complement.
func (t DocType) Complement() DocType {
	switch t {
	case DocTypeOrder:
		return DocTypeCertificate
	case DocTypeCertificate:
		return DocTypeOrder
	default:
		return DocTypeUnknown
	}
}
