package user

// KYCDocument is one identity document with links to its uploaded scans.
type KYCDocument struct {
	IDType   string `json:"id_type,omitempty"`
	IDNumber string `json:"id_number,omitempty"`
	Front    string `json:"front,omitempty"`
	Back     string `json:"back,omitempty"`
}

// KYCDocuments maps a document name, e.g. "passport", to its details.
type KYCDocuments struct {
	Documents map[string]KYCDocument `json:"documents"`
}

func (k KYCDocuments) IsEmpty() bool {
	return len(k.Documents) == 0
}
