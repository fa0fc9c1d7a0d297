package entities

// CertificateFields are the optional caller-supplied values merged with the reborn data at
// render time. Blank values fall back to the defaults of the placeholder resolver.
type CertificateFields struct {
	Hospital           string `json:"hospital,omitempty"`
	Doctor             string `json:"doctor,omitempty"`
	RegistrationNumber string `json:"registration_number,omitempty"`
	MotherName         string `json:"mother_name,omitempty"`
	City               string `json:"city,omitempty"`
	State              string `json:"state,omitempty"`
}

// GeneratedFile is a rendered document kept in memory for immediate download.
type GeneratedFile struct {
	Buffer      []byte
	FileName    string
	ContentType string
}
