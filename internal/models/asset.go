package models

// Asset is an uploaded file held in memory for the duration of one analysis.
type Asset struct {
	Name     string
	// MIMEType is the type declared by the client. The extension decides what is sent upstream.
	MIMEType string
	Data     []byte
}

// Size returns the asset size in bytes.
func (a Asset) Size() int {
	return len(a.Data)
}
