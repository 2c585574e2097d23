package entity

import (
	"fmt"
	"time"
)

// DocumentType identifies one of the singleton legal documents.
type DocumentType int

const (
	PrivacyPolicy DocumentType = iota
	TermsOfService
	CookiePolicy
	AboutUs
)

// DocumentTypes lists every document kind in display order.
var DocumentTypes = [...]DocumentType{PrivacyPolicy, TermsOfService, CookiePolicy, AboutUs}

func (t DocumentType) String() string {
	switch t {
	case PrivacyPolicy:
		return "privacyPolicy"
	case TermsOfService:
		return "termsOfService"
	case CookiePolicy:
		return "cookiePolicy"
	case AboutUs:
		return "aboutUs"
	default:
		return fmt.Sprintf("DocumentType(%d)", int(t))
	}
}

func (t DocumentType) Valid() bool {
	return t >= PrivacyPolicy && t <= AboutUs
}

// ParseDocumentType accepts the API name of a legal document.
func ParseDocumentType(s string) (DocumentType, error) {
	for _, t := range DocumentTypes {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown legal document type %q", s)
}

func (t DocumentType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid legal document type %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *DocumentType) UnmarshalText(text []byte) error {
	parsed, err := ParseDocumentType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

type LegalDocument struct {
	Type        DocumentType `json:"type"`
	Content     string       `json:"content"`
	LastUpdated *time.Time   `json:"lastUpdated"`
}
