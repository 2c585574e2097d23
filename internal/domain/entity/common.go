package entity

const (
	StatusAll      = "all"
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// ListResult is one page of a collection as returned by the server.
type ListResult[T any] struct {
	Items []T
	Total int
}

// Upload is a local file attached to a multipart request.
type Upload struct {
	FieldName string
	Filename  string
	Content   []byte
}

func BoolPtr(v bool) *bool { return &v }

func StringPtr(v string) *string { return &v }

func IntPtr(v int) *int { return &v }
