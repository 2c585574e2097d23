package httpclient

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Field is a plain form value.
type Field struct {
	Name  string
	Value string
}

// File is an uploaded part; its content type is sniffed from the bytes.
type File struct {
	FieldName string
	Filename  string
	Content   []byte
}

// Multipart is a form body; fields keep their insertion order.
type Multipart struct {
	Fields []Field
	Files  []File
}

// AddField appends a form value.
func (m *Multipart) AddField(name, value string) {
	m.Fields = append(m.Fields, Field{Name: name, Value: value})
}

// AddFile appends a file part.
func (m *Multipart) AddFile(fieldName, filename string, content []byte) {
	m.Files = append(m.Files, File{FieldName: fieldName, Filename: filename, Content: content})
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func (m *Multipart) encode() (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	for _, f := range m.Fields {
		if err := w.WriteField(f.Name, f.Value); err != nil {
			return nil, "", err
		}
	}

	for _, f := range m.Files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			quoteEscaper.Replace(f.FieldName), quoteEscaper.Replace(f.Filename)))
		h.Set("Content-Type", mimetype.Detect(f.Content).String())
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(f.Content); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}
