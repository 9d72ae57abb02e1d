package web

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// maxUploadBytes bounds the in-memory portion of a browser upload; larger
// file parts spill to disk via the multipart reader.
const maxUploadBytes = 32 << 20

// rebuildMultipart re-encodes selected browser form fields and file parts
// into a fresh multipart body for the upstream API. The returned content
// type carries the new boundary and must be sent verbatim.
func rebuildMultipart(r *http.Request, fields []string, fileField string) (io.Reader, string, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, "", fmt.Errorf("parse upload form: %w", err)
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, field := range fields {
		if err := mw.WriteField(field, r.PostFormValue(field)); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", field, err)
		}
	}
	for _, header := range r.MultipartForm.File[fileField] {
		file, err := header.Open()
		if err != nil {
			return nil, "", fmt.Errorf("open upload %s: %w", header.Filename, err)
		}
		part, err := mw.CreateFormFile(fileField, header.Filename)
		if err == nil {
			_, err = io.Copy(part, file)
		}
		file.Close()
		if err != nil {
			return nil, "", fmt.Errorf("copy upload %s: %w", header.Filename, err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("finish upload form: %w", err)
	}
	return &buf, mw.FormDataContentType(), nil
}
