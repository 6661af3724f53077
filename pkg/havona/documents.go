package havona

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
)

// DocumentType describes an ETR document type supported for AI extraction.
type DocumentType struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ExtractionResult carries the fields the extraction service pulled from a
// document, with an overall confidence score. Nothing is persisted on the
// platform by an extraction.
type ExtractionResult struct {
	DocumentType string         `json:"documentType"`
	Fields       map[string]any `json:"fields"`
	Confidence   float64        `json:"confidence"`
	Source       string         `json:"source"`
}

// DocumentsService provides document extraction operations over the
// platform's REST surface.
type DocumentsService struct {
	client *Client
}

// SupportedTypes lists the document types the extraction service accepts.
func (s *DocumentsService) SupportedTypes(ctx context.Context) ([]DocumentType, error) {
	var types []DocumentType
	if err := s.client.rest(ctx, http.MethodGet, "/api/documents/types", nil, "", &types); err != nil {
		return nil, err
	}
	return types, nil
}

// Extract uploads the PDF at filePath and returns the extracted trade fields.
// An unreadable file is an *InputError; no network call is made for it.
func (s *DocumentsService) Extract(ctx context.Context, filePath, documentType string) (*ExtractionResult, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, &InputError{Reason: fmt.Sprintf("cannot read document file: %v", err)}
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filepath.Base(filePath))
	if err != nil {
		return nil, &InputError{Reason: fmt.Sprintf("building upload failed: %v", err)}
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, &InputError{Reason: fmt.Sprintf("reading document file failed: %v", err)}
	}
	if err := writer.WriteField("documentType", documentType); err != nil {
		return nil, &InputError{Reason: fmt.Sprintf("building upload failed: %v", err)}
	}
	if err := writer.Close(); err != nil {
		return nil, &InputError{Reason: fmt.Sprintf("building upload failed: %v", err)}
	}

	var result ExtractionResult
	if err := s.client.rest(ctx, http.MethodPost, "/api/documents/extract", &body, writer.FormDataContentType(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}
