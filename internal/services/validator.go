package services

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ValidationResult contains the results of file validation
type ValidationResult struct {
	Valid        bool
	DetectedType string // "CSV" or "XLSX"
	ContentType  string
	Size         int64
	Errors       []string
	Warnings     []string
}

// FileValidator validates uploaded spreadsheets for size and format compliance
// before they are handed to the parser.
type FileValidator struct {
	maxSizeBytes int64
}

// XLSX files are ZIP containers; CSV is plain text with no signature.
var xlsxMagicBytes = []byte{0x50, 0x4B, 0x03, 0x04}

var allowedMimeTypes = map[string]bool{
	"text/csv":                 true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
}

var allowedExtensions = map[string]bool{
	".csv":  true,
	".xlsx": true,
	".xls":  true,
}

// NewFileValidator creates a new file validator with the specified maximum file size
func NewFileValidator(maxSizeBytes int64) *FileValidator {
	return &FileValidator{maxSizeBytes: maxSizeBytes}
}

// ValidateFile performs all checks on an uploaded file and reads the content to
// measure it, so the caller must re-open the file for parsing.
func (v *FileValidator) ValidateFile(reader io.Reader, filename, contentType string) (*ValidationResult, error) {
	result := &ValidationResult{
		Valid:       true,
		ContentType: contentType,
		Errors:      []string{},
		Warnings:    []string{},
	}

	if err := v.ValidateFilename(filename); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
	}

	if err := v.ValidateMimeType(contentType); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
	}

	content, err := io.ReadAll(io.LimitReader(reader, v.maxSizeBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read file content: %w", err)
	}
	result.Size = int64(len(content))

	if result.Size > v.maxSizeBytes {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("file exceeds maximum size of %d bytes", v.maxSizeBytes))
	}
	if result.Size == 0 {
		result.Valid = false
		result.Errors = append(result.Errors, "file is empty")
	}

	result.DetectedType = detectFileType(content)
	if result.DetectedType == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "unrecognized file format")
	}

	// An .xlsx extension on a file without the ZIP signature is either
	// corruption or a renamed file; either way the parser will reject it.
	ext := strings.ToLower(filepath.Ext(filename))
	if (ext == ".xlsx" || ext == ".xls") && result.DetectedType != "XLSX" {
		result.Warnings = append(result.Warnings, "extension suggests a workbook but content does not look like one")
	}

	return result, nil
}

// ValidateFilename rejects empty names, traversal attempts and disallowed extensions.
func (v *FileValidator) ValidateFilename(filename string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}
	if strings.Contains(filename, "..") || strings.ContainsAny(filename, "/\\") {
		return fmt.Errorf("filename contains invalid path characters")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return fmt.Errorf("file extension %q is not allowed", ext)
	}
	return nil
}

// ValidateMimeType checks the declared content type against the allowlist.
func (v *FileValidator) ValidateMimeType(contentType string) error {
	if contentType == "" {
		return fmt.Errorf("content type cannot be empty")
	}
	if !allowedMimeTypes[contentType] {
		return fmt.Errorf("content type %q is not allowed", contentType)
	}
	return nil
}

// detectFileType sniffs the real content format. XLSX is identified by its ZIP
// signature; anything that decodes as printable text passes as CSV.
func detectFileType(content []byte) string {
	if bytes.HasPrefix(content, xlsxMagicBytes) {
		return "XLSX"
	}
	if looksLikeText(content) {
		return "CSV"
	}
	return ""
}

func looksLikeText(content []byte) bool {
	limit := len(content)
	if limit > 512 {
		limit = 512
	}
	for _, b := range content[:limit] {
		if b == 0 {
			return false
		}
	}
	return limit > 0
}
