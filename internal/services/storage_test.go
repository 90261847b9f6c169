package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewStorageService tests the constructor
func TestNewStorageService(t *testing.T) {
	tests := []struct {
		name     string
		bucket   string
		region   string
		endpoint string
		wantErr  bool
	}{
		{
			name:     "valid configuration with LocalStack endpoint",
			bucket:   "reconlens-uploads",
			region:   "us-east-1",
			endpoint: "http://localhost:4566",
			wantErr:  false,
		},
		{
			name:     "valid configuration without endpoint",
			bucket:   "reconlens-uploads",
			region:   "ap-south-1",
			endpoint: "",
			wantErr:  false,
		},
		{
			name:     "empty bucket",
			bucket:   "",
			region:   "us-east-1",
			endpoint: "http://localhost:4566",
			wantErr:  true,
		},
		{
			name:     "empty region",
			bucket:   "reconlens-uploads",
			region:   "",
			endpoint: "http://localhost:4566",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, err := NewStorageService(tt.bucket, tt.region, tt.endpoint)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, service)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, service)
				assert.NotNil(t, service.s3Client)
				assert.Equal(t, tt.bucket, service.bucket)
				assert.Equal(t, tt.region, service.region)
			}
		})
	}
}

// TestGenerateUploadKey tests the upload key generation
func TestGenerateUploadKey(t *testing.T) {
	service := &StorageService{}

	tests := []struct {
		name        string
		dataType    string
		filename    string
		wantContain []string
		wantErr     bool
	}{
		{
			name:        "valid input",
			dataType:    "Sales",
			filename:    "sales-april.csv",
			wantContain: []string{"uploads/sales/", "sales-april", ".csv"},
			wantErr:     false,
		},
		{
			name:        "kind with spaces becomes a slug",
			dataType:    "Payment Invoices",
			filename:    "payments.xlsx",
			wantContain: []string{"uploads/payment-invoices/", ".xlsx"},
			wantErr:     false,
		},
		{
			name:        "filename with special characters",
			dataType:    "Purchases",
			filename:    "export @2024!.csv",
			wantContain: []string{"uploads/purchases/", ".csv"},
			wantErr:     false,
		},
		{
			name:     "empty data type",
			dataType: "",
			filename: "sales.csv",
			wantErr:  true,
		},
		{
			name:     "empty filename",
			dataType: "Sales",
			filename: "",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := service.GenerateUploadKey(tt.dataType, tt.filename)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, key)
				return
			}

			assert.NoError(t, err)
			for _, contain := range tt.wantContain {
				assert.Contains(t, key, contain)
			}

			// Format: uploads/{kind-slug}/{timestamp}-{uniqueID}-{filename}
			parts := strings.Split(key, "/")
			require.Len(t, parts, 3)
			assert.Equal(t, "uploads", parts[0])
			assert.NotContains(t, parts[1], " ")
		})
	}
}

// TestGenerateUploadKey_Unique verifies two keys for the same file differ
func TestGenerateUploadKey_Unique(t *testing.T) {
	service := &StorageService{}

	first, err := service.GenerateUploadKey("Sales", "sales.csv")
	require.NoError(t, err)
	second, err := service.GenerateUploadKey("Sales", "sales.csv")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

// TestGeneratePresignedURL_Validation tests input validation without S3 access
func TestGeneratePresignedURL_Validation(t *testing.T) {
	service := &StorageService{bucket: "reconlens-uploads", region: "us-east-1"}

	_, err := service.GeneratePresignedURL("", "text/csv", 15)
	assert.Error(t, err)

	_, err = service.GeneratePresignedURL("uploads/sales/test.csv", "text/csv", 0)
	assert.Error(t, err)

	_, err = service.GeneratePresignedURL("uploads/sales/test.csv", "text/csv", -5)
	assert.Error(t, err)

	// No client configured.
	_, err = service.GeneratePresignedURL("uploads/sales/test.csv", "text/csv", 15)
	assert.Error(t, err)
}

// TestDownloadFile_Validation tests input validation without S3 access
func TestDownloadFile_Validation(t *testing.T) {
	service := &StorageService{bucket: "reconlens-uploads"}

	_, err := service.DownloadFile("")
	assert.Error(t, err)

	_, err = service.DownloadFile("uploads/sales/missing.csv")
	assert.Error(t, err, "nil client must not panic")
}

// TestDeleteFile_Validation tests input validation without S3 access
func TestDeleteFile_Validation(t *testing.T) {
	service := &StorageService{bucket: "reconlens-uploads"}

	err := service.DeleteFile("")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "key cannot be empty")
}
