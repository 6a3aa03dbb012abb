package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fadilmartias/interview-assistant/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

type StorageServiceInterface interface {
	StoreResume(ctx context.Context, content []byte, filename, candidateName string) (string, error)
}

// StorageService pushes original resume files to the object-storage API and
// returns the durable URL the dashboard links to.
type StorageService struct {
	client  *resty.Client
	baseURL string
	folder  string
}

func NewStorageService() *StorageService {
	storageConfig := config.LoadStorageConfig()
	client := resty.New().
		SetTimeout(30 * time.Second).
		SetHeader("Authorization", "Bearer "+storageConfig.APIKey)
	return &StorageService{
		client:  client,
		baseURL: storageConfig.BaseURL,
		folder:  storageConfig.Folder,
	}
}

func (s *StorageService) StoreResume(ctx context.Context, content []byte, filename, candidateName string) (string, error) {
	if s.baseURL == "" {
		return "", fmt.Errorf("storage base URL not configured")
	}

	publicID := buildPublicID(filename, candidateName)

	resp, err := s.client.R().
		SetContext(ctx).
		SetFileReader("file", filename, bytes.NewReader(content)).
		SetFormData(map[string]string{
			"public_id":     publicID,
			"folder":        s.folder,
			"resource_type": "raw",
		}).
		Post(s.baseURL + "/upload")
	if err != nil {
		return "", fmt.Errorf("resume upload failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("resume upload failed: status %d", resp.StatusCode())
	}

	url := gjson.GetBytes(resp.Body(), "secure_url").String()
	if url == "" {
		return "", fmt.Errorf("resume upload failed: no secure_url in response")
	}
	return url, nil
}

func buildPublicID(filename, candidateName string) string {
	clean := func(s string) string {
		s = strings.ToLower(strings.TrimSpace(s))
		s = strings.ReplaceAll(s, ".", "_")
		return strings.ReplaceAll(s, " ", "_")
	}
	if candidateName == "" {
		candidateName = "candidate"
	}
	return fmt.Sprintf("%s_%s_%d", clean(candidateName), clean(filename), time.Now().Unix())
}
