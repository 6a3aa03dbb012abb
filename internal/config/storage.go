package config

import (
	"os"
	"sync"
)

type StorageConfig struct {
	APIKey  string
	BaseURL string
	Folder  string
}

var (
	storageConfig *StorageConfig
	storageOnce   sync.Once
)

func LoadStorageConfig() *StorageConfig {
	storageOnce.Do(func() {
		folder := os.Getenv("STORAGE_FOLDER")
		if folder == "" {
			folder = "interview_resumes"
		}
		storageConfig = &StorageConfig{
			APIKey:  os.Getenv("STORAGE_API_KEY"),
			BaseURL: os.Getenv("STORAGE_BASE_URL"),
			Folder:  folder,
		}
	})
	return storageConfig
}
