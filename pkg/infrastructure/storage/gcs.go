package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
)

// StorageAdapter stores registry snapshot backups on Google Cloud Storage.
type StorageAdapter struct {
	Client *storage.Client
}

// Write stores an object in full. JSON snapshots are tagged with their
// content type so backups stay inspectable from the console.
func (a *StorageAdapter) Write(ctx context.Context, bucketName, objectName string, data []byte) error {
	wc := a.Client.Bucket(bucketName).Object(objectName).NewWriter(ctx)
	if strings.HasSuffix(objectName, ".json") {
		wc.ContentType = "application/json"
	}
	if _, err := wc.Write(data); err != nil {
		_ = wc.Close()
		return fmt.Errorf("write gs://%s/%s: %w", bucketName, objectName, err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("finalize gs://%s/%s: %w", bucketName, objectName, err)
	}
	return nil
}

// Read fetches an object in full. The migrator reads backup snapshots through
// this when restoring a registry.
func (a *StorageAdapter) Read(ctx context.Context, bucketName, objectName string) ([]byte, error) {
	rc, err := a.Client.Bucket(bucketName).Object(objectName).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("open gs://%s/%s: %w", bucketName, objectName, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read gs://%s/%s: %w", bucketName, objectName, err)
	}
	return data, nil
}
