package filestore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"path"
	"time"
)

// File references an uploaded document in remote storage.
type File struct {
	ID  string `json:"public_id"`
	URL string `json:"secure_url"`
}

// Client exposes remote file storage operations.
type Client interface {
	Upload(ctx context.Context, folder, name string, content []byte) (*File, error)
}

// HTTPClient implements Client via the storage provider's upload API.
type HTTPClient struct {
	baseURL    *url.URL
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPClient creates an HTTP file store client with default timeout.
func NewHTTPClient(baseURL, apiKey string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse file store url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("file store url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		apiKey:  apiKey,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// Upload stores the content under folder/name and returns its remote reference.
func (c *HTTPClient) Upload(ctx context.Context, folder, name string, content []byte) (*File, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writer.WriteField("folder", folder); err != nil {
		return nil, err
	}
	part, err := writer.CreateFormFile("file", name)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(content); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	target := *c.baseURL
	target.Path = path.Join(target.Path, "/upload")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target.String(), &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		data, _ := io.ReadAll(resp.Body)
		c.logger.Error("file upload failed", slog.Int("status", resp.StatusCode), slog.String("body", string(data)))
		return nil, fmt.Errorf("file store error: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	if file.ID == "" || file.URL == "" {
		return nil, fmt.Errorf("file store returned incomplete reference")
	}
	return &file, nil
}
