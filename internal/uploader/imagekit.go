package uploader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

//go:generate mockgen -source=imagekit.go -destination=mocks/mock_uploader.go -package=mocks

// Uploader stores binary image assets on an external media host and
// returns a public retrieval URL.
type Uploader interface {
	Upload(fileName string, data []byte) (string, error)
}

type imageKitUploader struct {
	privateKey string
	uploadURL  string
	folder     string
	client     *http.Client
}

// NewImageKitUploader creates an uploader backed by the ImageKit upload
// REST API, authenticated with the account's private key.
func NewImageKitUploader(privateKey, uploadURL, folder string) Uploader {
	return &imageKitUploader{
		privateKey: privateKey,
		uploadURL:  uploadURL,
		folder:     folder,
		client:     &http.Client{Timeout: 30 * time.Second},
	}
}

type uploadResponse struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}

// Upload pushes raw file bytes to ImageKit and returns the hosted URL.
func (u *imageKitUploader) Upload(fileName string, data []byte) (string, error) {
	if u.privateKey == "" {
		return "", fmt.Errorf("media uploader is not configured")
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("failed to write file part: %w", err)
	}
	if err := writer.WriteField("fileName", fileName); err != nil {
		return "", fmt.Errorf("failed to write fileName field: %w", err)
	}
	if err := writer.WriteField("folder", u.folder); err != nil {
		return "", fmt.Errorf("failed to write folder field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize upload form: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, u.uploadURL, &body)
	if err != nil {
		return "", fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	// ImageKit authenticates with the private key as basic-auth username.
	req.SetBasicAuth(u.privateKey, "")

	resp, err := u.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read upload response: %w", err)
	}

	var parsed uploadResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("upload rejected with status %d: %s", resp.StatusCode, parsed.Message)
	}
	if parsed.URL == "" {
		return "", fmt.Errorf("upload response missing url")
	}

	return parsed.URL, nil
}
