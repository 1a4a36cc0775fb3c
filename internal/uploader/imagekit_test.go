package uploader

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestUploadSendsMultipartAndReturnsURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, _, ok := r.BasicAuth()
		if !ok || username != "private-key" {
			t.Errorf("expected private key as basic-auth username")
		}

		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("failed to parse multipart form: %v", err)
		}
		if got := r.FormValue("fileName"); got != "keyboard.png" {
			t.Errorf("expected fileName keyboard.png, got %q", got)
		}
		if got := r.FormValue("folder"); got != "/products" {
			t.Errorf("expected folder /products, got %q", got)
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("missing file part: %v", err)
		}
		defer file.Close()
		data, _ := io.ReadAll(file)
		if string(data) != "image-bytes" {
			t.Errorf("unexpected file contents: %q", data)
		}

		json.NewEncoder(w).Encode(map[string]string{"url": "https://ik.example.com/keyboard.png"})
	}))
	defer server.Close()

	up := NewImageKitUploader("private-key", server.URL, "/products")

	url, err := up.Upload("keyboard.png", []byte("image-bytes"))
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}
	if url != "https://ik.example.com/keyboard.png" {
		t.Errorf("unexpected URL: %q", url)
	}
}

func TestUploadSurfacesAPIErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"message": "Your account cannot be authenticated."})
	}))
	defer server.Close()

	up := NewImageKitUploader("bad-key", server.URL, "/")

	if _, err := up.Upload("keyboard.png", []byte("image-bytes")); err == nil {
		t.Error("expected an error for a rejected upload")
	}
}

func TestUploadWithoutCredentials(t *testing.T) {
	up := NewImageKitUploader("", "https://upload.imagekit.io/api/v1/files/upload", "/")

	if _, err := up.Upload("keyboard.png", []byte("image-bytes")); err == nil {
		t.Error("expected an error when the uploader is not configured")
	}
}
