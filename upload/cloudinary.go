package upload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"symposium-portal/config"
)

// ErrNotConfigured means the hosting credentials are absent from the
// environment, uploads cannot proceed until they are set.
var ErrNotConfigured = errors.New("file hosting credentials are not configured")

// FileError rejects a file before any network call (wrong type, too
// large). It maps to a client error rather than a hosting failure.
type FileError struct {
	Reason string
}

func (e *FileError) Error() string {
	return e.Reason
}

const (
	defaultBaseURL = "https://api.cloudinary.com/v1_1"

	paymentFolder = "tech_blitz_2k26/payments"
	paperFolder   = "tech_blitz_2k26/papers"

	// MaxPaperSize caps paper documents at 10 MB.
	MaxPaperSize = 10 << 20
)

var allowedPaperExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// Uploader posts files to the hosting service's unsigned upload
// endpoint and returns the public URL of the stored file.
type Uploader struct {
	BaseURL   string
	CloudName string
	Preset    string
	Client    *http.Client
}

// NewFromEnv builds an uploader from the environment. Returns
// ErrNotConfigured when either credential is missing.
func NewFromEnv() (*Uploader, error) {
	cloudName, err := config.GetSecret(config.CloudinaryCloudKey)
	if err != nil {
		return nil, ErrNotConfigured
	}
	preset, err := config.GetSecret(config.CloudinaryPresetKey)
	if err != nil {
		return nil, ErrNotConfigured
	}

	return &Uploader{
		BaseURL:   defaultBaseURL,
		CloudName: cloudName,
		Preset:    preset,
		Client:    &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// UploadPaymentScreenshot stores a payment-proof image and returns its
// public URL.
func (u *Uploader) UploadPaymentScreenshot(fileName string, file io.Reader) (string, error) {
	return u.upload(fileName, file, "image", paymentFolder)
}

// UploadPaperFile stores a paper document. Only PDF and Word files up
// to 10 MB are accepted. The returned URL carries a force-download flag
// so the link resolves to a direct download instead of inline preview.
func (u *Uploader) UploadPaperFile(fileName string, size int64, file io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	if !allowedPaperExtensions[ext] {
		return "", &FileError{Reason: "only PDF, DOC and DOCX files are accepted"}
	}
	if size > MaxPaperSize {
		return "", &FileError{Reason: "paper file must not exceed 10 MB"}
	}

	url, err := u.upload(fileName, file, "auto", paperFolder)
	if err != nil {
		return "", err
	}
	return forceDownloadURL(url), nil
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (u *Uploader) upload(fileName string, file io.Reader, resourceType string, folder string) (string, error) {
	if u.CloudName == "" || u.Preset == "" {
		return "", ErrNotConfigured
	}

	body, contentType, err := buildForm(fileName, file, u.Preset, folder)
	if err != nil {
		return "", fmt.Errorf("failed to prepare upload: %v", err)
	}

	uploadURL := fmt.Sprintf("%s/%s/%s/upload", u.BaseURL, u.CloudName, resourceType)
	resp, err := u.client().Post(uploadURL, contentType, body)
	if err != nil {
		return "", fmt.Errorf("upload request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return "", fmt.Errorf("unreadable response from hosting service: %v", readErr)
	}

	var parsed uploadResponse
	jsonErr := json.Unmarshal(raw, &parsed)

	// On failure the status is authoritative, the hosting service's
	// error message is a bonus: a gateway may answer with plain HTML.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if jsonErr == nil && parsed.Error.Message != "" {
			return "", fmt.Errorf("upload failed: %v", parsed.Error.Message)
		}
		return "", fmt.Errorf("upload failed: %v", resp.Status)
	}

	if jsonErr != nil {
		return "", fmt.Errorf("unreadable response from hosting service: %v", jsonErr)
	}

	return parsed.SecureURL, nil
}

func (u *Uploader) client() *http.Client {
	if u.Client != nil {
		return u.Client
	}
	return http.DefaultClient
}

func buildForm(fileName string, file io.Reader, preset string, folder string) (io.Reader, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, "", err
	}
	if err := writer.WriteField("upload_preset", preset); err != nil {
		return nil, "", err
	}
	if err := writer.WriteField("folder", folder); err != nil {
		return nil, "", err
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return body, writer.FormDataContentType(), nil
}

// forceDownloadURL inserts the fl_attachment delivery flag after the
// upload segment of a hosted URL.
func forceDownloadURL(url string) string {
	return strings.Replace(url, "/upload/", "/upload/fl_attachment/", 1)
}
