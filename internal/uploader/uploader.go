package uploader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"pancake/internal/config"
)

// Result is the decoded body of a successful upload. The "varients" key is
// spelled exactly as the service reports it.
type Result struct {
	Success  bool     `json:"success"`
	ID       string   `json:"id"`
	Uploaded string   `json:"uploaded"`
	Variants []string `json:"varients"`
}

// Client uploads single files to Cloudflare Images.
type Client struct {
	baseURL string
	creds   config.Credentials
	http    *http.Client
	log     *slog.Logger
}

func New(baseURL string, creds config.Credentials, log *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		creds:   creds,
		http:    http.DefaultClient,
		log:     log,
	}
}

// Upload posts the file at path to the account's images endpoint and returns
// the decoded response body, or nil when the attempt failed for any reason.
// Failures never surface as errors; each one is logged and the caller records
// the nil result. No retry is attempted.
func (c *Client) Upload(ctx context.Context, path string) *Result {
	body, contentType, err := c.buildForm(path)
	if err != nil {
		c.log.Error("upload failed: reading file", "path", path, "error", err)
		return nil
	}

	url := fmt.Sprintf("%s/client/v4/accounts/%s/images/v1", c.baseURL, c.creds.AccountID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		c.log.Error("upload failed: building request", "path", path, "error", err)
		return nil
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+c.creds.Token)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("upload failed: transport", "path", path, "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Error("upload failed", "path", path, "status", resp.StatusCode)
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error("upload failed: reading response", "path", path, "error", err)
		return nil
	}

	var result Result
	if err := json.Unmarshal(raw, &result); err != nil {
		c.log.Error("upload failed: decoding response", "path", path, "error", err, "body", string(raw))
		return nil
	}
	if !result.Success {
		c.log.Error("upload rejected by service", "path", path, "body", string(raw))
		return nil
	}

	return &result
}

// buildForm assembles the multipart body. The part filename is the file's
// stem, matching what the service indexes uploads by.
func (c *Client) buildForm(path string) (*bytes.Buffer, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	buf := new(bytes.Buffer)
	w := multipart.NewWriter(buf)

	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	part, err := w.CreateFormFile("file", stem)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return buf, w.FormDataContentType(), nil
}
