// Package media uploads image bytes to a third-party host and returns the
// public URL. The service stores only the URL, never the bytes.
package media

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

const maxImageBytes = 8 << 20

type Client struct {
	uploadURL string
	apiKey    string
	hc        *http.Client
}

func New(uploadURL, apiKey string) *Client {
	return &Client{
		uploadURL: uploadURL,
		apiKey:    apiKey,
		hc:        &http.Client{Timeout: 30 * time.Second},
	}
}

type uploadResponse struct {
	Data struct {
		URL string `json:"url"`
	} `json:"data"`
	Success bool `json:"success"`
}

func (c *Client) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		part, err := mw.CreateFormFile("image", filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, io.LimitReader(r, maxImageBytes)); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL+"?key="+c.apiKey, pr)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.hc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("media host: %s: %s", resp.Status, msg)
	}

	var out uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if !out.Success || out.Data.URL == "" {
		return "", fmt.Errorf("media host: upload rejected")
	}
	return out.Data.URL, nil
}
