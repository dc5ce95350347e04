package woo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// CreateMediaFromURL registers an external image URL as a media item.
func (c *Client) CreateMediaFromURL(ctx context.Context, imageURL, alt, title string) (*Media, error) {
	body := map[string]string{"source_url": imageURL}
	if alt != "" {
		body["alt_text"] = alt
	}
	if title != "" {
		body["title"] = title
	}

	var media Media
	if err := c.doWP(ctx, http.MethodPost, "/media", nil, body, &media); err != nil {
		return nil, err
	}
	return &media, nil
}

// CreateMediaFromFile uploads a local image file to the WordPress media
// library. Alt text and title are applied with a follow-up update because the
// upload request body carries only the raw file.
func (c *Client) CreateMediaFromFile(ctx context.Context, filePath, alt, title string) (*Media, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	filename := filepath.Base(filePath)
	mimeType := mime.TypeByExtension(filepath.Ext(filename))
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, fmt.Errorf("file is not a valid image: %s", filePath)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.StoreURL+wpAPIPath+"/media", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setAuth(req, true)
	req.Header.Set("Content-Type", mimeType)
	req.Header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API request failed: %d - %s", resp.StatusCode, string(respBody))
	}

	var media Media
	if err := json.NewDecoder(resp.Body).Decode(&media); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if alt != "" || title != "" {
		if updated, err := c.UpdateMedia(ctx, media.ID, alt, title); err == nil {
			return updated, nil
		} else if c.logger != nil {
			c.logger.Warn("Could not set media metadata for %d: %v", media.ID, err)
		}
	}
	return &media, nil
}

// UpdateMedia updates the alt text and/or title of an existing media item.
func (c *Client) UpdateMedia(ctx context.Context, mediaID int, alt, title string) (*Media, error) {
	body := map[string]string{}
	if alt != "" {
		body["alt_text"] = alt
	}
	if title != "" {
		body["title"] = title
	}

	var media Media
	if err := c.doWP(ctx, http.MethodPost, fmt.Sprintf("/media/%d", mediaID), nil, body, &media); err != nil {
		return nil, err
	}
	return &media, nil
}

func (c *Client) GetMedia(ctx context.Context, mediaID int) (*Media, error) {
	var media Media
	if err := c.doWP(ctx, http.MethodGet, fmt.Sprintf("/media/%d", mediaID), nil, nil, &media); err != nil {
		return nil, err
	}
	return &media, nil
}

func (c *Client) DeleteMedia(ctx context.Context, mediaID int, force bool) error {
	q := url.Values{"force": {strconv.FormatBool(force)}}
	return c.doWP(ctx, http.MethodDelete, fmt.Sprintf("/media/%d", mediaID), q, nil, nil)
}

// UploadMedia stores an image given either an absolute URL or a local file
// path and returns the remote media id.
func (c *Client) UploadMedia(ctx context.Context, source, alt, title string) (int, error) {
	var media *Media
	var err error
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		media, err = c.CreateMediaFromURL(ctx, source, alt, title)
	} else {
		media, err = c.CreateMediaFromFile(ctx, source, alt, title)
	}
	if err != nil {
		return 0, err
	}
	return media.ID, nil
}
