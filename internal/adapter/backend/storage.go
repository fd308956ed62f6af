package backend

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Upload stores r at path in the evidence bucket without overwriting.
// bearer is the caller's access token; the service key is used when empty.
func (c *Client) Upload(ctx context.Context, bearer, path, contentType string, size int64, r io.Reader) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/storage/v1/object/"+c.objectPath(path), r)
	if err != nil {
		return err
	}
	if bearer == "" {
		bearer = c.serviceKey
	}
	req.Header.Set("Authorization", "Bearer "+bearer)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "false")
	req.Header.Set("cache-control", "max-age=3600")
	if size >= 0 {
		req.ContentLength = size
	}

	return c.doWith(c.uploadClient, req, "upload", nil)
}

// PublicURL returns the public download URL for an object in the evidence bucket.
func (c *Client) PublicURL(path string) string {
	return c.baseURL + "/storage/v1/object/public/" + c.objectPath(path)
}

func (c *Client) objectPath(path string) string {
	segments := strings.Split(strings.TrimLeft(path, "/"), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return url.PathEscape(c.bucket) + "/" + strings.Join(segments, "/")
}
