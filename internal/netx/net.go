// Package netx moves image bytes to and from presigned object-storage URLs.
package netx

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// DefaultContentType is used when the caller does not know the media type.
const DefaultContentType = "application/octet-stream"

// Put uploads body to a presigned PUT URL. Any status other than 200 is
// reported together with the first KiB of the response body.
func Put(ctx context.Context, client *http.Client, url, contentType string, body io.Reader, size int64) error {
	if client == nil {
		client = http.DefaultClient
	}
	if contentType == "" {
		contentType = DefaultContentType
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, body)
	if err != nil {
		return err
	}
	req.ContentLength = size
	req.Header.Set("Content-Type", contentType)

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError("upload", resp)
	}
	return nil
}

// Get downloads a presigned GET URL into w and returns the number of bytes
// copied.
func Get(ctx context.Context, client *http.Client, url string, w io.Writer) (int64, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, statusError("download", resp)
	}
	return io.Copy(w, resp.Body)
}

func statusError(op string, resp *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	return fmt.Errorf("%s failed: %s; body: %s", op, resp.Status, string(b))
}
