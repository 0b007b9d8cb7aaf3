package netx

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPut(t *testing.T) {
	image := []byte("\x89PNG fake image bytes")

	t.Run("success 200 OK", func(t *testing.T) {
		var gotBody []byte
		var gotCT, gotMethod string
		var gotLen int64

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotCT = r.Header.Get("Content-Type")
			gotLen = r.ContentLength
			gotBody, _ = io.ReadAll(r.Body)
			w.WriteHeader(http.StatusOK)
		}))
		defer ts.Close()

		err := Put(context.Background(), ts.Client(), ts.URL+"/images/u1/x?X-Amz-Signature=abc", "image/png", bytes.NewReader(image), int64(len(image)))
		require.NoError(t, err)
		assert.Equal(t, http.MethodPut, gotMethod)
		assert.Equal(t, "image/png", gotCT)
		assert.Equal(t, int64(len(image)), gotLen)
		assert.Equal(t, image, gotBody)
	})

	t.Run("default content type", func(t *testing.T) {
		var gotCT string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotCT = r.Header.Get("Content-Type")
		}))
		defer ts.Close()

		require.NoError(t, Put(context.Background(), nil, ts.URL, "", bytes.NewReader(image), int64(len(image))))
		assert.Equal(t, DefaultContentType, gotCT)
	})

	t.Run("non-200 -> error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte("SignatureDoesNotMatch"))
		}))
		defer ts.Close()

		err := Put(context.Background(), ts.Client(), ts.URL, "", bytes.NewReader(image), int64(len(image)))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "upload failed: 403")
		assert.Contains(t, err.Error(), "SignatureDoesNotMatch")
	})

	t.Run("network error", func(t *testing.T) {
		ts := httptest.NewServer(http.NotFoundHandler())
		ts.Close()

		err := Put(context.Background(), nil, ts.URL, "", bytes.NewReader(image), int64(len(image)))
		require.Error(t, err)
		assert.False(t, strings.Contains(err.Error(), "upload failed"))
	})

	t.Run("context canceled", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer ts.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		err := Put(ctx, ts.Client(), ts.URL, "", bytes.NewReader(image), int64(len(image)))
		require.Error(t, err)
	})
}

func TestGet(t *testing.T) {
	t.Run("copies body", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			_, _ = w.Write([]byte("image-bytes"))
		}))
		defer ts.Close()

		var buf bytes.Buffer
		n, err := Get(context.Background(), ts.Client(), ts.URL, &buf)
		require.NoError(t, err)
		assert.Equal(t, int64(len("image-bytes")), n)
		assert.Equal(t, "image-bytes", buf.String())
	})

	t.Run("not found", func(t *testing.T) {
		ts := httptest.NewServer(http.NotFoundHandler())
		defer ts.Close()

		var buf bytes.Buffer
		_, err := Get(context.Background(), ts.Client(), ts.URL, &buf)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download failed: 404")
		assert.Zero(t, buf.Len())
	})
}
