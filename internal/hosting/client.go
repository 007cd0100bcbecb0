// Package hosting wraps the third-party video hosting REST API. Every
// call carries a server-held API key; the key never appears in anything
// returned to a caller.
package hosting

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	apperrors "github.com/vidvault/vidvault/backend/internal/errors"
)

// Client is an HTTP client for the hosting API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     Logger
}

// NewClient creates a new hosting API client. Timeouts are left to the
// transport defaults; a failed call fails once, immediately.
func NewClient(cfg *Config, logger Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// GetUploadServer fetches a fresh ephemeral upload endpoint. The hosting
// API requires one per upload.
func (c *Client) GetUploadServer(ctx context.Context) (string, error) {
	env, err := c.get(ctx, "upload/server", nil)
	if err != nil {
		return "", err
	}
	return env.UploadServerURL()
}

// ListFiles fetches the hosted file list
func (c *Client) ListFiles(ctx context.Context) (*Envelope, error) {
	return c.get(ctx, "file/list", nil)
}

// IngestRemoteURL asks the hosting API to fetch the given URL
// server-side
func (c *Client) IngestRemoteURL(ctx context.Context, rawURL string) (*Envelope, error) {
	if rawURL == "" {
		return nil, apperrors.NewValidationError("url", apperrors.ErrMsgURLMissing)
	}
	return c.get(ctx, "upload/url", url.Values{"url": []string{rawURL}})
}

// DeleteFile removes a hosted file by its file code
func (c *Client) DeleteFile(ctx context.Context, fileCode string) (*Envelope, error) {
	return c.get(ctx, "file/delete", url.Values{"del_code": []string{fileCode}})
}

// UploadFile performs the two-step hosted upload: obtain an upload
// server, then submit the multipart payload to it. progress may be nil.
func (c *Client) UploadFile(ctx context.Context, reader io.Reader, filename, title, description string, size int64, progress ProgressFunc) (*Envelope, error) {
	uploadURL, err := c.GetUploadServer(ctx)
	if err != nil {
		return nil, err
	}

	body := reader
	if progress != nil {
		body = &countingReader{reader: reader, total: size, notify: progress}
	}

	pr, pw := io.Pipe()
	form := multipart.NewWriter(pw)

	go func() {
		defer pw.Close()
		if err := form.WriteField("key", c.apiKey); err != nil {
			pw.CloseWithError(err)
			return
		}
		if title != "" {
			if err := form.WriteField("file_title", title); err != nil {
				pw.CloseWithError(err)
				return
			}
		}
		if description != "" {
			if err := form.WriteField("file_descr", description); err != nil {
				pw.CloseWithError(err)
				return
			}
		}
		part, err := form.CreateFormFile("file", filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, body); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(form.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, pr)
	if err != nil {
		return nil, apperrors.NewUpstreamError("failed to build upload request", 0, err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
			return nil, apperrors.NewCancelledError("hosted upload")
		}
		return nil, apperrors.NewUpstreamError("upload request failed", 0, err)
	}
	defer resp.Body.Close()

	return decodeEnvelope(resp)
}

// get performs a GET against the API with the key attached
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (*Envelope, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, params.Encode()), nil)
	if err != nil {
		return nil, apperrors.NewUpstreamError("failed to build request", 0, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
			return nil, apperrors.NewCancelledError(endpoint)
		}
		return nil, apperrors.NewUpstreamError("hosting API request failed", 0, err)
	}
	defer resp.Body.Close()

	return decodeEnvelope(resp)
}

// decodeEnvelope reads and validates an API response. Any status other
// than 200 in the envelope is an upstream failure, surfaced with the
// upstream message when one is present.
func decodeEnvelope(resp *http.Response) (*Envelope, error) {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewUpstreamError("failed to read hosting API response", resp.StatusCode, err)
	}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, apperrors.NewUpstreamError("invalid hosting API response", resp.StatusCode, err)
	}
	env.Raw = raw

	if env.Status != 200 {
		msg := env.Msg
		if msg == "" {
			msg = "hosting API request failed"
		}
		return nil, apperrors.NewUpstreamError(msg, env.Status, nil)
	}

	return &env, nil
}

// countingReader reports transferred byte counts as the upload drains
// the source reader
type countingReader struct {
	reader      io.Reader
	total       int64
	transferred int64
	notify      ProgressFunc
}

func (r *countingReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	if n > 0 {
		r.transferred += int64(n)
		r.notify(r.transferred, r.total)
	}
	return n, err
}
