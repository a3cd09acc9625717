package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	"pagecaster/domain/repository"

	"github.com/google/go-querystring/query"
)

// Client talks to the Facebook Graph API. It holds no credential state;
// every call carries the access token it was given.
type Client struct {
	baseURL string
	version string
	http    *http.Client
}

// NewClient creates a Graph API client. httpClient may be nil, in which case
// http.DefaultClient is used.
func NewClient(baseURL, version string, httpClient *http.Client) repository.IGraph {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		version: version,
		http:    httpClient,
	}
}

// APIError carries a non-2xx Graph response. Raw is the provider error
// payload verbatim; it is passed through to callers unmodified.
type APIError struct {
	StatusCode int
	Raw        json.RawMessage
}

func (e *APIError) Error() string {
	return fmt.Sprintf("graph api error (status %d): %s", e.StatusCode, string(e.Raw))
}

func (c *Client) endpoint(path string) string {
	return fmt.Sprintf("%s/%s/%s", c.baseURL, c.version, path)
}

// encode turns a tagged params struct into form values via go-querystring.
func encode(params interface{}) (url.Values, error) {
	vals, err := query.Values(params)
	if err != nil {
		return nil, fmt.Errorf("encode graph params: %w", err)
	}
	return vals, nil
}

func (c *Client) getJSON(ctx context.Context, path string, vals url.Values, out interface{}) error {
	u := c.endpoint(path)
	if len(vals) > 0 {
		u = u + "?" + vals.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) postForm(ctx context.Context, path string, vals url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path), strings.NewReader(vals.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, out)
}

func (c *Client) deleteJSON(ctx context.Context, path string, vals url.Values, out interface{}) error {
	u := c.endpoint(path)
	if len(vals) > 0 {
		u = u + "?" + vals.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// postMultipart streams a single file part plus form fields without buffering
// the payload in memory.
func (c *Client) postMultipart(ctx context.Context, path string, fields url.Values, fileField, filename, mime string, data io.Reader, out interface{}) error {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		var err error
		defer func() { pw.CloseWithError(err) }()
		for k, vs := range fields {
			for _, v := range vs {
				if err = mw.WriteField(k, v); err != nil {
					return
				}
			}
		}
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, fileField, filename))
		if mime != "" {
			hdr.Set("Content-Type", mime)
		}
		var part io.Writer
		if part, err = mw.CreatePart(hdr); err != nil {
			return
		}
		if _, err = io.Copy(part, data); err != nil {
			return
		}
		err = mw.Close()
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path), pr)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("graph request failed: %w", err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("graph response read failed: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Raw: json.RawMessage(body)}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("graph response parse failed: %w", err)
	}
	return nil
}
