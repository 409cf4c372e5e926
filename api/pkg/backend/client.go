package backend

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog/log"

	"github.com/Artox/open-build-service/api/pkg/config"
	"github.com/Artox/open-build-service/api/pkg/system"
)

//go:generate mockgen -source $GOFILE -destination client_mocks.go -package $GOPACKAGE

type Client interface {
	GetBuildResults(ctx context.Context, project string, opts *BuildResultOptions) (*ResultList, error)
	GetBuilddepInfo(ctx context.Context, project, repository, arch, pkg string) (*BuilddepInfo, error)
	GetJobHistory(ctx context.Context, project, repository, arch string, opts *JobHistoryOptions) (*JobHistoryList, error)
	GetSourceInfo(ctx context.Context, project string, packages []string) (*SourceInfoList, error)
	GetDirectory(ctx context.Context, project, pkg string) (*Directory, error)

	GetSourceFile(ctx context.Context, project, pkg, file string) ([]byte, error)
	PutSourceFile(ctx context.Context, project, pkg, file string, data []byte) error
	GetProjectMeta(ctx context.Context, project string) ([]byte, error)
	PutProjectMeta(ctx context.Context, project string, meta []byte) error
	GetProjectConfig(ctx context.Context, project string) ([]byte, error)
	PutProjectConfig(ctx context.Context, project string, prjconf []byte) error

	DeleteProject(ctx context.Context, project string, force bool) error
	SourceCommand(ctx context.Context, project, cmd string, params url.Values) (*Status, error)
	DeleteAttribute(ctx context.Context, project, pkg, attribute string) error
}

type BuildResultOptions struct {
	// View is status or summary
	View         string
	Codes        []string
	Archs        []string
	Repositories []string
	Package      string
	LastBuild    bool
}

type JobHistoryOptions struct {
	Limit    int
	Codes    []string
	Packages []string
}

// HTTPClient talks XML to the source/build backend
type HTTPClient struct {
	httpClient *retryablehttp.Client
	url        string
	token      string
}

var _ Client = &HTTPClient{}

func NewClient(cfg config.Backend) (*HTTPClient, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("backend URL is required")
	}
	if _, err := url.Parse(cfg.URL); err != nil {
		return nil, fmt.Errorf("invalid backend URL %s: %w", cfg.URL, err)
	}

	return &HTTPClient{
		httpClient: system.NewRetryClient(cfg.RetryMax, cfg.TLSSkipVerify, cfg.Timeout),
		url:        strings.TrimSuffix(cfg.URL, "/"),
		token:      cfg.Token,
	}, nil
}

func (c *HTTPClient) GetBuildResults(ctx context.Context, project string, opts *BuildResultOptions) (*ResultList, error) {
	query := url.Values{}
	if opts != nil {
		if opts.View != "" {
			query.Set("view", opts.View)
		}
		addAll(query, "code", opts.Codes)
		addAll(query, "arch", opts.Archs)
		addAll(query, "repository", opts.Repositories)
		if opts.Package != "" {
			query.Set("package", opts.Package)
		}
		if opts.LastBuild {
			query.Set("lastbuild", "1")
		}
	}

	var result ResultList
	if err := c.getXML(ctx, pathOf("build", project, "_result"), query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) GetBuilddepInfo(ctx context.Context, project, repository, arch, pkg string) (*BuilddepInfo, error) {
	query := url.Values{}
	if pkg != "" {
		query.Set("package", pkg)
	}

	raw, err := c.get(ctx, pathOf("build", project, repository, arch, "_builddepinfo"), query)
	if err != nil {
		return nil, err
	}
	var info BuilddepInfo
	if err := xml.Unmarshal(raw, &info); err != nil {
		return nil, fmt.Errorf("error decoding builddepinfo of %s/%s/%s: %w", project, repository, arch, err)
	}
	info.Raw = raw
	return &info, nil
}

func (c *HTTPClient) GetJobHistory(ctx context.Context, project, repository, arch string, opts *JobHistoryOptions) (*JobHistoryList, error) {
	query := url.Values{}
	if opts != nil {
		if opts.Limit > 0 {
			query.Set("limit", fmt.Sprint(opts.Limit))
		}
		addAll(query, "code", opts.Codes)
		addAll(query, "package", opts.Packages)
	}

	raw, err := c.get(ctx, pathOf("build", project, repository, arch, "_jobhistory"), query)
	if err != nil {
		return nil, err
	}
	var history JobHistoryList
	if err := xml.Unmarshal(raw, &history); err != nil {
		return nil, fmt.Errorf("error decoding job history of %s/%s/%s: %w", project, repository, arch, err)
	}
	history.Raw = raw
	return &history, nil
}

// GetSourceInfo returns the parsed source state of the given packages, or of all
// packages of the project when none are given
func (c *HTTPClient) GetSourceInfo(ctx context.Context, project string, packages []string) (*SourceInfoList, error) {
	query := url.Values{}
	query.Set("view", "info")
	query.Set("nofilename", "1")
	addAll(query, "package", packages)

	var list SourceInfoList
	if err := c.getXML(ctx, pathOf("source", project), query, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *HTTPClient) GetDirectory(ctx context.Context, project, pkg string) (*Directory, error) {
	var dir Directory
	if err := c.getXML(ctx, pathOf("source", project, pkg), nil, &dir); err != nil {
		return nil, err
	}
	return &dir, nil
}

func (c *HTTPClient) GetSourceFile(ctx context.Context, project, pkg, file string) ([]byte, error) {
	return c.get(ctx, pathOf("source", project, pkg, file), nil)
}

func (c *HTTPClient) PutSourceFile(ctx context.Context, project, pkg, file string, data []byte) error {
	_, err := c.do(ctx, http.MethodPut, pathOf("source", project, pkg, file), nil, data)
	return err
}

func (c *HTTPClient) GetProjectMeta(ctx context.Context, project string) ([]byte, error) {
	return c.get(ctx, pathOf("source", project, "_meta"), nil)
}

func (c *HTTPClient) PutProjectMeta(ctx context.Context, project string, meta []byte) error {
	_, err := c.do(ctx, http.MethodPut, pathOf("source", project, "_meta"), nil, meta)
	return err
}

func (c *HTTPClient) GetProjectConfig(ctx context.Context, project string) ([]byte, error) {
	return c.get(ctx, pathOf("source", project, "_config"), nil)
}

func (c *HTTPClient) PutProjectConfig(ctx context.Context, project string, prjconf []byte) error {
	_, err := c.do(ctx, http.MethodPut, pathOf("source", project, "_config"), nil, prjconf)
	return err
}

func (c *HTTPClient) DeleteProject(ctx context.Context, project string, force bool) error {
	query := url.Values{}
	if force {
		query.Set("force", "1")
	}
	_, err := c.do(ctx, http.MethodDelete, pathOf("source", project), query, nil)
	return err
}

// SourceCommand posts ?cmd=<cmd> to the project, e.g. unlock or createmaintenanceincident
func (c *HTTPClient) SourceCommand(ctx context.Context, project, cmd string, params url.Values) (*Status, error) {
	query := url.Values{}
	for k, v := range params {
		query[k] = v
	}
	query.Set("cmd", cmd)

	raw, err := c.do(ctx, http.MethodPost, pathOf("source", project), query, []byte{})
	if err != nil {
		return nil, err
	}

	status := &Status{Code: "ok"}
	if len(bytes.TrimSpace(raw)) == 0 {
		return status, nil
	}
	if err := xml.Unmarshal(raw, status); err != nil {
		return nil, fmt.Errorf("error decoding answer of %s on %s: %w", cmd, project, err)
	}
	return status, nil
}

func (c *HTTPClient) DeleteAttribute(ctx context.Context, project, pkg, attribute string) error {
	_, err := c.do(ctx, http.MethodDelete, pathOf("source", project, pkg, "_attribute", attribute), nil, nil)
	return err
}

func (c *HTTPClient) getXML(ctx context.Context, path string, query url.Values, v interface{}) error {
	raw, err := c.get(ctx, path, query)
	if err != nil {
		return err
	}
	if err := xml.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("error decoding %s: %w", path, err)
	}
	return nil
}

func (c *HTTPClient) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body []byte) ([]byte, error) {
	target := c.url + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reqBody interface{}
	if body != nil {
		reqBody = body
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/xml")
	if body != nil {
		req.Header.Set("Content-Type", "application/xml")
	}
	if c.token != "" {
		if err := system.AddAuthHeadersRetryable(req, c.token); err != nil {
			return nil, err
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling backend %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading backend answer for %s %s: %w", method, path, err)
	}

	if resp.StatusCode >= 400 {
		backendErr := newError(resp.StatusCode, raw)
		log.Ctx(ctx).Debug().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Str("summary", backendErr.Summary).
			Msg("backend call failed")
		return nil, backendErr
	}
	return raw, nil
}

// pathOf joins escaped path segments, skipping empty ones
func pathOf(segments ...string) string {
	var sb strings.Builder
	for _, s := range segments {
		if s == "" {
			continue
		}
		sb.WriteString("/")
		sb.WriteString(url.PathEscape(s))
	}
	return sb.String()
}

func addAll(query url.Values, key string, values []string) {
	for _, v := range values {
		query.Add(key, v)
	}
}
