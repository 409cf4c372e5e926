package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/Artox/open-build-service/api/pkg/config"
	"github.com/Artox/open-build-service/api/pkg/system"
	"github.com/Artox/open-build-service/api/pkg/types"
)

//go:generate mockgen -source $GOFILE -destination client_mocks.go -package $GOPACKAGE

type Client interface {
	ListProjects(ctx context.Context, showAll bool) (*types.ProjectIndex, error)
	GetProject(ctx context.Context, name string) (*types.ProjectInfo, error)
	ProjectStatus(ctx context.Context, name string, filter types.StatusFilter) (*types.StatusResult, error)

	ListRepositories(ctx context.Context, name string) (*types.RepositoriesResult, error)
	RepositoryState(ctx context.Context, name, repository string) (*types.RepositoryState, error)
	RebuildTime(ctx context.Context, name, repository, arch string) (*types.RebuildTimeResult, error)
}

// ObsClient talks to the webui api on behalf of the user in the auth proxy header
type ObsClient struct {
	httpClient *retryablehttp.Client
	options    system.ClientOptions
}

const (
	DefaultURL = "http://localhost:80"
)

func NewClientFromEnv() (*ObsClient, error) {
	cfg, err := config.LoadCliConfig()
	if err != nil {
		return nil, err
	}

	return NewClient(cfg.URL, cfg.User, cfg.UserHeader, cfg.TLSSkipVerify)
}

func NewClient(url, user, userHeader string, tlsSkipVerify bool) (*ObsClient, error) {
	if url == "" {
		url = DefaultURL
	}
	if user != "" && userHeader == "" {
		return nil, fmt.Errorf("user header is required when a user is set, set OBS_USER_HEADER")
	}

	url = strings.TrimSuffix(url, "/")
	if !strings.HasSuffix(url, system.APISubPath) {
		url = url + system.APISubPath
	}

	return &ObsClient{
		httpClient: system.NewRetryClient(3, tlsSkipVerify, 30*time.Second),
		options: system.ClientOptions{
			Host:       url,
			User:       user,
			UserHeader: userHeader,
		},
	}, nil
}

func (c *ObsClient) makeRequest(ctx context.Context, method, path string, body io.Reader, v interface{}) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, method, system.URL(c.options, path), body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if c.options.User != "" {
		req.Header.Set(c.options.UserHeader, c.options.User)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bts, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("status code %d", resp.StatusCode)
		}
		return fmt.Errorf("status code %d (%s)", resp.StatusCode, strings.TrimSpace(string(bts)))
	}

	if v != nil {
		return json.NewDecoder(resp.Body).Decode(v)
	}

	return nil
}
