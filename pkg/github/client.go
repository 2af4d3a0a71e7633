package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const DefaultBaseURL = "https://api.github.com"

var ErrInvalidBaseURL = errors.New("invalid github base url")

// Client sends requests to the REST API and hands the responses to the
// decoding functions. It never retries and never follows pagination.
type Client struct {
	rc *resty.Client
}

type ClientOptions struct {
	// BaseURL defaults to DefaultBaseURL. For Enterprise Server use
	// https://HOST/api/v3.
	BaseURL    string
	Token      string
	APIVersion string
	// HTTPClient replaces the underlying http.Client, mostly for tests.
	HTTPClient *http.Client
}

func New(o *ClientOptions) *Client {
	var rc *resty.Client
	if o.HTTPClient != nil {
		rc = resty.NewWithClient(o.HTTPClient)
	} else {
		rc = resty.New()
	}

	baseURL := o.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	version := o.APIVersion
	if version == "" {
		version = VersionHeaderValue
	}

	rc.SetHostURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader(AcceptHeader, AcceptHeaderValue).
		SetHeader(VersionHeader, version)
	if o.Token != "" {
		rc.SetAuthToken(o.Token)
	}

	return &Client{rc: rc}
}

type clientConfiguration struct {
	baseURL    string
	token      string
	apiVersion string
}

func getDefaultConfiguration() (*clientConfiguration, error) {
	baseURL := viper.GetString("github.base_url")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errors.Wrapf(ErrInvalidBaseURL, "%q", baseURL)
	}

	return &clientConfiguration{
		baseURL:    baseURL,
		token:      viper.GetString("github.token"),
		apiVersion: viper.GetString("github.api_version"),
	}, nil
}

// DefaultClient builds a Client from the loaded configuration. A missing
// token is allowed; requests are then anonymous.
func DefaultClient() (*Client, error) {
	config, err := getDefaultConfiguration()
	if err != nil {
		return nil, err
	}

	return New(&ClientOptions{
		BaseURL:    config.baseURL,
		Token:      config.token,
		APIVersion: config.apiVersion,
	}), nil
}

// Do sends one request and returns the completed exchange whatever its
// status. The error is only set when no response was received.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values) (*RawResponse, error) {
	return c.do(ctx, method, path, query, "")
}

// DoAccept is Do with the Accept header replaced by mediaType.
func (c *Client) DoAccept(ctx context.Context, method, path string, query url.Values, mediaType string) (*RawResponse, error) {
	return c.do(ctx, method, path, query, mediaType)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, accept string) (*RawResponse, error) {
	req := c.rc.R().SetContext(ctx)
	if query != nil {
		req.SetQueryParamsFromValues(query)
	}
	if accept != "" {
		req.SetHeader(AcceptHeader, accept)
	}

	r, err := req.Execute(method, path)
	if err != nil {
		return nil, errors.Wrapf(err, "github: %s %s", method, path)
	}

	log.WithFields(log.Fields{
		"method": method,
		"path":   path,
		"status": r.StatusCode(),
	}).Debug("github response")

	return RawResponseFromResty(r), nil
}

// Fetch GETs path and decodes the body into a *T.
func Fetch[T any, P shapePtr[T]](ctx context.Context, c *Client, path string, query url.Values) (Result, error) {
	raw, err := c.Do(ctx, http.MethodGet, path, query)
	if err != nil {
		return nil, err
	}

	return logDecodeError(FromRawResponse[T, P](raw))
}

// FetchList GETs path and decodes the array body into a []*T.
func FetchList[T any, P shapePtr[T]](ctx context.Context, c *Client, path string, query url.Values) (Result, error) {
	raw, err := c.Do(ctx, http.MethodGet, path, query)
	if err != nil {
		return nil, err
	}

	return logDecodeError(FromRawListResponse[T, P](raw))
}

// logDecodeError reports schema drift. The result and error pass through
// unchanged.
func logDecodeError(r Result, err error) (Result, error) {
	var de *DecodeError
	if errors.As(err, &de) {
		log.WithFields(log.Fields{
			"shape": de.Shape,
			"field": de.Field,
		}).WithError(de.Err).Warn("response does not match the expected shape")
	}

	return r, err
}

// GetAuthenticatedUser returns a *Success[*PrivateUser] on success.
func (c *Client) GetAuthenticatedUser(ctx context.Context) (Result, error) {
	return Fetch[PrivateUser](ctx, c, "/user", nil)
}

func (c *Client) GetUser(ctx context.Context, username string) (Result, error) {
	return Fetch[SimpleUser](ctx, c, "/users/"+url.PathEscape(username), nil)
}

func (c *Client) GetRepository(ctx context.Context, owner, repo string) (Result, error) {
	return Fetch[Repository](ctx, c, repoPath(owner, repo), nil)
}

// ListIssues lists the issues of a repository. An empty state lets the API
// apply its default.
func (c *Client) ListIssues(ctx context.Context, owner, repo string, state IssueState) (Result, error) {
	var query url.Values
	if state != "" {
		query = url.Values{"state": []string{string(state)}}
	}

	return FetchList[Issue](ctx, c, repoPath(owner, repo)+"/issues", query)
}

func (c *Client) GetPullRequest(ctx context.Context, owner, repo string, number int) (Result, error) {
	return Fetch[PullRequest](ctx, c, fmt.Sprintf("%s/pulls/%d", repoPath(owner, repo), number), nil)
}

// GetPullRequestDiff returns a *Success[*Diff] on success.
func (c *Client) GetPullRequestDiff(ctx context.Context, owner, repo string, number int) (Result, error) {
	path := fmt.Sprintf("%s/pulls/%d", repoPath(owner, repo), number)
	raw, err := c.do(ctx, http.MethodGet, path, nil, MediaTypeDiff)
	if err != nil {
		return nil, err
	}

	return logDecodeError(FromDiffResponse(raw))
}

// GetManagementConsoleSettings reads the settings of an Enterprise Server
// instance. The client's base URL must point at the management console.
func (c *Client) GetManagementConsoleSettings(ctx context.Context) (Result, error) {
	return Fetch[ManagementConsoleSettings](ctx, c, "/setup/api/settings", nil)
}

func repoPath(owner, repo string) string {
	return "/repos/" + url.PathEscape(owner) + "/" + url.PathEscape(repo)
}
