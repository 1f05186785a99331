package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/itemshop/storefront/internal/errors"
	"github.com/itemshop/storefront/internal/models"
	"github.com/itemshop/storefront/internal/utils"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Session is the acknowledged upstream session: an opaque user identifier.
type Session struct {
	UserID string
}

// Client defines every call the storefront makes against the remote commerce
// API. The storefront does not own this API, it only conforms to it.
type Client interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	GetSession(ctx context.Context, cookies []*http.Cookie) (*Session, error)
	Login(ctx context.Context, req *models.LoginRequest) ([]*http.Cookie, error)
	Logout(ctx context.Context, cookies []*http.Cookie) ([]*http.Cookie, error)
	Signup(ctx context.Context, req *models.SignupRequest) error
	Purchase(ctx context.Context, cookies []*http.Cookie, payload *models.PurchasePayload) error
}

type httpClient struct {
	baseURL string
	client  *http.Client
}

// NewClient builds a client for the given base host. A zero timeout falls
// back to the standard upstream timeout.
func NewClient(baseURL string, timeout time.Duration) Client {
	if timeout == 0 {
		timeout = utils.DefaultUpstreamTimeout
	}

	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   timeout,
		},
	}
}

// errorBody is the upstream's structured rejection payload.
type errorBody struct {
	Error string `json:"error"`
}

func (c *httpClient) ListProducts(ctx context.Context) ([]models.Product, error) {

	var products []models.Product

	if err := c.do(ctx, http.MethodGet, "/products/all", nil, nil, &products, nil); err != nil {
		return nil, err
	}

	return products, nil
}

func (c *httpClient) GetProduct(ctx context.Context, id int64) (*models.Product, error) {

	var product models.Product

	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, nil, &product, nil); err != nil {
		return nil, err
	}

	return &product, nil
}

func (c *httpClient) GetSession(ctx context.Context, cookies []*http.Cookie) (*Session, error) {

	var body struct {
		UserID json.Number `json:"user_id"`
	}

	if err := c.do(ctx, http.MethodGet, "/users/getSession", cookies, nil, &body, nil); err != nil {
		return nil, err
	}

	return &Session{UserID: body.UserID.String()}, nil
}

func (c *httpClient) Login(ctx context.Context, req *models.LoginRequest) ([]*http.Cookie, error) {

	var setCookies []*http.Cookie

	if err := c.do(ctx, http.MethodPost, "/users/login", nil, req, nil, &setCookies); err != nil {
		return nil, err
	}

	return setCookies, nil
}

func (c *httpClient) Logout(ctx context.Context, cookies []*http.Cookie) ([]*http.Cookie, error) {

	var setCookies []*http.Cookie

	// The success body is irrelevant, only the acknowledgement and any
	// Set-Cookie matter.
	if err := c.do(ctx, http.MethodPost, "/users/logout", cookies, nil, nil, &setCookies); err != nil {
		return nil, err
	}

	return setCookies, nil
}

func (c *httpClient) Signup(ctx context.Context, req *models.SignupRequest) error {
	return c.do(ctx, http.MethodPost, "/users/signup", nil, req, nil, nil)
}

func (c *httpClient) Purchase(ctx context.Context, cookies []*http.Cookie, payload *models.PurchasePayload) error {
	return c.do(ctx, http.MethodPost, "/products/purchase", cookies, payload, nil, nil)
}

// do issues one request and decodes either the success shape into out or the
// structured rejection into an AppError. It never retries.
func (c *httpClient) do(ctx context.Context, method, path string, cookies []*http.Cookie, in, out any, setCookies *[]*http.Cookie) error {

	reqBody := bytes.NewBuffer(nil)

	if in != nil {
		if err := json.NewEncoder(reqBody).Encode(in); err != nil {
			return apperrors.InternalError("Failed to encode request body").WithError(err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return apperrors.InternalError("Failed to build upstream request").WithError(err)
	}

	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return apperrors.NetworkError("Commerce API is unreachable").WithError(err)
	}
	defer resp.Body.Close()

	if setCookies != nil {
		*setCookies = resp.Cookies()
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.rejectionError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return apperrors.UpstreamError("Commerce API returned an unreadable body").WithError(err)
		}
	}

	return nil
}

func (c *httpClient) rejectionError(resp *http.Response) error {

	var body errorBody

	var message string
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		message = body.Error
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		if message == "" {
			message = "Session has expired"
		}

		return apperrors.UnauthorizedError(message)
	case http.StatusNotFound:
		if message == "" {
			message = "Resource not found"
		}

		return apperrors.NotFoundError(message)
	default:
		if message == "" {
			message = fmt.Sprintf("Commerce API rejected the request (status %d)", resp.StatusCode)
		}

		return apperrors.UpstreamError(message)
	}
}
