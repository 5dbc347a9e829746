// Package platform wraps the business-management platform REST API that owns
// the raw user, sales and expense records this service aggregates.
package platform

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mamadbah2/agrobooks/internal/config"
	"github.com/mamadbah2/agrobooks/internal/domain/models"
)

// Client exposes the platform API operations used by the application.
type Client interface {
	FetchProfile(ctx context.Context, userID string) (models.UserProfile, error)
	FetchSales(ctx context.Context, userID string) ([]models.SaleRecord, error)
	FetchExpenses(ctx context.Context, userID string) ([]models.ExpenseRecord, error)
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
}

// NewClient builds a platform API client using the provided configuration values.
func NewClient(cfg config.PlatformConfig) *APIClient {
	base := strings.TrimSuffix(cfg.BaseURL, "/")

	restyClient := resty.New()
	restyClient.
		SetBaseURL(base).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.APIToken)).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &APIClient{httpClient: restyClient}
}

// apiError represents the platform API error envelope.
type apiError struct {
	Error struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// FetchProfile fetches the user document holding the declared occupations.
func (c *APIClient) FetchProfile(ctx context.Context, userID string) (models.UserProfile, error) {
	result := new(models.UserProfile)
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(result).
		SetError(apiErr).
		Get(fmt.Sprintf("/users/%s", userID))
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("fetch user profile: %w", err)
	}

	if err := checkStatus(resp, apiErr); err != nil {
		return models.UserProfile{}, err
	}

	return *result, nil
}

// FetchSales fetches every sale record for the user.
func (c *APIClient) FetchSales(ctx context.Context, userID string) ([]models.SaleRecord, error) {
	result := new([]models.SaleRecord)
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(result).
		SetError(apiErr).
		Get(fmt.Sprintf("/users/%s/sales", userID))
	if err != nil {
		return nil, fmt.Errorf("fetch sales: %w", err)
	}

	if err := checkStatus(resp, apiErr); err != nil {
		return nil, err
	}

	return *result, nil
}

// FetchExpenses fetches every expense record for the user.
func (c *APIClient) FetchExpenses(ctx context.Context, userID string) ([]models.ExpenseRecord, error) {
	result := new([]models.ExpenseRecord)
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(result).
		SetError(apiErr).
		Get(fmt.Sprintf("/users/%s/expenses", userID))
	if err != nil {
		return nil, fmt.Errorf("fetch expenses: %w", err)
	}

	if err := checkStatus(resp, apiErr); err != nil {
		return nil, err
	}

	return *result, nil
}

func checkStatus(resp *resty.Response, apiErr *apiError) error {
	if resp.StatusCode() < http.StatusBadRequest {
		return nil
	}

	message := ""
	code := resp.StatusCode()
	if apiErr != nil {
		message = apiErr.Error.Message
		if apiErr.Error.Code != 0 {
			code = apiErr.Error.Code
		}
	}
	return fmt.Errorf("platform api error: code=%d, message=%s", code, message)
}
