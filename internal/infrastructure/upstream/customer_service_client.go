package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	resty "github.com/go-resty/resty/v2"

	"customer_portal/internal/domain/entities"
	"customer_portal/internal/usecase/interfaces"
	"customer_portal/pkg/logger"
)

var ErrMissingBaseURL = errors.New("missing customer service base URL")

const (
	pathProfileMe = "/customers/me"
	pathVehicles  = "/vehicles"
	pathHistory   = "/history"

	defaultTimeout = 10 * time.Second
)

// CustomerServiceClient talks to the gateway-fronted upstream customer
// service. It forwards the caller's Authorization value unchanged and keeps
// no state across requests.
type CustomerServiceClient struct {
	http *resty.Client
	log  logger.ILogger
}

var _ interfaces.ICustomerServiceClient = (*CustomerServiceClient)(nil)

func NewCustomerServiceClient(baseURL string, log logger.ILogger) (*CustomerServiceClient, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, ErrMissingBaseURL
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(defaultTimeout).
		SetHeader("Accept", "application/json")

	return &CustomerServiceClient{http: client, log: log}, nil
}

func (c *CustomerServiceClient) GetOwnProfile(ctx context.Context, auth string) (entities.CustomerProfile, error) {
	resp, err := c.request(ctx, auth).Get(pathProfileMe)
	if err != nil {
		return entities.CustomerProfile{}, &interfaces.UpstreamError{Operation: "get profile", Err: err}
	}
	if resp.StatusCode() == http.StatusNotFound {
		return entities.CustomerProfile{}, interfaces.ErrProfileNotFound
	}
	if !resp.IsSuccess() {
		return entities.CustomerProfile{}, &interfaces.UpstreamError{Operation: "get profile", StatusCode: resp.StatusCode()}
	}

	var profile entities.CustomerProfile
	if err := json.Unmarshal(resp.Body(), &profile); err != nil {
		return entities.CustomerProfile{}, &interfaces.UpstreamError{Operation: "get profile", Err: err}
	}
	return profile, nil
}

func (c *CustomerServiceClient) UpsertOwnProfile(ctx context.Context, auth string, draft entities.ProfileDraft) (entities.CustomerProfile, error) {
	resp, err := c.request(ctx, auth).
		SetHeader("Content-Type", "application/json").
		SetBody(draft).
		Put(pathProfileMe)
	if err != nil {
		return entities.CustomerProfile{}, &interfaces.UpstreamError{Operation: "upsert profile", Err: err}
	}
	if !resp.IsSuccess() {
		return entities.CustomerProfile{}, &interfaces.UpstreamError{Operation: "upsert profile", StatusCode: resp.StatusCode()}
	}

	// The echoed body is informational only; provisioning re-reads for
	// canonical state.
	var profile entities.CustomerProfile
	if err := json.Unmarshal(resp.Body(), &profile); err != nil {
		c.log.Warning("upsert profile: unparseable response body", logger.Error(err))
		return entities.CustomerProfile{}, nil
	}
	return profile, nil
}

func (c *CustomerServiceClient) ListVehicles(ctx context.Context, auth string) ([]entities.Vehicle, error) {
	resp, err := c.request(ctx, auth).Get(pathVehicles)
	if err != nil {
		return nil, &interfaces.UpstreamError{Operation: "list vehicles", Err: err}
	}
	if !resp.IsSuccess() {
		return nil, &interfaces.UpstreamError{Operation: "list vehicles", StatusCode: resp.StatusCode()}
	}

	var vehicles []entities.Vehicle
	if err := json.Unmarshal(resp.Body(), &vehicles); err != nil || vehicles == nil {
		// Not a well-formed array: normalize to empty instead of failing.
		if err != nil {
			c.log.Warning("list vehicles: response is not an array")
		}
		return []entities.Vehicle{}, nil
	}
	return vehicles, nil
}

func (c *CustomerServiceClient) ListHistory(ctx context.Context, auth string) ([]entities.HistoryItem, error) {
	resp, err := c.request(ctx, auth).Get(pathHistory)
	if err != nil {
		return nil, &interfaces.UpstreamError{Operation: "list history", Err: err}
	}
	if !resp.IsSuccess() {
		return nil, &interfaces.UpstreamError{Operation: "list history", StatusCode: resp.StatusCode()}
	}

	var items []entities.HistoryItem
	if err := json.Unmarshal(resp.Body(), &items); err != nil || items == nil {
		if err != nil {
			c.log.Warning("list history: response is not an array")
		}
		return []entities.HistoryItem{}, nil
	}
	return items, nil
}

func (c *CustomerServiceClient) request(ctx context.Context, auth string) *resty.Request {
	req := c.http.R().SetContext(ctx)
	if auth != "" {
		req.SetHeader("Authorization", auth)
	}
	return req
}
