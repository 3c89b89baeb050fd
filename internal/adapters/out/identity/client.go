// Package identity provides the HTTP client for the external identity
// service. The engine never writes identity data; it only verifies that a
// user exists and is active before a driver profile is created for them.
package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/ports"
	"fleet/internal/pkg/errs"
)

// defaultTimeout bounds a single identity lookup. A slow identity service
// must not hold up driver registration indefinitely.
const defaultTimeout = 5 * time.Second

// Client implements ports.IdentityClient over the identity service's REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an identity client for the service at baseURL,
// e.g. "http://identity:8080".
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}, nil
}

// userPayload mirrors the identity service's user representation.
type userPayload struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Active   bool   `json:"active"`
}

// userEnvelope mirrors the identity service's response envelope.
type userEnvelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    userPayload `json:"data"`
}

// GetUser fetches the identity record for a user ID.
// An unknown user comes back as an ObjectNotFoundError; an unreachable or
// slow identity service as a TimeoutError.
func (c *Client) GetUser(ctx context.Context, userID kernel.UUID) (ports.IdentityUser, error) {
	if err := userID.Validate(); err != nil {
		return ports.IdentityUser{}, err
	}

	url := fmt.Sprintf("%s/api/v1/users/%s", c.baseURL, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ports.IdentityUser{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return ports.IdentityUser{}, err
		}
		// Timeouts, DNS failures and refused connections all mean the
		// identity service could not answer in time.
		return ports.IdentityUser{}, errs.NewTimeoutErrorWithCause("identity lookup", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decoding
	case http.StatusNotFound:
		return ports.IdentityUser{}, errs.NewObjectNotFoundError("user", userID.String())
	default:
		return ports.IdentityUser{}, fmt.Errorf("identity service returned status %d", resp.StatusCode)
	}

	var envelope userEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return ports.IdentityUser{}, err
	}

	id, err := kernel.UUIDFromString(envelope.Data.ID)
	if err != nil {
		return ports.IdentityUser{}, err
	}

	return ports.IdentityUser{
		ID:       id,
		FullName: envelope.Data.FullName,
		Active:   envelope.Data.Active,
	}, nil
}
