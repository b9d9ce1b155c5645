package weaviate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/corlin/wvsee/internal/dashboard/config"
	"github.com/corlin/wvsee/internal/dashboard/domain/model"
	apperrors "github.com/corlin/wvsee/internal/shared/errors"
	"github.com/corlin/wvsee/internal/shared/logger"
)

const (
	graphqlPath = "/v1/graphql"
	schemaPath  = "/v1/schema"
	readyPath   = "/v1/.well-known/ready"

	componentName = "weaviate-client"
)

// Client is the HTTP client for the vector database's GraphQL and schema
// endpoints. It performs plain request/response round trips: no retries, no
// caching, no circuit breaking.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        logger.Logger
}

// NewClient creates a client from the injected configuration.
func NewClient(cfg *config.WeaviateConfig, log logger.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		log: log.WithComponent(componentName),
	}
}

// ExecuteQuery posts a GraphQL query string to the database and decodes the
// response envelope. A non-2xx status, an undecodable body or a non-empty
// GraphQL errors array all fail with an infrastructure error.
func (c *Client) ExecuteQuery(ctx context.Context, query string) (*model.GraphQLResponse, error) {
	endpoint := c.baseURL + graphqlPath

	c.log.WithFields(map[string]interface{}{
		"url":   endpoint,
		"query": query,
	}).Debug("Executing GraphQL query")

	body, err := json.Marshal(model.GraphQLRequest{Query: query})
	if err != nil {
		return nil, apperrors.NewInternalError("failed to encode graphql request").WithCause(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.NewInternalError("failed to create graphql request").WithCause(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logFailure(endpoint, err)
		return nil, apperrors.NewInfrastructureError("graphql request failed").
			WithCause(err).WithComponent(componentName).WithDetail("url", endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := fmt.Errorf("unexpected status: %s", resp.Status)
		c.logFailure(endpoint, err)
		return nil, apperrors.NewInfrastructureError("graphql request failed").
			WithCause(err).WithComponent(componentName).
			WithDetail("url", endpoint).WithDetail("status", resp.StatusCode)
	}

	var envelope model.GraphQLResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		c.logFailure(endpoint, err)
		return nil, apperrors.NewInfrastructureError("failed to decode graphql response").
			WithCause(err).WithComponent(componentName).WithDetail("url", endpoint)
	}

	if len(envelope.Errors) > 0 {
		err := fmt.Errorf("graphql error: %s", envelope.Errors[0].Message)
		c.logFailure(endpoint, err)
		return nil, apperrors.NewInfrastructureError("graphql query returned errors").
			WithCause(err).WithComponent(componentName).WithDetail("url", endpoint)
	}

	return &envelope, nil
}

// GetSchema fetches the declared classes from the schema endpoint. A response
// without a classes field decodes to an empty list.
func (c *Client) GetSchema(ctx context.Context) (*model.Schema, error) {
	endpoint := c.baseURL + schemaPath

	c.log.WithFields(map[string]interface{}{"url": endpoint}).Debug("Fetching schema")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to create schema request").WithCause(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logFailure(endpoint, err)
		return nil, apperrors.NewInfrastructureError("schema fetch failed").
			WithCause(err).WithComponent(componentName).WithDetail("url", endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := fmt.Errorf("unexpected status: %s", resp.Status)
		c.logFailure(endpoint, err)
		return nil, apperrors.NewInfrastructureError("schema fetch failed: "+resp.Status).
			WithCause(err).WithComponent(componentName).
			WithDetail("url", endpoint).WithDetail("status", resp.StatusCode)
	}

	var schema model.Schema
	if err := json.NewDecoder(resp.Body).Decode(&schema); err != nil {
		c.logFailure(endpoint, err)
		return nil, apperrors.NewInfrastructureError("failed to decode schema response").
			WithCause(err).WithComponent(componentName).WithDetail("url", endpoint)
	}

	return &schema, nil
}

// DeleteClass removes a class and all its objects via the database's native
// class-delete endpoint.
func (c *Client) DeleteClass(ctx context.Context, class string) error {
	endpoint := c.baseURL + schemaPath + "/" + url.PathEscape(class)

	c.log.WithFields(map[string]interface{}{
		"url":        endpoint,
		"collection": class,
	}).Info("Deleting class")

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return apperrors.NewInternalError("failed to create delete request").WithCause(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logFailure(endpoint, err)
		return apperrors.NewInfrastructureError("class delete failed").
			WithCause(err).WithComponent(componentName).WithDetail("url", endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := fmt.Errorf("unexpected status: %s", resp.Status)
		c.logFailure(endpoint, err)
		return apperrors.NewInfrastructureError("class delete failed: "+resp.Status).
			WithCause(err).WithComponent(componentName).
			WithDetail("url", endpoint).WithDetail("status", resp.StatusCode)
	}

	return nil
}

// Ready probes the database's readiness endpoint.
func (c *Client) Ready(ctx context.Context) error {
	endpoint := c.baseURL + readyPath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return apperrors.NewInternalError("failed to create readiness request").WithCause(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.NewInfrastructureError("vector database unreachable").
			WithCause(err).WithComponent(componentName).WithDetail("url", endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apperrors.NewInfrastructureError("vector database not ready: " + resp.Status).
			WithComponent(componentName).WithDetail("url", endpoint).WithDetail("status", resp.StatusCode)
	}

	return nil
}

func (c *Client) logFailure(endpoint string, err error) {
	c.log.WithFields(map[string]interface{}{
		"url":   endpoint,
		"error": err.Error(),
	}).Error("Request to vector database failed")
}
