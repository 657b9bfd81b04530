package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"

	"encuestas/config"
	"encuestas/internal/auth"
	"encuestas/internal/model"
)

// Client wraps the survey backend's REST API. Every request carries the
// bearer token from the configured TokenSource.
type Client struct {
	baseURL    string
	tokens     auth.TokenSource
	httpClient *http.Client
	log        *logrus.Entry
}

// NewClient creates an API client from the loaded configuration.
func NewClient(cfg *config.Config, tokens auth.TokenSource) *Client {
	return &Client{
		baseURL: cfg.APIBaseURL,
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		log: logrus.WithField("component", "api_client"),
	}
}

// validationResponse is the 422 body shape: {"errors": {"path": ["msg"]}}.
type validationResponse struct {
	Message string                 `json:"message"`
	Errors  model.ValidationErrors `json:"errors"`
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := c.tokens.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WithError(err).Errorf("%s %s failed", method, path)
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	c.log.WithFields(logrus.Fields{
		"status":   resp.StatusCode,
		"duration": time.Since(start).Round(time.Millisecond).String(),
	}).Debugf("%s %s", method, path)

	if resp.StatusCode == http.StatusUnprocessableEntity {
		var vr validationResponse
		if err := json.Unmarshal(respBody, &vr); err != nil || len(vr.Errors) == 0 {
			return nil, &APIError{Status: resp.StatusCode, Message: string(respBody)}
		}
		return nil, &ValidationFailure{Errors: vr.Errors}
	}

	if resp.StatusCode >= 400 {
		c.log.Warnf("%s %s returned %d: %s", method, path, resp.StatusCode, respBody)
		return nil, &APIError{Status: resp.StatusCode, Message: string(respBody)}
	}

	return respBody, nil
}

// GetSurveyForEditor fetches a survey with its questions, options, invited
// users and pending invitations for editing.
func (c *Client) GetSurveyForEditor(ctx context.Context, slug string) (*model.SurveyRecord, error) {
	respBody, err := c.doRequest(ctx, http.MethodGet, "/editor/encuestas/"+url.PathEscape(slug), nil)
	if err != nil {
		return nil, err
	}

	var rec model.SurveyRecord
	if err := json.Unmarshal(respBody, &rec); err != nil {
		return nil, fmt.Errorf("parse survey record: %w", err)
	}
	return &rec, nil
}

// CreateSurvey persists a new survey and returns the record with its
// assigned identifiers.
func (c *Client) CreateSurvey(ctx context.Context, payload model.SurveyPayload) (*model.SurveyRecord, error) {
	respBody, err := c.doRequest(ctx, http.MethodPost, "/encuestas", payload)
	if err != nil {
		return nil, err
	}

	var rec model.SurveyRecord
	if err := json.Unmarshal(respBody, &rec); err != nil {
		return nil, fmt.Errorf("parse created survey: %w", err)
	}
	c.log.Infof("survey created: id=%d slug=%s", rec.ID, rec.Slug)
	return &rec, nil
}

// UpdateSurvey saves an existing survey by slug. The body is either the
// full SurveyPayload or, for response-locked surveys, the metadata subset.
func (c *Client) UpdateSurvey(ctx context.Context, slug string, payload any) (*model.SurveyRecord, error) {
	respBody, err := c.doRequest(ctx, http.MethodPut, "/encuestas/"+url.PathEscape(slug), payload)
	if err != nil {
		return nil, err
	}

	var rec model.SurveyRecord
	if err := json.Unmarshal(respBody, &rec); err != nil {
		return nil, fmt.Errorf("parse updated survey: %w", err)
	}
	return &rec, nil
}

// SyncInvitees replaces the survey's invitee set wholesale. Empty lists
// clear all prior invitations.
func (c *Client) SyncInvitees(ctx context.Context, surveyID int64, payload model.InviteeSyncPayload) error {
	_, err := c.doRequest(ctx, http.MethodPost, fmt.Sprintf("/encuestas/%d/invitados", surveyID), payload)
	return err
}

// SearchUsers queries registered users by name or email for the invitee
// picker.
func (c *Client) SearchUsers(ctx context.Context, query string) ([]model.UserRecord, error) {
	respBody, err := c.doRequest(ctx, http.MethodGet, "/users/search?q="+url.QueryEscape(query), nil)
	if err != nil {
		return nil, err
	}

	var users []model.UserRecord
	if err := json.Unmarshal(respBody, &users); err != nil {
		return nil, fmt.Errorf("parse user search results: %w", err)
	}
	return users, nil
}
