package hubspot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"powerboard-backend/internal/config"
)

// Client defines what the scheduler needs from the project source. The core
// never caches projects: every read goes back to the CRM so a stale snapshot
// cannot be scheduled against.
type Client interface {
	SearchProjects(ctx context.Context, location string) ([]Project, int, error)
	GetProject(ctx context.Context, id string) (*Project, error)
	UpdateProjectSchedule(ctx context.Context, id string, scheduleDate, crew *string) error
	Ping(ctx context.Context) (string, error)
}

// HTTPClient is a Client backed by the HubSpot CRM v3 deals API.
type HTTPClient struct {
	AccessToken string
	PortalID    string
	BaseURL     string // override for tests; defaults to https://api.hubapi.com
	Client      *http.Client
}

type searchRequest struct {
	FilterGroups []filterGroup `json:"filterGroups"`
	Properties   []string      `json:"properties"`
	Limit        int           `json:"limit"`
	Sorts        []sort        `json:"sorts"`
}

type filterGroup struct {
	Filters []filter `json:"filters"`
}

type filter struct {
	PropertyName string   `json:"propertyName"`
	Operator     string   `json:"operator"`
	Value        string   `json:"value,omitempty"`
	Values       []string `json:"values,omitempty"`
}

type sort struct {
	PropertyName string `json:"propertyName"`
	Direction    string `json:"direction"`
}

type dealResult struct {
	ID         string            `json:"id"`
	Properties map[string]string `json:"properties"`
}

type searchResponse struct {
	Total   int          `json:"total"`
	Results []dealResult `json:"results"`
}

func (c *HTTPClient) httpClient() *http.Client {
	if c.Client == nil {
		c.Client = &http.Client{Timeout: 15 * time.Second}
	}
	return c.Client
}

func (c *HTTPClient) baseURL() string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	return "https://api.hubapi.com"
}

// SearchProjects fetches schedulable deals (all pipeline stages the scheduler
// cares about), optionally filtered by location, sorted by amount descending.
func (c *HTTPClient) SearchProjects(ctx context.Context, location string) ([]Project, int, error) {
	if c.AccessToken == "" {
		return nil, 0, ErrMissingToken
	}

	filters := []filter{{
		PropertyName: config.PropertyMap["stage"],
		Operator:     "IN",
		Values:       schedulableStageIDs(),
	}}
	if location != "" && location != "All" {
		filters = append(filters, filter{
			PropertyName: config.PropertyMap["location"],
			Operator:     "EQ",
			Value:        location,
		})
	}

	body := searchRequest{
		FilterGroups: []filterGroup{{Filters: filters}},
		Properties:   requestedProperties(),
		Limit:        100,
		Sorts:        []sort{{PropertyName: config.PropertyMap["amount"], Direction: "DESCENDING"}},
	}
	bodyBytes, _ := json.Marshal(body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL()+"/crm/v3/objects/deals/search", bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, 0, err
	}
	c.setHeaders(req)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, 0, fmt.Errorf("%w: status %d body: %s", ErrUpstream, resp.StatusCode, string(respBody))
	}

	var data searchResponse
	if err := json.Unmarshal(respBody, &data); err != nil {
		return nil, 0, fmt.Errorf("%w: decode response: %v", ErrUpstream, err)
	}

	projects := make([]Project, 0, len(data.Results))
	for _, deal := range data.Results {
		projects = append(projects, c.toProject(deal))
	}
	return projects, data.Total, nil
}

// GetProject fetches a single deal by ID.
func (c *HTTPClient) GetProject(ctx context.Context, id string) (*Project, error) {
	if c.AccessToken == "" {
		return nil, ErrMissingToken
	}

	u := fmt.Sprintf("%s/crm/v3/objects/deals/%s?properties=%s",
		c.baseURL(), url.PathEscape(id), strings.Join(requestedProperties(), ","))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrDealNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d body: %s", ErrUpstream, resp.StatusCode, string(respBody))
	}

	var deal dealResult
	if err := json.Unmarshal(respBody, &deal); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrUpstream, err)
	}
	p := c.toProject(deal)
	return &p, nil
}

// UpdateProjectSchedule writes the install date and crew back to the deal.
func (c *HTTPClient) UpdateProjectSchedule(ctx context.Context, id string, scheduleDate, crew *string) error {
	if c.AccessToken == "" {
		return ErrMissingToken
	}

	properties := map[string]interface{}{}
	if scheduleDate != nil {
		properties[config.PropertyMap["scheduleDate"]] = *scheduleDate
	}
	if crew != nil {
		properties[config.PropertyMap["crew"]] = *crew
	}
	bodyBytes, _ := json.Marshal(map[string]interface{}{"properties": properties})

	u := fmt.Sprintf("%s/crm/v3/objects/deals/%s", c.baseURL(), url.PathEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, u, bytes.NewReader(bodyBytes))
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrDealNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: status %d body: %s", ErrUpstream, resp.StatusCode, string(respBody))
	}
	return nil
}

// Ping fetches one deal page to verify the token works. Returns a sample
// deal name for the connection-test endpoint.
func (c *HTTPClient) Ping(ctx context.Context) (string, error) {
	if c.AccessToken == "" {
		return "", ErrMissingToken
	}

	u := c.baseURL() + "/crm/v3/objects/deals?limit=1&properties=" + config.PropertyMap["name"]
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	c.setHeaders(req)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: status %d body: %s", ErrUpstream, resp.StatusCode, string(respBody))
	}

	var data searchResponse
	if err := json.Unmarshal(respBody, &data); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrUpstream, err)
	}
	if len(data.Results) == 0 {
		return "No deals found", nil
	}
	name := data.Results[0].Properties[config.PropertyMap["name"]]
	if name == "" {
		name = "No deals found"
	}
	return name, nil
}

func (c *HTTPClient) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.AccessToken)
	req.Header.Set("Content-Type", "application/json")
}

func requestedProperties() []string {
	props := make([]string, 0, len(config.PropertyMap))
	for _, p := range config.PropertyMap {
		props = append(props, p)
	}
	return props
}

// toProject converts a raw deal into the scheduler's Project shape using the
// startup-validated property map.
func (c *HTTPClient) toProject(deal dealResult) Project {
	prop := func(field string) string {
		return deal.Properties[config.PropertyMap[field]]
	}

	stageID := prop("stage")
	stage := stageByID[stageID]
	if stage == "" {
		stage = stageID
	}
	if stage == "" {
		stage = "unknown"
	}
	label := stageLabels[stageID]
	if label == "" {
		label = stageID
	}

	return Project{
		ID:           deal.ID,
		Name:         prop("name"),
		Amount:       parseFloat(prop("amount")),
		Stage:        stage,
		StageLabel:   label,
		Address:      prop("address"),
		Location:     prop("location"),
		SystemSize:   optionalFloat(prop("systemSize")),
		Batteries:    parseInt(prop("batteries"), 0),
		BatteryModel: optionalString(prop("batteryModel")),
		Crew:         optionalString(prop("crew")),
		DaysInstall:  parseInt(prop("daysInstall"), 2),
		DaysElec:     parseInt(prop("daysElec"), 1),
		RoofType:     optionalString(prop("roofType")),
		ScheduleDate: optionalString(prop("scheduleDate")),
		Type:         prop("type"),
		HubspotURL:   fmt.Sprintf("https://app.hubspot.com/contacts/%s/record/0-3/%s", c.PortalID, deal.ID),
	}
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

func optionalFloat(s string) *float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func parseInt(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
