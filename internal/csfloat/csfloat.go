// Package csfloat provides a client for the CSFloat listings API. It wraps
// an HTTP client and exposes the two queries the application needs: a
// sorted buy-now listings page for an item and a lightweight probe used to
// validate an API key.
package csfloat

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// DefaultBaseURL is the production CSFloat listings endpoint.
const DefaultBaseURL = "https://csfloat.com/api/v1/listings"

// listingsPageSize is the number of listings requested per page.
const listingsPageSize = 50

// Client provides methods for querying the CSFloat listings API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a client against the production CSFloat endpoint.
func NewClient() *Client {
	return NewClientWithBaseURL(DefaultBaseURL)
}

// NewClientWithBaseURL creates a client against an alternate endpoint,
// primarily for tests.
func NewClientWithBaseURL(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
	}
}

// ListingsPage fetches one page of buy-now listings for the given
// def_index, sorted ascending by price. The returned slice is empty when
// the page has no listings.
func (c *Client) ListingsPage(apiKey string, defIndex, page int) ([]Listing, error) {
	params := url.Values{}
	params.Set("type", "buy_now")
	params.Set("sort_by", "lowest_price")
	params.Set("limit", strconv.Itoa(listingsPageSize))
	params.Set("def_index", strconv.Itoa(defIndex))
	params.Set("page", strconv.Itoa(page))

	var response Response
	if err := c.query(apiKey, params, &response); err != nil {
		return nil, err
	}
	return response.Items(), nil
}

// Probe issues a minimal listings query to check that the given API key is
// accepted by the service. It has no side effects beyond the network call.
func (c *Client) Probe(apiKey string) error {
	params := url.Values{}
	params.Set("limit", "1")

	var response Response
	return c.query(apiKey, params, &response)
}

// query executes a GET against the listings endpoint and decodes the JSON
// body into out. Non-2xx status codes are returned as errors.
func (c *Client) query(apiKey string, params url.Values, out interface{}) error {
	req, err := http.NewRequest("GET", c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("csfloat returned status %d: %s", resp.StatusCode, string(data))
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode csfloat response: %w", err)
	}
	return nil
}
