package clients

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"slackpost/core"
	"slackpost/core/log"
	"slackpost/models"
)

const defaultBaseURL = "https://slack.com"

// SlackClient talks to the Slack web API over plain GET requests,
// authenticated by a token query parameter. All calls are synchronous
// and block until the HTTP round-trip completes.
type SlackClient struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

func NewSlackClient(token string) *SlackClient {
	return &SlackClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
		token:      token,
	}
}

// NewSlackClientWithBaseURL points the client at a different host.
// Used by tests to talk to a local server.
func NewSlackClientWithBaseURL(token, baseURL string) *SlackClient {
	client := NewSlackClient(token)
	client.baseURL = baseURL
	return client
}

// buildURL composes <base>/api/<method>?token=<token>. The method name
// is a trusted literal and is not encoded.
func (c *SlackClient) buildURL(method string) string {
	return fmt.Sprintf("%s/api/%s?token=%s", c.baseURL, method, c.token)
}

// ListCommunities fetches all communities of the given kind via the
// <collection>.list endpoint and returns the raw record entries
// unchanged. An empty list is a valid result; a missing or non-array
// collection key is an InvalidResponseError. The two are never
// conflated.
func (c *SlackClient) ListCommunities(kind models.CommunityKind) ([]any, error) {
	collection := kind.Collection()
	log.Info("📋 Starting to list communities", "collection", collection)

	envelope, err := c.get(c.buildURL(collection + ".list"))
	if err != nil {
		return nil, err
	}

	payload, ok := envelope[collection]
	if !ok {
		log.Error("❌ Response envelope is missing the collection key", "collection", collection)
		return nil, &core.InvalidResponseError{Reason: fmt.Sprintf("missing %q key", collection)}
	}
	records, ok := payload.([]any)
	if !ok {
		log.Error("❌ Collection payload is not a list", "collection", collection)
		return nil, &core.InvalidResponseError{Reason: fmt.Sprintf("%q key is not a list", collection)}
	}

	log.Info("✅ Successfully listed communities", "collection", collection, "count", len(records))
	return records, nil
}

// PostMessage posts text to the community with the given ID via
// chat.postMessage. The success path carries no payload.
func (c *SlackClient) PostMessage(id, text string) error {
	log.Info("📋 Starting to post message", "channel", id)

	requestURL := fmt.Sprintf("%s&channel=%s&text=%s", c.buildURL("chat.postMessage"), id, encodeQueryComponent(text))
	if _, err := c.get(requestURL); err != nil {
		return err
	}

	log.Info("✅ Successfully posted message", "channel", id)
	return nil
}

// get performs one GET round-trip and classifies the response envelope:
// transport failures, non-envelope bodies, and ok:false each map to
// their own error type. On ok:true the decoded envelope is returned for
// the caller to pull its payload from.
func (c *SlackClient) get(requestURL string) (map[string]any, error) {
	resp, err := c.httpClient.Get(requestURL)
	if err != nil {
		log.Error("❌ Slack API request failed", "error", err)
		return nil, &core.TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("❌ Failed to read Slack API response body", "error", err)
		return nil, &core.TransportError{Err: err}
	}

	var envelope map[string]any
	if err := json.Unmarshal(body, &envelope); err != nil {
		log.Error("❌ Slack API response is not a JSON object", "error", err)
		return nil, &core.InvalidResponseError{Reason: "body is not a JSON object"}
	}

	okFlag, ok := envelope["ok"].(bool)
	if !ok {
		log.Error("❌ Slack API response has no \"ok\" flag")
		return nil, &core.InvalidResponseError{Reason: `missing "ok" flag`}
	}
	if !okFlag {
		reason, _ := envelope["error"].(string)
		if reason == "" {
			reason = "Unknown error"
		}
		log.Error("❌ Slack API reported failure", "reason", reason)
		return nil, &core.RemoteError{Reason: reason}
	}

	return envelope, nil
}

// encodeQueryComponent percent-encodes text for use as a query value.
// QueryEscape emits "+" for spaces; the API expects %20.
func encodeQueryComponent(text string) string {
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}
