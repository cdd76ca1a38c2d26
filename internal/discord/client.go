package discord

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://discord.com/api/v10"

// Client is a minimal Discord REST client. The only call this service makes
// is adding a guild member to a role after a paid order.
type Client struct {
	BaseURL    string
	BotToken   string
	GuildID    string
	HTTPClient *http.Client
}

func NewClient(botToken, guildID string) *Client {
	return &Client{
		BaseURL:  defaultBaseURL,
		BotToken: botToken,
		GuildID:  guildID,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) doRequest(ctx context.Context, method, endpoint string) error {
	url := fmt.Sprintf("%s%s", c.BaseURL, endpoint)
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bot %s", c.BotToken))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("discord api error: %s (status: %d)", string(respBody), resp.StatusCode)
	}

	return nil
}

// GrantRole adds roleID to the guild member userID. The call is idempotent
// on the Discord side: granting an already-held role succeeds.
func (c *Client) GrantRole(ctx context.Context, userID, roleID string) error {
	endpoint := fmt.Sprintf("/guilds/%s/members/%s/roles/%s", c.GuildID, userID, roleID)
	return c.doRequest(ctx, http.MethodPut, endpoint)
}
