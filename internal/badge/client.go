// Package badge issues Open Badge Factory competence badges to visitors.
package badge

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2/clientcredentials"
)

// ErrMissingCredentials is returned when the OBF client credentials or badge
// id are not configured.
var ErrMissingCredentials = errors.New("OBF credentials missing")

// Config carries the badge collaborator settings.
type Config struct {
	ClientID     string
	ClientSecret string
	BadgeID      string
	APIBase      string
	BadgeName    string
	IconURL      string
}

// Client talks to the Open Badge Factory API. Issuance is a two-step flow:
// a client-credentials token exchange followed by a badge assertion POST.
type Client struct {
	cfg        Config
	oauth      clientcredentials.Config
	httpClient *http.Client
}

// NewClient constructs a badge client. Credentials may be missing; Issue then
// fails with ErrMissingCredentials so callers can surface an explicit error.
func NewClient(cfg Config) *Client {
	cfg.APIBase = strings.TrimRight(cfg.APIBase, "/")
	return &Client{
		cfg: cfg,
		oauth: clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.APIBase + "/oauth/token",
		},
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Configured reports whether credentials and a badge id are present.
func (c *Client) Configured() bool {
	return c.cfg.ClientID != "" && c.cfg.ClientSecret != "" && c.cfg.BadgeID != ""
}

// BadgeName returns the display name of the issued badge.
func (c *Client) BadgeName() string {
	return c.cfg.BadgeName
}

// IconURL returns the badge icon location used on the certificate.
func (c *Client) IconURL() string {
	return c.cfg.IconURL
}

type assertionRequest struct {
	Recipient    []string `json:"recipient"`
	EmailSubject string   `json:"email_subject"`
	EmailBody    string   `json:"email_body"`
	EmailFooter  string   `json:"email_footer"`
}

// Issue sends the badge assertion for one recipient. The notification email
// is templated with the visitor's first name.
func (c *Client) Issue(ctx context.Context, email, firstName string) error {
	if !c.Configured() {
		return ErrMissingCredentials
	}
	if strings.TrimSpace(email) == "" || strings.TrimSpace(firstName) == "" {
		return errors.New("email and firstName are required")
	}

	payload := assertionRequest{
		Recipient:    []string{email},
		EmailSubject: fmt.Sprintf("Sinulle on myönnetty %s -merkki!", c.cfg.BadgeName),
		EmailBody: fmt.Sprintf("Hei %s!\n\nOnnittelut, olet suorittanut Joulun Osaaja -kioskin tonttutestin.\n"+
			"Liitteenä on digitaalinen osaamismerkkisi: %q.\n\nHauskaa joulua!", firstName, c.cfg.BadgeName),
		EmailFooter: "Terveisin, Eduro Pikkujoulukioski",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/v2/badge/%s/assertion", c.cfg.APIBase, c.cfg.BadgeID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	// The oauth2 client fetches and attaches the bearer token.
	resp, err := c.oauth.Client(ctx).Do(req)
	if err != nil {
		return fmt.Errorf("obf issue: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("obf issue status %d: %s", resp.StatusCode, strings.TrimSpace(string(text)))
	}
	return nil
}

// FetchIcon downloads the badge icon for embedding on the certificate.
func (c *Client) FetchIcon(ctx context.Context) ([]byte, error) {
	if strings.TrimSpace(c.cfg.IconURL) == "" {
		return nil, errors.New("badge icon URL missing")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.IconURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("badge icon status %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, 4<<20))
}
