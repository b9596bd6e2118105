package services

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"unidash-be/config"
	"unidash-be/internal/analytics"
	"unidash-be/internal/models"
	"unidash-be/internal/utils"
)

type GmailService struct {
	cfg *config.Config
}

func NewGmailService(cfg *config.Config) *GmailService {
	return &GmailService{
		cfg: cfg,
	}
}

func (s *GmailService) getOAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     s.cfg.GoogleClientID,
		ClientSecret: s.cfg.GoogleClientSecret,
		RedirectURL:  s.cfg.FrontendURL,
		Scopes: []string{
			gmail.GmailReadonlyScope,
			gmail.GmailMetadataScope,
		},
		Endpoint: google.Endpoint,
	}
}

// GetClient builds a Gmail service authenticated with the user's stored tokens.
// Expired access tokens are refreshed through the refresh token when one is present.
func (s *GmailService) GetClient(ctx context.Context, user *models.User) (*gmail.Service, error) {
	if !user.HasMailCredential() {
		return nil, errors.New("no google credential found")
	}

	token := &oauth2.Token{
		AccessToken:  user.GoogleAccessToken,
		RefreshToken: user.GoogleRefreshToken,
		Expiry:       user.GoogleTokenExpiry,
		TokenType:    "Bearer",
	}
	tokenSource := s.getOAuthConfig().TokenSource(ctx, token)

	srv, err := gmail.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, err
	}
	return srv, nil
}

// NewMailClient returns the dashboard mail client for user.
func (s *GmailService) NewMailClient(ctx context.Context, user *models.User) (analytics.MailClient, error) {
	srv, err := s.GetClient(ctx, user)
	if err != nil {
		return nil, analytics.NewError(analytics.KindAuth, "gmail client", err)
	}
	return NewGmailClient(srv), nil
}

// GmailClient reads message metadata and labels of the authenticated mailbox.
type GmailClient struct {
	srv *gmail.Service
}

var _ analytics.MailClient = (*GmailClient)(nil)

func NewGmailClient(srv *gmail.Service) *GmailClient {
	return &GmailClient{srv: srv}
}

func (c *GmailClient) ListMessages(ctx context.Context, query, pageToken string, pageSize int) (models.MailPage, error) {
	req := c.srv.Users.Messages.List("me").Q(query).MaxResults(int64(pageSize)).Context(ctx)
	if pageToken != "" {
		req.PageToken(pageToken)
	}

	resp, err := req.Do()
	if err != nil {
		return models.MailPage{}, err
	}

	page := models.MailPage{
		IDs:           make([]string, 0, len(resp.Messages)),
		NextPageToken: resp.NextPageToken,
	}
	for _, m := range resp.Messages {
		page.IDs = append(page.IDs, m.Id)
	}
	return page, nil
}

func (c *GmailClient) GetMetadata(ctx context.Context, id string, headers []string) (models.MailMessage, error) {
	msg, err := c.srv.Users.Messages.Get("me", id).
		Format("metadata").
		MetadataHeaders(headers...).
		Context(ctx).
		Do()
	if err != nil {
		return models.MailMessage{}, err
	}
	return mapMetadata(msg), nil
}

func (c *GmailClient) ListLabels(ctx context.Context) (map[string]string, error) {
	resp, err := c.srv.Users.Labels.List("me").Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(resp.Labels))
	for _, l := range resp.Labels {
		names[l.Id] = l.Name
	}
	return names, nil
}

func mapMetadata(msg *gmail.Message) models.MailMessage {
	out := models.MailMessage{
		ID:       msg.Id,
		LabelIDs: msg.LabelIds,
	}
	// InternalDate (epoch ms) is the fallback when the Date header does not parse
	if msg.InternalDate > 0 {
		out.Date = time.UnixMilli(msg.InternalDate)
	}
	if msg.Payload == nil {
		return out
	}

	for _, header := range msg.Payload.Headers {
		switch header.Name {
		case "Subject":
			out.Subject = utils.ToValidUTF8(header.Value)
		case "From":
			out.From = parseAddress(utils.ToValidUTF8(header.Value))
		case "Date":
			if d, err := mail.ParseDate(header.Value); err == nil {
				out.Date = d
			}
		}
	}
	return out
}

func parseAddress(addr string) models.EmailAddress {
	if parsed, err := mail.ParseAddress(addr); err == nil {
		return models.EmailAddress{Name: parsed.Name, Email: parsed.Address}
	}

	// Simple parser: "Name <email>" or "email"
	if strings.Contains(addr, "<") {
		parts := strings.SplitN(addr, "<", 2)
		name := strings.Trim(strings.TrimSpace(parts[0]), `"`)
		email := strings.TrimSpace(strings.TrimSuffix(parts[1], ">"))
		return models.EmailAddress{Name: name, Email: email}
	}
	return models.EmailAddress{Name: "", Email: strings.TrimSpace(addr)}
}
