package discordclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/oauth2"

	"github.com/you-humble/noventa-support/internal/model"
)

var Endpoint = oauth2.Endpoint{
	AuthURL:   "https://discord.com/oauth2/authorize",
	TokenURL:  "https://discord.com/api/oauth2/token",
	AuthStyle: oauth2.AuthStyleInParams,
}

func NewOAuthConfig(clientID, clientSecret, redirectURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes:       []string{"identify"},
		Endpoint:     Endpoint,
	}
}

type identityClient struct {
	oauth      *oauth2.Config
	httpClient *http.Client
}

func NewIdentityClient(oauth *oauth2.Config, httpClient *http.Client) *identityClient {
	return &identityClient{oauth: oauth, httpClient: httpClient}
}

func (c *identityClient) AuthCodeURL() string {
	return c.oauth.AuthCodeURL("")
}

func (c *identityClient) ExchangeCode(ctx context.Context, code string) (string, error) {
	const op = "discord.identity.ExchangeCode"

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)

	tok, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return tok.AccessToken, nil
}

func (c *identityClient) CurrentUser(ctx context.Context, accessToken string) (model.ExternalIdentity, error) {
	const op = "discord.identity.CurrentUser"

	s, err := discordgo.New("Bearer " + accessToken)
	if err != nil {
		return model.ExternalIdentity{}, fmt.Errorf("%s: %w", op, err)
	}
	s.Client = c.httpClient
	s.MaxRestRetries = 0

	u, err := s.User("@me", discordgo.WithContext(ctx))
	if err != nil {
		return model.ExternalIdentity{}, fmt.Errorf("%s: %w", op, err)
	}

	return model.ExternalIdentity{ID: u.ID, Username: u.Username}, nil
}
