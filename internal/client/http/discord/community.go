package discordclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"

	"github.com/you-humble/noventa-support/internal/model"
)

type communityClient struct {
	session   *discordgo.Session
	serverID  string
	roleID    string
	channelID string
}

func NewCommunityClient(session *discordgo.Session, serverID, roleID, channelID string) *communityClient {
	return &communityClient{
		session:   session,
		serverID:  serverID,
		roleID:    roleID,
		channelID: channelID,
	}
}

// AddMemberRole is idempotent on the platform side: adding a role the
// member already holds is answered with 204 like a fresh grant.
func (c *communityClient) AddMemberRole(ctx context.Context, userID string) error {
	const op = "discord.community.AddMemberRole"

	err := c.session.GuildMemberRoleAdd(c.serverID, userID, c.roleID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("%s: %w", op, classify(err))
	}

	return nil
}

func (c *communityClient) SendChannelMessage(ctx context.Context, content, mentionUserID string) error {
	const op = "discord.community.SendChannelMessage"

	_, err := c.session.ChannelMessageSendComplex(c.channelID, &discordgo.MessageSend{
		Content: content,
		AllowedMentions: &discordgo.MessageAllowedMentions{
			Users: []string{mentionUserID},
		},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("%s: %w", op, classify(err))
	}

	return nil
}

func classify(err error) error {
	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) || restErr.Response == nil {
		return fmt.Errorf("%w: %w", model.ErrUpstreamTransport, err)
	}

	body := string(restErr.ResponseBody)

	switch restErr.Response.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", model.ErrMemberNotFound, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", model.ErrPermissionDenied, body)
	default:
		return &model.RejectionError{Status: restErr.Response.StatusCode, Body: body}
	}
}
