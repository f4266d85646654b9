package service

import (
	"context"
	"errors"
	"fmt"

	converter "github.com/you-humble/noventa-support/internal/converter/announce"
	"github.com/you-humble/noventa-support/internal/metrics"
	"github.com/you-humble/noventa-support/internal/model"
	"github.com/you-humble/noventa-support/platform/logger"
)

const (
	sinkCommunity = "community"
	sinkStaff     = "staff"
)

type ChannelSender interface {
	SendChannelMessage(ctx context.Context, content, mentionUserID string) error
}

type StaffSender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

type service struct {
	channel ChannelSender

	staff       StaffSender
	staffChatID int64
}

// NewAnnounceService builds an announcer. A nil staff sender disables the
// staff mirror.
func NewAnnounceService(channel ChannelSender, staff StaffSender, staffChatID int64) *service {
	return &service{
		channel:     channel,
		staff:       staff,
		staffChatID: staffChatID,
	}
}

func (svc *service) Announce(ctx context.Context, a model.Announcement) error {
	const op = "announce.service.Announce"

	errs := []error{svc.community(ctx, a)}
	if svc.staff != nil {
		errs = append(errs, svc.staffMirror(ctx, a))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	logger.Info(ctx, "subscription announced", logger.String("identity_id", a.IdentityID))
	return nil
}

func (svc *service) community(ctx context.Context, a model.Announcement) error {
	content, err := converter.BuildCommunitySubscribed(a)
	if err != nil {
		return record(sinkCommunity, fmt.Errorf("build community message: %w", err))
	}

	return record(sinkCommunity, svc.channel.SendChannelMessage(ctx, content, a.IdentityID))
}

func (svc *service) staffMirror(ctx context.Context, a model.Announcement) error {
	text, err := converter.BuildStaffSubscribed(a)
	if err != nil {
		return record(sinkStaff, fmt.Errorf("build staff message: %w", err))
	}

	return record(sinkStaff, svc.staff.SendMessage(ctx, svc.staffChatID, text))
}

func record(sink string, err error) error {
	result := "ok"
	if err != nil {
		result = "error"
	}
	metrics.Announcements.WithLabelValues(sink, result).Inc()

	return err
}
