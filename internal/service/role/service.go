package service

import (
	"context"
	"errors"
	"time"

	"github.com/you-humble/noventa-support/internal/metrics"
	"github.com/you-humble/noventa-support/internal/model"
	"github.com/you-humble/noventa-support/platform/logger"
)

const (
	MsgGranted          = "Successfully assigned community role!"
	MsgMissingIdentity  = "Missing or invalid externalIdentityId."
	MsgMemberNotFound   = "Failed to assign role: Member not found in the community server. Please join the community first."
	MsgPermissionDenied = "Failed to assign role: Bot lacks permissions (check role hierarchy and permissions)."
	msgUpstream         = "Failed to assign role: community API error."
	msgTransport        = "Failed to contact the community API."
)

type CommunityClient interface {
	AddMemberRole(ctx context.Context, userID string) error
}

type Announcer interface {
	Announce(ctx context.Context, a model.Announcement) error
}

type service struct {
	community       CommunityClient
	announcer       Announcer
	announceTimeout time.Duration

	// dispatch runs the announcement away from the caller.
	dispatch func(func())
}

func NewRoleService(community CommunityClient, announcer Announcer, announceTimeout time.Duration) *service {
	return &service{
		community:       community,
		announcer:       announcer,
		announceTimeout: announceTimeout,
		dispatch:        func(fn func()) { go fn() },
	}
}

// Grant adds the subscriber role to the member. Granting a role the member
// already holds is a success, so repeated calls are harmless.
func (svc *service) Grant(ctx context.Context, identityID string) model.RoleGrantOutcome {
	out := svc.grant(ctx, identityID)

	label := string(out.Failure)
	if out.Success {
		label = "success"
	}
	metrics.RoleGrants.WithLabelValues(label).Inc()

	return out
}

func (svc *service) grant(ctx context.Context, identityID string) model.RoleGrantOutcome {
	log := logger.With(logger.String("identity_id", identityID))

	if !model.IsIdentityID(identityID) {
		log.Warn(ctx, "role grant requested without a valid identity id")
		return model.RoleGrantOutcome{Message: MsgMissingIdentity, Failure: model.GrantFailureMalformedInput}
	}

	err := svc.community.AddMemberRole(ctx, identityID)
	if err != nil {
		out := outcomeFromError(err)
		log.Error(ctx, "role grant failed",
			logger.String("failure", string(out.Failure)),
			logger.String("detail", out.Detail),
			logger.ErrorF(err),
		)
		return out
	}

	log.Info(ctx, "role granted")

	svc.announce(ctx, identityID)

	return model.RoleGrantOutcome{Success: true, Message: MsgGranted}
}

func (svc *service) announce(ctx context.Context, identityID string) {
	detached := context.WithoutCancel(ctx)

	svc.dispatch(func() {
		actx, cancel := context.WithTimeout(detached, svc.announceTimeout)
		defer cancel()

		if err := svc.announcer.Announce(actx, model.Announcement{IdentityID: identityID}); err != nil {
			logger.Error(actx, "subscription announcement failed",
				logger.String("identity_id", identityID),
				logger.ErrorF(err),
			)
		}
	})
}

func outcomeFromError(err error) model.RoleGrantOutcome {
	var rejection *model.RejectionError

	switch {
	case errors.Is(err, model.ErrMemberNotFound):
		return model.RoleGrantOutcome{Message: MsgMemberNotFound, Failure: model.GrantFailureMemberNotFound, Detail: err.Error()}
	case errors.Is(err, model.ErrPermissionDenied):
		return model.RoleGrantOutcome{Message: MsgPermissionDenied, Failure: model.GrantFailurePermissionDenied, Detail: err.Error()}
	case errors.As(err, &rejection):
		return model.RoleGrantOutcome{
			Message: msgUpstream,
			Failure: model.GrantFailureUpstream,
			Detail:  rejection.Body,
		}
	default:
		return model.RoleGrantOutcome{Message: msgTransport, Failure: model.GrantFailureTransport, Detail: err.Error()}
	}
}
