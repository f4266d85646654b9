package model

type GrantFailure string

const (
	GrantFailureNone             GrantFailure = ""
	GrantFailureMalformedInput   GrantFailure = "malformed_input"
	GrantFailureMemberNotFound   GrantFailure = "member_not_found"
	GrantFailurePermissionDenied GrantFailure = "permission_denied"
	GrantFailureUpstream         GrantFailure = "upstream"
	GrantFailureTransport        GrantFailure = "transport"
)

// RoleGrantOutcome is returned synchronously to whoever asked for the grant
// and consumed within the same request.
type RoleGrantOutcome struct {
	Success bool
	Message string
	Failure GrantFailure
	// Detail holds the raw provider response for logs. It is never shown to users.
	Detail string
}

type Announcement struct {
	IdentityID string
}
