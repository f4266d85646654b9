package model

// ExternalIdentity is the caller's stable id on the identity platform.
// It travels by value through redirect URLs and is never stored.
type ExternalIdentity struct {
	ID       string
	Username string
}

const maxIdentityIDLen = 20

// IsIdentityID reports whether id looks like a platform snowflake: ASCII
// digits only. Ids are spliced into provider URL paths, so nothing else may
// pass.
func IsIdentityID(id string) bool {
	if id == "" || len(id) > maxIdentityIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return false
		}
	}
	return true
}
