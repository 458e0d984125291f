// Package identity mints and verifies the HS256 bearer tokens used by the
// account risk API, and carries the resulting caller through a request
// context.
//
//	tok, err := identity.Issue(secret, "alice", time.Hour)
//	id, err := identity.Parse(secret, tok)
//	ctx = identity.Set(ctx, id.WithRemoteIP(ip))
package identity
