package local

import (
	"os/user"
	"strconv"
)

// IdentityResolver converts numeric ownership ids into display names.
// A failed lookup is fatal for the invocation rather than a per-entry
// skip: an unresolvable id signals an unusual environment worth
// surfacing instead of silently degrading.
type IdentityResolver interface {
	LookupOwner(uid int64) (string, error)
	LookupGroup(gid int64) (string, error)
}

// OSResolver resolves ids through the operating system's user and
// group databases.
type OSResolver struct{}

func (OSResolver) LookupOwner(uid int64) (string, error) {
	u, err := user.LookupId(strconv.FormatInt(uid, 10))
	if err != nil {
		return "", err
	}
	return u.Username, nil
}

func (OSResolver) LookupGroup(gid int64) (string, error) {
	g, err := user.LookupGroupId(strconv.FormatInt(gid, 10))
	if err != nil {
		return "", err
	}
	return g.Name, nil
}
