package domain

// Actor is the identity that triggered a verification: either a user or a
// system process. The zero value is an unknown system actor.
type Actor struct {
	userID     *UserID
	systemUser EventSystemUser
}

// UserActor attributes an action to the given user.
func UserActor(id UserID) Actor {
	return Actor{userID: &id}
}

// SystemActor attributes an action to the given system identity.
func SystemActor(s EventSystemUser) Actor {
	return Actor{systemUser: s}
}

// IsSystem reports whether the action was triggered by a system process.
func (a Actor) IsSystem() bool { return a.userID == nil }

// UserID returns the acting user, or nil for system actors.
func (a Actor) UserID() *UserID {
	if a.userID == nil {
		return nil
	}
	id := *a.userID

	return &id
}

// SystemUser returns the system identity. It is EventSystemUserUnknown for user actors.
func (a Actor) SystemUser() EventSystemUser { return a.systemUser }

func (a Actor) String() string {
	if a.userID != nil {
		return "user:" + a.userID.String()
	}

	return "system:" + a.systemUser.String()
}
