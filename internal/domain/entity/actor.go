package entity

type ActorRole string

const (
	ActorRoleInfluencer ActorRole = "influencer"
	ActorRoleBrand      ActorRole = "brand"
	ActorRoleNone       ActorRole = "none"
)

// Actor is the resolved role of an authenticated user for authorization
// purposes: either an influencer profile, a brand profile, or neither.
// It is resolved once per request and passed through.
type Actor struct {
	Role      ActorRole
	UserID    string
	ProfileID string
}

func (a Actor) IsInfluencer() bool { return a.Role == ActorRoleInfluencer }
func (a Actor) IsBrand() bool      { return a.Role == ActorRoleBrand }
