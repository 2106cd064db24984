package models

// CommunityKind is the category discriminator distinguishing channel
// from group communities.
type CommunityKind string

const (
	KindChannel CommunityKind = "channel"
	KindGroup   CommunityKind = "group"
)

// Kinds returns all community kinds in declared order. The order
// matters: type prefixes resolve to the first matching kind.
func Kinds() []CommunityKind {
	return []CommunityKind{KindChannel, KindGroup}
}

// Collection returns the pluralized API-facing name, used both as the
// list endpoint prefix and as the response payload key.
func (k CommunityKind) Collection() string {
	return string(k) + "s"
}

// Community is a named destination on the messaging platform that can
// receive a posted message. Kind is the explicit discriminant; there is
// no behavior difference between kinds beyond the label rendering.
type Community struct {
	ID   string
	Name string
	Kind CommunityKind
}

// Label renders the user-facing destination name: "#general" for
// channels, "ops group" for groups.
func (c Community) Label() string {
	if c.Kind == KindChannel {
		return "#" + c.Name
	}
	return c.Name + " group"
}

// CommunityFromRecord builds a Community from one decoded list entry.
// Entries are taken as-is from the API response; absent or ill-typed
// id/name fields become empty strings, never an error.
func CommunityFromRecord(kind CommunityKind, record any) Community {
	fields, _ := record.(map[string]any)
	id, _ := fields["id"].(string)
	name, _ := fields["name"].(string)
	return Community{ID: id, Name: name, Kind: kind}
}
