package services

import (
	"fmt"
	"strings"

	"slackpost/clients"
	"slackpost/core/log"
	"slackpost/models"

	"github.com/samber/mo"
)

// ResolverService turns a user-supplied type prefix and display name
// into a concrete community via the list endpoint.
type ResolverService struct {
	api clients.SlackAPI
}

func NewResolverService(api clients.SlackAPI) *ResolverService {
	return &ResolverService{api: api}
}

// ResolveKind matches the input against each kind's collection key in
// declared order and returns the first kind whose key starts with it.
// "c", "chan" and "channels" all resolve to the channel kind. So does
// the empty string, since every string starts with "" and the channel
// kind is declared first; existing invocations rely on this, so it is
// kept as-is.
func (s *ResolverService) ResolveKind(prefix string) mo.Option[models.CommunityKind] {
	for _, kind := range models.Kinds() {
		if strings.HasPrefix(kind.Collection(), prefix) {
			return mo.Some(kind)
		}
	}
	return mo.None[models.CommunityKind]()
}

// FindByName returns the first community whose name equals name
// exactly, case-sensitive. Names are not unique upstream; first match
// in input order wins.
func (s *ResolverService) FindByName(communities []models.Community, name string) mo.Option[models.Community] {
	for _, community := range communities {
		if community.Name == name {
			return mo.Some(community)
		}
	}
	return mo.None[models.Community]()
}

// LookupCommunity lists all communities of the given kind and looks the
// name up among them. A None result means the list call succeeded but
// no community carries that exact name.
func (s *ResolverService) LookupCommunity(kind models.CommunityKind, name string) (mo.Option[models.Community], error) {
	records, err := s.api.ListCommunities(kind)
	if err != nil {
		return mo.None[models.Community](), fmt.Errorf("failed to list %s: %w", kind.Collection(), err)
	}

	communities := make([]models.Community, 0, len(records))
	for _, record := range records {
		communities = append(communities, models.CommunityFromRecord(kind, record))
	}

	maybeCommunity := s.FindByName(communities, name)
	if maybeCommunity.IsPresent() {
		log.Info("✅ Resolved community", "name", name, "id", maybeCommunity.MustGet().ID)
	} else {
		log.Warn("No community matched", "kind", kind, "name", name, "candidates", len(communities))
	}
	return maybeCommunity, nil
}
