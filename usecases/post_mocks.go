package usecases

import (
	"slackpost/models"

	"github.com/samber/mo"
)

// MockResolver implements Resolver for testing
type MockResolver struct {
	ResolveKindFunc     func(prefix string) mo.Option[models.CommunityKind]
	LookupCommunityFunc func(kind models.CommunityKind, name string) (mo.Option[models.Community], error)
}

func (m *MockResolver) ResolveKind(prefix string) mo.Option[models.CommunityKind] {
	if m.ResolveKindFunc != nil {
		return m.ResolveKindFunc(prefix)
	}
	return mo.None[models.CommunityKind]()
}

func (m *MockResolver) LookupCommunity(kind models.CommunityKind, name string) (mo.Option[models.Community], error) {
	if m.LookupCommunityFunc != nil {
		return m.LookupCommunityFunc(kind, name)
	}
	return mo.None[models.Community](), nil
}

// MockSlackAPI implements clients.SlackAPI for testing
type MockSlackAPI struct {
	ListCommunitiesFunc func(kind models.CommunityKind) ([]any, error)
	PostMessageFunc     func(id, text string) error
}

func (m *MockSlackAPI) ListCommunities(kind models.CommunityKind) ([]any, error) {
	if m.ListCommunitiesFunc != nil {
		return m.ListCommunitiesFunc(kind)
	}
	return nil, nil
}

func (m *MockSlackAPI) PostMessage(id, text string) error {
	if m.PostMessageFunc != nil {
		return m.PostMessageFunc(id, text)
	}
	return nil
}
