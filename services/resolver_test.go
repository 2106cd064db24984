package services

import (
	"errors"
	"testing"

	"slackpost/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSlackAPI implements clients.SlackAPI for resolver tests
type fakeSlackAPI struct {
	ListCommunitiesFunc func(kind models.CommunityKind) ([]any, error)
	PostMessageFunc     func(id, text string) error
}

func (f *fakeSlackAPI) ListCommunities(kind models.CommunityKind) ([]any, error) {
	if f.ListCommunitiesFunc != nil {
		return f.ListCommunitiesFunc(kind)
	}
	return nil, nil
}

func (f *fakeSlackAPI) PostMessage(id, text string) error {
	if f.PostMessageFunc != nil {
		return f.PostMessageFunc(id, text)
	}
	return nil
}

func TestResolverService_ResolveKind(t *testing.T) {
	tests := []struct {
		name       string
		prefix     string
		expectNone bool
		expected   models.CommunityKind
	}{
		{name: "single letter channel prefix", prefix: "c", expected: models.KindChannel},
		{name: "short channel prefix", prefix: "ch", expected: models.KindChannel},
		{name: "singular channel", prefix: "channel", expected: models.KindChannel},
		{name: "full collection key channels", prefix: "channels", expected: models.KindChannel},
		{name: "single letter group prefix", prefix: "g", expected: models.KindGroup},
		{name: "grp is not a prefix of groups", prefix: "grp", expectNone: true},
		{name: "gro prefix", prefix: "gro", expected: models.KindGroup},
		{name: "singular group", prefix: "group", expected: models.KindGroup},
		{name: "full collection key groups", prefix: "groups", expected: models.KindGroup},
		{name: "no kind matches", prefix: "users", expectNone: true},
		{name: "overlong input matches nothing", prefix: "channelss", expectNone: true},
		{name: "prefix match is case-sensitive", prefix: "Channel", expectNone: true},
	}

	resolver := NewResolverService(&fakeSlackAPI{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			maybeKind := resolver.ResolveKind(tt.prefix)
			if tt.expectNone {
				assert.False(t, maybeKind.IsPresent())
				return
			}
			require.True(t, maybeKind.IsPresent())
			assert.Equal(t, tt.expected, maybeKind.MustGet())
		})
	}
}

func TestResolverService_ResolveKind_EmptyPrefixResolvesToChannel(t *testing.T) {
	// Every string starts with "", and the channel kind is declared
	// first, so the empty prefix resolves to channel rather than to no
	// match. Existing invocations rely on this; pin it.
	resolver := NewResolverService(&fakeSlackAPI{})

	maybeKind := resolver.ResolveKind("")

	require.True(t, maybeKind.IsPresent())
	assert.Equal(t, models.KindChannel, maybeKind.MustGet())
}

func TestResolverService_FindByName(t *testing.T) {
	communities := []models.Community{
		{ID: "C1", Name: "general", Kind: models.KindChannel},
		{ID: "C2", Name: "random", Kind: models.KindChannel},
		{ID: "C3", Name: "random", Kind: models.KindChannel},
	}

	resolver := NewResolverService(&fakeSlackAPI{})

	t.Run("exact match", func(t *testing.T) {
		maybeCommunity := resolver.FindByName(communities, "general")
		require.True(t, maybeCommunity.IsPresent())
		assert.Equal(t, "C1", maybeCommunity.MustGet().ID)
	})

	t.Run("first match wins on duplicate names", func(t *testing.T) {
		maybeCommunity := resolver.FindByName(communities, "random")
		require.True(t, maybeCommunity.IsPresent())
		assert.Equal(t, "C2", maybeCommunity.MustGet().ID)
	})

	t.Run("match is case-sensitive", func(t *testing.T) {
		maybeCommunity := resolver.FindByName(communities, "General")
		assert.False(t, maybeCommunity.IsPresent())
	})

	t.Run("no match", func(t *testing.T) {
		maybeCommunity := resolver.FindByName(communities, "nope")
		assert.False(t, maybeCommunity.IsPresent())
	})

	t.Run("empty list", func(t *testing.T) {
		maybeCommunity := resolver.FindByName(nil, "general")
		assert.False(t, maybeCommunity.IsPresent())
	})
}

func TestResolverService_LookupCommunity(t *testing.T) {
	t.Run("finds community among listed records", func(t *testing.T) {
		api := &fakeSlackAPI{
			ListCommunitiesFunc: func(kind models.CommunityKind) ([]any, error) {
				assert.Equal(t, models.KindChannel, kind)
				return []any{
					map[string]any{"id": "C1", "name": "general"},
					map[string]any{"id": "C2", "name": "random"},
				}, nil
			},
		}
		resolver := NewResolverService(api)

		maybeCommunity, err := resolver.LookupCommunity(models.KindChannel, "random")

		require.NoError(t, err)
		require.True(t, maybeCommunity.IsPresent())
		assert.Equal(t, models.Community{ID: "C2", Name: "random", Kind: models.KindChannel}, maybeCommunity.MustGet())
	})

	t.Run("empty list is a clean miss", func(t *testing.T) {
		api := &fakeSlackAPI{
			ListCommunitiesFunc: func(kind models.CommunityKind) ([]any, error) {
				return []any{}, nil
			},
		}
		resolver := NewResolverService(api)

		maybeCommunity, err := resolver.LookupCommunity(models.KindGroup, "ops")

		require.NoError(t, err)
		assert.False(t, maybeCommunity.IsPresent())
	})

	t.Run("list failure propagates", func(t *testing.T) {
		api := &fakeSlackAPI{
			ListCommunitiesFunc: func(kind models.CommunityKind) ([]any, error) {
				return nil, errors.New("connection refused")
			},
		}
		resolver := NewResolverService(api)

		_, err := resolver.LookupCommunity(models.KindChannel, "general")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list channels")
		assert.Contains(t, err.Error(), "connection refused")
	})
}
