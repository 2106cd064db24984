package usecases

import (
	"errors"
	"fmt"

	"slackpost/clients"
	"slackpost/core/log"
	"slackpost/models"

	"github.com/samber/mo"
)

// One sentinel per required option. Each field is independently
// required and reports its own message before any network call.
var (
	ErrMissingType    = errors.New("no community type provided, use --type")
	ErrMissingName    = errors.New("no destination name provided, use --name")
	ErrMissingToken   = errors.New("no API token provided, use --token")
	ErrMissingMessage = errors.New("no message text provided, use --message")
)

// UnsupportedTypeError means the type input is a prefix of neither
// "channels" nor "groups".
type UnsupportedTypeError struct {
	Input string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported community type %q, expected a prefix of \"channels\" or \"groups\"", e.Input)
}

// UnknownTargetError means the list call succeeded but no community of
// the resolved kind carries the requested name.
type UnknownTargetError struct {
	Kind models.CommunityKind
	Name string
}

func (e *UnknownTargetError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Name)
}

// PostParams holds the four required inputs of one post invocation.
type PostParams struct {
	Type    string
	Name    string
	Token   string
	Message string
}

// Validate checks each field for presence and returns the sentinel for
// the first absent one.
func (p PostParams) Validate() error {
	if p.Type == "" {
		return ErrMissingType
	}
	if p.Name == "" {
		return ErrMissingName
	}
	if p.Token == "" {
		return ErrMissingToken
	}
	if p.Message == "" {
		return ErrMissingMessage
	}
	return nil
}

// Resolver is the name-to-community resolution surface the post
// pipeline depends on.
type Resolver interface {
	ResolveKind(prefix string) mo.Option[models.CommunityKind]
	LookupCommunity(kind models.CommunityKind, name string) (mo.Option[models.Community], error)
}

// PostResult reports the destination a message was delivered to.
type PostResult struct {
	Destination models.Community
}

// PostUseCase runs the whole pipeline: validate inputs, resolve the
// community kind, look the destination up by exact name, post the
// message. One pass, at most two sequential network calls, every
// failure terminal.
type PostUseCase struct {
	resolver Resolver
	api      clients.SlackAPI
}

func NewPostUseCase(resolver Resolver, api clients.SlackAPI) *PostUseCase {
	return &PostUseCase{
		resolver: resolver,
		api:      api,
	}
}

func (u *PostUseCase) Run(params PostParams) (*PostResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	maybeKind := u.resolver.ResolveKind(params.Type)
	if !maybeKind.IsPresent() {
		return nil, &UnsupportedTypeError{Input: params.Type}
	}
	kind := maybeKind.MustGet()
	log.Info("📋 Resolved community kind", "type", params.Type, "kind", kind)

	maybeCommunity, err := u.resolver.LookupCommunity(kind, params.Name)
	if err != nil {
		return nil, err
	}
	if !maybeCommunity.IsPresent() {
		return nil, &UnknownTargetError{Kind: kind, Name: params.Name}
	}
	community := maybeCommunity.MustGet()

	if err := u.api.PostMessage(community.ID, params.Message); err != nil {
		return nil, fmt.Errorf("failed to post message to %s: %w", community.Label(), err)
	}

	log.Info("✅ Completed successfully - message posted", "destination", community.Label())
	return &PostResult{Destination: community}, nil
}
