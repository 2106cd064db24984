package clients

import "slackpost/models"

// SlackAPI defines the two wire operations the post pipeline performs.
type SlackAPI interface {
	ListCommunities(kind models.CommunityKind) ([]any, error)
	PostMessage(id, text string) error
}
