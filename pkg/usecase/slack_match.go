package usecase

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/domain/model"
	slacksvc "github.com/secmon-lab/slack-deploy-pipeline/pkg/service/slack"
)

// MatchSlackMember looks up the Slack member whose real name equals the
// GitHub user's display name. Only complete profiles are candidates. A
// missing users:read scope is reported as SlackMatchUnavailable, not as an
// error; any other Slack failure is returned.
func (uc *UseCases) MatchSlackMember(ctx context.Context, user *model.GitHubUser) (*model.SlackMatch, error) {
	if user.Name == "" {
		return model.NewSlackMatchNotFound(user.Login), nil
	}

	members, err := uc.slack.ListHumanMembers(ctx)
	if err != nil {
		if scope, ok := slacksvc.MissingScope(err); ok {
			return model.NewSlackMatchUnavailable(
				fmt.Sprintf("SLACK_DEPLOY_BOT_TOKEN does not include %q OAuth scope.", scope),
			), nil
		}
		return nil, goerr.Wrap(err, "failed to list Slack members")
	}

	var candidates []*model.SlackMember
	for _, m := range members {
		if m.IsMatchable() && m.RealName == user.Name {
			candidates = append(candidates, m)
		}
	}

	switch len(candidates) {
	case 0:
		return model.NewSlackMatchNotFound(user.Name), nil
	case 1:
		return model.NewSlackMatchFound(candidates[0]), nil
	default:
		return model.NewSlackMatchAmbiguous(user.Name, len(candidates)), nil
	}
}
