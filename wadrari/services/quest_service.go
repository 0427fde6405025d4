package services

import (
	"context"
	"time"

	"github.com/SimaxBen/wadrari/wadrari/database/models"
	"github.com/SimaxBen/wadrari/wadrari/database/repositories"
	"github.com/SimaxBen/wadrari/wadrari/gateway"
	"github.com/SimaxBen/wadrari/wadrari/logger"
)

// CompletionOutcome reports what a quest completion attempt did.
type CompletionOutcome struct {
	QuestID        string
	TrophiesEarned int64
	// CompletionCount is the number of completions inside the current
	// window after this attempt.
	CompletionCount int
}

// QuestService runs the completion ledger: window checks, idempotent
// skips and trophy awards. Every remote step goes through the gateway so
// the retry and timeout policy covers it.
type QuestService struct {
	gw  *gateway.Gateway
	now func() time.Time
}

func NewQuestService(gw *gateway.Gateway) *QuestService {
	return &QuestService{gw: gw, now: time.Now}
}

// ListForUser returns the active quests with the user's progress inside
// the current window attached.
func (s *QuestService) ListForUser(ctx context.Context, userID string) gateway.Result[[]*models.QuestWithProgress] {
	questsRes := s.gw.ListActiveQuests(ctx)
	if !questsRes.OK {
		return gateway.Fail[[]*models.QuestWithProgress](questsRes.Err)
	}

	day := models.DayString(s.now())
	completionsRes := s.gw.ListQuestCompletions(ctx, userID, day)
	if !completionsRes.OK {
		return gateway.Fail[[]*models.QuestWithProgress](completionsRes.Err)
	}
	today := make(map[string]int, len(completionsRes.Data))
	for _, c := range completionsRes.Data {
		today[c.QuestID] = c.CompletionCount
	}

	out := make([]*models.QuestWithProgress, 0, len(questsRes.Data))
	for _, quest := range questsRes.Data {
		progress := &models.QuestWithProgress{Quest: quest}

		if quest.OneTime() {
			countRes := s.gw.GetLifetimeCompletions(ctx, userID, quest.ID)
			if !countRes.OK {
				return gateway.Fail[[]*models.QuestWithProgress](countRes.Err)
			}
			progress.CompletionCount = countRes.Data
			progress.Completed = countRes.Data > 0
		} else {
			progress.CompletionCount = today[quest.ID]
			progress.Completed = progress.CompletionCount >= quest.CompletionLimit()
		}
		out = append(out, progress)
	}
	return gateway.Ok(out)
}

// Complete attempts one completion for userID. An attempt past the
// window's limit is not an error: it returns a skipped result and changes
// nothing, so retries and double taps stay harmless.
func (s *QuestService) Complete(ctx context.Context, userID, questID string) gateway.Result[*CompletionOutcome] {
	questRes := s.gw.GetQuest(ctx, questID)
	if !questRes.OK {
		return gateway.Fail[*CompletionOutcome](questRes.Err)
	}
	quest := questRes.Data
	if !quest.IsActive {
		return gateway.Fail[*CompletionOutcome](gateway.NewError(gateway.KindValidation, "quest is not active"))
	}

	day := models.DayString(s.now())
	outcome := &CompletionOutcome{QuestID: quest.ID}

	if quest.OneTime() {
		countRes := s.gw.GetLifetimeCompletions(ctx, userID, quest.ID)
		if !countRes.OK {
			return gateway.Fail[*CompletionOutcome](countRes.Err)
		}
		if countRes.Data > 0 {
			outcome.CompletionCount = countRes.Data
			return gateway.Skip(outcome)
		}
	} else {
		completionRes := s.gw.GetQuestCompletion(ctx, userID, quest.ID, day)
		if !completionRes.OK {
			return gateway.Fail[*CompletionOutcome](completionRes.Err)
		}
		if completion := completionRes.Data; completion != nil {
			if completion.CompletionCount >= quest.CompletionLimit() {
				outcome.CompletionCount = completion.CompletionCount
				return gateway.Skip(outcome)
			}
			outcome.CompletionCount = completion.CompletionCount
		}
	}

	// Ledger first: a crash between the two writes loses trophies, never
	// double-awards them.
	if res := s.gw.IncrementQuestCompletion(ctx, userID, quest.ID, day, quest.TrophyReward); !res.OK {
		return gateway.Fail[*CompletionOutcome](res.Err)
	}
	if res := s.gw.AddTrophies(ctx, userID, quest.TrophyReward, quest.TrophyReward); !res.OK {
		return gateway.Fail[*CompletionOutcome](res.Err)
	}

	outcome.CompletionCount++
	outcome.TrophiesEarned = quest.TrophyReward

	// Daily aggregate is best effort.
	if res := s.gw.RecordActivity(ctx, userID, day, repositories.ActivityDelta{
		QuestsCompleted: 1,
		Trophies:        quest.TrophyReward,
	}); !res.OK {
		logger.LogError("recording quest activity failed",
			"user_id", userID, "quest_id", quest.ID, "error", res.Err)
	}

	logger.LogSystem("quest completed",
		"user_id", userID, "quest", quest.Name, "trophies", quest.TrophyReward)
	return gateway.Ok(outcome)
}

// CreateQuest registers a new quest definition. Admin gating happens at
// the call site.
func (s *QuestService) CreateQuest(ctx context.Context, quest *models.Quest) gateway.Result[*models.Quest] {
	if quest.TrophyReward < 0 {
		return gateway.Fail[*models.Quest](gateway.NewError(gateway.KindValidation, "negative trophy reward"))
	}
	switch quest.Type {
	case models.QuestTypeDaily, models.QuestTypeRepeatable, models.QuestTypeOneTime, models.QuestTypeLifetime:
	default:
		return gateway.Fail[*models.Quest](gateway.NewError(gateway.KindValidation, "unknown quest type"))
	}
	return s.gw.CreateQuest(ctx, quest)
}

// RemoveQuest deactivates a quest. Its completion history stays in the
// ledger.
func (s *QuestService) RemoveQuest(ctx context.Context, questID string) gateway.Result[struct{}] {
	return s.gw.DeleteQuest(ctx, questID)
}
