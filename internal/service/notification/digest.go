package notification

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/heartmarshall/planner-backend/internal/adapter/email"
	"github.com/heartmarshall/planner-backend/internal/domain"
)

const digestHighPriorityLimit = 10

type userLister interface {
	List(ctx context.Context) ([]domain.User, error)
}

type activityStats interface {
	CountByStatus(ctx context.Context, ownerID *uuid.UUID) (map[domain.ActivityStatus]int, error)
	CountByArea(ctx context.Context, ownerID *uuid.UUID) (map[string]int, error)
	List(ctx context.Context, f domain.ActivityFilter) ([]domain.Activity, error)
}

// RunSummary counts the outcome of a digest or report run.
type RunSummary struct {
	Users   int
	Sent    int
	Failed  int
	Skipped int
}

// Digester sends the daily digest and the weekly report to every user
// whose preferences allow it. It runs synchronously, one user at a time.
type Digester struct {
	users      userLister
	activities activityStats
	gate       eventGate
	composer   *Composer
	dispatcher directDispatcher
	log        *slog.Logger
}

// NewDigester creates a Digester.
func NewDigester(
	log *slog.Logger,
	users userLister,
	activities activityStats,
	gate eventGate,
	composer *Composer,
	dispatcher directDispatcher,
) *Digester {
	return &Digester{
		users:      users,
		activities: activities,
		gate:       gate,
		composer:   composer,
		dispatcher: dispatcher,
		log:        log.With("service", "digest"),
	}
}

// Run sends kind (EventDigest or EventReport) to every eligible user.
// Users without active activities are skipped.
func (d *Digester) Run(ctx context.Context, kind domain.EventType) (RunSummary, error) {
	if kind != domain.EventDigest && kind != domain.EventReport {
		return RunSummary{}, fmt.Errorf("digest: unsupported kind %q", kind)
	}
	if !d.dispatcher.Configured() {
		return RunSummary{}, email.ErrNotConfigured
	}

	users, err := d.users.List(ctx)
	if err != nil {
		return RunSummary{}, fmt.Errorf("list users: %w", err)
	}

	var sum RunSummary
	for _, u := range users {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		sum.Users++

		if !d.gate.ShouldNotify(ctx, u.ID, kind) {
			sum.Skipped++
			continue
		}

		summary, err := d.summarize(ctx, u.ID, kind)
		if err != nil {
			return sum, fmt.Errorf("summarize user %s: %w", u.ID, err)
		}
		if summary.Pending+summary.InProgress+summary.Completed == 0 {
			sum.Skipped++
			continue
		}

		actor := u.Actor()
		var msg Rendered
		if kind == domain.EventDigest {
			msg, err = d.composer.ComposeDigest(actor.DisplayName(), summary)
		} else {
			msg, err = d.composer.ComposeReport(actor.DisplayName(), summary)
		}
		if err != nil {
			return sum, err
		}

		res := d.dispatcher.Dispatch(ctx, DispatchRequest{
			UserID:  u.ID,
			Type:    kind,
			To:      u.Email,
			Subject: msg.Subject,
			HTML:    msg.HTML,
		})
		if res.Success {
			sum.Sent++
		} else {
			sum.Failed++
		}
	}

	d.log.InfoContext(ctx, "digest run finished",
		slog.String("kind", kind.String()),
		slog.Int("users", sum.Users),
		slog.Int("sent", sum.Sent),
		slog.Int("failed", sum.Failed),
		slog.Int("skipped", sum.Skipped),
	)
	return sum, nil
}

func (d *Digester) summarize(ctx context.Context, userID uuid.UUID, kind domain.EventType) (Summary, error) {
	counts, err := d.activities.CountByStatus(ctx, &userID)
	if err != nil {
		return Summary{}, err
	}
	s := Summary{
		Pending:    counts[domain.ActivityStatusPending],
		InProgress: counts[domain.ActivityStatusInProgress],
		Completed:  counts[domain.ActivityStatusCompleted],
	}
	if total := s.Pending + s.InProgress + s.Completed; total > 0 {
		s.CompletionRate = float64(s.Completed) / float64(total) * 100
	}

	switch kind {
	case domain.EventDigest:
		high := domain.PriorityHigh
		completed := domain.ActivityStatusCompleted
		list, err := d.activities.List(ctx, domain.ActivityFilter{
			OwnerID:       &userID,
			Priority:      &high,
			ExcludeStatus: &completed,
			Limit:         digestHighPriorityLimit,
		})
		if err != nil {
			return Summary{}, err
		}
		for _, a := range list {
			s.HighPriority = append(s.HighPriority, viewOf(a))
		}
	case domain.EventReport:
		areas, err := d.activities.CountByArea(ctx, &userID)
		if err != nil {
			return Summary{}, err
		}
		for area, n := range areas {
			s.Areas = append(s.Areas, AreaCount{Area: area, Count: n})
		}
		sort.Slice(s.Areas, func(i, j int) bool {
			if s.Areas[i].Count != s.Areas[j].Count {
				return s.Areas[i].Count > s.Areas[j].Count
			}
			return s.Areas[i].Area < s.Areas[j].Area
		})
	}
	return s, nil
}
