package usecase

import (
	"context"
	"sort"
	"time"

	"main/dto"
	"main/model"
	"main/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

type DashboardService struct {
	NotesRepo       *repository.NotesRepo
	AssignmentsRepo *repository.AssignmentsRepo
	RemindersRepo   *repository.RemindersRepo
	TimetableRepo   *repository.TimetableRepo
}

// GetStats fans out the dashboard queries concurrently and joins them
// all-or-nothing: any failure fails the whole aggregate, no partial result.
func (s *DashboardService) GetStats(ctx context.Context, userID primitive.ObjectID) (*dto.DashboardStats, error) {
	now := time.Now()
	nextWeek := now.Add(7 * 24 * time.Hour)
	today := now.Weekday().String()

	var stats dto.DashboardStats

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		total, err := s.NotesRepo.CountOwned(ctx, userID, nil)
		stats.Notes.Total = total
		return err
	})
	g.Go(func() error {
		count, err := s.AssignmentsRepo.CountByStatus(ctx, userID, model.AssignmentPending)
		stats.Assignments.Pending = count
		return err
	})
	g.Go(func() error {
		count, err := s.AssignmentsRepo.CountByStatus(ctx, userID, model.AssignmentInProgress)
		stats.Assignments.InProgress = count
		return err
	})
	g.Go(func() error {
		count, err := s.AssignmentsRepo.CountByStatus(ctx, userID, model.AssignmentCompleted)
		stats.Assignments.Completed = count
		return err
	})
	g.Go(func() error {
		count, err := s.RemindersRepo.CountUpcoming(ctx, userID, now, nextWeek)
		stats.UpcomingReminders = count
		return err
	})
	g.Go(func() error {
		// start_time holds free-text labels, so "today's" order is
		// lexicographic on the label, not chronological.
		entries, err := s.TimetableRepo.FindByDay(ctx, userID, today)
		stats.TodayTimetable = entries
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Per-kind fetch limits of the activity feed.
const (
	recentNotesLimit       = 3
	recentAssignmentsLimit = 3
	recentRemindersLimit   = 4
	activityFeedLimit      = 10
)

var recentSort = bson.D{{Key: "updated_at", Value: -1}}

// GetActivity merges the most recently updated notes, assignments and
// reminders into one feed sorted by update time, newest first.
func (s *DashboardService) GetActivity(ctx context.Context, userID primitive.ObjectID) ([]dto.ActivityItem, error) {
	var (
		notes       []model.Note
		assignments []model.Assignment
		reminders   []model.Reminder
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		notes, err = s.NotesRepo.FindOwnedAll(ctx, userID, nil, recentSort, recentNotesLimit)
		return err
	})
	g.Go(func() error {
		var err error
		assignments, err = s.AssignmentsRepo.FindOwnedAll(ctx, userID, nil, recentSort, recentAssignmentsLimit)
		return err
	})
	g.Go(func() error {
		var err error
		reminders, err = s.RemindersRepo.FindOwnedAll(ctx, userID, nil, recentSort, recentRemindersLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return mergeActivity(notes, assignments, reminders), nil
}

func mergeActivity(notes []model.Note, assignments []model.Assignment, reminders []model.Reminder) []dto.ActivityItem {
	items := make([]dto.ActivityItem, 0, len(notes)+len(assignments)+len(reminders))

	for _, n := range notes {
		items = append(items, dto.ActivityItem{ID: n.ID, Title: n.Title, UpdatedAt: n.UpdatedAt, Type: "note"})
	}
	for _, a := range assignments {
		items = append(items, dto.ActivityItem{ID: a.ID, Title: a.Title, UpdatedAt: a.UpdatedAt, Type: "assignment"})
	}
	for _, r := range reminders {
		items = append(items, dto.ActivityItem{ID: r.ID, Title: r.Title, UpdatedAt: r.UpdatedAt, Type: "reminder"})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].UpdatedAt.After(items[j].UpdatedAt)
	})

	if len(items) > activityFeedLimit {
		items = items[:activityFeedLimit]
	}
	return items
}
