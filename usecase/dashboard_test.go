package usecase

import (
	"context"
	"testing"
	"time"

	"main/dto"
	"main/model"
	"main/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMergeActivityOrdersNewestFirst(t *testing.T) {
	base := time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)

	notes := []model.Note{
		{ID: primitive.NewObjectID(), Title: "note old", UpdatedAt: base.Add(-2 * time.Hour)},
		{ID: primitive.NewObjectID(), Title: "note new", UpdatedAt: base.Add(3 * time.Hour)},
	}
	assignments := []model.Assignment{
		{ID: primitive.NewObjectID(), Title: "assignment", UpdatedAt: base.Add(time.Hour)},
	}
	reminders := []model.Reminder{
		{ID: primitive.NewObjectID(), Title: "reminder", UpdatedAt: base},
	}

	items := mergeActivity(notes, assignments, reminders)

	if len(items) != 4 {
		t.Fatalf("Got %d items, want 4", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i].UpdatedAt.After(items[i-1].UpdatedAt) {
			t.Errorf("Items out of order at %d: %v before %v", i, items[i-1].UpdatedAt, items[i].UpdatedAt)
		}
	}
	if items[0].Title != "note new" || items[0].Type != "note" {
		t.Errorf("Newest item = %q (%s), want note new", items[0].Title, items[0].Type)
	}
	if items[3].Title != "note old" {
		t.Errorf("Oldest item = %q, want note old", items[3].Title)
	}
}

func TestMergeActivityTruncates(t *testing.T) {
	base := time.Now()

	var notes []model.Note
	var assignments []model.Assignment
	var reminders []model.Reminder
	for i := 0; i < 5; i++ {
		notes = append(notes, model.Note{ID: primitive.NewObjectID(), UpdatedAt: base.Add(time.Duration(i) * time.Minute)})
		assignments = append(assignments, model.Assignment{ID: primitive.NewObjectID(), UpdatedAt: base.Add(time.Duration(i+5) * time.Minute)})
		reminders = append(reminders, model.Reminder{ID: primitive.NewObjectID(), UpdatedAt: base.Add(time.Duration(i+10) * time.Minute)})
	}

	items := mergeActivity(notes, assignments, reminders)

	if len(items) != activityFeedLimit {
		t.Fatalf("Got %d items, want %d", len(items), activityFeedLimit)
	}
	// The newest ten are all reminders and assignments; the notes fall off.
	for _, item := range items {
		if item.Type == "note" {
			t.Errorf("Note survived truncation: %+v", item)
		}
	}
}

func TestGetStatsPartition(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	assignmentsRepo := repository.GetAssignmentsRepo(db)
	assignmentsService := &AssignmentsService{AssignmentsRepo: assignmentsRepo}
	dashboardService := &DashboardService{
		NotesRepo:       repository.GetNotesRepo(db),
		AssignmentsRepo: assignmentsRepo,
		RemindersRepo:   repository.GetRemindersRepo(db),
		TimetableRepo:   repository.GetTimetableRepo(db),
	}

	userID := primitive.NewObjectID()
	other := primitive.NewObjectID()
	ctx := context.Background()

	byStatus := map[string]int{
		model.AssignmentPending:    2,
		model.AssignmentInProgress: 1,
		model.AssignmentCompleted:  3,
	}
	for status, n := range byStatus {
		for i := 0; i < n; i++ {
			_, err := assignmentsService.Create(ctx, userID, dto.CreateAssignmentRequest{
				Title:  "Assignment",
				Status: status,
			})
			if err != nil {
				t.Fatalf("Create failed: %v", err)
			}
		}
	}
	// Another user's assignment must not leak into the counts.
	if _, err := assignmentsService.Create(ctx, other, dto.CreateAssignmentRequest{Title: "Theirs"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	stats, err := dashboardService.GetStats(ctx, userID)
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}

	if stats.Assignments.Pending != 2 || stats.Assignments.InProgress != 1 || stats.Assignments.Completed != 3 {
		t.Errorf("Counts = %+v, want 2/1/3", stats.Assignments)
	}

	total, err := assignmentsRepo.CountOwned(ctx, userID, nil)
	if err != nil {
		t.Fatalf("CountOwned failed: %v", err)
	}
	sum := stats.Assignments.Pending + stats.Assignments.InProgress + stats.Assignments.Completed
	if sum != total {
		t.Errorf("Status counts sum to %d, total is %d", sum, total)
	}
	if total != 6 {
		t.Errorf("Total = %d, want 6", total)
	}
}

func TestMergeActivityEmpty(t *testing.T) {
	items := mergeActivity(nil, nil, nil)
	if len(items) != 0 {
		t.Errorf("Got %d items, want 0", len(items))
	}
	if items == nil {
		t.Error("Expected an empty slice, not nil")
	}
}
