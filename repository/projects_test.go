package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"main/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func insertTestProject(t *testing.T, repo *ProjectsRepo, creator primitive.ObjectID, members ...primitive.ObjectID) *model.Project {
	t.Helper()
	if members == nil {
		members = []primitive.ObjectID{}
	}
	project := &model.Project{
		Name:      "Study group",
		Members:   append(members, creator),
		CreatedBy: creator,
		Status:    model.ProjectActive,
	}
	if err := repo.Insert(context.Background(), project); err != nil {
		t.Fatalf("Failed to insert project: %v", err)
	}
	return project
}

func TestProjectCreatorGating(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := GetProjectsRepo(db)
	creator := primitive.NewObjectID()
	member := primitive.NewObjectID()
	ctx := context.Background()

	project := insertTestProject(t, repo, creator, member)

	t.Run("member cannot update", func(t *testing.T) {
		_, err := repo.UpdateByCreator(ctx, member, project.ID, bson.M{"name": "renamed"})
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("member cannot delete", func(t *testing.T) {
		if err := repo.DeleteByCreator(ctx, member, project.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("creator can update", func(t *testing.T) {
		updated, err := repo.UpdateByCreator(ctx, creator, project.ID, bson.M{"status": model.ProjectCompleted})
		if err != nil {
			t.Fatalf("UpdateByCreator failed: %v", err)
		}
		if updated.Status != model.ProjectCompleted {
			t.Errorf("Status = %q", updated.Status)
		}
	})
}

func TestProjectMembership(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := GetProjectsRepo(db)
	creator := primitive.NewObjectID()
	newMember := primitive.NewObjectID()
	ctx := context.Background()

	project := insertTestProject(t, repo, creator)

	t.Run("add member", func(t *testing.T) {
		updated, err := repo.AddMember(ctx, project.ID, newMember)
		if err != nil {
			t.Fatalf("AddMember failed: %v", err)
		}
		if !updated.HasMember(newMember) {
			t.Error("New member missing after add")
		}
	})

	t.Run("add is a set operation", func(t *testing.T) {
		updated, err := repo.AddMember(ctx, project.ID, newMember)
		if err != nil {
			t.Fatalf("AddMember failed: %v", err)
		}
		count := 0
		for _, m := range updated.Members {
			if m == newMember {
				count++
			}
		}
		if count != 1 {
			t.Errorf("Member appears %d times, want 1", count)
		}
	})

	t.Run("remove member", func(t *testing.T) {
		updated, err := repo.RemoveMember(ctx, project.ID, newMember)
		if err != nil {
			t.Fatalf("RemoveMember failed: %v", err)
		}
		if updated.HasMember(newMember) {
			t.Error("Member still present after remove")
		}
	})

	t.Run("remove absent member succeeds", func(t *testing.T) {
		if _, err := repo.RemoveMember(ctx, project.ID, newMember); err != nil {
			t.Errorf("Removing an absent member must be a no-op, got %v", err)
		}
	})
}

func TestProjectVisibility(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := GetProjectsRepo(db)
	creator := primitive.NewObjectID()
	member := primitive.NewObjectID()
	stranger := primitive.NewObjectID()
	ctx := context.Background()

	insertTestProject(t, repo, creator, member)

	t.Run("creator sees the project", func(t *testing.T) {
		items, total, err := repo.FindPageVisible(ctx, creator, "", 0, 10)
		if err != nil {
			t.Fatalf("FindPageVisible failed: %v", err)
		}
		if total != 1 || len(items) != 1 {
			t.Errorf("Got %d/%d, want 1/1", len(items), total)
		}
	})

	t.Run("member sees the project", func(t *testing.T) {
		_, total, err := repo.FindPageVisible(ctx, member, "", 0, 10)
		if err != nil {
			t.Fatalf("FindPageVisible failed: %v", err)
		}
		if total != 1 {
			t.Errorf("Total = %d, want 1", total)
		}
	})

	t.Run("stranger sees nothing", func(t *testing.T) {
		_, total, err := repo.FindPageVisible(ctx, stranger, "", 0, 10)
		if err != nil {
			t.Fatalf("FindPageVisible failed: %v", err)
		}
		if total != 0 {
			t.Errorf("Total = %d, want 0", total)
		}
	})

	t.Run("status filter", func(t *testing.T) {
		_, total, err := repo.FindPageVisible(ctx, creator, model.ProjectArchived, 0, 10)
		if err != nil {
			t.Fatalf("FindPageVisible failed: %v", err)
		}
		if total != 0 {
			t.Errorf("Total = %d, want 0 archived", total)
		}
	})
}

func TestUsersUniqueEmail(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := GetUsersRepo(db)
	ctx := context.Background()

	first := &model.User{Name: "Ada", Email: "ada@university.edu", University: "MIT", Password: "hash"}
	if err := repo.CreateUser(ctx, first); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if first.ID.IsZero() {
		t.Error("CreateUser must set the inserted id")
	}
	if first.CreatedAt.IsZero() {
		t.Error("CreateUser must set timestamps")
	}

	second := &model.User{Name: "Imposter", Email: "ada@university.edu", University: "MIT", Password: "hash"}
	if err := repo.CreateUser(ctx, second); err == nil {
		t.Error("Expected the unique index to reject a duplicate email")
	}

	t.Run("find by email", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "ada@university.edu")
		if err != nil {
			t.Fatalf("FindByEmail failed: %v", err)
		}
		if found == nil || found.ID != first.ID {
			t.Errorf("FindByEmail = %+v", found)
		}
	})

	t.Run("absent email returns nil without error", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "nobody@university.edu")
		if err != nil {
			t.Fatalf("FindByEmail failed: %v", err)
		}
		if found != nil {
			t.Errorf("Expected nil, got %+v", found)
		}
	})
}

func TestRemindersWindows(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := GetRemindersRepo(db)
	owner := primitive.NewObjectID()
	ctx := context.Background()
	now := time.Now()

	insert := func(title string, at time.Time, completed bool) {
		t.Helper()
		_, err := repo.Insert(ctx, &model.Reminder{
			UserID:       owner,
			Title:        title,
			ReminderDate: at,
			IsCompleted:  completed,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			t.Fatalf("Failed to insert reminder: %v", err)
		}
	}

	insert("in an hour", now.Add(time.Hour), false)
	insert("tomorrow night", now.Add(30*time.Hour), false)
	insert("already done", now.Add(time.Hour), true)
	insert("already past", now.Add(-time.Hour), false)

	t.Run("due within a day", func(t *testing.T) {
		due, err := repo.FindDueWithin(ctx, owner, now, now.Add(24*time.Hour))
		if err != nil {
			t.Fatalf("FindDueWithin failed: %v", err)
		}
		if len(due) != 1 || due[0].Title != "in an hour" {
			t.Errorf("Got %d reminders: %+v", len(due), due)
		}
	})

	t.Run("count upcoming week", func(t *testing.T) {
		count, err := repo.CountUpcoming(ctx, owner, now, now.Add(7*24*time.Hour))
		if err != nil {
			t.Fatalf("CountUpcoming failed: %v", err)
		}
		if count != 2 {
			t.Errorf("Count = %d, want 2", count)
		}
	})
}
