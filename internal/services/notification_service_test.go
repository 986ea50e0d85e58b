package services

import (
	"errors"
	"testing"
	"time"

	"github.com/foundercollab/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func seedNotification(t *testing.T, db *gorm.DB, userID uuid.UUID, title string, at time.Time) uuid.UUID {
	t.Helper()
	n := models.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Message:   "body of " + title,
		Type:      models.NotificationTypeGeneral,
		CreatedAt: at,
	}
	if err := db.Create(&n).Error; err != nil {
		t.Fatalf("seed notification %q: %v", title, err)
	}
	return n.ID
}

func TestNotificationListNewestFirst(t *testing.T) {
	db := testDB(t)
	svc := NewNotificationService(db)
	user := uuid.New()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	seedNotification(t, db, user, "oldest", base)
	seedNotification(t, db, user, "middle", base.Add(time.Hour))
	seedNotification(t, db, user, "newest", base.Add(2*time.Hour))
	seedNotification(t, db, uuid.New(), "someone else's", base.Add(3*time.Hour))

	list, err := svc.List(user)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(list))
	}
	if list[0].Title != "newest" || list[2].Title != "oldest" {
		t.Fatalf("notifications not newest-first: %q ... %q", list[0].Title, list[2].Title)
	}
}

func TestNotificationMarkRead(t *testing.T) {
	db := testDB(t)
	svc := NewNotificationService(db)
	user := uuid.New()

	id := seedNotification(t, db, user, "hello", time.Now())

	if err := svc.MarkRead(user, id); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	// Already read: still fine.
	if err := svc.MarkRead(user, id); err != nil {
		t.Fatalf("repeat mark read: %v", err)
	}

	if err := svc.MarkRead(user, uuid.New()); !errors.Is(err, ErrNotificationNotFound) {
		t.Fatalf("unknown id must fail with ErrNotificationNotFound, got %v", err)
	}
	// Another user's notification is invisible to the caller.
	if err := svc.MarkRead(uuid.New(), id); !errors.Is(err, ErrNotificationNotFound) {
		t.Fatalf("foreign notification must fail with ErrNotificationNotFound, got %v", err)
	}
}

func TestNotificationMarkAllReadIdempotent(t *testing.T) {
	db := testDB(t)
	svc := NewNotificationService(db)
	user := uuid.New()

	seedNotification(t, db, user, "a", time.Now())
	seedNotification(t, db, user, "b", time.Now())

	count, err := svc.UnreadCount(user)
	if err != nil {
		t.Fatalf("unread count: %v", err)
	}
	if count != 2 {
		t.Fatalf("unread = %d, want 2", count)
	}

	if err := svc.MarkAllRead(user); err != nil {
		t.Fatalf("mark all read: %v", err)
	}
	if err := svc.MarkAllRead(user); err != nil {
		t.Fatalf("repeat mark all read: %v", err)
	}

	count, err = svc.UnreadCount(user)
	if err != nil {
		t.Fatalf("unread count after read: %v", err)
	}
	if count != 0 {
		t.Fatalf("unread after mark all read = %d, want 0", count)
	}
}

func TestNotificationCreate(t *testing.T) {
	db := testDB(t)
	svc := NewNotificationService(db)
	user := uuid.New()
	related := uuid.New()

	n, err := svc.Create(user, "New Co-Founder Match Found!", "details", models.NotificationTypeNewMatch, &related)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if n.IsRead {
		t.Fatalf("new notification must start unread")
	}
	if n.RelatedID == nil || *n.RelatedID != related {
		t.Fatalf("related id not preserved")
	}
}
