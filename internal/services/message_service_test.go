package services

import (
	"errors"
	"testing"
	"time"

	"github.com/foundercollab/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func seedMessage(t *testing.T, db *gorm.DB, sender, receiver uuid.UUID, content string, at time.Time) {
	t.Helper()
	msg := models.Message{
		ID:         uuid.New(),
		SenderID:   sender,
		ReceiverID: receiver,
		Content:    content,
		CreatedAt:  at,
	}
	if err := db.Create(&msg).Error; err != nil {
		t.Fatalf("seed message %q: %v", content, err)
	}
}

func TestSendMessageValidation(t *testing.T) {
	db := testDB(t)
	svc := NewMessageService(db)
	alice, bob := uuid.New(), uuid.New()

	if _, err := svc.SendMessage(alice, bob, "   "); !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("whitespace content must fail with ErrEmptyMessage, got %v", err)
	}
	if _, err := svc.SendMessage(alice, alice, "hi me"); !errors.Is(err, ErrSelfMessage) {
		t.Fatalf("self message must fail with ErrSelfMessage, got %v", err)
	}

	var count int64
	db.Model(&models.Message{}).Count(&count)
	if count != 0 {
		t.Fatalf("rejected messages must not be persisted, found %d rows", count)
	}

	msg, err := svc.SendMessage(alice, bob, "  hello  ")
	if err != nil {
		t.Fatalf("send message: %v", err)
	}
	if msg.Content != "hello" {
		t.Fatalf("content should be trimmed, got %q", msg.Content)
	}
	if msg.IsRead {
		t.Fatalf("new message must start unread")
	}
}

func TestConversationsGroupByCounterpart(t *testing.T) {
	db := testDB(t)
	svc := NewMessageService(db)

	user := seedFounder(t, db, founderSpec{name: "user", industry: "SaaS", stage: "MVP"})
	alice := seedFounder(t, db, founderSpec{name: "alice", industry: "SaaS", stage: "MVP"})
	bob := seedFounder(t, db, founderSpec{name: "bob", industry: "SaaS", stage: "MVP"})

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	seedMessage(t, db, alice, user, "hi from alice", base)
	seedMessage(t, db, user, bob, "hi bob", base.Add(1*time.Minute))
	seedMessage(t, db, user, alice, "hi alice", base.Add(2*time.Minute))
	seedMessage(t, db, bob, user, "hey", base.Add(3*time.Minute))
	seedMessage(t, db, bob, user, "you there?", base.Add(4*time.Minute))

	conversations, err := svc.ConversationsForUser(user)
	if err != nil {
		t.Fatalf("conversations: %v", err)
	}
	if len(conversations) != 2 {
		t.Fatalf("expected one conversation per counterpart, got %d", len(conversations))
	}

	// First-appearance order: alice before bob.
	if conversations[0].OtherProfile.UserID != alice || conversations[1].OtherProfile.UserID != bob {
		t.Fatalf("conversations out of first-appearance order")
	}

	aliceConv, bobConv := conversations[0], conversations[1]
	if len(aliceConv.Messages) != 2 || len(bobConv.Messages) != 3 {
		t.Fatalf("message grouping wrong: alice=%d bob=%d", len(aliceConv.Messages), len(bobConv.Messages))
	}

	// Unread counts only messages addressed to the user.
	if aliceConv.UnreadCount != 1 {
		t.Fatalf("alice conversation unread = %d, want 1", aliceConv.UnreadCount)
	}
	if bobConv.UnreadCount != 2 {
		t.Fatalf("bob conversation unread = %d, want 2", bobConv.UnreadCount)
	}

	for _, conv := range conversations {
		for i := 1; i < len(conv.Messages); i++ {
			if conv.Messages[i].CreatedAt.Before(conv.Messages[i-1].CreatedAt) {
				t.Fatalf("messages out of timestamp order")
			}
		}
	}
}

func TestHelloUnreadRoundTrip(t *testing.T) {
	db := testDB(t)
	svc := NewMessageService(db)

	alice := seedFounder(t, db, founderSpec{name: "alice", industry: "SaaS", stage: "MVP"})
	bob := seedFounder(t, db, founderSpec{name: "bob", industry: "SaaS", stage: "MVP"})

	if _, err := svc.SendMessage(alice, bob, "hello"); err != nil {
		t.Fatalf("send: %v", err)
	}

	conversations, err := svc.ConversationsForUser(bob)
	if err != nil {
		t.Fatalf("conversations: %v", err)
	}
	if len(conversations) != 1 || conversations[0].UnreadCount != 1 {
		t.Fatalf("bob should see one conversation with unread_count 1")
	}

	if err := svc.MarkMessagesAsRead(bob, alice); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	// Second call must be a harmless no-op.
	if err := svc.MarkMessagesAsRead(bob, alice); err != nil {
		t.Fatalf("repeat mark read: %v", err)
	}

	conversations, err = svc.ConversationsForUser(bob)
	if err != nil {
		t.Fatalf("refetch conversations: %v", err)
	}
	if conversations[0].UnreadCount != 0 {
		t.Fatalf("unread_count after mark read = %d, want 0", conversations[0].UnreadCount)
	}

	// The sender's own copy is untouched.
	aliceConvs, err := svc.ConversationsForUser(alice)
	if err != nil {
		t.Fatalf("alice conversations: %v", err)
	}
	if aliceConvs[0].UnreadCount != 0 {
		t.Fatalf("sender must not accrue unread count")
	}
}

func TestMessagesWith(t *testing.T) {
	db := testDB(t)
	svc := NewMessageService(db)

	user := uuid.New()
	alice := uuid.New()
	bob := uuid.New()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	seedMessage(t, db, user, alice, "to alice", base)
	seedMessage(t, db, alice, user, "from alice", base.Add(time.Minute))
	seedMessage(t, db, user, bob, "to bob", base.Add(2*time.Minute))

	thread, err := svc.MessagesWith(user, alice)
	if err != nil {
		t.Fatalf("thread: %v", err)
	}
	if len(thread) != 2 {
		t.Fatalf("thread with alice should have 2 messages, got %d", len(thread))
	}
	if thread[0].Content != "to alice" || thread[1].Content != "from alice" {
		t.Fatalf("thread out of order: %q then %q", thread[0].Content, thread[1].Content)
	}
}

func TestUnreadCountTotal(t *testing.T) {
	db := testDB(t)
	svc := NewMessageService(db)

	user := uuid.New()
	alice := uuid.New()
	bob := uuid.New()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	seedMessage(t, db, alice, user, "one", base)
	seedMessage(t, db, bob, user, "two", base.Add(time.Minute))
	seedMessage(t, db, user, alice, "outbound", base.Add(2*time.Minute))

	count, err := svc.UnreadCount(user)
	if err != nil {
		t.Fatalf("unread count: %v", err)
	}
	if count != 2 {
		t.Fatalf("unread count = %d, want 2", count)
	}

	if err := svc.MarkMessagesAsRead(user, alice); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	count, err = svc.UnreadCount(user)
	if err != nil {
		t.Fatalf("unread count after read: %v", err)
	}
	if count != 1 {
		t.Fatalf("unread count after reading alice = %d, want 1", count)
	}
}
