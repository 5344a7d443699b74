package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cybershield/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContactService(t *testing.T, repo *fakeContactRepo) (*ContactService, *recordingSender) {
	t.Helper()
	sender := &recordingSender{}
	notifier := NewNotifier(sender, testLogger())
	notifier.Start()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		notifier.Stop(ctx)
	})
	return NewContactService(repo, notifier, "admin@cybershield.io", testLogger()), sender
}

func TestContactSubmit_PersistsAndNotifies(t *testing.T) {
	repo := &fakeContactRepo{}
	svc, sender := newTestContactService(t, repo)

	msg, err := svc.Submit(context.Background(), ContactInput{
		Name:    "Ana Torres",
		Email:   "ana@example.com",
		Message: "We think our perimeter firewall is misconfigured.",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, models.ContactStatusPending, msg.Status)
	assert.False(t, msg.CreatedAt.IsZero())

	// The admin notification goes to the configured address
	assert.Eventually(t, func() bool {
		msgs := sender.sentMessages()
		return len(msgs) == 1 && msgs[0].To == "admin@cybershield.io"
	}, time.Second, 10*time.Millisecond)
}

func TestContactSubmit_PersistFailure(t *testing.T) {
	repo := &fakeContactRepo{createErr: errors.New("connection refused")}
	svc, sender := newTestContactService(t, repo)

	_, err := svc.Submit(context.Background(), ContactInput{
		Name:    "Ana",
		Email:   "ana@example.com",
		Message: "Need help with an incident.",
	})
	assert.ErrorIs(t, err, models.ErrInternalServer)

	// Nothing should have been queued for a failed submission
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, sender.sentMessages())
}

func TestContactSubmit_SendFailureIsInvisible(t *testing.T) {
	repo := &fakeContactRepo{}
	sender := &recordingSender{err: errors.New("ses throttled")}
	notifier := NewNotifier(sender, testLogger())
	notifier.Start()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		notifier.Stop(ctx)
	})
	svc := NewContactService(repo, notifier, "admin@cybershield.io", testLogger())

	msg, err := svc.Submit(context.Background(), ContactInput{
		Name:    "Ana",
		Email:   "ana@example.com",
		Message: "Need help with an incident.",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, msg.ID)
}

func TestContactListRecent(t *testing.T) {
	repo := &fakeContactRepo{}
	svc, _ := newTestContactService(t, repo)

	for i := 0; i < 3; i++ {
		_, err := svc.Submit(context.Background(), ContactInput{
			Name:    "Ana",
			Email:   "ana@example.com",
			Message: "Recurring phishing attempts against our staff.",
		})
		require.NoError(t, err)
	}

	messages, err := svc.ListRecent(context.Background())
	require.NoError(t, err)
	require.Len(t, messages, 3)

	// Newest first
	assert.Equal(t, "contact-3", messages[0].ID)

	repo.listErr = errors.New("connection refused")
	_, err = svc.ListRecent(context.Background())
	assert.ErrorIs(t, err, models.ErrInternalServer)
}
