package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/deppfellow/contact-api/internal/model/submission"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	mu        sync.Mutex
	rows      []submission.Submission
	nextID    int64
	insertErr error
}

func (f *fakeStore) List(ctx context.Context) ([]submission.Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]submission.Submission{}, f.rows...), nil
}

func (f *fakeStore) Get(ctx context.Context, id int64) (*submission.Submission, error) {
	return nil, errors.New("not used")
}

func (f *fakeStore) Insert(ctx context.Context, fields submission.Fields) (*submission.Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.nextID++
	s := submission.Submission{
		ID:      f.nextID,
		Name:    fields.Name,
		Email:   fields.Email,
		Subject: fields.Subject,
		Message: fields.Message,
	}
	f.rows = append(f.rows, s)
	return &s, nil
}

func (f *fakeStore) Delete(ctx context.Context, id int64) error {
	return errors.New("not used")
}

func (f *fakeStore) DeleteAll(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := int64(len(f.rows))
	f.rows = nil
	return n, nil
}

type chanNotifier struct {
	sent chan submission.Submission
	ctxs chan context.Context
	err  error
}

func newChanNotifier(err error) *chanNotifier {
	return &chanNotifier{
		sent: make(chan submission.Submission, 1),
		ctxs: make(chan context.Context, 1),
		err:  err,
	}
}

func (n *chanNotifier) SendContactNotification(ctx context.Context, sub submission.Submission) error {
	n.ctxs <- ctx
	n.sent <- sub
	return n.err
}

func request() *submission.SubmitContactRequest {
	req := &submission.SubmitContactRequest{Name: "Ann", Email: "ann@x.com", Subject: "Hi", Message: "<b>Hello</b>"}
	_ = req.Validate()
	return req
}

func TestSubmissionService_SubmitNotifiesAfterInsert(t *testing.T) {
	store := &fakeStore{}
	notifier := newChanNotifier(nil)
	logger := zerolog.Nop()
	svc := NewSubmissionService(store, notifier, &logger)

	sub, err := svc.Submit(context.Background(), request())
	require.NoError(t, err)
	assert.Equal(t, int64(1), sub.ID)
	assert.Equal(t, "&lt;b&gt;Hello&lt;&#x2F;b&gt;", sub.Message)

	select {
	case sent := <-notifier.sent:
		assert.Equal(t, *sub, sent)
	case <-time.After(time.Second):
		t.Fatal("notification was not sent")
	}
}

func TestSubmissionService_SubmitSurvivesCancelledRequest(t *testing.T) {
	notifier := newChanNotifier(nil)
	logger := zerolog.Nop()
	svc := NewSubmissionService(&fakeStore{}, notifier, &logger)

	ctx, cancel := context.WithCancel(context.Background())
	_, err := svc.Submit(ctx, request())
	require.NoError(t, err)
	cancel()

	select {
	case notifyCtx := <-notifier.ctxs:
		assert.NoError(t, notifyCtx.Err())
	case <-time.After(time.Second):
		t.Fatal("notification was not sent")
	}
}

func TestSubmissionService_SubmitIgnoresNotifyError(t *testing.T) {
	store := &fakeStore{}
	notifier := newChanNotifier(errors.New("smtp down"))
	logger := zerolog.Nop()
	svc := NewSubmissionService(store, notifier, &logger)

	_, err := svc.Submit(context.Background(), request())
	require.NoError(t, err)

	<-notifier.sent
	rows, _ := store.List(context.Background())
	assert.Len(t, rows, 1)
}

func TestSubmissionService_SubmitInsertFailureSkipsNotify(t *testing.T) {
	boom := errors.New("db down")
	notifier := newChanNotifier(nil)
	logger := zerolog.Nop()
	svc := NewSubmissionService(&fakeStore{insertErr: boom}, notifier, &logger)

	_, err := svc.Submit(context.Background(), request())
	require.ErrorIs(t, err, boom)

	select {
	case <-notifier.sent:
		t.Fatal("notification sent for a failed insert")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSubmissionService_DeleteAll(t *testing.T) {
	store := &fakeStore{}
	logger := zerolog.Nop()
	svc := NewSubmissionService(store, nil, &logger)

	for range 3 {
		_, err := svc.Submit(context.Background(), request())
		require.NoError(t, err)
	}

	n, err := svc.DeleteAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	rows, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}
