package audit

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cocktails-rolodex/cocktails-api/internal/models"
	"github.com/cocktails-rolodex/cocktails-api/internal/testutil"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, ev Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return p.err
}

func TestDispatcherPersistsAndPublishes(t *testing.T) {
	db := testutil.SetupDB(t)
	pub := &recordingPublisher{}
	d := NewDispatcher(New(db), pub, nil, 10)

	d.Dispatch(Event{Action: "drink_created", Entity: "drink", EntityID: "d-1", Metadata: map[string]string{"name": "Negroni"}})
	d.Dispatch(Event{Action: "drink_deleted", Entity: "drink", EntityID: "d-1"})
	d.Close()

	var logs []models.AuditLog
	require.NoError(t, db.Order("id ASC").Find(&logs).Error)
	require.Len(t, logs, 2)
	assert.Equal(t, "drink_created", logs[0].Action)
	assert.Equal(t, "d-1", logs[0].EntityID)
	assert.JSONEq(t, `{"name":"Negroni"}`, logs[0].Metadata)
	assert.Empty(t, logs[1].Metadata)

	require.Len(t, pub.events, 2)
	assert.False(t, pub.events[0].At.IsZero())
}

func TestDispatcherSurvivesPublishFailure(t *testing.T) {
	db := testutil.SetupDB(t)
	pub := &recordingPublisher{err: errors.New("redis down")}
	d := NewDispatcher(New(db), pub, nil, 1)

	d.Dispatch(Event{Action: "user_created", Entity: "user", EntityID: "u-1"})
	d.Close()

	var count int64
	require.NoError(t, db.Model(&models.AuditLog{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCloseIsIdempotent(t *testing.T) {
	db := testutil.SetupDB(t)
	d := NewDispatcher(New(db), nil, nil, 0)
	d.Close()
	d.Close()

	assert.NotPanics(t, func() {
		d.Dispatch(Event{Action: "user_created", Entity: "user", EntityID: "late"})
	})
}
