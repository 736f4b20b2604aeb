package task

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/sambat-api/internal/access"
	"github.com/saulo-duarte/sambat-api/internal/apperr"
	"github.com/saulo-duarte/sambat-api/internal/user"
	util "github.com/saulo-duarte/sambat-api/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepository struct {
	rows          map[uuid.UUID]Task
	order         []uuid.UUID
	statusUpdates int
	fullUpdates   int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{rows: map[uuid.UUID]Task{}}
}

func (m *memoryRepository) List(_ context.Context, scope access.Scope, filter TaskFilter) ([]Task, error) {
	var out []Task
	for _, id := range m.order {
		t, ok := m.rows[id]
		if !ok || !scope.Allows(t.AssignedTo) {
			continue
		}
		if filter.Status != nil && t.Status != *filter.Status {
			continue
		}
		if filter.EventID != nil && (t.EventID == nil || *t.EventID != *filter.EventID) {
			continue
		}
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate.Time) })
	return out, nil
}

func (m *memoryRepository) FindByID(_ context.Context, id uuid.UUID, scope access.Scope) (*Task, error) {
	t, ok := m.rows[id]
	if !ok || !scope.Allows(t.AssignedTo) {
		return nil, ErrTaskNotFound
	}
	return &t, nil
}

func (m *memoryRepository) Create(_ context.Context, t *Task) error {
	t.ID = uuid.New()
	m.rows[t.ID] = *t
	m.order = append(m.order, t.ID)
	return nil
}

func (m *memoryRepository) Update(_ context.Context, t *Task) error {
	m.rows[t.ID] = *t
	m.fullUpdates++
	return nil
}

func (m *memoryRepository) UpdateStatus(_ context.Context, id uuid.UUID, status TaskStatus) error {
	t, ok := m.rows[id]
	if !ok {
		return ErrTaskNotFound
	}
	t.Status = status
	m.rows[id] = t
	m.statusUpdates++
	return nil
}

func (m *memoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.rows[id]; !ok {
		return ErrTaskNotFound
	}
	delete(m.rows, id)
	return nil
}

type directory map[uuid.UUID]string

func (d directory) GetByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	name, ok := d[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return &user.User{ID: id, Username: name}, nil
}

func (d directory) NamesByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	out := map[uuid.UUID]string{}
	for _, id := range ids {
		if name, ok := d[id]; ok {
			out[id] = name
		}
	}
	return out, nil
}

type visibleEvents map[uuid.UUID]uuid.UUID

func (v visibleEvents) Visible(_ context.Context, actor access.Actor, id uuid.UUID) error {
	owner, ok := v[id]
	if !ok || !access.Visibility(access.Event, actor).Allows(owner) {
		return apperr.NotFound("event")
	}
	return nil
}

var (
	alice = access.Actor{ID: uuid.New()}
	bob   = access.Actor{ID: uuid.New()}
	admin = access.Actor{ID: uuid.New(), IsAdmin: true}
)

func date(y int, m time.Month, d int) util.LocalDate { return util.NewLocalDate(y, m, d) }

type fixture struct {
	svc    TaskService
	repo   *memoryRepository
	events visibleEvents
}

func newFixture() fixture {
	repo := newMemoryRepository()
	users := directory{alice.ID: "alice", bob.ID: "bob", admin.ID: "root"}
	events := visibleEvents{}
	return fixture{svc: NewService(repo, users, events), repo: repo, events: events}
}

func (f fixture) create(t *testing.T, actor access.Actor, title string, due util.LocalDate) *TaskResponse {
	t.Helper()
	resp, err := f.svc.Create(context.Background(), actor, CreateTaskDTO{
		Title:     title,
		StartDate: date(2024, 4, 13),
		DueDate:   due,
	})
	require.NoError(t, err)
	return resp
}

func TestCreateDefaultsToSelfAndPending(t *testing.T) {
	f := newFixture()

	resp := f.create(t, alice, "Write report", date(2024, 5, 1))
	assert.Equal(t, alice.ID, resp.AssignedTo)
	assert.Equal(t, "alice", resp.AssignedToName)
	assert.Equal(t, StatusPending, resp.Status)
	assert.Nil(t, resp.Event)
}

func TestCreateAssignmentRules(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	base := CreateTaskDTO{Title: "t", StartDate: date(2024, 4, 13), DueDate: date(2024, 4, 20)}

	dto := base
	dto.AssignedTo = &bob.ID
	_, err := f.svc.Create(ctx, alice, dto)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	resp, err := f.svc.Create(ctx, admin, dto)
	require.NoError(t, err)
	assert.Equal(t, "bob", resp.AssignedToName)

	ghost := uuid.New()
	dto.AssignedTo = &ghost
	_, err = f.svc.Create(ctx, admin, dto)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	dto = base
	dto.Status = "later"
	_, err = f.svc.Create(ctx, alice, dto)
	assert.ErrorIs(t, err, apperr.ErrValidation)
	assert.Len(t, f.repo.rows, 1)
}

func TestCreateChecksEventVisibility(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	aliceEvent, bobEvent := uuid.New(), uuid.New()
	f.events[aliceEvent] = alice.ID
	f.events[bobEvent] = bob.ID

	dto := CreateTaskDTO{Title: "t", StartDate: date(2024, 4, 13), DueDate: date(2024, 4, 20), Event: &bobEvent}
	_, err := f.svc.Create(ctx, alice, dto)
	var vErr *apperr.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "event", vErr.Field)

	dto.Event = &aliceEvent
	resp, err := f.svc.Create(ctx, alice, dto)
	require.NoError(t, err)
	assert.Equal(t, aliceEvent, *resp.Event)
}

func TestAdminReadsListButCannotWrite(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	task := f.create(t, alice, "Alice's", date(2024, 5, 1))

	_, err := f.svc.Get(ctx, bob, task.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	all, err := f.svc.List(ctx, admin, TaskFilter{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "alice", all[0].AssignedToName)

	title := "admin edit"
	_, err = f.svc.Update(ctx, admin, task.ID, UpdateTaskDTO{Title: &title})
	assert.ErrorIs(t, err, apperr.ErrForbidden)
	assert.ErrorIs(t, f.svc.Delete(ctx, admin, task.ID), apperr.ErrForbidden)
	_, err = f.svc.SetStatus(ctx, admin, task.ID, StatusCompleted)
	assert.ErrorIs(t, err, apperr.ErrForbidden)
	_, err = f.svc.Get(ctx, admin, task.ID)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	assert.Equal(t, "Alice's", f.repo.rows[task.ID].Title)
	assert.Zero(t, f.repo.fullUpdates)
}

func TestSetStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	task := f.create(t, alice, "Ship it", date(2024, 5, 1))
	before := f.repo.rows[task.ID]

	resp, err := f.svc.SetStatus(ctx, alice, task.ID, StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, resp.Status)
	assert.Equal(t, "Ship it", resp.Title)

	after := f.repo.rows[task.ID]
	assert.Equal(t, StatusCompleted, after.Status)
	after.Status = before.Status
	assert.Equal(t, before, after)
	assert.Equal(t, 1, f.repo.statusUpdates)
	assert.Zero(t, f.repo.fullUpdates)

	_, err = f.svc.SetStatus(ctx, alice, task.ID, "bogus")
	assert.ErrorIs(t, err, apperr.ErrValidation)
	assert.Equal(t, StatusCompleted, f.repo.rows[task.ID].Status)
	assert.Equal(t, 1, f.repo.statusUpdates)

	status, err := f.svc.GetStatus(ctx, alice, task.ID)
	require.NoError(t, err)
	assert.Equal(t, TaskStatusResponse{Title: "Ship it", Status: StatusCompleted}, *status)

	_, err = f.svc.GetStatus(ctx, bob, task.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdateKeepsPermissiveDates(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	task := f.create(t, alice, "Backwards", date(2024, 5, 1))

	start := date(2024, 6, 1)
	resp, err := f.svc.Update(ctx, alice, task.ID, UpdateTaskDTO{StartDate: &start})
	require.NoError(t, err)
	assert.True(t, resp.StartDate.After(resp.DueDate.Time))
}

func TestUpdateClearsEvent(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	ev := uuid.New()
	f.events[ev] = alice.ID

	resp, err := f.svc.Create(ctx, alice, CreateTaskDTO{Title: "t", StartDate: date(2024, 4, 13), DueDate: date(2024, 4, 20), Event: &ev})
	require.NoError(t, err)

	// Unrelated edits leave the reference alone.
	title := "renamed"
	updated, err := f.svc.Update(ctx, alice, resp.ID, UpdateTaskDTO{Title: &title})
	require.NoError(t, err)
	require.NotNil(t, updated.Event)

	updated, err = f.svc.Update(ctx, alice, resp.ID, UpdateTaskDTO{Event: EventRef{Set: true}})
	require.NoError(t, err)
	assert.Nil(t, updated.Event)
}

func TestListOrderingAndFilters(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.create(t, alice, "late", date(2024, 9, 1))
	early := f.create(t, alice, "early", date(2024, 4, 20))
	f.create(t, bob, "bob's", date(2024, 1, 1))

	mine, err := f.svc.List(ctx, alice, TaskFilter{})
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "early", mine[0].Title)
	assert.Equal(t, "late", mine[1].Title)

	all, err := f.svc.List(ctx, admin, TaskFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "bob's", all[0].Title)

	_, err = f.svc.SetStatus(ctx, alice, early.ID, StatusInProgress)
	require.NoError(t, err)
	status := StatusInProgress
	filtered, err := f.svc.List(ctx, alice, TaskFilter{Status: &status})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, early.ID, filtered[0].ID)

	bad := TaskStatus("nope")
	_, err = f.svc.List(ctx, alice, TaskFilter{Status: &bad})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestStats(t *testing.T) {
	f := newFixture()
	f.svc.(*taskService).now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }

	f.create(t, alice, "overdue", date(2024, 5, 1))
	f.create(t, alice, "future", date(2024, 7, 1))
	done := f.create(t, alice, "done late", date(2024, 5, 2))
	_, err := f.svc.SetStatus(context.Background(), alice, done.ID, StatusCompleted)
	require.NoError(t, err)

	stats, err := f.svc.Stats(context.Background(), alice)
	require.NoError(t, err)
	assert.Equal(t, TaskStats{Total: 3, Pending: 2, Completed: 1, Overdue: 1}, *stats)
}
