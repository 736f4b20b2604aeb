package access

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/saulo-duarte/sambat-api/internal/apperr"
	"github.com/saulo-duarte/sambat-api/internal/metrics"
	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	owner := Actor{ID: uuid.New()}
	other := Actor{ID: uuid.New()}
	admin := Actor{ID: uuid.New(), IsAdmin: true}
	owned := &Resource{Owner: owner.ID}

	tests := []struct {
		name   string
		entity Entity
		op     Operation
		actor  Actor
		res    *Resource
		want   bool
	}{
		{"holiday list by user", Holiday, List, owner, nil, true},
		{"holiday get by user", Holiday, Get, owner, nil, true},
		{"holiday create by user", Holiday, Create, owner, nil, false},
		{"holiday update by user", Holiday, Update, owner, nil, false},
		{"holiday delete by user", Holiday, Delete, owner, nil, false},
		{"holiday create by admin", Holiday, Create, admin, nil, true},
		{"holiday delete by admin", Holiday, Delete, admin, nil, true},
		{"holiday list anonymous", Holiday, List, Actor{}, nil, false},

		{"event create", Event, Create, other, nil, true},
		{"event get by owner", Event, Get, owner, owned, true},
		{"event get by stranger", Event, Get, other, owned, false},
		{"event get by admin", Event, Get, admin, owned, true},
		{"event update by owner", Event, Update, owner, owned, true},
		{"event update by admin", Event, Update, admin, owned, false},
		{"event delete by admin", Event, Delete, admin, owned, false},
		{"event update without resource", Event, Update, owner, nil, false},

		{"task get by owner", Task, Get, owner, owned, true},
		{"task get by admin", Task, Get, admin, owned, false},
		{"task update by admin", Task, Update, admin, owned, false},
		{"task delete by stranger", Task, Delete, other, owned, false},
		{"task status get by owner", Task, GetStatus, owner, owned, true},
		{"task status set by admin", Task, SetStatus, admin, owned, false},
		{"task assign to self", Task, Assign, owner, owned, true},
		{"task assign to other", Task, Assign, other, owned, false},
		{"task assign by admin", Task, Assign, admin, owned, true},

		{"holiday status has no rule", Holiday, SetStatus, admin, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Decide(tt.entity, tt.op, tt.actor, tt.res)
			assert.Equal(t, tt.want, d.Allowed, d.Reason)
			assert.NotEmpty(t, d.Reason)
		})
	}
}

func TestAuthorize(t *testing.T) {
	user := Actor{ID: uuid.New()}
	ctx := context.Background()

	denied := metrics.AuthzDecisions.WithLabelValues("holiday", "create", "deny")
	before := testutil.ToFloat64(denied)

	err := Authorize(ctx, Holiday, Create, user, nil)
	assert.ErrorIs(t, err, apperr.ErrForbidden)
	assert.Contains(t, err.Error(), "admin required")
	assert.Equal(t, before+1, testutil.ToFloat64(denied))

	assert.NoError(t, Authorize(ctx, Holiday, List, user, nil))
}

func TestVisibility(t *testing.T) {
	user := Actor{ID: uuid.New()}
	admin := Actor{ID: uuid.New(), IsAdmin: true}
	stranger := uuid.New()

	assert.Nil(t, Visibility(Holiday, user).Owner)
	assert.Nil(t, Visibility(Event, admin).Owner)
	assert.Nil(t, Visibility(Task, admin).Owner)

	scope := Visibility(Task, user)
	if assert.NotNil(t, scope.Owner) {
		assert.Equal(t, user.ID, *scope.Owner)
	}
	assert.True(t, scope.Allows(user.ID))
	assert.False(t, scope.Allows(stranger))

	assert.True(t, Visibility(Event, admin).Allows(stranger))
}
