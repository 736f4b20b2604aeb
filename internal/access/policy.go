// Package access decides who may read or write holidays, events and tasks.
//
// Decisions come from an explicit table keyed on (entity, operation). Each
// rule is a pure function of the actor and, for object operations, the
// target resource's owner.
package access

import (
	"context"

	"github.com/google/uuid"
	"github.com/saulo-duarte/sambat-api/internal/apperr"
	"github.com/saulo-duarte/sambat-api/internal/config"
	"github.com/saulo-duarte/sambat-api/internal/metrics"
	"github.com/sirupsen/logrus"
)

type Actor struct {
	ID      uuid.UUID
	IsAdmin bool
}

type Entity string

const (
	Holiday Entity = "holiday"
	Event   Entity = "event"
	Task    Entity = "task"
)

type Operation string

const (
	List      Operation = "list"
	Get       Operation = "get"
	Create    Operation = "create"
	Update    Operation = "update"
	Delete    Operation = "delete"
	GetStatus Operation = "get_status"
	SetStatus Operation = "set_status"
	// Assign covers naming a task's assignee on create or update.
	Assign Operation = "assign"
)

// Resource is the part of a stored record the policy looks at.
type Resource struct {
	Owner uuid.UUID
}

type Decision struct {
	Allowed bool
	Reason  string
}

type Rule func(actor Actor, res *Resource) Decision

func allow(reason string) Decision { return Decision{Allowed: true, Reason: reason} }
func deny(reason string) Decision  { return Decision{Allowed: false, Reason: reason} }

func authenticated(actor Actor, _ *Resource) Decision {
	if actor.ID == uuid.Nil {
		return deny("anonymous actor")
	}
	return allow("authenticated")
}

func adminOnly(actor Actor, _ *Resource) Decision {
	if actor.IsAdmin {
		return allow("admin")
	}
	return deny("admin required")
}

func ownerOnly(actor Actor, res *Resource) Decision {
	if res == nil {
		return deny("no resource")
	}
	if res.Owner == actor.ID {
		return allow("owner")
	}
	return deny("not the owner")
}

func ownerOrAdmin(actor Actor, res *Resource) Decision {
	if d := ownerOnly(actor, res); d.Allowed {
		return d
	}
	return adminOnly(actor, res)
}

type key struct {
	entity Entity
	op     Operation
}

var policy = map[key]Rule{
	{Holiday, List}:   authenticated,
	{Holiday, Get}:    authenticated,
	{Holiday, Create}: adminOnly,
	{Holiday, Update}: adminOnly,
	{Holiday, Delete}: adminOnly,

	{Event, List}:   authenticated,
	{Event, Create}: authenticated,
	{Event, Get}:    ownerOrAdmin,
	{Event, Update}: ownerOnly,
	{Event, Delete}: ownerOnly,

	{Task, List}:      authenticated,
	{Task, Create}:    authenticated,
	{Task, Get}:       ownerOnly,
	{Task, Update}:    ownerOnly,
	{Task, Delete}:    ownerOnly,
	{Task, GetStatus}: ownerOnly,
	{Task, SetStatus}: ownerOnly,
	{Task, Assign}:    ownerOrAdmin,
}

// Decide evaluates the rule for (entity, op). Pairs without a rule are denied.
func Decide(entity Entity, op Operation, actor Actor, res *Resource) Decision {
	rule, ok := policy[key{entity, op}]
	if !ok {
		return deny("no rule")
	}
	return rule(actor, res)
}

// Authorize evaluates the policy and returns an apperr.ErrForbidden error on denial.
func Authorize(ctx context.Context, entity Entity, op Operation, actor Actor, res *Resource) error {
	d := Decide(entity, op, actor, res)

	outcome := "allow"
	if !d.Allowed {
		outcome = "deny"
	}
	metrics.AuthzDecisions.WithLabelValues(string(entity), string(op), outcome).Inc()

	if d.Allowed {
		return nil
	}

	config.WithContext(ctx).WithFields(logrus.Fields{
		"entity":    entity,
		"operation": op,
		"actor_id":  actor.ID,
		"is_admin":  actor.IsAdmin,
		"reason":    d.Reason,
	}).Warn("Permission denied")

	return apperr.Forbidden(string(op) + " " + string(entity) + ": " + d.Reason)
}
