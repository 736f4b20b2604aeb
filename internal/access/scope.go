package access

import "github.com/google/uuid"

// Scope narrows a collection to the records an actor can see. A nil Owner
// means the whole collection.
type Scope struct {
	Owner *uuid.UUID
}

func (s Scope) Allows(owner uuid.UUID) bool {
	return s.Owner == nil || *s.Owner == owner
}

// Visibility returns the scope that bounds list and by-id lookups. Records
// outside it are reported as not found rather than forbidden.
func Visibility(entity Entity, actor Actor) Scope {
	switch entity {
	case Event, Task:
		if actor.IsAdmin {
			return Scope{}
		}
		id := actor.ID
		return Scope{Owner: &id}
	default:
		return Scope{}
	}
}
