package entity

import (
	"time"

	"github.com/google/uuid"
)

// Relation is a directed, named edge between two characters of the same
// work. No uniqueness is enforced beyond what the client provides.
type Relation struct {
	Id              uuid.UUID
	WorkId          uuid.UUID
	UserId          uuid.UUID
	FromCharacterId uuid.UUID
	ToCharacterId   uuid.UUID
	RelationName    string
	CreatedAt       time.Time
}
