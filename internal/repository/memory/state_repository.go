package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// StateRepository holds short-lived OAuth state tokens. A state is valid
// for one callback within ten minutes of issuance.
type StateRepository struct {
	cache *cache.Cache
}

func NewStateRepository() *StateRepository {
	c := cache.New(10*time.Minute, 5*time.Minute)
	return &StateRepository{
		cache: c,
	}
}

func (r *StateRepository) Save(state string) {
	r.cache.Set(state, struct{}{}, cache.DefaultExpiration)
}

// Consume reports whether state was issued by us and removes it so it
// cannot be replayed.
func (r *StateRepository) Consume(state string) bool {
	if _, found := r.cache.Get(state); !found {
		return false
	}
	r.cache.Delete(state)
	return true
}
