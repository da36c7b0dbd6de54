package repository

import (
	"time"

	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Video VideoRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Video: NewVideoRepository(db),
	}
}

// now is truncated to the coarsest precision of the supported engines so a
// value read back compares equal to the one written.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
