package models

import (
	"time"
)

// FAQEntry is a stored knowledge-base row. Position fixes the match order.
type FAQEntry struct {
	ID        string    `db:"id"`
	Position  int       `db:"position"`
	Keywords  []string  `db:"keywords"`
	Content   string    `db:"content"`
	CatchAll  bool      `db:"catch_all"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
