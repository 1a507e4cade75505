package entity

import "time"

// ReadingList is a named, user-owned collection of book IDs. Member order is
// not meaningful; membership is checked by string comparison on the IDs.
type ReadingList struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	BookIDs     []string  `json:"book_ids"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Contains reports whether the list already holds the given book ID.
func (l *ReadingList) Contains(bookID string) bool {
	for _, id := range l.BookIDs {
		if id == bookID {
			return true
		}
	}
	return false
}
