package testutil

import (
	"time"

	"bookclient/internal/entity"

	"github.com/golang-jwt/jwt/v5"
)

// TestBook is a fixture book for tests.
var TestBook = entity.Book{
	ID:            "book-1",
	ISBN:          "978-0-123456-78-9",
	Title:         "The Test Book",
	Author:        "A. Author",
	Genre:         "Fiction",
	Description:   "A book used in tests",
	CoverImage:    "https://covers.example.com/book-1.jpg",
	Rating:        4.2,
	PublishedYear: 2019,
}

// NewReadingList builds a reading list fixture.
func NewReadingList(id, name string, bookIDs ...string) entity.ReadingList {
	return entity.ReadingList{
		ID:        id,
		Name:      name,
		BookIDs:   bookIDs,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// IdentityToken builds a signed provider-style token carrying the given
// subject and groups. The signature is irrelevant to the client, which
// decodes without verifying.
func IdentityToken(sub, email, name string, groups ...string) string {
	claims := jwt.MapClaims{
		"sub":    sub,
		"email":  email,
		"name":   name,
		"groups": groups,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(time.Hour).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, _ := t.SignedString([]byte("test-secret"))
	return token
}
