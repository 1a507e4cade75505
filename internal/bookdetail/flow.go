// Package bookdetail implements the book detail view: loading one book,
// showing its reviews, and attaching it to one of the user's reading lists
// with duplicate prevention.
package bookdetail

import (
	"context"
	"errors"
	"strings"

	"bookclient/internal/entity"
	"bookclient/internal/form"

	"github.com/rs/zerolog"
)

var (
	// ErrBookNotFound signals the caller to redirect to a not-found view.
	ErrBookNotFound = errors.New("book not found")

	ErrNoListSelected   = errors.New("no reading list selected")
	ErrListUnavailable  = errors.New("selected reading list no longer exists")
	ErrAlreadyInList    = errors.New("book is already in the selected reading list")
	ErrReviewIncomplete = errors.New("review needs a rating and a comment")
)

// API is the slice of the backend client the detail view needs.
type API interface {
	GetBook(ctx context.Context, id string) (*entity.Book, error)
	ListReadingLists(ctx context.Context) ([]entity.ReadingList, error)
	UpdateReadingList(ctx context.Context, list entity.ReadingList) (*entity.ReadingList, error)
	ListReviews(ctx context.Context, bookID string) ([]entity.Review, error)
	CreateReview(ctx context.Context, review entity.Review) (*entity.Review, error)
}

// ReviewForm carries the user-editable review fields; presence checks only.
type ReviewForm struct {
	Rating  int    `validate:"required"`
	Comment string `validate:"required"`
}

type Flow struct {
	api API
	log zerolog.Logger

	book       *entity.Book
	reviews    []entity.Review
	lists      []entity.ReadingList
	selectedID string
	pickerOpen bool
}

func NewFlow(backend API, log zerolog.Logger) *Flow {
	return &Flow{api: backend, log: log}
}

// LoadBook fetches the book for the view. An absent book is ErrBookNotFound
// so the caller can redirect; a failed fetch is returned as-is.
func (f *Flow) LoadBook(ctx context.Context, id string) error {
	book, err := f.api.GetBook(ctx, id)
	if err != nil {
		f.log.Error().Err(err).Str("book_id", id).Msg("load book")
		return err
	}
	if book == nil {
		return ErrBookNotFound
	}
	f.book = book
	return nil
}

func (f *Flow) Book() *entity.Book {
	return f.book
}

// LoadLists fetches the user's reading lists independently of the book and
// default-selects the first one, if any.
func (f *Flow) LoadLists(ctx context.Context) error {
	lists, err := f.api.ListReadingLists(ctx)
	if err != nil {
		f.log.Error().Err(err).Msg("load reading lists")
		return err
	}
	f.lists = lists
	f.reselect()
	return nil
}

func (f *Flow) Lists() []entity.ReadingList {
	return f.lists
}

func (f *Flow) SelectedID() string {
	return f.selectedID
}

// Select picks the target list for the add action.
func (f *Flow) Select(id string) {
	f.selectedID = id
}

// OpenPicker re-fetches the lists to catch changes made elsewhere, then
// opens the selection modal. A selection that survived the refresh is kept.
func (f *Flow) OpenPicker(ctx context.Context) error {
	if err := f.LoadLists(ctx); err != nil {
		return err
	}
	f.pickerOpen = true
	return nil
}

func (f *Flow) PickerOpen() bool {
	return f.pickerOpen
}

func (f *Flow) ClosePicker() {
	f.pickerOpen = false
}

// ConfirmAdd attaches the loaded book to the selected list. Rejected when no
// list is selected, when the selection vanished from the fresh collection,
// or when the book ID is already a member. On success the mirror entry is
// patched and the picker closes; on API failure the picker stays open.
//
// A concurrent edit or delete of the same list between OpenPicker's refresh
// and the update call is not guarded against; the last write wins.
func (f *Flow) ConfirmAdd(ctx context.Context) error {
	if f.book == nil {
		return ErrBookNotFound
	}
	if f.selectedID == "" {
		return ErrNoListSelected
	}

	idx := -1
	for i, l := range f.lists {
		if l.ID == f.selectedID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrListUnavailable
	}

	list := f.lists[idx]
	if list.Contains(f.book.ID) {
		return ErrAlreadyInList
	}

	list.BookIDs = append(append([]string{}, list.BookIDs...), f.book.ID)
	updated, err := f.api.UpdateReadingList(ctx, list)
	if err != nil {
		f.log.Error().Err(err).Str("list_id", list.ID).Msg("add book to reading list")
		return err
	}

	f.lists[idx] = *updated
	f.ClosePicker()
	return nil
}

// LoadReviews fetches the reviews for the loaded book.
func (f *Flow) LoadReviews(ctx context.Context) error {
	if f.book == nil {
		return ErrBookNotFound
	}
	reviews, err := f.api.ListReviews(ctx, f.book.ID)
	if err != nil {
		f.log.Error().Err(err).Str("book_id", f.book.ID).Msg("load reviews")
		return err
	}
	f.reviews = reviews
	return nil
}

func (f *Flow) Reviews() []entity.Review {
	return f.reviews
}

// SubmitReview validates and submits a review for the loaded book, then
// prepends the result to the local list.
func (f *Flow) SubmitReview(ctx context.Context, rf ReviewForm) error {
	if f.book == nil {
		return ErrBookNotFound
	}
	rf.Comment = strings.TrimSpace(rf.Comment)
	if violations := form.ValidateStruct(rf); violations != nil {
		return ErrReviewIncomplete
	}

	created, err := f.api.CreateReview(ctx, entity.Review{
		BookID:  f.book.ID,
		Rating:  rf.Rating,
		Comment: rf.Comment,
	})
	if err != nil {
		f.log.Error().Err(err).Str("book_id", f.book.ID).Msg("create review")
		return err
	}

	f.reviews = append([]entity.Review{*created}, f.reviews...)
	return nil
}

// reselect keeps the current selection when it still exists, otherwise
// falls back to the first list.
func (f *Flow) reselect() {
	if f.selectedID != "" {
		for _, l := range f.lists {
			if l.ID == f.selectedID {
				return
			}
		}
	}
	if len(f.lists) > 0 {
		f.selectedID = f.lists[0].ID
	} else {
		f.selectedID = ""
	}
}
