// Package readinglist drives the create/edit/delete workflow over the
// user's reading lists. The manager keeps an in-memory mirror of the
// server-side collection; after each successful call the mirror is patched
// in place and is the single source of truth for rendering until the next
// full reload. Last local write wins.
package readinglist

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bookclient/internal/api"
	"bookclient/internal/entity"
	"bookclient/internal/form"

	"github.com/rs/zerolog"
)

var (
	// ErrNameRequired rejects a form whose trimmed name is empty. No
	// network call is made for such a submission.
	ErrNameRequired = errors.New("reading list name is required")

	ErrNotEditing  = errors.New("no reading list selected for editing")
	ErrUnknownList = errors.New("reading list not found")
)

// API is the slice of the backend client the manager needs.
type API interface {
	ListReadingLists(ctx context.Context) ([]entity.ReadingList, error)
	CreateReadingList(ctx context.Context, input api.ReadingListInput) (*entity.ReadingList, error)
	UpdateReadingList(ctx context.Context, list entity.ReadingList) (*entity.ReadingList, error)
	DeleteReadingList(ctx context.Context, id string) error
}

// Confirmer blocks for a yes/no answer before a destructive action.
type Confirmer interface {
	Confirm(message string) bool
}

// Mode is the manager's view state.
type Mode int

const (
	ModeIdle Mode = iota
	ModeCreating
	ModeEditing
)

// Form carries the user-editable fields of the create/edit modal.
type Form struct {
	Name        string `validate:"required"`
	Description string
}

type Manager struct {
	api     API
	confirm Confirmer
	log     zerolog.Logger

	lists     []entity.ReadingList
	mode      Mode
	editingID string
}

func NewManager(backend API, confirm Confirmer, log zerolog.Logger) *Manager {
	return &Manager{api: backend, confirm: confirm, log: log}
}

// Load replaces the mirror with a fresh fetch of the server collection.
func (m *Manager) Load(ctx context.Context) error {
	lists, err := m.api.ListReadingLists(ctx)
	if err != nil {
		m.log.Error().Err(err).Msg("load reading lists")
		return err
	}
	m.lists = lists
	m.mode = ModeIdle
	return nil
}

// Lists returns the current mirror.
func (m *Manager) Lists() []entity.ReadingList {
	return m.lists
}

func (m *Manager) Mode() Mode {
	return m.mode
}

// OpenCreate opens the create modal.
func (m *Manager) OpenCreate() {
	m.mode = ModeCreating
}

// OpenEdit opens the edit modal for a mirror entry and returns its current
// fields for pre-filling.
func (m *Manager) OpenEdit(id string) (Form, error) {
	for _, l := range m.lists {
		if l.ID == id {
			m.mode = ModeEditing
			m.editingID = id
			return Form{Name: l.Name, Description: l.Description}, nil
		}
	}
	return Form{}, ErrUnknownList
}

// Close dismisses whichever modal is open without submitting.
func (m *Manager) Close() {
	m.mode = ModeIdle
	m.editingID = ""
}

// SubmitCreate validates the form, creates the list, and appends the result
// to the mirror. Validation failure leaves the modal open; so does an API
// failure.
func (m *Manager) SubmitCreate(ctx context.Context, f Form) error {
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)
	if violations := form.ValidateStruct(f); violations != nil {
		return ErrNameRequired
	}

	created, err := m.api.CreateReadingList(ctx, api.ReadingListInput{
		Name:        f.Name,
		Description: f.Description,
	})
	if err != nil {
		m.log.Error().Err(err).Msg("create reading list")
		return err
	}

	m.lists = append(m.lists, *created)
	m.Close()
	return nil
}

// SubmitEdit validates the form, updates the list being edited, and
// replaces the matching mirror entry by identifier.
func (m *Manager) SubmitEdit(ctx context.Context, f Form) error {
	if m.mode != ModeEditing {
		return ErrNotEditing
	}
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)
	if violations := form.ValidateStruct(f); violations != nil {
		return ErrNameRequired
	}

	idx := m.indexOf(m.editingID)
	if idx < 0 {
		return ErrUnknownList
	}

	list := m.lists[idx]
	list.Name = f.Name
	list.Description = f.Description

	updated, err := m.api.UpdateReadingList(ctx, list)
	if err != nil {
		m.log.Error().Err(err).Str("list_id", list.ID).Msg("update reading list")
		return err
	}

	m.lists[idx] = *updated
	m.Close()
	return nil
}

// Delete asks for confirmation, deletes the list being edited, and removes
// exactly the matching entry from the mirror. Declining the prompt is a
// no-op with the modal left open.
func (m *Manager) Delete(ctx context.Context) error {
	if m.mode != ModeEditing {
		return ErrNotEditing
	}
	idx := m.indexOf(m.editingID)
	if idx < 0 {
		return ErrUnknownList
	}
	list := m.lists[idx]

	if !m.confirm.Confirm(fmt.Sprintf("Delete reading list %q?", list.Name)) {
		return nil
	}

	if err := m.api.DeleteReadingList(ctx, list.ID); err != nil {
		m.log.Error().Err(err).Str("list_id", list.ID).Msg("delete reading list")
		return err
	}

	m.lists = append(m.lists[:idx], m.lists[idx+1:]...)
	m.Close()
	return nil
}

func (m *Manager) indexOf(id string) int {
	for i, l := range m.lists {
		if l.ID == id {
			return i
		}
	}
	return -1
}
