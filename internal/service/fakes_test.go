package service

import (
	"context"
	"sort"

	"github.com/minishop/minishop-go/internal/model"
	"github.com/minishop/minishop-go/internal/repository"
)

// fakeItemStore is an in-memory itemStore for tests.
type fakeItemStore struct {
	items  []model.Item
	nextID int64
}

func newFakeItemStore() *fakeItemStore {
	return &fakeItemStore{nextID: 1}
}

func (f *fakeItemStore) Create(_ context.Context, item *model.Item) error {
	item.ID = f.nextID
	f.nextID++
	f.items = append(f.items, *item)
	return nil
}

func (f *fakeItemStore) ListByPrice(_ context.Context) ([]model.Item, error) {
	out := make([]model.Item, len(f.items))
	copy(out, f.items)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	return out, nil
}

func (f *fakeItemStore) GetByID(_ context.Context, id int64) (*model.Item, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			it := f.items[i]
			return &it, nil
		}
	}
	return nil, repository.ErrItemNotFound
}

// fakeUserStore is an in-memory userStore for tests. It enforces the same
// uniqueness rules as the users table.
type fakeUserStore struct {
	users  []model.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{nextID: 1}
}

func (f *fakeUserStore) Create(_ context.Context, user *model.User) error {
	for i := range f.users {
		if f.users[i].Username == user.Username {
			return repository.ErrDuplicateUsername
		}
		if f.users[i].Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	user.ID = f.nextID
	f.nextID++
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*model.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserStore) UsernameTaken(_ context.Context, username string) (bool, error) {
	for i := range f.users {
		if f.users[i].Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) EmailTaken(_ context.Context, email string) (bool, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			return true, nil
		}
	}
	return false, nil
}
