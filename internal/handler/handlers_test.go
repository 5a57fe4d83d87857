package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/minishop/minishop-go/internal/crypto"
	"github.com/minishop/minishop-go/internal/middleware"
	"github.com/minishop/minishop-go/internal/model"
	"github.com/minishop/minishop-go/internal/repository"
	"github.com/minishop/minishop-go/internal/service"
)

const testSecret = "test-secret"

// memItemStore is an in-memory item store for handler tests.
type memItemStore struct {
	items  []model.Item
	nextID int64
}

func (m *memItemStore) Create(_ context.Context, item *model.Item) error {
	m.nextID++
	item.ID = m.nextID
	m.items = append(m.items, *item)
	return nil
}

func (m *memItemStore) ListByPrice(_ context.Context) ([]model.Item, error) {
	out := make([]model.Item, len(m.items))
	copy(out, m.items)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	return out, nil
}

func (m *memItemStore) GetByID(_ context.Context, id int64) (*model.Item, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			it := m.items[i]
			return &it, nil
		}
	}
	return nil, repository.ErrItemNotFound
}

// memUserStore is an in-memory user store for handler tests.
type memUserStore struct {
	users  []model.User
	nextID int64
}

func (m *memUserStore) Create(_ context.Context, user *model.User) error {
	for i := range m.users {
		if m.users[i].Username == user.Username {
			return repository.ErrDuplicateUsername
		}
		if m.users[i].Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	m.nextID++
	user.ID = m.nextID
	m.users = append(m.users, *user)
	return nil
}

func (m *memUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for i := range m.users {
		if m.users[i].Email == email {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *memUserStore) GetByID(_ context.Context, id int64) (*model.User, error) {
	for i := range m.users {
		if m.users[i].ID == id {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *memUserStore) UsernameTaken(_ context.Context, username string) (bool, error) {
	for i := range m.users {
		if m.users[i].Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (m *memUserStore) EmailTaken(_ context.Context, email string) (bool, error) {
	for i := range m.users {
		if m.users[i].Email == email {
			return true, nil
		}
	}
	return false, nil
}

// testApp wires the full router the way cmd/web does, over in-memory stores.
type testApp struct {
	router   http.Handler
	items    *memItemStore
	users    *memUserStore
	accounts *service.AccountService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	render, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() unexpected error: %v", err)
	}

	items := &memItemStore{}
	users := &memUserStore{}

	catalogService := service.NewCatalogService(items)
	catalogHandler := NewCatalogHandler(catalogService, render)

	accountService := service.NewAccountService(users)
	accountHandler := NewAccountHandler(accountService, render, testSecret, time.Hour, 24*time.Hour)

	r := chi.NewRouter()
	r.Use(middleware.Session(testSecret))

	r.Get("/", catalogHandler.HandleIndex)
	r.Get("/contact", catalogHandler.HandleContact)
	r.Get("/support", catalogHandler.HandleSupport)

	r.Get("/registre", accountHandler.HandleRegisterForm)
	r.Post("/registre", accountHandler.HandleRegisterSubmit)
	r.Get("/login", accountHandler.HandleLoginForm)
	r.Post("/login", accountHandler.HandleLoginSubmit)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireLogin)
		r.Get("/logout", accountHandler.HandleLogout)
		r.Get("/create", catalogHandler.HandleCreateForm)
		r.Post("/create", catalogHandler.HandleCreateSubmit)
		r.Get("/buy/{id}", catalogHandler.HandleBuy)
	})

	return &testApp{
		router:   r,
		items:    items,
		users:    users,
		accounts: accountService,
	}
}

// registerUser creates an account directly through the service.
func (a *testApp) registerUser(t *testing.T) *model.User {
	t.Helper()
	user, err := a.accounts.Register(context.Background(), model.RegisterForm{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
	})
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	return user
}

// sessionCookie issues a valid session cookie for the user.
func sessionCookie(t *testing.T, user *model.User) *http.Cookie {
	t.Helper()
	token, err := crypto.GenerateSessionToken(user.ID, user.Username, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateSessionToken() unexpected error: %v", err)
	}
	return &http.Cookie{Name: middleware.SessionCookie, Value: token}
}

func itemFixture(id int64, title string, price int64) model.Item {
	return model.Item{ID: id, Title: title, Price: price, Active: true}
}

func postForm(path string, form url.Values, cookies ...*http.Cookie) *http.Request {
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		r.AddCookie(c)
	}
	return r
}
