package repository

import (
	"errors"
	"testing"
)

func TestNewUserRepository(t *testing.T) {
	repo := NewUserRepository(nil)
	if repo == nil {
		t.Fatal("expected non-nil UserRepository")
	}
	if repo.db != nil {
		t.Fatal("expected nil db when constructed with nil")
	}
}

func TestSentinelErrors(t *testing.T) {
	if ErrUserNotFound.Error() != "user not found" {
		t.Fatalf("unexpected error message: %s", ErrUserNotFound.Error())
	}
	if ErrDuplicateUsername.Error() != "username already exists" {
		t.Fatalf("unexpected error message: %s", ErrDuplicateUsername.Error())
	}
	if ErrDuplicateEmail.Error() != "email already exists" {
		t.Fatalf("unexpected error message: %s", ErrDuplicateEmail.Error())
	}
}

func TestDuplicateColumnError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			"username constraint",
			errors.New("UNIQUE constraint failed: users.username"),
			ErrDuplicateUsername,
		},
		{
			"email constraint",
			errors.New("UNIQUE constraint failed: users.email"),
			ErrDuplicateEmail,
		},
		{"unrelated error", errors.New("disk I/O error"), nil},
		{"other table constraint", errors.New("UNIQUE constraint failed: items.id"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := duplicateColumnError(tt.err); got != tt.want {
				t.Errorf("duplicateColumnError() = %v, want %v", got, tt.want)
			}
		})
	}
}
