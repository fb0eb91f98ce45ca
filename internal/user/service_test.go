package user

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

type mockRepository struct {
	users []User
}

func (m *mockRepository) createUser(user *User) error {
	for _, existing := range m.users {
		if existing.Email == user.Email {
			return ErrEmailTaken
		}
	}
	user.ID = uuid.NewString()
	m.users = append(m.users, *user)
	return nil
}

func (m *mockRepository) getUserByEmail(email string) (*User, error) {
	for _, existing := range m.users {
		if existing.Email == email {
			found := existing
			return &found, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *mockRepository) getUserByID(userID string) (*User, error) {
	for _, existing := range m.users {
		if existing.ID == userID {
			found := existing
			return &found, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *mockRepository) updateUserNames(userID, firstName, lastName string) error {
	for i, existing := range m.users {
		if existing.ID == userID {
			m.users[i].FirstName = firstName
			m.users[i].LastName = lastName
			return nil
		}
	}
	return ErrUserNotFound
}

func (m *mockRepository) updateUserPasswordAndHashToken(userID, passwordHash, hashToken string) error {
	for i, existing := range m.users {
		if existing.ID == userID {
			m.users[i].PasswordHash = passwordHash
			m.users[i].HashToken = hashToken
			return nil
		}
	}
	return ErrUserNotFound
}

func TestRegister_Success(t *testing.T) {
	repo := &mockRepository{}
	service := NewUserService(repo)

	newUser, err := service.Register("John.Doe@Example.com", "John", "Doe", "secret123")
	assert.NoError(t, err)
	assert.Equal(t, "john.doe@example.com", newUser.Email)
	assert.NotEmpty(t, newUser.ID)
	assert.NotEmpty(t, newUser.HashToken)

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(newUser.PasswordHash), []byte("secret123")))
	assert.True(t, service.VerifyPassword(newUser, "secret123"))
	assert.False(t, service.VerifyPassword(newUser, "wrong-password"))
}

func TestRegister_ShortPasswordPersistsNothing(t *testing.T) {
	repo := &mockRepository{}
	service := NewUserService(repo)

	_, err := service.Register("john@example.com", "John", "Doe", "short")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
	assert.Empty(t, repo.users)
}

func TestRegister_InvalidEmail(t *testing.T) {
	service := NewUserService(&mockRepository{})

	_, err := service.Register("not-an-email", "John", "Doe", "secret123")
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := &mockRepository{}
	service := NewUserService(repo)

	_, err := service.Register("john@example.com", "John", "Doe", "secret123")
	assert.NoError(t, err)

	// same address, different case
	_, err = service.Register("JOHN@example.com", "Johnny", "Doe", "secret456")
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	assert.Len(t, repo.users, 1)
}

func TestUpdateProfile_NamesOnly(t *testing.T) {
	repo := &mockRepository{}
	service := NewUserService(repo)

	registered, err := service.Register("john@example.com", "John", "Doe", "secret123")
	assert.NoError(t, err)
	oldHashToken := registered.HashToken

	firstName := "Jane"
	updated, err := service.UpdateProfile(registered.ID, ProfileUpdate{FirstName: &firstName})
	assert.NoError(t, err)
	assert.Equal(t, "Jane", updated.FirstName)
	assert.Equal(t, "Doe", updated.LastName)
	assert.Equal(t, oldHashToken, updated.HashToken)
}

func TestUpdateProfile_PasswordChangeRotatesHashToken(t *testing.T) {
	repo := &mockRepository{}
	service := NewUserService(repo)

	registered, err := service.Register("john@example.com", "John", "Doe", "secret123")
	assert.NoError(t, err)
	oldHashToken := registered.HashToken

	password := "new-secret"
	updated, err := service.UpdateProfile(registered.ID, ProfileUpdate{Password: &password})
	assert.NoError(t, err)
	assert.NotEqual(t, oldHashToken, updated.HashToken)
	assert.True(t, service.VerifyPassword(updated, "new-secret"))
}

func TestUpdateProfile_ShortPasswordRejected(t *testing.T) {
	repo := &mockRepository{}
	service := NewUserService(repo)

	registered, err := service.Register("john@example.com", "John", "Doe", "secret123")
	assert.NoError(t, err)

	password := "tiny"
	_, err = service.UpdateProfile(registered.ID, ProfileUpdate{Password: &password})
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	unchanged, err := service.GetUserByID(registered.ID)
	assert.NoError(t, err)
	assert.True(t, service.VerifyPassword(unchanged, "secret123"))
}

func TestGetUserByEmail_CaseInsensitive(t *testing.T) {
	repo := &mockRepository{}
	service := NewUserService(repo)

	_, err := service.Register("john@example.com", "John", "Doe", "secret123")
	assert.NoError(t, err)

	found, err := service.GetUserByEmail("John@Example.COM")
	assert.NoError(t, err)
	assert.Equal(t, "john@example.com", found.Email)
}
