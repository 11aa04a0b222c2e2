package user

import (
	"context"
	"testing"

	"reviewmap_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[int]*model.User
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *model.User) (int, error) {
	id := len(f.users) + 1
	stored := *user
	stored.ID = id
	f.users[id] = &stored
	return id, nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, model.ErrNotFound
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id int) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) ListUsers(context.Context) ([]model.User, error) {
	result := make([]model.User, 0, len(f.users))
	for _, u := range f.users {
		result = append(result, *u)
	}
	return result, nil
}

func (f *fakeUserRepo) DeleteUser(_ context.Context, id int) error {
	if _, ok := f.users[id]; !ok {
		return model.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeReviewRepo struct {
	byUser map[int][]model.ReviewWithAddress
}

func (f *fakeReviewRepo) CreateReview(context.Context, *model.Review) (int, error) { return 0, nil }
func (f *fakeReviewRepo) GetReviewByID(context.Context, int) (*model.Review, error) {
	return nil, model.ErrNotFound
}
func (f *fakeReviewRepo) HasDuplicateReview(context.Context, int, int, string) (bool, error) {
	return false, nil
}
func (f *fakeReviewRepo) ListReviewsByAddress(context.Context, int) ([]model.ReviewWithAuthor, error) {
	return nil, nil
}
func (f *fakeReviewRepo) ListReviewsByUser(_ context.Context, userID int) ([]model.ReviewWithAddress, error) {
	return f.byUser[userID], nil
}
func (f *fakeReviewRepo) UpdateReview(context.Context, *model.Review) error { return nil }
func (f *fakeReviewRepo) DeleteReview(context.Context, int) error           { return nil }

func TestProfile(t *testing.T) {
	t.Parallel()

	userRepo := &fakeUserRepo{users: map[int]*model.User{
		1: {ID: 1, Email: "a@b.c", Name: "tester", Password: "hash"},
	}}
	reviewRepo := &fakeReviewRepo{byUser: map[int][]model.ReviewWithAddress{
		1: {{Review: model.Review{ID: 5, UserID: 1, Title: "ok"}}},
	}}
	s := NewUserService(userRepo, reviewRepo)

	profile, err := s.Profile(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 1, profile.User.ID)
	assert.Equal(t, "a@b.c", profile.User.Email)
	require.Len(t, profile.Reviews, 1)
	assert.Equal(t, 5, profile.Reviews[0].Review.ID)
}

func TestProfile_UnknownUser(t *testing.T) {
	t.Parallel()

	s := NewUserService(
		&fakeUserRepo{users: map[int]*model.User{}},
		&fakeReviewRepo{byUser: map[int][]model.ReviewWithAddress{}},
	)

	_, err := s.Profile(context.Background(), 42)
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestListUsers(t *testing.T) {
	t.Parallel()

	userRepo := &fakeUserRepo{users: map[int]*model.User{
		1: {ID: 1, Email: "a@b.c", Name: "first", Password: "hash"},
		2: {ID: 2, Email: "d@e.f", Name: "second", Password: "hash"},
	}}
	s := NewUserService(userRepo, &fakeReviewRepo{byUser: map[int][]model.ReviewWithAddress{}})

	profiles, err := s.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, profiles, 2)
}

func TestDeleteUser(t *testing.T) {
	t.Parallel()

	userRepo := &fakeUserRepo{users: map[int]*model.User{
		1: {ID: 1, Email: "a@b.c", Name: "tester", Password: "hash"},
	}}
	s := NewUserService(userRepo, &fakeReviewRepo{byUser: map[int][]model.ReviewWithAddress{}})

	deleted, err := s.DeleteUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", deleted.Email)
	assert.Empty(t, userRepo.users)

	_, err = s.DeleteUser(context.Background(), 1)
	require.ErrorIs(t, err, model.ErrNotFound)
}
