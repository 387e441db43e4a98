// internal/application/usecase/user_usecase_test.go
package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dreamweave/internal/domain/common"
	userdom "dreamweave/internal/domain/user"
)

type fakeUserRepo struct {
	profiles map[string]*userdom.Profile
	getErr   error
}

func newFakeUserRepo(profiles ...*userdom.Profile) *fakeUserRepo {
	m := map[string]*userdom.Profile{}
	for _, p := range profiles {
		m[p.ID] = p
	}
	return &fakeUserRepo{profiles: m}
}

func (f *fakeUserRepo) GetByID(ctx context.Context, uid string) (*userdom.Profile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	p, ok := f.profiles[uid]
	if !ok {
		return nil, userdom.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, p *userdom.Profile) error {
	cp := *p
	f.profiles[p.ID] = &cp
	return nil
}

func (f *fakeUserRepo) UpdateName(ctx context.Context, uid, name string) error {
	p, ok := f.profiles[uid]
	if !ok {
		return userdom.ErrNotFound
	}
	p.Name = name
	return nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]userdom.Profile, error) {
	var out []userdom.Profile
	for _, p := range f.profiles {
		out = append(out, *p)
	}
	return out, nil
}

func newUserUsecaseForTest(repo *fakeUserRepo) *UserUsecase {
	clock := fixedClock{t: time.Date(2026, 7, 1, 7, 0, 0, 0, time.UTC)}
	return NewUserUsecaseWithClock(repo, clock)
}

func TestEnsureProfileCreatesOnce(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	uc := newUserUsecaseForTest(repo)

	p, err := uc.EnsureProfile(ctx, "u1", "Jane", "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, userdom.RoleUser, p.Role)

	// retry returns the stored record, no overwrite
	require.NoError(t, uc.UpdateName(ctx, "u1", "Janet"))
	again, err := uc.EnsureProfile(ctx, "u1", "Other Name", "other@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Janet", again.Name)
	assert.Equal(t, "jane@example.com", again.Email)
}

func TestEnsureProfileValidates(t *testing.T) {
	uc := newUserUsecaseForTest(newFakeUserRepo())

	_, err := uc.EnsureProfile(context.Background(), "  ", "n", "e")
	assert.Equal(t, common.KindValidation, common.KindOf(err))
}

func TestIsAdmin(t *testing.T) {
	ctx := context.Background()
	admin := &userdom.Profile{ID: "a1", Role: userdom.RoleAdmin}
	regular := &userdom.Profile{ID: "u1", Role: userdom.RoleUser}
	uc := newUserUsecaseForTest(newFakeUserRepo(admin, regular))

	ok, err := uc.IsAdmin(ctx, "a1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = uc.IsAdmin(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, ok)

	// missing profile is not an error
	ok, err = uc.IsAdmin(ctx, "ghost")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsAdminPropagatesIOErrors(t *testing.T) {
	repo := newFakeUserRepo()
	repo.getErr = errIO
	uc := newUserUsecaseForTest(repo)

	_, err := uc.IsAdmin(context.Background(), "u1")
	assert.Error(t, err)
}

func TestUpdateNameValidates(t *testing.T) {
	uc := newUserUsecaseForTest(newFakeUserRepo())

	err := uc.UpdateName(context.Background(), "u1", "  ")
	assert.Equal(t, common.KindValidation, common.KindOf(err))
}
