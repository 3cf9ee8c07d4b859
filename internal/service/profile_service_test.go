package service

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"strings"
	"testing"

	"telephysio/internal/dto"
	"telephysio/internal/models"
	"telephysio/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func strPtr(s string) *string { return &s }

func TestProfileService_Get(t *testing.T) {
	ctx := context.Background()
	users := new(MockUserStore)
	svc := NewProfileService(users, new(MockObjectStore), 1024, zap.NewNop())

	id := uuid.New()
	users.On("GetByID", ctx, id).Return(&models.User{ID: id, Username: "sohel", Password: "hash"}, nil)
	missing := uuid.New()
	users.On("GetByID", ctx, missing).Return(nil, repository.ErrNotFound)

	resp, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "sohel", resp.Username)

	_, err = svc.Get(ctx, missing)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestProfileService_UpdateFields(t *testing.T) {
	ctx := context.Background()
	users := new(MockUserStore)
	store := new(MockObjectStore)
	svc := NewProfileService(users, store, 1024, zap.NewNop())
	id := uuid.New()

	want := models.ProfileUpdate{Username: strPtr("new_name"), Bio: strPtr("hi"), ProfilePicture: strPtr("https://cdn/x.png")}
	users.On("UpdateProfile", ctx, id, want).
		Return(&models.User{ID: id, Username: "new_name", Name: "new_name", Bio: "hi", ProfilePicture: "https://cdn/x.png"}, nil)

	resp, err := svc.Update(ctx, id, &dto.UpdateProfileRequest{
		Username:       strPtr(" new_name "),
		Bio:            strPtr("hi"),
		ProfilePicture: strPtr("https://cdn/x.png"),
	})
	require.NoError(t, err)
	assert.Equal(t, "new_name", resp.Name)
	store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProfileService_UpdateEmptyReadsBack(t *testing.T) {
	ctx := context.Background()
	users := new(MockUserStore)
	svc := NewProfileService(users, new(MockObjectStore), 1024, zap.NewNop())
	id := uuid.New()
	users.On("GetByID", ctx, id).Return(&models.User{ID: id, Username: "same"}, nil)

	resp, err := svc.Update(ctx, id, &dto.UpdateProfileRequest{})
	require.NoError(t, err)
	assert.Equal(t, "same", resp.Username)
	users.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything)
}

func TestProfileService_UpdateDataURL(t *testing.T) {
	ctx := context.Background()
	users := new(MockUserStore)
	store := new(MockObjectStore)
	svc := NewProfileService(users, store, 1024, zap.NewNop())
	id := uuid.New()

	payload := []byte("\x89PNG fake image")
	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)
	var uploaded []byte

	store.On("Put", ctx, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "profiles/"+id.String()+"/") && strings.HasSuffix(key, ".png")
	}), mock.Anything, int64(len(payload)), "image/png").Run(func(args mock.Arguments) {
		uploaded, _ = io.ReadAll(args.Get(2).(io.Reader))
	}).Return("http://cdn/profiles/x.png", nil)

	users.On("GetByID", ctx, id).Return(&models.User{ID: id, ProfilePicture: "https://gravatar.example/me.png"}, nil)
	users.On("UpdateProfile", ctx, id, models.ProfileUpdate{ProfilePicture: strPtr("http://cdn/profiles/x.png")}).
		Return(&models.User{ID: id, ProfilePicture: "http://cdn/profiles/x.png"}, nil)

	resp, err := svc.Update(ctx, id, &dto.UpdateProfileRequest{ProfilePicture: &dataURL})
	require.NoError(t, err)
	assert.Equal(t, "http://cdn/profiles/x.png", resp.ProfilePicture)
	assert.Equal(t, payload, uploaded)
	store.AssertExpectations(t)
	// The old picture is hosted elsewhere and stays untouched.
	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestProfileService_UpdateRejectsBadImages(t *testing.T) {
	ctx := context.Background()
	svc := NewProfileService(new(MockUserStore), new(MockObjectStore), 8, zap.NewNop())
	id := uuid.New()

	tests := []struct {
		name string
		url  string
		err  error
	}{
		{"no comma", "data:image/png;base64", ErrInvalidImage},
		{"not base64", "data:image/png,rawbytes", ErrInvalidImage},
		{"bad payload", "data:image/png;base64,@@@", ErrInvalidImage},
		{"not an image", "data:text/plain;base64," + base64.StdEncoding.EncodeToString([]byte("hi")), ErrInvalidImage},
		{"too large", "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("0123456789")), ErrPhotoTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(ctx, id, &dto.UpdateProfileRequest{ProfilePicture: strPtr(tt.url)})
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestProfileService_UploadPhoto(t *testing.T) {
	ctx := context.Background()
	users := new(MockUserStore)
	store := new(MockObjectStore)
	svc := NewProfileService(users, store, 1024, zap.NewNop())
	id := uuid.New()

	store.On("Put", ctx, mock.AnythingOfType("string"), mock.Anything, int64(4), "image/jpeg").Return("/uploads/p.jpg", nil)
	users.On("GetByID", ctx, id).Return(&models.User{ID: id}, nil)
	users.On("UpdateProfile", ctx, id, models.ProfileUpdate{ProfilePicture: strPtr("/uploads/p.jpg")}).
		Return(&models.User{ID: id, ProfilePicture: "/uploads/p.jpg"}, nil)

	resp, err := svc.UploadPhoto(ctx, id, strings.NewReader("jpeg"), 4, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/p.jpg", resp.ProfilePicture)

	_, err = svc.UploadPhoto(ctx, id, strings.NewReader(""), 2048, "image/jpeg")
	assert.ErrorIs(t, err, ErrPhotoTooLarge)

	_, err = svc.UploadPhoto(ctx, id, strings.NewReader("x"), 1, "application/pdf")
	assert.ErrorIs(t, err, ErrInvalidImage)
}

func TestProfileService_UploadPhotoStoreFailure(t *testing.T) {
	ctx := context.Background()
	store := new(MockObjectStore)
	svc := NewProfileService(new(MockUserStore), store, 0, zap.NewNop())
	store.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("bucket gone"))

	_, err := svc.UploadPhoto(ctx, uuid.New(), strings.NewReader("x"), 1, "image/png")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidImage)
}

func TestProfileService_UploadPhotoReplacesPrevious(t *testing.T) {
	ctx := context.Background()
	users := new(MockUserStore)
	store := new(MockObjectStore)
	svc := NewProfileService(users, store, 1024, zap.NewNop())
	id := uuid.New()
	oldKey := "profiles/" + id.String() + "/old.png"

	var newKey string
	store.On("Put", ctx, mock.AnythingOfType("string"), mock.Anything, int64(3), "image/png").Run(func(args mock.Arguments) {
		newKey = args.String(1)
	}).Return("/uploads/profiles/"+id.String()+"/new.png", nil)
	users.On("GetByID", ctx, id).Return(&models.User{ID: id, ProfilePicture: "/uploads/" + oldKey}, nil)
	users.On("UpdateProfile", ctx, id, mock.Anything).
		Return(&models.User{ID: id, ProfilePicture: "/uploads/profiles/" + id.String() + "/new.png"}, nil)
	store.On("Delete", ctx, oldKey).Return(nil)

	_, err := svc.UploadPhoto(ctx, id, strings.NewReader("png"), 3, "image/png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(newKey, "profiles/"+id.String()+"/"))
	store.AssertCalled(t, "Delete", ctx, oldKey)
	store.AssertNumberOfCalls(t, "Delete", 1)
}

func TestProfileService_UploadPhotoRemovesOrphanOnFailure(t *testing.T) {
	ctx := context.Background()
	users := new(MockUserStore)
	store := new(MockObjectStore)
	svc := NewProfileService(users, store, 1024, zap.NewNop())
	id := uuid.New()

	var newKey string
	store.On("Put", ctx, mock.AnythingOfType("string"), mock.Anything, int64(3), "image/png").Run(func(args mock.Arguments) {
		newKey = args.String(1)
	}).Return("/uploads/new.png", nil)
	users.On("GetByID", ctx, id).Return(nil, repository.ErrNotFound)
	users.On("UpdateProfile", ctx, id, mock.Anything).Return(nil, repository.ErrNotFound)
	store.On("Delete", ctx, mock.AnythingOfType("string")).Return(nil)

	_, err := svc.UploadPhoto(ctx, id, strings.NewReader("png"), 3, "image/png")
	assert.ErrorIs(t, err, ErrUserNotFound)
	store.AssertCalled(t, "Delete", ctx, newKey)
}

func TestPhotoKey(t *testing.T) {
	id := uuid.New()
	key := "profiles/" + id.String() + "/a.png"

	assert.Equal(t, key, photoKey(id, "/uploads/"+key))
	assert.Equal(t, key, photoKey(id, "https://cdn.example/bucket/"+key))
	assert.Empty(t, photoKey(id, "https://gravatar.example/me.png"))
	assert.Empty(t, photoKey(uuid.New(), "/uploads/"+key))
	assert.Empty(t, photoKey(id, ""))
}
