package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"telephysio/internal/dto"
	"telephysio/internal/models"
	"telephysio/internal/repository"
	"telephysio/pkg/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidImage  = errors.New("invalid image")
	ErrPhotoTooLarge = errors.New("photo too large")
)

var imageExtensions = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/gif":  "gif",
	"image/webp": "webp",
}

type ProfileService struct {
	users    UserStore
	store    storage.Store
	maxPhoto int64
	logger   *zap.Logger
}

func NewProfileService(users UserStore, store storage.Store, maxPhoto int64, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		users:    users,
		store:    store,
		maxPhoto: maxPhoto,
		logger:   logger,
	}
}

func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// Update applies a partial profile edit. A picture sent as a base64 data URL
// is uploaded to storage and replaced by its URL.
func (s *ProfileService) Update(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	var upd models.ProfileUpdate
	if req.Username != nil {
		username := cleanText(strings.TrimSpace(*req.Username))
		upd.Username = &username
	}
	if req.Bio != nil {
		bio := cleanText(*req.Bio)
		upd.Bio = &bio
	}
	var storedKey string
	if req.ProfilePicture != nil {
		picture := strings.TrimSpace(*req.ProfilePicture)
		if strings.HasPrefix(picture, "data:") {
			key, url, err := s.storeDataURL(ctx, userID, picture)
			if err != nil {
				return nil, err
			}
			storedKey, picture = key, url
		}
		upd.ProfilePicture = &picture
	}

	if upd.Empty() {
		return s.Get(ctx, userID)
	}

	return s.apply(ctx, userID, upd, storedKey)
}

// UploadPhoto stores an uploaded image and makes it the profile picture.
func (s *ProfileService) UploadPhoto(ctx context.Context, userID uuid.UUID, file io.Reader, size int64, contentType string) (*dto.UserResponse, error) {
	if s.maxPhoto > 0 && size > s.maxPhoto {
		return nil, ErrPhotoTooLarge
	}
	key, url, err := s.put(ctx, userID, file, size, contentType)
	if err != nil {
		return nil, err
	}

	return s.apply(ctx, userID, models.ProfileUpdate{ProfilePicture: &url}, key)
}

// apply writes upd. When the picture changes, the photo it replaces is removed
// from storage; when the write fails, storedKey (the photo uploaded for this
// edit) is removed instead.
func (s *ProfileService) apply(ctx context.Context, userID uuid.UUID, upd models.ProfileUpdate, storedKey string) (*dto.UserResponse, error) {
	var previousKey string
	if upd.ProfilePicture != nil {
		if current, err := s.users.GetByID(ctx, userID); err == nil {
			previousKey = photoKey(userID, current.ProfilePicture)
		}
	}

	user, err := s.users.UpdateProfile(ctx, userID, upd)
	if err != nil {
		s.removePhoto(ctx, storedKey)
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if previousKey != "" && previousKey != photoKey(userID, user.ProfilePicture) {
		s.removePhoto(ctx, previousKey)
	}

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *ProfileService) removePhoto(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.store.Delete(ctx, key); err != nil {
		s.logger.Warn("Failed to remove profile photo", zap.String("key", key), zap.Error(err))
	}
}

// photoKey recovers the storage key from a picture URL this service stored for
// userID. Pictures hosted elsewhere yield "".
func photoKey(userID uuid.UUID, url string) string {
	i := strings.Index(url, photoPrefix(userID))
	if i < 0 {
		return ""
	}
	return url[i:]
}

func photoPrefix(userID uuid.UUID) string {
	return "profiles/" + userID.String() + "/"
}

func (s *ProfileService) storeDataURL(ctx context.Context, userID uuid.UUID, dataURL string) (string, string, error) {
	contentType, data, err := parseDataURL(dataURL)
	if err != nil {
		return "", "", err
	}
	if s.maxPhoto > 0 && int64(len(data)) > s.maxPhoto {
		return "", "", ErrPhotoTooLarge
	}
	return s.put(ctx, userID, bytes.NewReader(data), int64(len(data)), contentType)
}

// put stores the photo and returns its key and public URL.
func (s *ProfileService) put(ctx context.Context, userID uuid.UUID, r io.Reader, size int64, contentType string) (string, string, error) {
	ext, ok := imageExtensions[strings.ToLower(contentType)]
	if !ok {
		return "", "", fmt.Errorf("%w: unsupported content type %q", ErrInvalidImage, contentType)
	}

	key := photoPrefix(userID) + uuid.NewString() + "." + ext
	url, err := s.store.Put(ctx, key, r, size, contentType)
	if err != nil {
		return "", "", fmt.Errorf("failed to store photo: %w", err)
	}

	s.logger.Info("Profile photo stored", zap.String("user_id", userID.String()), zap.String("key", key))
	return key, url, nil
}

// parseDataURL splits "data:<type>;base64,<payload>".
func parseDataURL(s string) (string, []byte, error) {
	meta, payload, ok := strings.Cut(strings.TrimPrefix(s, "data:"), ",")
	if !ok {
		return "", nil, fmt.Errorf("%w: malformed data URL", ErrInvalidImage)
	}
	contentType, encoding, _ := strings.Cut(meta, ";")
	if encoding != "base64" {
		return "", nil, fmt.Errorf("%w: data URL is not base64", ErrInvalidImage)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	return contentType, data, nil
}
