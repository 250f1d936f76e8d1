package users

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/padronapp/padron/pkg/repository"
	"github.com/padronapp/padron/pkg/storage"
)

// photoExtensions defines the permitted photo content types and the file
// extension used for their blob keys.
var photoExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// UploadPhoto replaces the user's photo: the prior blob (if any) is deleted
// best-effort, the new one is uploaded under a fresh key, and its public URL
// is persisted on the record.
func (r *repo) UploadPhoto(ctx context.Context, documentID string, data []byte, contentType string) (string, error) {
	u, err := r.Get(ctx, documentID)
	if err != nil {
		return "", err
	}

	if len(data) == 0 {
		return "", ErrNoFile
	}

	ext, ok := photoExtensions[strings.ToLower(contentType)]
	if !ok {
		return "", ErrInvalidPhotoType
	}

	if u.PhotoURL != nil && *u.PhotoURL != "" {
		r.deleteBlobByURL(ctx, *u.PhotoURL)
	}

	key := fmt.Sprintf("%s/%s%s", u.DocumentID, uuid.New(), ext)
	if err := r.storage.Upload(ctx, key, bytes.NewReader(data), contentType); err != nil {
		return "", fmt.Errorf("upload photo blob: %w", err)
	}

	url := r.storage.URL(key)
	if err := r.setPhotoURL(ctx, u.DocumentID, &url); err != nil {
		return "", err
	}

	r.logger.Info("foto actualizada", "documento", u.DocumentID, "key", key)
	return url, nil
}

// GetPhoto returns the stored public photo URL.
func (r *repo) GetPhoto(ctx context.Context, documentID string) (string, error) {
	u, err := r.Get(ctx, documentID)
	if err != nil {
		return "", err
	}

	if u.PhotoURL == nil || *u.PhotoURL == "" {
		return "", ErrNoPhoto
	}

	return *u.PhotoURL, nil
}

// DeletePhoto clears the record's photo field. The blob itself is deleted
// best-effort and only when the stored URL belongs to the managed container;
// blob-layer failures are logged and swallowed.
func (r *repo) DeletePhoto(ctx context.Context, documentID string) error {
	u, err := r.Get(ctx, documentID)
	if err != nil {
		return err
	}

	if u.PhotoURL == nil || *u.PhotoURL == "" {
		return ErrNoPhoto
	}

	r.deleteBlobByURL(ctx, *u.PhotoURL)

	if err := r.setPhotoURL(ctx, u.DocumentID, nil); err != nil {
		return err
	}

	r.logger.Info("foto eliminada", "documento", u.DocumentID)
	return nil
}

func (r *repo) setPhotoURL(ctx context.Context, documentID string, url *string) error {
	if err := repository.ExecExpectOne(
		ctx, r.db,
		"UPDATE usuarios SET foto = $1 WHERE documento_identidad = $2",
		url, documentID,
	); err != nil {
		return repository.MapError(err, ErrNotFound, duplicateErrs)
	}
	return nil
}

// deleteBlobByURL removes the blob behind a stored photo URL. URLs outside
// the managed container are skipped; a missing blob is not an error.
func (r *repo) deleteBlobByURL(ctx context.Context, url string) {
	key, err := r.storage.KeyFromURL(url)
	if err != nil {
		r.logger.Warn("foto con URL externa, se omite el borrado del blob", "url", url)
		return
	}

	if err := r.storage.Delete(ctx, key); err != nil && !errors.Is(err, storage.ErrNotFound) {
		r.logger.Warn("no se pudo borrar el blob de la foto", "key", key, "error", err)
	}
}
