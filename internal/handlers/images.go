// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"interia/internal/models"
	"interia/internal/storage"
)

// errNoStorage is returned when an upload is requested but object storage
// is not configured.
var errNoStorage = errors.New("object storage not configured")

// ImageInput accepts the three shapes clients send for an image field:
// a base64 data URI (new upload), an existing reference object (keep), or
// null (remove). A plain https URL string is kept as an unmanaged reference.
type ImageInput struct {
	set bool
	raw json.RawMessage
}

// UnmarshalJSON records the raw value; interpretation happens in resolve,
// which needs the storage client.
func (in *ImageInput) UnmarshalJSON(data []byte) error {
	in.set = true
	in.raw = append(in.raw[:0], data...)
	return nil
}

// Provided reports whether the field appeared in the request at all,
// distinguishing "leave unchanged" from an explicit null.
func (in *ImageInput) Provided() bool {
	return in.set
}

// resolveImage turns an image input into a stored reference. Data URIs are
// uploaded to the CDN under folder; reference objects and bare URLs pass
// through. Returns nil for null input. Errors propagate for the caller to
// map through writeStorageError: malformed payloads become 400, storage
// call failures 502/504, and either aborts the write.
func (h *Content) resolveImage(ctx context.Context, in ImageInput, folder string) (*models.ImageRef, error) {
	if !in.set || string(in.raw) == "null" {
		return nil, nil
	}

	// String input: data URI to upload, or an external URL to keep.
	var s string
	if err := json.Unmarshal(in.raw, &s); err == nil {
		if s == "" {
			return nil, nil
		}
		if storage.IsDataURI(s) {
			// Decode before touching storage: a malformed payload is a
			// client error even when no storage is configured.
			contentType, data, err := storage.DecodeDataURI(s)
			if err != nil {
				return nil, err
			}
			if h.storage == nil {
				return nil, errNoStorage
			}
			assetID, url, err := h.storage.UploadBytes(ctx, folder, contentType, data)
			if err != nil {
				return nil, err
			}
			return &models.ImageRef{URL: url, AssetID: assetID}, nil
		}
		return &models.ImageRef{URL: s}, nil
	}

	// Object input: an existing reference round-tripped by the client.
	var ref models.ImageRef
	if err := json.Unmarshal(in.raw, &ref); err != nil {
		return nil, fmt.Errorf("%w: unrecognized image field shape", storage.ErrInvalidImage)
	}
	if ref.IsZero() {
		return nil, nil
	}
	return &ref, nil
}

// deleteAsset removes a CDN asset best-effort: failures are logged, never
// surfaced. Unmanaged references (no asset ID) are skipped.
func (h *Content) deleteAsset(ctx context.Context, ref *models.ImageRef) {
	if ref == nil || !ref.Managed() || h.storage == nil {
		return
	}
	if err := h.storage.Delete(ctx, ref.AssetID); err != nil {
		slog.Warn("asset delete failed", "asset_id", ref.AssetID, "error", err)
	}
}

// deleteReplaced removes the previous asset when an edit swapped it out.
// Nothing happens if the asset is unchanged or the old value was unmanaged.
func (h *Content) deleteReplaced(ctx context.Context, old, next *models.ImageRef) {
	if old == nil || !old.Managed() {
		return
	}
	if next != nil && next.AssetID == old.AssetID {
		return
	}
	h.deleteAsset(ctx, old)
}
