/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package manifeststore

import (
	"context"
	"errors"

	"github.com/suparena/cmdproc/manifest"
)

// ErrManifestNotFound is returned by Get when no manifest is stored under
// the requested name.
var ErrManifestNotFound = errors.New("manifest not found")

// Store persists command manifests under their manifest name. The processor
// itself never touches a store; stores exist so tools can share and audit
// their command surfaces.
type Store interface {
	// Get retrieves the manifest with the given name.
	Get(ctx context.Context, name string) (*manifest.Manifest, error)

	// Put stores the manifest, replacing any previous version.
	Put(ctx context.Context, m *manifest.Manifest) error

	// Delete removes the manifest with the given name.
	Delete(ctx context.Context, name string) error

	// List returns the names of all stored manifests.
	List(ctx context.Context) ([]string, error)
}
