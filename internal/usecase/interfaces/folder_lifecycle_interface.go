package interfaces

import "context"

// IFolderLifecycle is the external folder-store collaborator. The engine only
// needs existence and rename semantics: quote folders carry a COT prefix and
// are renamed to PED on conversion. Both calls are best-effort from the
// caller's point of view — failures are logged, never rolled back into the
// status change.

type IFolderLifecycle interface {
	EnsureProjectFolder(ctx context.Context, code, client, description, date string, isOrder bool) (string, error)
	PromoteToOrder(ctx context.Context, code string) (bool, error)
}
