package blob

import (
	"personal-task-planner/internal/storage"
	"personal-task-planner/internal/tasks/repository"
	"personal-task-planner/pkg/log"
)

// taskBlobPrefix namespaces per-user task blobs inside the shared KV.
const taskBlobPrefix = "tasks:"

type implRepository struct {
	kv storage.KV
	l  log.Logger
}

// New creates a blob-backed Repository for the tasks domain.
func New(kv storage.KV, l log.Logger) repository.Repository {
	if kv == nil {
		panic("tasks/repository/blob: kv is required")
	}
	return &implRepository{kv: kv, l: l}
}

func blobKey(userID string) string {
	return taskBlobPrefix + userID
}
