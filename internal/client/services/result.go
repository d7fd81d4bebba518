package services

// Source tells the caller which path produced a read result, so the UI can
// show an "offline" indicator for cached data.
type Source int

const (
	// SourceLive is fresh server data; the cache was refreshed on the way.
	SourceLive Source = iota

	// SourceCache means the network was unreachable and the result came
	// from the local cache. It may be stale or empty.
	SourceCache
)

// Result pairs read data with its source. Callers must not treat a cache
// fallback as live data.
type Result[T any] struct {
	Data   T
	Source Source
}

func live[T any](data T) Result[T] {
	return Result[T]{Data: data, Source: SourceLive}
}

func fromCache[T any](data T) Result[T] {
	return Result[T]{Data: data, Source: SourceCache}
}

// UploadStatus tells the caller whether a write reached the server or was
// queued for later reconciliation. The two must render differently.
type UploadStatus int

const (
	// UploadCommitted: the server accepted the note.
	UploadCommitted UploadStatus = iota

	// UploadQueued: the device was offline; the note sits in the outbox
	// until a sync pass replays it.
	UploadQueued
)

// UploadResult is the outcome of a note upload. The server acknowledges a
// committed upload without returning the record, so a refreshed class
// listing is where the new note first appears.
type UploadResult struct {
	Status UploadStatus

	// TempID identifies the outbox entry. Set only when Status is UploadQueued.
	TempID int64
}
