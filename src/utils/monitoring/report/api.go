package report

import (
	"go.uber.org/atomic"
)

type ApiErrors struct {
	Unauthorized atomic.Uint64 `json:"unauthorized"`
	Forbidden    atomic.Uint64 `json:"forbidden"`
	BadRequest   atomic.Uint64 `json:"bad_request"`
	Validation   atomic.Uint64 `json:"validation"`
	DbError      atomic.Uint64 `json:"db_error"`

	LastDbErrorTimestamp atomic.Int64 `json:"last_db_error_timestamp"`
}

type ApiState struct {
	SyncStateUpdatesReceived atomic.Uint64 `json:"sync_state_updates_received"`
	SyncStateUpdatesSaved    atomic.Uint64 `json:"sync_state_updates_saved"`

	LastSuccessfulUpdateTimestamp atomic.Int64 `json:"last_successful_update_timestamp"`
}

type ApiReport struct {
	State  ApiState  `json:"state"`
	Errors ApiErrors `json:"errors"`
}
