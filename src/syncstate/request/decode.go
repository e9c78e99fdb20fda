package request

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Wire shape of UpdateState, numbers are kept raw until checked
type updateStateJSON struct {
	LastLowerSyncedSlot      json.RawMessage `json:"lastLowerSyncedSlot"`
	LastUpperSyncedSlot      json.RawMessage `json:"lastUpperSyncedSlot"`
	LastFinalizedBlock       json.RawMessage `json:"lastFinalizedBlock"`
	LastUpperSyncedBlockRoot *string         `json:"lastUpperSyncedBlockRoot"`
	LastUpperSyncedBlockSlot json.RawMessage `json:"lastUpperSyncedBlockSlot"`
}

// Accepts any JSON number with an integral value, e.g. 100, 1e2 or 100.0
func (self *UpdateState) UnmarshalJSON(data []byte) (err error) {
	var in updateStateJSON
	err = json.Unmarshal(data, &in)
	if err != nil {
		return
	}

	out := UpdateState{LastUpperSyncedBlockRoot: in.LastUpperSyncedBlockRoot}
	for _, field := range []struct {
		name string
		raw  json.RawMessage
		dst  **uint64
	}{
		{"lastLowerSyncedSlot", in.LastLowerSyncedSlot, &out.LastLowerSyncedSlot},
		{"lastUpperSyncedSlot", in.LastUpperSyncedSlot, &out.LastUpperSyncedSlot},
		{"lastFinalizedBlock", in.LastFinalizedBlock, &out.LastFinalizedBlock},
		{"lastUpperSyncedBlockSlot", in.LastUpperSyncedBlockSlot, &out.LastUpperSyncedBlockSlot},
	} {
		*field.dst, err = parseInteger(field.name, field.raw)
		if err != nil {
			return
		}
	}

	*self = out
	return nil
}

// Nil for a missing or null value
func parseInteger(name string, raw json.RawMessage) (*uint64, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var number json.Number
	if raw[0] == '"' || json.Unmarshal(raw, &number) != nil {
		return nil, fmt.Errorf("%s must be a number", name)
	}

	if v, err := strconv.ParseUint(number.String(), 10, 64); err == nil {
		return &v, nil
	}

	f, err := number.Float64()
	if err != nil || f < 0 || f != math.Trunc(f) || f >= math.MaxInt64 {
		return nil, fmt.Errorf("%s must be a non-negative integer no larger than %d", name, int64(math.MaxInt64))
	}
	v := uint64(f)
	return &v, nil
}
