package pack

import (
	jsoniter "github.com/json-iterator/go"
)

// recordKey is the record store key the pack state persists under.
const recordKey = "pack-store"

// recordVersion is the current persisted format version. Older records load
// as-is: fields added since then simply take their zero values, which read
// back as "unset" (no bag weight, no allowance).
const recordVersion = 3

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// stateRecord is the persisted slice of the pack store.
type stateRecord struct {
	Version   int            `json:"version"`
	Pack      Pack           `json:"pack"`
	Templates []PackTemplate `json:"templates"`
	LastAdded *LastAdded     `json:"lastAdded,omitempty"`
}

func encodeState(rec stateRecord) ([]byte, error) {
	return json.Marshal(rec)
}

func decodeState(data []byte) (stateRecord, error) {
	var rec stateRecord
	err := json.Unmarshal(data, &rec)
	return rec, err
}
