package storage

import "encoding/json"

// ReadCollection loads the full sequence stored under slot. An absent slot or
// a value that no longer parses both come back as an empty sequence; callers
// never see a corrupt slot as an error.
func ReadCollection[T any](s RecordStore, slot string) []T {
	data, err := s.Read(slot)
	if err != nil || len(data) == 0 {
		return []T{}
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return []T{}
	}
	return out
}

// WriteCollection replaces the stored sequence wholesale. There is no partial
// merge: callers read, modify, and write the entire collection.
func WriteCollection[T any](s RecordStore, slot string, records []T) error {
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return s.Write(slot, data)
}

// ReadRecord loads a single record slot, reporting whether one was present
// and parseable.
func ReadRecord[T any](s RecordStore, slot string) (T, bool) {
	var out T
	data, err := s.Read(slot)
	if err != nil || len(data) == 0 {
		return out, false
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, false
	}
	return out, true
}

// WriteRecord stores a single record under slot.
func WriteRecord[T any](s RecordStore, slot string, record T) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return s.Write(slot, data)
}
