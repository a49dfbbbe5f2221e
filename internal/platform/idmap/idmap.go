// Package idmap provides a JSON object keyed by database id that keeps the
// insertion order of its entries, unlike a Go map.
package idmap

import (
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Entry[V any] struct {
	ID    int64
	Value V
}

// Map encodes as {"<id>": value, ...} in slice order.
type Map[V any] []Entry[V]

// Put appends id, or replaces its value in place when already present.
func (m *Map[V]) Put(id int64, v V) {
	for i := range *m {
		if (*m)[i].ID == id {
			(*m)[i].Value = v
			return
		}
	}
	*m = append(*m, Entry[V]{ID: id, Value: v})
}

func (m Map[V]) Get(id int64) (V, bool) {
	for _, e := range m {
		if e.ID == id {
			return e.Value, true
		}
	}
	var zero V
	return zero, false
}

func (m Map[V]) IDs() []int64 {
	ids := make([]int64, 0, len(m))
	for _, e := range m {
		ids = append(ids, e.ID)
	}
	return ids
}

func (m Map[V]) MarshalJSON() ([]byte, error) {
	stream := json.BorrowStream(nil)
	defer json.ReturnStream(stream)

	stream.WriteObjectStart()
	for i, e := range m {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(strconv.FormatInt(e.ID, 10))
		stream.WriteVal(e.Value)
	}
	stream.WriteObjectEnd()

	if stream.Error != nil {
		return nil, stream.Error
	}
	return append([]byte(nil), stream.Buffer()...), nil
}
