// Package dragdrop implements drag and drop between elements.
//
// A drag is armed on mouse down and starts once the pointer travels
// past a small threshold, so plain clicks never turn into drags. Drop
// zones are registered during paint; the controller matches the
// payload's type against each zone's accepted types while the drag is
// in flight.
package dragdrop

import (
	"encoding/json"
	"errors"
)

// ErrNotJSON is returned when decoding a payload that is not JSON.
var ErrNotJSON = errors.New("dragdrop: payload is not JSON")

// DataKind discriminates drag payloads.
type DataKind int

const (
	// DataText carries a plain string.
	DataText DataKind = iota
	// DataIndex carries a single item index, for reordering.
	DataIndex
	// DataIndices carries a set of item indices, for multi-selection.
	DataIndices
	// DataJSON carries an application-defined payload with a type tag.
	DataJSON
)

// Data is a drag payload. The type tag is what drop zones filter on.
type Data struct {
	Kind DataKind

	text    string
	index   int
	indices []int
	payload []byte
	typeTag string
}

// TextData builds a plain text payload with type "text".
func TextData(text string) Data {
	return Data{Kind: DataText, text: text, typeTag: "text"}
}

// IndexData builds a single-index payload.
func IndexData(typeTag string, index int) Data {
	return Data{Kind: DataIndex, index: index, typeTag: typeTag}
}

// IndicesData builds a multi-index payload.
func IndicesData(typeTag string, indices []int) Data {
	return Data{Kind: DataIndices, indices: append([]int(nil), indices...), typeTag: typeTag}
}

// JSONData serializes v into a tagged payload. Returns the marshal
// error unchanged.
func JSONData(typeTag string, v any) (Data, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return Data{}, err
	}
	return Data{Kind: DataJSON, payload: raw, typeTag: typeTag}, nil
}

// TypeTag returns the payload's type tag.
func (d Data) TypeTag() string {
	return d.typeTag
}

// Text returns the string payload.
func (d Data) Text() (string, bool) {
	return d.text, d.Kind == DataText
}

// Index returns the single-index payload.
func (d Data) Index() (int, bool) {
	return d.index, d.Kind == DataIndex
}

// Indices returns the multi-index payload.
func (d Data) Indices() ([]int, bool) {
	if d.Kind != DataIndices {
		return nil, false
	}
	return d.indices, true
}

// DecodeJSON unmarshals a JSON payload into v.
func (d Data) DecodeJSON(v any) error {
	if d.Kind != DataJSON {
		return ErrNotJSON
	}
	return json.Unmarshal(d.payload, v)
}
