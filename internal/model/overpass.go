package model

//
// Overpass API data model
//

import "encoding/json"

// OverpassDocument is the JSON document returned by the Overpass
// interpreter when the query asks for `[out:json]`.
type OverpassDocument struct {
	// Generator is the software that produced the response.
	Generator string `json:"generator,omitempty"`

	// Version is the Overpass API output version.
	Version float64 `json:"version,omitempty"`

	// Remark is the OPTIONAL remark the server adds when, e.g., the
	// query timed out on the server side.
	Remark string `json:"remark,omitempty"`

	// Elements contains the returned elements in server order. It is
	// nil when the response lacks the "elements" key.
	Elements []OverpassElement `json:"elements"`
}

// OverpassElement is an element of [OverpassDocument].
//
// We only decode the fields we need. Geometry skeletons returned
// by `out skel` decode fine but their coordinates are dropped.
type OverpassElement struct {
	// Type is the element type (e.g., "relation", "way", "node").
	Type string `json:"type,omitempty"`

	// ID is the OpenStreetMap ID of the element.
	ID int64 `json:"id,omitempty"`

	// Tags contains the element tags, if any.
	Tags map[string]string `json:"tags,omitempty"`

	// hasTags records whether the "tags" key was present, which
	// is not the same thing as Tags being non-nil.
	hasTags bool
}

// HasTags returns whether the JSON object carried a "tags" key.
func (e *OverpassElement) HasTags() bool {
	return e.hasTags
}

// Name returns the "name" tag and whether it exists.
func (e *OverpassElement) Name() (string, bool) {
	name, found := e.Tags["name"]
	return name, found
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *OverpassElement) UnmarshalJSON(data []byte) error {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	type element OverpassElement // avoid recursion
	var out element
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	_, out.hasTags = keys["tags"]
	*e = OverpassElement(out)
	return nil
}
