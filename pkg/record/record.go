// SPDX-FileCopyrightText: 2026-present The recsum Authors
//
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Record holds a single unsigned quantity.
// A Record is never modified after construction; reusing one after passing
// it to a consuming call requires an explicit Clone.
type Record struct {
	num uint
}

// New creates a new Record holding num
func New(num uint) Record {
	return Record{num: num}
}

// Num returns the record's quantity
func (r Record) Num() uint {
	return r.num
}

// Clone returns an independent copy of the record
func (r Record) Clone() Record {
	return Record{num: r.num}
}

func (r Record) String() string {
	return fmt.Sprintf("Record{num: %d}", r.num)
}

type wireRecord struct {
	Num uint `json:"num" yaml:"num"`
}

func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireRecord{Num: r.num})
}

func (r *Record) UnmarshalJSON(bytes []byte) error {
	var w wireRecord
	if err := json.Unmarshal(bytes, &w); err != nil {
		return err
	}
	*r = New(w.Num)
	return nil
}

func (r Record) MarshalYAML() (interface{}, error) {
	return wireRecord{Num: r.num}, nil
}

func (r *Record) UnmarshalYAML(node *yaml.Node) error {
	var w wireRecord
	if err := node.Decode(&w); err != nil {
		return err
	}
	*r = New(w.Num)
	return nil
}
