// SPDX-FileCopyrightText: 2026-present The recsum Authors
//
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/recsum/recsum/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Codec encodes and decodes values of type T
type Codec[T any] interface {
	Encode(T) ([]byte, error)
	Decode([]byte) (T, error)
}

// JSON returns a JSON codec for T
func JSON[T any]() Codec[T] {
	return jsonCodec[T]{}
}

// YAML returns a YAML codec for T
func YAML[T any]() Codec[T] {
	return yamlCodec[T]{}
}

// CodecFor returns the codec matching the extension of the given path
func CodecFor[T any](path string) (Codec[T], error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON[T](), nil
	case ".yaml", ".yml":
		return YAML[T](), nil
	default:
		return nil, errors.NewInvalid("unsupported file format '%s'", path)
	}
}

type jsonCodec[T any] struct{}

func (c jsonCodec[T]) Encode(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (c jsonCodec[T]) Decode(bytes []byte) (T, error) {
	var value T
	if err := json.Unmarshal(bytes, &value); err != nil {
		return value, errors.NewInvalid("json decoding failed: %v", err)
	}
	return value, nil
}

type yamlCodec[T any] struct{}

func (c yamlCodec[T]) Encode(value T) ([]byte, error) {
	return yaml.Marshal(value)
}

func (c yamlCodec[T]) Decode(bytes []byte) (T, error) {
	var value T
	if err := yaml.Unmarshal(bytes, &value); err != nil {
		return value, errors.NewInvalid("yaml decoding failed: %v", err)
	}
	return value, nil
}
