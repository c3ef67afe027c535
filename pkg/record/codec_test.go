// SPDX-FileCopyrightText: 2026-present The recsum Authors
//
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"testing"

	"github.com/recsum/recsum/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestJSONCodec(t *testing.T) {
	codec := JSON[[]Record]()
	bytes, err := codec.Encode([]Record{New(3), New(2)})
	assert.NoError(t, err)
	assert.Equal(t, `[{"num":3},{"num":2}]`, string(bytes))

	records, err := codec.Decode([]byte(`[{"num": 10}, {"num": 20}]`))
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, uint(10), records[0].Num())
	assert.Equal(t, uint(20), records[1].Num())

	_, err = codec.Decode([]byte(`[{"num": -1}]`))
	assert.Error(t, err)
	assert.True(t, errors.IsInvalid(err))
}

func TestYAMLCodec(t *testing.T) {
	codec := YAML[[]Record]()
	bytes, err := codec.Encode([]Record{New(3), New(2)})
	assert.NoError(t, err)
	assert.Equal(t, "- num: 3\n- num: 2\n", string(bytes))

	records, err := codec.Decode([]byte("- num: 4\n- num: 5\n"))
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, uint(4), records[0].Num())
	assert.Equal(t, uint(5), records[1].Num())

	_, err = codec.Decode([]byte("- num: foo\n"))
	assert.Error(t, err)
	assert.True(t, errors.IsInvalid(err))
}

func TestCodecFor(t *testing.T) {
	codec, err := CodecFor[Record]("records.json")
	assert.NoError(t, err)
	assert.IsType(t, jsonCodec[Record]{}, codec)

	codec, err = CodecFor[Record]("records.YML")
	assert.NoError(t, err)
	assert.IsType(t, yamlCodec[Record]{}, codec)

	_, err = CodecFor[Record]("records.toml")
	assert.True(t, errors.IsInvalid(err))
}
