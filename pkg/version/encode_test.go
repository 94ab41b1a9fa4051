// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package version

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// scenario mirrors the shape version values take inside a test matrix
// document: a gate with explicit bounds.
type scenario struct {
	Name string  `yaml:"name" json:"name"`
	From Version `yaml:"from" json:"from"`
	To   Version `yaml:"to" json:"to"`
}

func TestYAMLRoundTrip(t *testing.T) {
	in := scenario{
		Name: "rolling-upgrade",
		From: MustParse("2.7.6"),
		To:   MustParse("dev"),
	}

	data, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), "from: 2.7.6")
	assert.Contains(t, string(data), "to: dev")

	var out scenario
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.True(t, out.From.Equal(in.From))
	assert.True(t, out.To.IsDev)
	assert.True(t, out.To.Equal(in.To))
}

func TestYAMLUnmarshalInvalid(t *testing.T) {
	var v Version
	err := yaml.Unmarshal([]byte(`"."`), &v)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoComponents)
}

func TestJSONRoundTrip(t *testing.T) {
	in := scenario{
		Name: "compat-check",
		From: MustParse("2.8"),
		To:   MustParse("2.10.0"),
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"compat-check","from":"2.8","to":"2.10.0"}`, string(data))

	var out scenario
	require.NoError(t, json.Unmarshal(data, &out))
	assert.True(t, out.From.Equal(in.From))
	assert.True(t, out.To.Equal(in.To))
}

func TestJSONUnmarshalInvalid(t *testing.T) {
	var v Version
	assert.Error(t, json.Unmarshal([]byte(`""`), &v))
	assert.Error(t, json.Unmarshal([]byte(`42`), &v))
}

func TestTextRoundTrip(t *testing.T) {
	v := MustParse("2.9.1")

	data, err := v.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2.9.1", string(data))

	var out Version
	require.NoError(t, out.UnmarshalText(data))
	assert.True(t, out.Equal(v))
}

func TestTextUnmarshalDev(t *testing.T) {
	var v Version
	require.NoError(t, v.UnmarshalText([]byte("dev")))
	assert.True(t, v.IsDev)
	assert.Equal(t, "dev", v.String())
}
