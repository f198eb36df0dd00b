// Copyright © 2024 The DDB authors

package mi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestField(t *testing.T) {
	t.Parallel()
	rec := Record{
		"name":  "var1",
		"value": "",
		"child": Record{"exp": "x"},
	}

	s, ok := rec.Field("name")
	assert.True(t, ok)
	assert.Equal(t, "var1", s)

	// A present empty string is not the absent sentinel.
	s, ok = rec.Field("value")
	assert.True(t, ok)
	assert.Equal(t, "", s)

	_, ok = rec.Field("missing")
	assert.False(t, ok)

	// Non-string leaves are reported as absent to the caller.
	_, ok = rec.Field("child")
	assert.False(t, ok)
}

func TestFlag(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		rec  Record
		want bool
	}{
		{name: "absent is false", rec: Record{}, want: false},
		{name: "empty is false", rec: Record{"frozen": ""}, want: false},
		{name: "zero is false", rec: Record{"frozen": "0"}, want: false},
		{name: "one is true", rec: Record{"frozen": "1"}, want: true},
		{name: "true is true", rec: Record{"frozen": "true"}, want: true},
		{
			// The backend sends untyped strings; the rule is
			// truthiness, not boolean parsing.
			name: "literal false is true",
			rec:  Record{"frozen": "false"},
			want: true,
		},
		{name: "count is true", rec: Record{"frozen": "2"}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rec.Flag("frozen"))
		})
	}
}

func TestChildCount(t *testing.T) {
	t.Parallel()
	n, err := Record{"numchild": "3"}.ChildCount("numchild")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = Record{"numchild": "0"}.ChildCount("numchild")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	// A missing count is an error, never a silent zero: the count
	// drives compound classification.
	_, err = Record{}.ChildCount("numchild")
	assert.Error(t, err)

	_, err = Record{"numchild": "three"}.ChildCount("numchild")
	assert.Error(t, err)

	_, err = Record{"numchild": "-1"}.ChildCount("numchild")
	assert.Error(t, err)
}

func TestInt(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 7, Record{"thread-id": "7"}.Int("thread-id"))
	assert.Equal(t, 0, Record{}.Int("thread-id"))
	assert.Equal(t, 0, Record{"thread-id": "all"}.Int("thread-id"))
}
