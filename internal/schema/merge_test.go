package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeEmptySourceLeavesTargetUntouched(t *testing.T) {
	target := map[string]any{"a": 1.0, "b": map[string]any{"c": "x"}}
	got := Merge(target, map[string]any{})
	assert.Equal(t, map[string]any{"a": 1.0, "b": map[string]any{"c": "x"}}, got)
}

func TestMergeRecursesIntoObjects(t *testing.T) {
	target := map[string]any{
		"settings": map[string]any{"theme": "dark", "initialSetupDone": false},
	}
	source := map[string]any{
		"settings": map[string]any{"initialSetupDone": true},
	}

	got := Merge(target, source)

	settings := got["settings"].(map[string]any)
	assert.Equal(t, true, settings["initialSetupDone"])
	// Keys absent from the source survive.
	assert.Equal(t, "dark", settings["theme"])
}

func TestMergeArraysOverwriteWholesale(t *testing.T) {
	target := map[string]any{"categories": []any{"a", "b", "c"}}
	source := map[string]any{"categories": []any{"z"}}

	got := Merge(target, source)
	assert.Equal(t, []any{"z"}, got["categories"])
}

func TestMergeObjectReplacesNonObject(t *testing.T) {
	target := map[string]any{"creditCard": "oops"}
	source := map[string]any{"creditCard": map[string]any{"limit": 1000.0}}

	got := Merge(target, source)
	assert.Equal(t, map[string]any{"limit": 1000.0}, got["creditCard"])
}

func TestMergeNullOverwrites(t *testing.T) {
	target := map[string]any{"theme": "dark"}
	source := map[string]any{"theme": nil}

	got := Merge(target, source)
	v, exists := got["theme"]
	assert.True(t, exists)
	assert.Nil(t, v)
}

func TestMergeAddsNewKeys(t *testing.T) {
	target := map[string]any{}
	source := map[string]any{"debts": []any{}, "nested": map[string]any{"k": 1.0}}

	got := Merge(target, source)
	assert.Contains(t, got, "debts")
	assert.Equal(t, map[string]any{"k": 1.0}, got["nested"])
}
