// Package schema loads previously persisted state: it layers saved JSON
// over the current default skeleton, decodes it leniently, and repairs
// whatever is structurally off. The pass never fails; a corrupted field
// is normalized rather than blocking load.
package schema

// Merge deep-merges source into target and returns target. For every key
// present in source: plain objects recurse (replacing target's value with
// a fresh object when it is missing, non-object, or an array); arrays,
// primitives, and explicit nulls overwrite target's value wholesale.
// Keys absent from source leave target untouched. Arrays are never merged
// element-wise.
//
// Callers must validate that the root source is an object before invoking.
func Merge(target, source map[string]any) map[string]any {
	for key, sv := range source {
		if obj, isObject := sv.(map[string]any); isObject {
			tobj, ok := target[key].(map[string]any)
			if !ok {
				tobj = map[string]any{}
				target[key] = tobj
			}
			Merge(tobj, obj)
			continue
		}
		target[key] = sv
	}
	return target
}
