// Package similarity scores how alike two boats are.
//
// Raw records are first normalized (Normalize), then scored independently on
// type, size and features, and finally combined into a weighted overall score
// (Compare). Everything here is pure and safe for concurrent use; malformed
// input degrades to defaults and only invalid Options produce an error.
package similarity
