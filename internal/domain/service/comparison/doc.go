// Package comparison scores boats against each other and against the catalog,
// memoizing pair results in an explicit ResultCache.
package comparison
