// Package translation translates Japanese text to English through a remote
// backend. Results are memoized in a Cache that is persisted to a session
// store, and translation failures degrade to returning the source text.
package translation
