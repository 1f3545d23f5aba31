// Package localize turns HotPepper shop records into English detail cards:
// a romanized name, dictionary lookups for common amenity values, and
// machine translation for the remaining Japanese fields.
package localize
