// Package metadata reads audio tags: track text fields, the embedded cover
// picture, and embedded lyrics. Files with unreadable or missing tags still
// yield usable metadata by deriving a title from the file name.
package metadata
