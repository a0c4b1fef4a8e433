package model

// Subject is a catalog entry mapping a site show id (stored as _id) to bgm.tv.
// Entries are loaded out of band, so the document is passed through as is.
type Subject map[string]interface{}
