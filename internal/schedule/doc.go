// Package schedule talks to the Sveriges Radio open API. It retrieves the
// channel index and the paginated per-day episode schedule as XML and turns
// them into model values, resolving logos through an artwork loader.
package schedule
