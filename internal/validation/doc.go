// Package validation turns raw request bodies into either a clean input map
// or a flattened field → message map. Rules are go-playground/validator tag
// chains evaluated one field at a time, so only the first failing rule of
// each field is reported. Messages follow the wording API clients of the
// back office already match against ("The name field is required.").
package validation
