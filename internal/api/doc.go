// Package api handles incoming HTTP requests, request validation and
// response formatting. Every resource shares one generic handler; the
// per-resource differences (rule sets, filters, messages) are data in
// resources.go.
package api
