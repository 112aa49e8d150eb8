// Package api exposes the review, statistics and queue operations over HTTP.
// Handlers decode and validate requests, call the services and translate
// their errors into status codes with sanitized messages.
package api
