// Package http provides the HTTP transport layer for the data library
// service: chi routers, request validation middleware and the mapping from
// library and service errors to structured API error responses.
package http
