// Package services contains the business logic layer between the HTTP
// transport and the library loader. Services validate boundary input,
// attach context-aware logging and record load metrics; the underlying
// library errors pass through so transports can map them to responses.
package services
