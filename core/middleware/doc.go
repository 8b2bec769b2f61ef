// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//   - CORS: Stamps Access-Control-Allow-Origin on every response and answers
//     preflight requests, so the front end can call the API from any origin.
//
// Both are registered globally in core/server before any feature routes.
package middleware
