// Package frontend serves the UI files through a catch-all GET route.
//
// Files come from the packaged build root when it exists and from the raw UI
// source root otherwise (see core/assets). Responses:
//
//   - 200 with the file bytes and a content type derived from the extension.
//   - 204 for any api/ path no exact route matched.
//   - 404 "File not found" when the file is missing from the selected root.
package frontend
