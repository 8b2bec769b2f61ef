// Package apikey exposes the API key store to the front end.
//
// # HTTP Endpoints
//
//   - POST /api/set_apikey : Stores {"apikey": "..."}. 400 on malformed JSON or a
//     missing/empty field. 200 with status "ok" when memory and disk were updated,
//     status "partial" when only memory was (500 in strict mode).
//   - GET /api/apikey : Returns the key as plain text, 404 if none is set.
package apikey
