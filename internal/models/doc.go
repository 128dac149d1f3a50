// Cinematch - Item-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package models defines the JSON shapes returned by the HTTP API.

Every endpoint answers with an APIResponse envelope. Successful responses
carry the payload in Data; failures carry an APIError with a stable
machine-readable Code. Metadata holds the server timestamp, the query time
and the request ID echoed in the X-Request-ID header.

Recommendation payloads themselves (similar movies, rankings, dataset
statistics) are defined in the recommend package and placed in Data as-is.
*/
package models
