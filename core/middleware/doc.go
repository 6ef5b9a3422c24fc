// Package middleware groups the HTTP middleware of the schedule server.
//
// # Components
//
//   - auth: rejects requests whose X-API-Key header does not match server.api_key.
//     An empty key leaves the routes open.
//   - rayid: assigns every request a ray id (reusing an incoming X-Ray-ID header),
//     stores it under the "ray_id" local and echoes it in the response.
//
// cmd/start registers rayid first so request logs carry the id, then the public routes
// (swagger, metrics, health), then auth in front of the feature routes.
package middleware
