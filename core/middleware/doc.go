// Package middleware groups the fiber middleware of the base media server.
//
//   - rayid tags each request with an X-Ray-ID, reusing the client's when
//     present, for log correlation.
//   - auth requires the configured X-API-Key on every route registered after
//     it. The swagger and metrics routes are registered before it and stay
//     public.
package middleware
