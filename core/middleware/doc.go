// Package middleware contains HTTP middleware for the read views.
//
// # Components
//
//   - auth: rejects requests without the configured X-API-Key (open when no key is set).
//   - rayid: assigns every request a ray id, stored in fiber locals and echoed in
//     the X-Ray-ID response header so log lines can be correlated.
package middleware
