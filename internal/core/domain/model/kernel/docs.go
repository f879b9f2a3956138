// Package kernel provides the shared value objects of the marketplace domain.
//
// The package includes:
//   - UUID: identifier for every aggregate (users, orders, offers, ...)
//   - GPSPosition: validated latitude/longitude pair attached to addresses
//
// Zero values of both types are invalid; use the constructors.
package kernel
