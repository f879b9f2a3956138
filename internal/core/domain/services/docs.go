// Package services provides domain services that make decisions spanning
// several aggregates of the marketplace.
//
// The package includes:
//   - AccessPolicy: the role and ownership rules gating every action
//   - Visibility: the role-scoped base row set for each listable resource
//
// Both are pure functions of the caller (user.Actor) and the data handed to
// them. They never read the caller from ambient state and never touch storage.
package services
