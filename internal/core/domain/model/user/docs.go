// Package user holds the identity model of the marketplace: users, their
// closed set of roles, and the Actor value that carries the caller's identity
// into every authorization and visibility decision.
//
// Key business rules:
//   - Email is unique and normalized (domain part lower-cased)
//   - Users are never physically removed; SoftDelete marks them deleted once
//     and keeps the first deletion timestamp
//   - Role is one of Customer, Worker, Admin, TechnicalSupport; anonymous
//     callers have RoleNone
package user
