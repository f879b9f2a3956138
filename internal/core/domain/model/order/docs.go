// Package order provides the Order aggregate and its lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root owned by one customer
//   - Status: Pending, InProgress, Completed, Cancelled and the transition check
//   - CheckCustomerFields: the allow-list for customer updates
//
// Key business rules:
//   - New orders are always Pending
//   - Pending -> Completed is rejected on every path that changes status
//   - Customers may only send status, notes, photo, short_video and budget
//   - Accepting an offer never changes the order
package order
