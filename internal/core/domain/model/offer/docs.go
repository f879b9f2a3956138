// Package offer provides the Offer aggregate: a worker's price bid on an order.
//
// Key business rules:
//   - The worker is always the caller that submitted the offer
//   - A new offer starts as Pending and not accepted
//   - Accepting or rejecting an offer never changes the order it belongs to
package offer
