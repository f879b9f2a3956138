// Package address provides the City and Address entities. An Address belongs
// to exactly one user and is what an order points to as its service location.
package address
