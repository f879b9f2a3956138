// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, authorization,
// transaction management, and persistence. Every authorization and lifecycle
// check runs before the first write.
package commands

import (
	"context"

	"fixit/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	CityRepoFactory interface {
		CityRepository() ports.CityRepository
	}

	AddressRepoFactory interface {
		AddressRepository() ports.AddressRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	OfferRepoFactory interface {
		OfferRepository() ports.OfferRepository
	}

	ComplaintRepoFactory interface {
		ComplaintRepository() ports.ComplaintRepository
	}

	RatingRepoFactory interface {
		RatingRepository() ports.RatingRepository
	}

	// UserUoW manages transactions for account operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	UserUoWFactory interface {
		Create() UserUoW
	}

	CityUoW interface {
		TxManager
		CityRepoFactory
	}

	CityUoWFactory interface {
		Create() CityUoW
	}

	// AddressUoW checks the referenced city while writing addresses.
	AddressUoW interface {
		TxManager
		AddressRepoFactory
		CityRepoFactory
	}

	AddressUoWFactory interface {
		Create() AddressUoW
	}

	// OrderUoW checks the referenced address while writing orders.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   addressRepo := uow.AddressRepository()
	//   orderRepo := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		AddressRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OfferUoW reads the target order while writing offers.
	OfferUoW interface {
		TxManager
		OfferRepoFactory
		OrderRepoFactory
	}

	OfferUoWFactory interface {
		Create() OfferUoW
	}

	ComplaintUoW interface {
		TxManager
		ComplaintRepoFactory
	}

	ComplaintUoWFactory interface {
		Create() ComplaintUoW
	}

	// RatingUoW reads the rated order's status while writing ratings.
	RatingUoW interface {
		TxManager
		RatingRepoFactory
		OrderRepoFactory
	}

	RatingUoWFactory interface {
		Create() RatingUoW
	}
)
