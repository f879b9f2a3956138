package postgres

import (
	"fmt"

	"fixit/internal/adapters/out/postgres/addressrepo"
	"fixit/internal/adapters/out/postgres/complaintrepo"
	"fixit/internal/adapters/out/postgres/offerrepo"
	"fixit/internal/adapters/out/postgres/orderrepo"
	"fixit/internal/adapters/out/postgres/ratingrepo"
	"fixit/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

type foreignKey struct {
	table, name, column, references, onDelete string
}

// Users are only soft deleted, so nothing cascades from them. Deleting an
// address removes its orders; deleting an order removes its offers and ratings.
var foreignKeys = []foreignKey{
	{"addresses", "fk_addresses_city", "city_id", "cities(id)", "CASCADE"},
	{"addresses", "fk_addresses_user", "user_id", "users(id)", "RESTRICT"},
	{"orders", "fk_orders_address", "address_id", "addresses(id)", "CASCADE"},
	{"orders", "fk_orders_customer", "customer_id", "users(id)", "RESTRICT"},
	{"offers", "fk_offers_order", "order_id", "orders(id)", "CASCADE"},
	{"offers", "fk_offers_worker", "worker_id", "users(id)", "RESTRICT"},
	{"complaints", "fk_complaints_user", "user_id", "users(id)", "RESTRICT"},
	{"ratings", "fk_ratings_order", "order_id", "orders(id)", "CASCADE"},
	{"ratings", "fk_ratings_user", "user_id", "users(id)", "RESTRICT"},
}

// Migrate creates or updates every table and (re)creates the foreign keys.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userrepo.UserDTO{},
		&addressrepo.CityDTO{},
		&addressrepo.AddressDTO{},
		&orderrepo.OrderDTO{},
		&offerrepo.OfferDTO{},
		&complaintrepo.ComplaintDTO{},
		&ratingrepo.RatingDTO{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, fk := range foreignKeys {
			stmts := []string{
				fmt.Sprintf("ALTER TABLE %s DROP CONSTRAINT IF EXISTS %s", fk.table, fk.name),
				fmt.Sprintf("ALTER TABLE %s ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s ON DELETE %s",
					fk.table, fk.name, fk.column, fk.references, fk.onDelete),
			}
			for _, stmt := range stmts {
				if err := tx.Exec(stmt).Error; err != nil {
					return fmt.Errorf("foreign key %s: %w", fk.name, err)
				}
			}
		}
		return nil
	})
}
