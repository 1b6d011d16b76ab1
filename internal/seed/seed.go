package seed

import (
	"fmt"
	"log"

	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumSellers  int
	NumProducts int
	ShouldClean bool
}

// Run populates the database with demo sellers, listings, follows and
// favorites. With ShouldClean set it wipes the marketplace tables first.
func Run(db *gorm.DB, opts Options) error {
	if opts.NumSellers <= 0 {
		opts.NumSellers = 20
	}
	if opts.NumProducts <= 0 {
		opts.NumProducts = 120
	}

	if opts.ShouldClean {
		log.Println("cleaning marketplace tables...")
		for _, model := range []interface{}{
			&models.Favorite{}, &models.Follower{}, &models.ProductImage{}, &models.Product{}, &models.Seller{},
		} {
			if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return fmt.Errorf("cleaning tables: %w", err)
			}
		}
	}

	factory := NewFactory(db)

	sellers := make([]*models.Seller, 0, opts.NumSellers)
	for i := 0; i < opts.NumSellers; i++ {
		seller, err := factory.CreateSeller()
		if err != nil {
			return fmt.Errorf("seeding sellers: %w", err)
		}
		sellers = append(sellers, seller)
	}
	log.Printf("seeded %d sellers", len(sellers))

	products := make([]*models.Product, 0, opts.NumProducts)
	for i := 0; i < opts.NumProducts; i++ {
		seller := sellers[factory.rand.Intn(len(sellers))]
		overrides := []func(*models.Product){}
		// a sprinkling of promoted and sold listings
		if factory.rand.Intn(10) == 0 {
			overrides = append(overrides, func(p *models.Product) { p.Promoted = true })
		}
		if factory.rand.Intn(8) == 0 {
			overrides = append(overrides, func(p *models.Product) { p.Sold = true })
		}
		product, err := factory.CreateProduct(seller, overrides...)
		if err != nil {
			return fmt.Errorf("seeding products: %w", err)
		}
		products = append(products, product)
	}
	log.Printf("seeded %d products", len(products))

	// a loose social mesh: each seller follows a handful of others
	follows := 0
	for _, seller := range sellers {
		for i := 0; i < 3; i++ {
			target := sellers[factory.rand.Intn(len(sellers))]
			if err := factory.CreateFollow(seller.ID, target.ID); err != nil {
				return fmt.Errorf("seeding follows: %w", err)
			}
			follows++
		}
	}
	log.Printf("seeded %d follows", follows)

	return nil
}
