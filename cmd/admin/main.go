// Command admin manages administrator flags on seller accounts.
//
// Usage:
//
//	admin promote <email>
//	admin demote <email>
//	admin list
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/config"
	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/database"
	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/repository"
)

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sellerRepo := repository.NewSellerRepository(db)
	ctx := context.Background()

	switch os.Args[1] {
	case "promote", "demote":
		if len(os.Args) < 3 {
			usage()
		}
		email := os.Args[2]
		if err := sellerRepo.SetAdmin(ctx, email, os.Args[1] == "promote"); err != nil {
			log.Fatalf("Failed to update %s: %v", email, err)
		}
		fmt.Printf("%sd %s\n", os.Args[1], email)
	case "list":
		admins, err := sellerRepo.ListAdmins(ctx)
		if err != nil {
			log.Fatalf("Failed to list admins: %v", err)
		}
		for _, admin := range admins {
			fmt.Printf("%s\t%s\n", admin.Email, admin.StoreName)
		}
	default:
		usage()
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: admin promote <email> | demote <email> | list")
	os.Exit(2)
}
