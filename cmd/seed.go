/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/julesc00/planetaryApi/config"
	"github.com/julesc00/planetaryApi/internal/db"
	"github.com/julesc00/planetaryApi/internal/store"
	"github.com/julesc00/planetaryApi/types"
	"github.com/spf13/cobra"
)

// seedCmd represents the seed command.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the sample solar system and test user",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()

		dbConn, err := db.Open(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer func() {
			_ = dbConn.Close()
		}()

		planetRepo := store.NewPlanetRepository(dbConn)
		for _, planet := range []types.Planet{
			{Name: "Mercury", Type: "Class D", HomeStar: "Sol", Mass: 3.258e23, Radius: 1516, Distance: 35.98e6},
			{Name: "Venus", Type: "Class K", HomeStar: "Sol", Mass: 4.867e24, Radius: 3760, Distance: 67.24e6},
			{Name: "Earth", Type: "Class M", HomeStar: "Sol", Mass: 5.972e24, Radius: 3959, Distance: 92.96e6},
		} {
			if _, err := planetRepo.Create(cmd.Context(), planet); err != nil {
				return fmt.Errorf("seed planet %s: %w", planet.Name, err)
			}
		}

		userRepo := store.NewUserRepository(dbConn)
		if _, err := userRepo.Create(cmd.Context(), types.User{
			Firstname: "Jemima",
			Lastname:  "Briones",
			Email:     "jemima_eloise@earth.com",
			Password:  "chulis2022",
		}); err != nil {
			return fmt.Errorf("seed user: %w", err)
		}

		cmd.Println("Database seeded")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
