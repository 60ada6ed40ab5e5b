package migration

import (
	"fmt"
	"path"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
)

func newMigrate(sourceDir string, dsn string) *migrate.Migrate {
	m, err := migrate.New("file://"+path.Join(sourceDir, "migrations"), "mysql://"+dsn)
	if err != nil {
		panic(err)
	}
	return m
}

func migrateUp(sourceDir string, dsn string) {
	m := newMigrate(sourceDir, dsn)
	err := m.Up()
	if err != nil && err != migrate.ErrNoChange {
		panic(err)
	}
}

func migrateDown(sourceDir string, dsn string) {
	m := newMigrate(sourceDir, dsn)
	err := m.Down()
	if err != nil && err != migrate.ErrNoChange {
		panic(err)
	}
}

// MigrateUpForTesting ...
func MigrateUpForTesting(rootDir string, dsn string) {
	migrateUp(rootDir, dsn)
}

// MigrateCommand ...
func MigrateCommand(dsn string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use: "migrate",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "migrate up all versions",
		Run: func(cmd *cobra.Command, args []string) {
			migrateUp(".", dsn)
			fmt.Println("Migrated up successfully")
		},
	}

	downCmd := &cobra.Command{
		Use:   "down",
		Short: "migrate down all versions",
		Run: func(cmd *cobra.Command, args []string) {
			migrateDown(".", dsn)
			fmt.Println("Migrated down successfully")
		},
	}

	rootCmd.AddCommand(upCmd, downCmd)
	return rootCmd
}
