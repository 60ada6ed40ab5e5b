package integration

import (
	"fmt"
	"os"
	"path"
	"sync"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/ngthuong45/flashsale/pkg/migration"

	// for integration test, must not be imported in any main.go
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// TestCase ...
type TestCase struct {
	DB *sqlx.DB
}

var initOnce sync.Once

var globalDB *sqlx.DB

// NewTestCase connects to the test database named by FLASHSALE_TEST_MYSQL
// (a DSN like root:1@tcp(localhost:3306)/flashsale_test?parseTime=true)
// and migrates it up once. Tests are skipped when the variable is unset.
func NewTestCase(t *testing.T) *TestCase {
	dsn := os.Getenv("FLASHSALE_TEST_MYSQL")
	if dsn == "" {
		t.Skip("FLASHSALE_TEST_MYSQL is not set")
	}

	initOnce.Do(func() {
		rootDir := findRootDir()
		migration.MigrateUpForTesting(rootDir, dsn)

		globalDB = sqlx.MustConnect("mysql", dsn)
	})

	return &TestCase{
		DB: globalDB,
	}
}

// Truncate ...
func (tc *TestCase) Truncate(table string) {
	tc.DB.MustExec(fmt.Sprintf("TRUNCATE %s", table))
}

func findRootDir() string {
	workdir, err := os.Getwd()
	if err != nil {
		panic(err)
	}

	directory := workdir
	for {
		entries, err := os.ReadDir(directory)
		if err != nil {
			panic(err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if entry.Name() == "go.mod" {
				return directory
			}
		}

		directory = path.Dir(directory)
	}
}
