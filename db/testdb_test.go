package db

import (
	"fmt"
	"testing"

	"github.com/Mohfazam/CIVICOS/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory sqlite database, pinned to a
// single connection so the schema survives across queries.
func newTestDB(t *testing.T) *GormDB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(conn))
	return &GormDB{DB: conn}
}

func createTestCitizen(t *testing.T, g *GormDB, name, constituency string) *models.Citizen {
	t.Helper()
	citizen := &models.Citizen{
		Name:         name,
		Email:        fmt.Sprintf("%s@example.com", name),
		Constituency: constituency,
	}
	require.NoError(t, g.DB.Create(citizen).Error)
	return citizen
}

func createTestMLA(t *testing.T, g *GormDB, name, constituency string) *models.MLA {
	t.Helper()
	mla := &models.MLA{
		Name:         name,
		Party:        "IND",
		Constituency: constituency,
		Email:        fmt.Sprintf("%s@assembly.gov.in", name),
	}
	require.NoError(t, g.DB.Create(mla).Error)
	return mla
}

func createTestOrganization(t *testing.T, g *GormDB, name, constituency string) *models.Organization {
	t.Helper()
	org := &models.Organization{
		Name:         name,
		Category:     "WATER",
		Constituency: constituency,
		ContactEmail: fmt.Sprintf("%s@example.org", name),
	}
	require.NoError(t, g.DB.Create(org).Error)
	return org
}

func createTestIssue(t *testing.T, g *GormDB, citizen *models.Citizen, title string, mutate ...func(*models.Issue)) *models.Issue {
	t.Helper()
	issue := &models.Issue{
		Title:       title,
		Description: "description of " + title,
		Category:    "ROADS",
		Location:    "5th Main Road",
		Status:      models.StatusPending,
		Severity:    models.SeverityLow,
		CitizenID:   citizen.ID,
	}
	for _, m := range mutate {
		m(issue)
	}
	require.NoError(t, g.DB.Create(issue).Error)
	return issue
}
