package db

import (
	"fmt"
	"log"

	"github.com/Mohfazam/CIVICOS/config"
	"github.com/Mohfazam/CIVICOS/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type GormDB struct {
	DB *gorm.DB
}

func GetDB(c *config.Config) *GormDB {
	gormDB := &GormDB{}
	gormDB.Init(c)
	return gormDB
}

func (g *GormDB) Init(c *config.Config) {
	g.DB = getPostgresDB(c)

	if err := Migrate(g.DB); err != nil {
		log.Fatalf("unable to run migrations: %v", err)
	}
}

func getPostgresDB(c *config.Config) *gorm.DB {
	log.Printf("Connecting to postgres: %s:%d/%s", c.PostgresHost, c.PostgresPort, c.PostgresDB)
	postgresDSN := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d TimeZone=Asia/Kolkata",
		c.PostgresHost, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresPort)

	gormConfig := &gorm.Config{}
	if c.Env != "prod" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	}
	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		DSN: postgresDSN,
	}), gormConfig)
	if err != nil {
		log.Fatal(err)
	}

	return gormDB
}

// Migrate runs AutoMigrate for every model. Exported because the sqlite
// test harness reuses it.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Citizen{},
		&models.MLA{},
		&models.Organization{},
		&models.Issue{},
		&models.Comment{},
		&models.Upvote{},
	)
	if err != nil {
		return fmt.Errorf("migrations error: %v", err)
	}
	return nil
}

// SeedDirectory inserts a minimal MLA/organization directory so a fresh
// install has assignees to link issues to. Idempotent on name.
func SeedDirectory(db *gorm.DB) error {
	rating := func(f float64) *float64 { return &f }
	phone := func(s string) *string { return &s }

	mlas := []models.MLA{
		{Name: "Asha Verma", Party: "INC", Constituency: "Indiranagar", Email: "asha.verma@assembly.gov.in", Phone: phone("+91-9800011122"), Rating: rating(4.2)},
		{Name: "Rajeev Menon", Party: "BJP", Constituency: "Koramangala", Email: "rajeev.menon@assembly.gov.in", Rating: rating(3.8)},
		{Name: "Farah Khan", Party: "AAP", Constituency: "Shivajinagar", Email: "farah.khan@assembly.gov.in"},
	}
	for _, mla := range mlas {
		if err := db.FirstOrCreate(&mla, models.MLA{Name: mla.Name}).Error; err != nil {
			return err
		}
	}

	orgs := []models.Organization{
		{Name: "Bangalore Water Supply Board", Category: "WATER", Constituency: "Indiranagar", ContactEmail: "support@bwssb.gov.in", Address: "Cauvery Bhavan, Bengaluru"},
		{Name: "City Roads Authority", Category: "ROADS", Constituency: "Koramangala", ContactEmail: "roads@city.gov.in"},
	}
	for _, org := range orgs {
		if err := db.FirstOrCreate(&org, models.Organization{Name: org.Name}).Error; err != nil {
			return err
		}
	}

	return nil
}
