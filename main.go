package main

import (
	"log"

	"github.com/Mohfazam/CIVICOS/config"
	"github.com/Mohfazam/CIVICOS/db"
	"github.com/Mohfazam/CIVICOS/mailingservices"
	"github.com/Mohfazam/CIVICOS/server"
	"github.com/Mohfazam/CIVICOS/services"
)

func main() {
	conf, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	gormDB := db.GetDB(conf)
	if err := db.SeedDirectory(gormDB.DB); err != nil {
		log.Fatalf("unable to seed directory: %v", err)
	}

	mailgun := &mailingservices.Mailgun{}
	mailgun.Init(conf)

	citizenRepo := db.NewCitizenRepo(gormDB)
	directoryRepo := db.NewDirectoryRepo(gormDB)
	issueRepo := db.NewIssueRepo(gormDB)
	commentRepo := db.NewCommentRepo(gormDB)
	upvoteRepo := db.NewUpvoteRepo(gormDB)
	mediaRepo := db.NewMediaRepo()

	issueService := services.NewIssueService(issueRepo, citizenRepo, directoryRepo, upvoteRepo, mailgun, conf)
	threadService := services.NewThreadService(issueRepo, commentRepo, upvoteRepo, citizenRepo, directoryRepo, conf)
	citizenService := services.NewCitizenService(citizenRepo, conf)
	directoryService := services.NewDirectoryService(directoryRepo, conf)
	mediaService := services.NewMediaService(mediaRepo, conf)

	s := &server.Server{
		Config:              conf,
		CitizenRepository:   citizenRepo,
		DirectoryRepository: directoryRepo,
		IssueRepository:     issueRepo,
		CommentRepository:   commentRepo,
		UpvoteRepository:    upvoteRepo,
		IssueService:        issueService,
		ThreadService:       threadService,
		CitizenService:      citizenService,
		DirectoryService:    directoryService,
		MediaService:        mediaService,
	}
	s.Start()
}
