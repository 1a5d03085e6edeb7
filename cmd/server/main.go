package main

import (
	"context"
	"log"
	"time"

	"simplehr.com/simplehr/config"
	"simplehr.com/simplehr/core"
	"simplehr.com/simplehr/infrastructure/communication"
	"simplehr.com/simplehr/infrastructure/filesystem"
	"simplehr.com/simplehr/integrations/quickbooks"
	"simplehr.com/simplehr/security"
	"simplehr.com/simplehr/web"
	"simplehr.com/simplehr/web/handlers"
	"simplehr.com/simplehr/web/middlewares"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	dm, err := core.New(cfg.DSN, cfg.DBMaxConnections, cfg.DBLogLevel)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer dm.Close()

	if err := dm.Exec(context.Background(), core.Migrate); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	hash, err := security.HashPassword(cfg.SeedAdminPassword)
	if err != nil {
		log.Fatalf("failed to hash seed password: %v", err)
	}
	created, err := core.EnsureAdmin(dm.DB, cfg.SeedAdminEmail, hash)
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	if created {
		log.Printf("created admin account %s", cfg.SeedAdminEmail)
	}

	ctx := context.Background()

	var resumes filesystem.Store
	if cfg.ResumeBucket != "" {
		resumes, err = filesystem.NewS3Store(ctx, cfg.ResumeBucket)
		if err != nil {
			log.Fatalf("failed to open resume bucket: %v", err)
		}
	} else {
		resumes = filesystem.NewLocalStore(cfg.ResumeDir)
	}

	mailer, err := communication.ConnectSES(ctx, cfg.MailFrom)
	if err != nil {
		log.Fatalf("failed to set up mail: %v", err)
	}

	h := &handlers.Handler{
		DB:       dm,
		Sessions: middlewares.NewSessions(security.NewSessionCodec(cfg.SecretKey), dm, cfg.CookieSecure),
		Resumes:  resumes,
		Notifier: communication.ConnectSlack(cfg.SlackBotToken, communication.SlackOption{
			InfoChannelID:  cfg.SlackInfoChannel,
			ErrorChannelID: cfg.SlackErrorChannel,
		}),
		Mailer:     mailer,
		MailFrom:   cfg.MailFrom,
		QuickBooks: quickbooks.NewClient(cfg.QuickBooks),
		Now:        func() time.Time { return time.Now().UTC() },
	}

	r, err := web.NewRouter(h)
	if err != nil {
		log.Fatalf("failed to build router: %v", err)
	}

	log.Printf("listening on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
