// Package container builds the application services once at startup. The
// resulting Container is passed explicitly to the router and commands.
package container

import (
	"github.com/sirupsen/logrus"

	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/config"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/application"
	repo "github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/domain/repository"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/infrastructure/memory"
	pginfra "github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/infrastructure/postgres"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/pkg/helpers"
)

type Repositories struct {
	Users    repo.UserRepository
	Sessions repo.SessionRepository
	Offers   repo.OfferRepository
	Matches  repo.MatchRepository
}

func PostgresRepositories(db pginfra.DBTX) Repositories {
	return Repositories{
		Users:    pginfra.NewUserRepository(db),
		Sessions: pginfra.NewSessionRepository(db),
		Offers:   pginfra.NewOfferRepository(db),
		Matches:  pginfra.NewMatchRepository(db),
	}
}

func MemoryRepositories() Repositories {
	s := memory.NewStore()
	return Repositories{
		Users:    memory.NewUserRepository(s),
		Sessions: memory.NewSessionRepository(s),
		Offers:   memory.NewOfferRepository(s),
		Matches:  memory.NewMatchRepository(s),
	}
}

// Options are the optional collaborators. Leave a field nil to disable it.
type Options struct {
	Clock    helpers.Clock
	Cache    application.OfferCache
	Search   application.OfferSearcher
	Notifier application.Notifier
}

type Container struct {
	Config  *config.Config
	Logger  *logrus.Logger
	Cookies *helpers.Manager

	Credentials *application.CredentialService
	Sessions    *application.SessionService
	Directory   *application.DirectoryService
	Matching    *application.MatchingService
	Stats       *application.StatsService
}

func New(cfg *config.Config, logger *logrus.Logger, repos Repositories, opts Options) *Container {
	if logger == nil {
		logger = helpers.NewDiscardLogger()
	}
	if opts.Clock == nil {
		opts.Clock = helpers.SystemClock{}
	}
	if opts.Notifier == nil {
		opts.Notifier = application.NopNotifier{}
	}

	creds := application.NewCredentialService(repos.Users, cfg.BcryptCost, opts.Notifier, logger)
	dir := application.NewDirectoryService(repos.Users, repos.Offers, opts.Cache, opts.Search, logger)

	return &Container{
		Config:      cfg,
		Logger:      logger,
		Cookies:     helpers.NewCookie(cfg.SessionCookieName, cfg.CookieDomain, cfg.CookieSecure),
		Credentials: creds,
		Sessions:    application.NewSessionService(creds, repos.Sessions, opts.Clock, cfg.SessionTTL, logger),
		Directory:   dir,
		Matching:    application.NewMatchingService(dir, repos.Matches, opts.Notifier, logger),
		Stats:       application.NewStatsService(dir),
	}
}
