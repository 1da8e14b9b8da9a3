package main

import (
	"context"
	"net/http"

	"github.com/socialai-lab/backend/config"
	"github.com/socialai-lab/backend/internal/domain"
	"github.com/socialai-lab/backend/internal/domain/toast"
	"github.com/socialai-lab/backend/internal/model"
	"github.com/socialai-lab/backend/internal/repository"
	"github.com/socialai-lab/backend/pkg/jwt"
	"github.com/socialai-lab/backend/pkg/kvstore"
	"github.com/socialai-lab/backend/pkg/logger"
	"github.com/socialai-lab/backend/pkg/session"
	"github.com/socialai-lab/backend/pkg/simulate"
	"github.com/socialai-lab/backend/pkg/xredis"
	"github.com/urfave/cli/v2"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type controller interface {
	Register(mux *http.ServeMux)
}

type srv struct {
	app *cli.App

	configs  config.Configs
	logger   logger.Logger
	store    kvstore.Store
	db       *gorm.DB
	sessions *session.Store

	tokenEngine *jwt.Engine[model.AccessToken]
	simulator   *simulate.Simulator
	toastEngine *toast.Engine

	userRepo         repository.UserRepository
	subscriptionRepo repository.SubscriptionRepository
	transactionRepo  repository.TransactionRepository
	notificationRepo repository.NotificationRepository
	achievementRepo  repository.AchievementRepository
	challengeRepo    repository.ChallengeRepository
	activityRepo     repository.ActivityRepository
	analyticsRepo    repository.AnalyticsRepository

	authDomain         domain.AuthDomain
	paymentDomain      domain.PaymentDomain
	subscriptionDomain domain.SubscriptionDomain
	notificationDomain domain.NotificationDomain
	analyticsDomain    domain.AnalyticsDomain
	achievementDomain  domain.AchievementDomain
	challengeDomain    domain.ChallengeDomain
	activityDomain     domain.ActivityDomain
	moodDomain         domain.MoodDomain
	toastDomain        domain.ToastDomain

	mux    *http.ServeMux
	server *http.Server
}

func (s *srv) loadConfig(ct *cli.Context) {
	cfg, err := config.Load(ct.String("config"))
	if err != nil {
		panic(err)
	}

	s.configs = cfg
}

func (s *srv) loadLogger() {
	s.logger = logger.NewLogger(s.configs.LogLevel)
}

// loadStore picks the persistence backend: redis when an address is
// configured, otherwise gorm over sqlite or mysql.
func (s *srv) loadStore() {
	if s.configs.Redis.Addr != "" {
		client, err := xredis.NewClient(context.Background(), s.configs.Redis.Addr)
		if err != nil {
			panic(err)
		}

		s.store = kvstore.NewRedisStore(client, s.configs.Redis.Prefix)
		return
	}

	var err error
	switch s.configs.Database.Driver {
	case "mysql":
		s.db, err = gorm.Open(mysql.Open(s.configs.Database.ConnectionString()), &gorm.Config{})
	default:
		s.db, err = gorm.Open(sqlite.Open(s.configs.Database.SQLitePath), &gorm.Config{})
	}
	if err != nil {
		panic(err)
	}

	s.store, err = kvstore.NewGormStore(s.db)
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadEngines() {
	s.tokenEngine = jwt.NewEngine[model.AccessToken](
		s.configs.Auth.TokenSecret, s.configs.Auth.TokenExpiration)
	s.simulator = simulate.New(simulate.NewRandomStrategy(s.configs.Simulator))
	s.toastEngine = toast.NewEngine()
	s.sessions = session.NewCookieStore(s.configs.Session.Name, []byte(s.configs.Session.Secret))
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.subscriptionRepo = repository.NewSubscriptionRepository()
	s.transactionRepo = repository.NewTransactionRepository()
	s.notificationRepo = repository.NewNotificationRepository()
	s.achievementRepo = repository.NewAchievementRepository()
	s.challengeRepo = repository.NewChallengeRepository()
	s.activityRepo = repository.NewActivityRepository()
	s.analyticsRepo = repository.NewAnalyticsRepository()
}

func (s *srv) loadDomains() {
	s.authDomain = domain.NewAuthDomain(s.userRepo, s.subscriptionRepo, s.tokenEngine)
	s.notificationDomain = domain.NewNotificationDomain(s.notificationRepo, s.toastEngine)
	s.paymentDomain = domain.NewPaymentDomain(s.transactionRepo, s.simulator)
	s.subscriptionDomain = domain.NewSubscriptionDomain(s.subscriptionRepo, s.simulator)
	s.analyticsDomain = domain.NewAnalyticsDomain(s.analyticsRepo, s.simulator)
	s.achievementDomain = domain.NewAchievementDomain(s.achievementRepo, s.notificationDomain, s.simulator)
	s.challengeDomain = domain.NewChallengeDomain(s.challengeRepo, s.notificationDomain, s.simulator)
	s.activityDomain = domain.NewActivityDomain(s.activityRepo)
	s.moodDomain = domain.NewMoodDomain(s.activityRepo, s.simulator)
	s.toastDomain = domain.NewToastDomain(s.toastEngine)
}
