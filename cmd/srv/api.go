package main

import (
	"net/http"

	"github.com/rs/cors"
	"github.com/socialai-lab/backend/api"
	"github.com/socialai-lab/backend/internal/model"
	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(ct *cli.Context) error {
	s.loadConfig(ct)
	s.loadLogger()
	s.loadStore()
	s.loadEngines()
	s.loadRepos()
	s.loadDomains()
	s.loadEndpoints()

	c := cors.New(cors.Options{
		AllowedOrigins:   s.configs.ApiServer.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	s.server = &http.Server{
		Addr:    s.configs.ApiServer.Address(),
		Handler: c.Handler(s.mux),
	}

	s.logger.Infof("Starting server on %s", s.configs.ApiServer.Address())
	if err := s.server.ListenAndServe(); err != nil {
		return err
	}

	s.logger.Infof("Server stopped")
	return nil
}

func (s *srv) loadEndpoints() {
	s.mux = http.NewServeMux()

	env := api.WithEnvironment(s.store, s.logger, s.configs)
	auth := api.ImportUserID(s.tokenEngine, s.sessions)

	s.mux.HandleFunc("/auth/register", api.Register(s.authDomain, s.sessions, env))
	s.mux.HandleFunc("/auth/login", api.Login(s.authDomain, s.sessions, env))
	s.mux.HandleFunc("/toasts/serve", api.ToastFeed(s.toastEngine, env))

	controllers := []controller{
		&api.Endpoint[model.LogoutRequest, model.LogoutResponse]{
			Path:   "/auth/logout",
			Method: http.MethodPost,
			Handle: s.authDomain.Logout,
			Before: []api.Handler{env, auth},
		},
		&api.Endpoint[model.GetMeRequest, model.GetMeResponse]{
			Path:   "/auth/me",
			Method: http.MethodGet,
			Handle: s.authDomain.GetMe,
			Before: []api.Handler{env, auth},
		},
		&api.Endpoint[model.UpdateProfileRequest, model.UpdateProfileResponse]{
			Path:   "/profile",
			Method: http.MethodPut,
			Handle: s.authDomain.UpdateProfile,
			Before: []api.Handler{env, auth},
		},
		&api.Endpoint[model.ChangePasswordRequest, model.ChangePasswordResponse]{
			Path:   "/auth/password",
			Method: http.MethodPut,
			Handle: s.authDomain.ChangePassword,
			Before: []api.Handler{env, auth},
		},
		&api.Endpoint[model.SaveAPIKeyRequest, model.SaveAPIKeyResponse]{
			Path:   "/auth/api-key/save",
			Method: http.MethodPost,
			Handle: s.authDomain.SaveAPIKey,
			Before: []api.Handler{env, auth},
		},
		&api.Endpoint[model.GetAPIKeyRequest, model.GetAPIKeyResponse]{
			Path:   "/auth/api-key",
			Method: http.MethodGet,
			Handle: s.authDomain.GetAPIKey,
			Before: []api.Handler{env, auth},
		},
		&api.Endpoint[model.UpgradeTierRequest, model.UpgradeTierResponse]{
			Path:   "/auth/tier",
			Method: http.MethodPut,
			Handle: s.authDomain.UpgradeTier,
			Before: []api.Handler{env, auth},
		},

		&api.Endpoint[model.ProcessPaymentRequest, model.ProcessPaymentResponse]{
			Path:   "/payments/process",
			Method: http.MethodPost,
			Handle: s.paymentDomain.ProcessPayment,
			Before: []api.Handler{env, auth},
		},
		&api.Endpoint[model.GetTransactionsRequest, model.GetTransactionsResponse]{
			Path:   "/transactions",
			Method: http.MethodGet,
			Handle: s.paymentDomain.GetTransactions,
			Before: []api.Handler{env, auth},
		},

		&api.Endpoint[model.GetSubscriptionRequest, model.GetSubscriptionResponse]{
			Path:   "/subscriptions",
			Method: http.MethodGet,
			Handle: s.subscriptionDomain.Get,
			Before: []api.Handler{env, auth},
		},
		&api.Endpoint[model.UpdateSubscriptionRequest, model.UpdateSubscriptionResponse]{
			Path:   "/subscriptions/update",
			Method: http.MethodPost,
			Handle: s.subscriptionDomain.Update,
			Before: []api.Handler{env, auth},
		},
		&api.Endpoint[model.CancelSubscriptionRequest, model.CancelSubscriptionResponse]{
			Path:   "/subscriptions/cancel",
			Method: http.MethodPost,
			Handle: s.subscriptionDomain.Cancel,
			Before: []api.Handler{env, auth},
		},

		&api.Endpoint[model.SendNotificationRequest, model.SendNotificationResponse]{
			Path:   "/notifications/send",
			Method: http.MethodPost,
			Handle: s.notificationDomain.Send,
			Before: []api.Handler{env, auth},
		},
		&api.Endpoint[model.GetNotificationsRequest, model.GetNotificationsResponse]{
			Path:   "/notifications",
			Method: http.MethodGet,
			Handle: s.notificationDomain.GetList,
			Before: []api.Handler{env, auth},
		},
		&api.Endpoint[model.MarkNotificationReadRequest, model.MarkNotificationReadResponse]{
			Path:   "/notifications/read",
			Method: http.MethodPost,
			Handle: s.notificationDomain.MarkRead,
			Before: []api.Handler{env, auth},
		},
		&api.Endpoint[model.ClearAllNotificationsRequest, model.ClearAllNotificationsResponse]{
			Path:   "/notifications/clear",
			Method: http.MethodPost,
			Handle: s.notificationDomain.ClearAll,
			Before: []api.Handler{env, auth},
		},

		&api.Endpoint[model.GetAnalyticsRequest, model.GetAnalyticsResponse]{
			Path:   "/analytics",
			Method: http.MethodGet,
			Handle: s.analyticsDomain.Get,
			Before: []api.Handler{env, auth},
		},

		&api.Endpoint[model.GetAchievementsRequest, model.GetAchievementsResponse]{
			Path:   "/achievements",
			Method: http.MethodGet,
			Handle: s.achievementDomain.GetList,
			Before: []api.Handler{env, auth},
		},
		&api.Endpoint[model.UnlockAchievementRequest, model.UnlockAchievementResponse]{
			Path:   "/achievements/unlock",
			Method: http.MethodPost,
			Handle: s.achievementDomain.Unlock,
			Before: []api.Handler{env, auth},
		},

		&api.Endpoint[model.GetDailyChallengeRequest, model.GetDailyChallengeResponse]{
			Path:   "/challenges/daily",
			Method: http.MethodGet,
			Handle: s.challengeDomain.GetDaily,
			Before: []api.Handler{env, auth},
		},
		&api.Endpoint[model.UpdateChallengeProgressRequest, model.UpdateChallengeProgressResponse]{
			Path:   "/challenges/daily/progress",
			Method: http.MethodPost,
			Handle: s.challengeDomain.UpdateProgress,
			Before: []api.Handler{env, auth},
		},

		&api.Endpoint[model.LogActivityRequest, model.LogActivityResponse]{
			Path:   "/activities/log",
			Method: http.MethodPost,
			Handle: s.activityDomain.Log,
			Before: []api.Handler{env, auth},
		},
		&api.Endpoint[model.GetActivitiesRequest, model.GetActivitiesResponse]{
			Path:   "/activities",
			Method: http.MethodGet,
			Handle: s.activityDomain.GetList,
			Before: []api.Handler{env, auth},
		},

		&api.Endpoint[model.AnalyzeMoodRequest, model.AnalyzeMoodResponse]{
			Path:   "/mood",
			Method: http.MethodPost,
			Handle: s.moodDomain.Analyze,
			Before: []api.Handler{env, auth},
		},

		&api.Endpoint[model.ShowToastRequest, model.ShowToastResponse]{
			Path:   "/toasts/show",
			Method: http.MethodPost,
			Handle: s.toastDomain.Show,
			Before: []api.Handler{env, auth},
		},
		&api.Endpoint[model.DismissToastRequest, model.DismissToastResponse]{
			Path:   "/toasts/dismiss",
			Method: http.MethodPost,
			Handle: s.toastDomain.Dismiss,
			Before: []api.Handler{env, auth},
		},
		&api.Endpoint[model.GetToastsRequest, model.GetToastsResponse]{
			Path:   "/toasts",
			Method: http.MethodGet,
			Handle: s.toastDomain.GetList,
			Before: []api.Handler{env, auth},
		},
	}

	for _, e := range controllers {
		e.Register(s.mux)
	}
}
