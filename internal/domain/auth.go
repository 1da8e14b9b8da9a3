package domain

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/socialai-lab/backend/internal/entity"
	"github.com/socialai-lab/backend/internal/model"
	"github.com/socialai-lab/backend/internal/repository"
	"github.com/socialai-lab/backend/pkg/enum"
	"github.com/socialai-lab/backend/pkg/errorx"
	"github.com/socialai-lab/backend/pkg/idutil"
	"github.com/socialai-lab/backend/pkg/jwt"
	"github.com/socialai-lab/backend/pkg/xcontext"
)

const (
	defaultBio        = "Digital nomad exploring the AI frontier."
	defaultCoverImage = "https://images.unsplash.com/photo-1451187580459-43490279c0fa?auto=format&fit=crop&w=1200&q=80"
	joinedDateLayout  = "January 2006"
)

type AuthDomain interface {
	Register(context.Context, *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(context.Context, *model.LoginRequest) (*model.LoginResponse, error)
	Logout(context.Context, *model.LogoutRequest) (*model.LogoutResponse, error)
	GetMe(context.Context, *model.GetMeRequest) (*model.GetMeResponse, error)
	UpdateProfile(context.Context, *model.UpdateProfileRequest) (*model.UpdateProfileResponse, error)
	ChangePassword(context.Context, *model.ChangePasswordRequest) (*model.ChangePasswordResponse, error)
	SaveAPIKey(context.Context, *model.SaveAPIKeyRequest) (*model.SaveAPIKeyResponse, error)
	GetAPIKey(context.Context, *model.GetAPIKeyRequest) (*model.GetAPIKeyResponse, error)
	UpgradeTier(context.Context, *model.UpgradeTierRequest) (*model.UpgradeTierResponse, error)
}

type authDomain struct {
	userRepo         repository.UserRepository
	subscriptionRepo repository.SubscriptionRepository
	tokenEngine      *jwt.Engine[model.AccessToken]
}

func NewAuthDomain(
	userRepo repository.UserRepository,
	subscriptionRepo repository.SubscriptionRepository,
	tokenEngine *jwt.Engine[model.AccessToken],
) *authDomain {
	return &authDomain{
		userRepo:         userRepo,
		subscriptionRepo: subscriptionRepo,
		tokenEngine:      tokenEngine,
	}
}

func (d *authDomain) Register(
	ctx context.Context, req *model.RegisterRequest,
) (*model.RegisterResponse, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty name, email, or password")
	}

	if _, err := d.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "Email already exists")
	}

	user := &entity.User{
		ID:       idutil.New("user"),
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Avatar: fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=random",
			url.QueryEscape(req.Name)),
		Username:           strings.ReplaceAll(strings.ToLower(req.Name), " ", ""),
		Bio:                defaultBio,
		JoinedDate:         time.Now().Format(joinedDateLayout),
		IsVerified:         false,
		Followers:          0,
		Following:          0,
		CoverImage:         defaultCoverImage,
		SubscriptionTier:   entity.TierFree,
		SubscriptionStatus: entity.SubscriptionActive,
	}

	if err := d.userRepo.Create(ctx, user); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create user: %v", err)
		return nil, errorx.Unknown
	}

	subscription := entity.Subscription{
		Tier:      entity.TierFree,
		Status:    entity.SubscriptionActive,
		StartDate: time.Now(),
	}
	if err := d.subscriptionRepo.Set(ctx, subscription); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot initialize subscription: %v", err)
		return nil, errorx.Unknown
	}

	sessionUser := model.ConvertSessionUser(user, subscription)
	if err := d.userRepo.SetCurrent(ctx, &sessionUser); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot store session user: %v", err)
		return nil, errorx.Unknown
	}

	token, err := d.generateToken(user)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate access token: %v", err)
		return nil, errorx.Unknown
	}

	return &model.RegisterResponse{User: sessionUser, AccessToken: token}, nil
}

func (d *authDomain) Login(
	ctx context.Context, req *model.LoginRequest,
) (*model.LoginResponse, error) {
	user, err := d.userRepo.GetByIdentifier(ctx, req.Identifier)
	if err != nil || user.Password != req.Password {
		return nil, errorx.New(errorx.Unauthenticated, "Invalid credentials")
	}

	sessionUser := model.ConvertSessionUser(user, d.subscriptionRepo.Get(ctx))
	if err := d.userRepo.SetCurrent(ctx, &sessionUser); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot store session user: %v", err)
		return nil, errorx.Unknown
	}

	token, err := d.generateToken(user)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate access token: %v", err)
		return nil, errorx.Unknown
	}

	return &model.LoginResponse{User: sessionUser, AccessToken: token}, nil
}

// Logout clears the session mirror only. The saved API key is a device
// preference and survives.
func (d *authDomain) Logout(
	ctx context.Context, req *model.LogoutRequest,
) (*model.LogoutResponse, error) {
	if err := d.userRepo.ClearCurrent(ctx); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot clear session user: %v", err)
		return nil, errorx.Unknown
	}

	return &model.LogoutResponse{}, nil
}

func (d *authDomain) GetMe(
	ctx context.Context, req *model.GetMeRequest,
) (*model.GetMeResponse, error) {
	sessionUser, err := d.userRepo.GetCurrent(ctx)
	if err != nil {
		return nil, errorx.New(errorx.Unauthenticated, "Not logged in")
	}

	return &model.GetMeResponse{User: *sessionUser}, nil
}

// UpdateProfile merges the given fields into both the durable user record and
// its session mirror.
func (d *authDomain) UpdateProfile(
	ctx context.Context, req *model.UpdateProfileRequest,
) (*model.UpdateProfileResponse, error) {
	sessionUser, err := d.userRepo.GetCurrent(ctx)
	if err != nil {
		return nil, errorx.New(errorx.Unauthenticated, "Not logged in")
	}

	user, err := d.userRepo.GetByID(ctx, sessionUser.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Session user %s has no durable record: %v", sessionUser.ID, err)
		return nil, errorx.Unknown
	}

	applyProfileUpdates(user, req)
	if err := d.userRepo.Update(ctx, user); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update user: %v", err)
		return nil, errorx.Unknown
	}

	updated := model.ConvertSessionUser(user, d.subscriptionRepo.Get(ctx))
	if err := d.userRepo.SetCurrent(ctx, &updated); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot store session user: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateProfileResponse{User: updated}, nil
}

func (d *authDomain) ChangePassword(
	ctx context.Context, req *model.ChangePasswordRequest,
) (*model.ChangePasswordResponse, error) {
	sessionUser, err := d.userRepo.GetCurrent(ctx)
	if err != nil {
		return nil, errorx.New(errorx.Unauthenticated, "Not logged in")
	}

	user, err := d.userRepo.GetByID(ctx, sessionUser.ID)
	if err != nil || user.Password != req.CurrentPassword {
		return nil, errorx.New(errorx.PermissionDenied, "Incorrect current password")
	}

	user.Password = req.NewPassword
	if err := d.userRepo.Update(ctx, user); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update user: %v", err)
		return nil, errorx.Unknown
	}

	return &model.ChangePasswordResponse{Success: true}, nil
}

func (d *authDomain) SaveAPIKey(
	ctx context.Context, req *model.SaveAPIKeyRequest,
) (*model.SaveAPIKeyResponse, error) {
	if err := d.userRepo.SaveAPIKey(ctx, req.Key); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot save api key: %v", err)
		return nil, errorx.Unknown
	}

	return &model.SaveAPIKeyResponse{}, nil
}

func (d *authDomain) GetAPIKey(
	ctx context.Context, req *model.GetAPIKeyRequest,
) (*model.GetAPIKeyResponse, error) {
	return &model.GetAPIKeyResponse{Key: d.userRepo.GetAPIKey(ctx)}, nil
}

// UpgradeTier mirrors the tier onto the user record and session mirror. The
// subscription record itself is owned by SubscriptionDomain.Update.
func (d *authDomain) UpgradeTier(
	ctx context.Context, req *model.UpgradeTierRequest,
) (*model.UpgradeTierResponse, error) {
	tier, err := enum.ToEnum[entity.SubscriptionTier](req.Tier)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid tier %s", req.Tier)
	}

	sessionUser, err := d.userRepo.GetCurrent(ctx)
	if err != nil {
		return nil, errorx.New(errorx.Unauthenticated, "Not logged in")
	}

	user, err := d.userRepo.GetByID(ctx, sessionUser.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Session user %s has no durable record: %v", sessionUser.ID, err)
		return nil, errorx.Unknown
	}

	user.SubscriptionTier = tier
	user.SubscriptionStatus = entity.SubscriptionActive
	if err := d.userRepo.Update(ctx, user); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update user: %v", err)
		return nil, errorx.Unknown
	}

	updated := model.ConvertSessionUser(user, d.subscriptionRepo.Get(ctx))
	updated.SubscriptionTier = tier
	updated.SubscriptionStatus = entity.SubscriptionActive
	if err := d.userRepo.SetCurrent(ctx, &updated); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot store session user: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpgradeTierResponse{User: updated}, nil
}

func (d *authDomain) generateToken(user *entity.User) (string, error) {
	return d.tokenEngine.Generate(user.ID, model.AccessToken{
		ID:       user.ID,
		Name:     user.Name,
		Username: user.Username,
	})
}

func applyProfileUpdates(user *entity.User, req *model.UpdateProfileRequest) {
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}
	if req.CoverImage != nil {
		user.CoverImage = *req.CoverImage
	}
}
