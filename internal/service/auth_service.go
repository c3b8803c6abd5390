package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"time"

	"plot-editor-be/internal/dto"
	"plot-editor-be/internal/entity"
	"plot-editor-be/internal/pkg/logger"
	"plot-editor-be/internal/pkg/serverutils"
	"plot-editor-be/internal/repository/memory"
	"plot-editor-be/internal/repository/specification"
	"plot-editor-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

const tokenLifetime = 30 * 24 * time.Hour

type IAuthService interface {
	GetLoginURL(ctx context.Context) (*dto.LoginURLResponse, error)
	HandleCallback(ctx context.Context, req *dto.AuthCallbackRequest) (*dto.AuthCallbackResponse, error)
	Me(ctx context.Context, userId uuid.UUID) (*dto.MeResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	states     *memory.StateRepository
	oauthConf  *oauth2.Config
	log        logger.ILogger
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	states *memory.StateRepository,
	oauthConf *oauth2.Config,
	log logger.ILogger,
) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		states:     states,
		oauthConf:  oauthConf,
		log:        log,
	}
}

func (s *authService) GetLoginURL(ctx context.Context) (*dto.LoginURLResponse, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	state := base64.URLEncoding.EncodeToString(b)
	s.states.Save(state)

	return &dto.LoginURLResponse{URL: s.oauthConf.AuthCodeURL(state)}, nil
}

func (s *authService) HandleCallback(ctx context.Context, req *dto.AuthCallbackRequest) (*dto.AuthCallbackResponse, error) {
	if !s.states.Consume(req.State) {
		return nil, serverutils.NewUnauthorizedError("unknown oauth state")
	}

	token, err := s.oauthConf.Exchange(ctx, req.Code)
	if err != nil {
		return nil, serverutils.NewUpstreamError("code exchange failed", err)
	}

	info, err := s.fetchUserInfo(ctx, token.AccessToken)
	if err != nil {
		return nil, serverutils.NewUpstreamError("userinfo fetch failed", err)
	}

	user, err := s.upsertUser(ctx, info)
	if err != nil {
		return nil, err
	}

	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"sub":     user.Subject,
		"exp":     time.Now().Add(tokenLifetime).Unix(),
	}
	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := jwtToken.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return nil, err
	}

	s.log.Info("AuthService", "user signed in", map[string]interface{}{
		"user_id": user.Id,
	})
	return &dto.AuthCallbackResponse{Token: signed}, nil
}

func (s *authService) Me(ctx context.Context, userId uuid.UUID) (*dto.MeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NewNotFoundError("user not found")
	}
	return &dto.MeResponse{
		Id:        user.Id,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	}, nil
}

type googleUserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (s *authService) fetchUserInfo(ctx context.Context, accessToken string) (*googleUserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		"https://www.googleapis.com/oauth2/v2/userinfo?access_token="+accessToken, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var info googleUserInfo
	if err := json.Unmarshal(content, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (s *authService) upsertUser(ctx context.Context, info *googleUserInfo) (*entity.User, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.BySubject{Subject: info.ID})
	if err != nil {
		return nil, err
	}
	if user != nil {
		if user.Email != info.Email || user.Name != info.Name {
			now := time.Now()
			user.Email = info.Email
			user.Name = info.Name
			user.UpdatedAt = &now
			if err := uow.UserRepository().Update(ctx, user); err != nil {
				return nil, err
			}
		}
		return user, nil
	}

	newUser := &entity.User{
		Id:        uuid.New(),
		Email:     info.Email,
		Name:      info.Name,
		Subject:   info.ID,
		CreatedAt: time.Now(),
	}
	if err := uow.UserRepository().Create(ctx, newUser); err != nil {
		return nil, err
	}
	s.log.Info("AuthService", "new user created", map[string]interface{}{
		"user_id": newUser.Id,
	})
	return newUser, nil
}
