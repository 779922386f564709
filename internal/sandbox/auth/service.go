package auth

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/vfg2006/insights-dashboard/internal/config"
	"github.com/vfg2006/insights-dashboard/internal/sandbox/store"
	"github.com/vfg2006/insights-dashboard/pkg/log"
	"github.com/vfg2006/insights-dashboard/pkg/utils"
)

// Service autentica os usuários do sandbox e emite tokens JWT HS256
type Service struct {
	store    store.Store
	secret   []byte
	tokenTTL time.Duration
	now      func() time.Time
}

func NewService(st store.Store, cfg config.Sandbox) *Service {
	return &Service{
		store:    st,
		secret:   []byte(cfg.SecretKey),
		tokenTTL: cfg.TokenTTL,
		now:      time.Now,
	}
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	return strings.ReplaceAll(email, " ", "")
}

func (s *Service) Register(ctx context.Context, name, email, password string) (store.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return store.User{}, errors.Wrap(err, "erro ao gerar hash da senha")
	}

	user, err := s.store.CreateUser(ctx, handleEmail(email), strings.TrimSpace(name), string(hashedPassword))
	if errors.Is(err, store.ErrEmailTaken) {
		return store.User{}, ErrUserAlreadyExists
	}
	if err != nil {
		return store.User{}, err
	}

	log.ForContext(ctx).WithField("user_id", user.ID).Info("auth: usuário cadastrado")
	return user, nil
}

// Login confere email e senha. Usuário inexistente e senha errada devolvem o mesmo erro.
func (s *Service) Login(ctx context.Context, email, password string) (string, store.User, error) {
	user, err := s.store.UserByEmail(ctx, handleEmail(email))
	if errors.Is(err, store.ErrNotFound) {
		return "", store.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return "", store.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.ForContext(ctx).WithField("user_id", user.ID).Warn("auth: senha incorreta")
		return "", store.User{}, ErrInvalidCredentials
	}

	token, err := s.generateJWT(user.ID)
	if err != nil {
		return "", store.User{}, errors.Wrap(err, "erro ao gerar token de autenticação")
	}

	return token, user, nil
}

func (s *Service) generateJWT(userID int) (string, error) {
	jti, err := utils.GenerateID()
	if err != nil {
		return "", err
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.Itoa(userID),
		ID:        jti,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken devolve o id do usuário dono do token. O usuário precisa existir.
func (s *Service) ValidateToken(ctx context.Context, tokenString string) (int, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return 0, errors.Wrap(ErrInvalidToken, errMessage(err))
	}

	userID, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return 0, errors.Wrap(ErrInvalidToken, "subject inválido")
	}

	if _, err := s.User(ctx, userID); err != nil {
		return 0, err
	}

	return userID, nil
}

// User busca o perfil do usuário autenticado
func (s *Service) User(ctx context.Context, userID int) (store.User, error) {
	user, err := s.store.User(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return store.User{}, ErrUserNotFound
	}
	if err != nil {
		return store.User{}, errors.Wrap(err, "erro ao buscar usuário")
	}
	return user, nil
}

func errMessage(err error) string {
	if err == nil {
		return "token inválido"
	}
	return err.Error()
}
