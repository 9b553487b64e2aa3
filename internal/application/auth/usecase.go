package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"
	"github.com/jhoicas/EmployeePortal-api/internal/application/dto"
	"github.com/jhoicas/EmployeePortal-api/internal/domain"
	"github.com/jhoicas/EmployeePortal-api/internal/domain/entity"
	"github.com/jhoicas/EmployeePortal-api/internal/domain/repository"
	"github.com/jhoicas/EmployeePortal-api/pkg/jwt"
	"github.com/jhoicas/EmployeePortal-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

var (
	compareHash = bcrypt.CompareHashAndPassword

	// dummyHash se compara cuando el email no existe, para que el tiempo de respuesta no lo delate.
	dummyHashOnce sync.Once
	dummyHash     []byte
)

func unknownUserHash() []byte {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("employee-portal-unknown-user"), bcrypt.DefaultCost)
	})
	return dummyHash
}

// SessionConfig parámetros de firma y expiración de sesiones.
type SessionConfig struct {
	Secret      string
	Issuer      string
	IdleTimeout time.Duration
	RememberFor time.Duration
}

// Principal identidad autenticada del request. Vive solo durante el request.
type Principal struct {
	SessionID string
	UserID    string
	Username  string
	Role      string
}

// IsAdmin indica si el principal tiene rol Admin.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == entity.RoleAdmin
}

// LoginResult token firmado para la cookie y la sesión creada.
// MaxAge > 0 indica cookie persistente ("recordarme").
type LoginResult struct {
	Token   string
	Session *entity.Session
	MaxAge  time.Duration
}

// AuthUseCase casos de uso de autenticación: registro, login, logout y validación de sesión.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	roleRepo    repository.RoleRepository
	sessionRepo repository.SessionRepository
	tx          TxRunner
	cfg         SessionConfig
	policy      PasswordPolicy
	log         *logger.Logger
	now         func() time.Time
}

// Option personaliza el AuthUseCase.
type Option func(*AuthUseCase)

// WithClock reemplaza el reloj (tests de expiración).
func WithClock(now func() time.Time) Option {
	return func(uc *AuthUseCase) { uc.now = now }
}

// WithLogger asigna el logger de eventos de seguridad.
func WithLogger(l *logger.Logger) Option {
	return func(uc *AuthUseCase) { uc.log = l }
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	sessionRepo repository.SessionRepository,
	tx TxRunner,
	cfg SessionConfig,
	opts ...Option,
) *AuthUseCase {
	uc := &AuthUseCase{
		userRepo:    userRepo,
		roleRepo:    roleRepo,
		sessionRepo: sessionRepo,
		tx:          tx,
		cfg:         cfg,
		policy:      DefaultPasswordPolicy,
		log:         logger.Nop(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// ── Registro ─────────────────────────────────────────────────────────────────

// Register valida, hashea con bcrypt y crea el usuario con rol User en una sola transacción.
// Devuelve *domain.ValidationError o domain.ErrEmailAlreadyExists.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	email := strings.TrimSpace(in.Email)
	verr := domain.NewValidationError()
	switch {
	case email == "":
		verr.Add("Email", "The Email field is required.")
	case !govalidator.IsEmail(email):
		verr.Add("Email", "The Email field is not a valid e-mail address.")
	}
	if in.Password == "" {
		verr.Add("Password", "The Password field is required.")
	} else if msg := uc.policy.Message(in.Password); msg != "" {
		verr.Add("Password", msg)
	}
	if in.Password != in.ConfirmPassword {
		verr.Add("ConfirmPassword", "The password and confirmation password do not match.")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	user, err := uc.createUser(ctx, email, in.Password, entity.RoleUser)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("usuario registrado")
	return toUserResponse(user, entity.RoleUser), nil
}

func (uc *AuthUseCase) createUser(ctx context.Context, email, password, role string) (*entity.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := uc.now().UTC()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err = uc.tx.RunInTx(ctx, func(users repository.UserRepository, roles repository.RoleRepository) error {
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		if err := roles.EnsureRole(ctx, role); err != nil {
			return err
		}
		return roles.Assign(ctx, user.ID, role)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// ── Login / Logout ───────────────────────────────────────────────────────────

// Login verifica email/password, revoca la sesión previa del navegador, crea una sesión
// nueva y firma el token. Email desconocido y password incorrecto son indistinguibles.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest, priorToken string) (*LoginResult, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = compareHash(unknownUserHash(), []byte(in.Password))
		uc.log.Warn().Str("email", email).Msg("login fallido")
		return nil, domain.ErrInvalidCredentials
	}
	if err := compareHash([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		uc.log.Warn().Str("email", email).Msg("login fallido")
		return nil, domain.ErrInvalidCredentials
	}

	if err := uc.Logout(ctx, priorToken); err != nil {
		return nil, err
	}

	role, err := uc.effectiveRole(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	now := uc.now().UTC()
	sess := &entity.Session{
		ID:         uuid.New().String(),
		UserID:     user.ID,
		Username:   user.Email,
		Role:       role,
		RememberMe: in.RememberMe,
		CreatedAt:  now,
		LastSeenAt: now,
	}
	if err := uc.sessionRepo.Create(ctx, sess); err != nil {
		return nil, err
	}

	var maxAge time.Duration
	if in.RememberMe {
		maxAge = uc.cfg.RememberFor
	}
	token, err := jwt.Generate(uc.cfg.Secret, uc.cfg.Issuer, jwt.SessionClaims{
		SessionID: sess.ID,
		UserID:    user.ID,
		Email:     user.Email,
		Role:      role,
	}, maxAge)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("user_id", user.ID).Str("role", role).Bool("remember_me", in.RememberMe).Msg("login")
	return &LoginResult{Token: token, Session: sess, MaxAge: maxAge}, nil
}

// ensureExistingAdmin asigna Admin a una cuenta previa con el email configurado.
// El rol efectivo es el primero asignado, así que una cuenta que ya era User sigue siéndolo.
func (uc *AuthUseCase) ensureExistingAdmin(ctx context.Context, user *entity.User) error {
	if err := uc.roleRepo.Assign(ctx, user.ID, entity.RoleAdmin); err != nil {
		return err
	}
	role, err := uc.effectiveRole(ctx, user.ID)
	if err != nil {
		return err
	}
	if role != entity.RoleAdmin {
		uc.log.Warn().
			Str("email", user.Email).
			Str("effective_role", role).
			Msg("ADMIN_EMAIL pertenece a una cuenta existente sin rol Admin efectivo")
	}
	return nil
}

// effectiveRole es el primer rol asignado; User si no tiene ninguno.
func (uc *AuthUseCase) effectiveRole(ctx context.Context, userID string) (string, error) {
	roles, err := uc.roleRepo.ListByUser(ctx, userID)
	if err != nil {
		return "", err
	}
	if len(roles) == 0 {
		return entity.RoleUser, nil
	}
	return roles[0].RoleName, nil
}

// Logout revoca la sesión del token. Tokens vacíos, inválidos o ya revocados no son error.
func (uc *AuthUseCase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	claims, err := jwt.Parse(uc.cfg.Secret, token)
	if err != nil {
		return nil
	}
	if err := uc.sessionRepo.Revoke(ctx, claims.SessionID); err != nil {
		return err
	}
	uc.log.Info().Str("session_id", claims.SessionID).Str("user_id", claims.UserID).Msg("logout")
	return nil
}

// ── Validación de sesión ─────────────────────────────────────────────────────

// Authenticate valida firma y sesión viva, desliza la inactividad y devuelve el principal.
// domain.ErrUnauthorized si el token no es válido; domain.ErrSessionExpired si la sesión no sirve.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (*Principal, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}
	claims, err := jwt.Parse(uc.cfg.Secret, token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	sess, err := uc.sessionRepo.GetByID(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	now := uc.now().UTC()
	if !sess.Active(now, uc.cfg.IdleTimeout) || sess.UserID != claims.UserID {
		return nil, domain.ErrSessionExpired
	}
	if err := uc.sessionRepo.Touch(ctx, sess.ID, now); err != nil {
		return nil, err
	}
	return &Principal{
		SessionID: sess.ID,
		UserID:    sess.UserID,
		Username:  sess.Username,
		Role:      sess.Role,
	}, nil
}

// PurgeExpiredSessions elimina sesiones revocadas o inactivas más allá del timeout.
func (uc *AuthUseCase) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	n, err := uc.sessionRepo.DeleteInactive(ctx, uc.now().UTC().Add(-uc.cfg.IdleTimeout))
	if err != nil {
		return 0, err
	}
	if n > 0 {
		uc.log.Info().Int64("deleted", n).Msg("sesiones expiradas eliminadas")
	}
	return n, nil
}

// ── Bootstrap ────────────────────────────────────────────────────────────────

// Bootstrap garantiza los roles Admin y User y la cuenta administradora configurada.
// Sin password configurada no se siembra la cuenta. Idempotente.
func (uc *AuthUseCase) Bootstrap(ctx context.Context, adminEmail, adminPassword string) error {
	for _, role := range entity.Roles {
		if err := uc.roleRepo.EnsureRole(ctx, role); err != nil {
			return err
		}
	}
	adminEmail = strings.TrimSpace(adminEmail)
	if adminEmail == "" || adminPassword == "" {
		uc.log.Warn().Msg("ADMIN_EMAIL/ADMIN_PASSWORD no configurados: no se crea la cuenta administradora")
		return nil
	}
	existing, err := uc.userRepo.GetByEmail(ctx, adminEmail)
	if err != nil {
		return err
	}
	if existing != nil {
		return uc.ensureExistingAdmin(ctx, existing)
	}
	if msg := uc.policy.Message(adminPassword); msg != "" {
		verr := domain.NewValidationError()
		verr.Add("ADMIN_PASSWORD", msg)
		return verr
	}
	user, err := uc.createUser(ctx, adminEmail, adminPassword, entity.RoleAdmin)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return nil
		}
		return err
	}
	uc.log.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("cuenta administradora creada")
	return nil
}

func toUserResponse(u *entity.User, role string) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      role,
		CreatedAt: u.CreatedAt,
	}
}
