package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/MaxAPBusiness/Proyecto-Taller/internal/application/dto"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/entity"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/repository"
	"github.com/MaxAPBusiness/Proyecto-Taller/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: alta de usuario y login.
// Las contraseñas se guardan solamente como hash bcrypt.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	personRepo  repository.PersonRepository
	catalogRepo repository.CatalogRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, personRepo repository.PersonRepository, catalogRepo repository.CatalogRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, personRepo: personRepo, catalogRepo: catalogRepo, jwtCfg: jwtCfg}
}

// RegisterUser crea credenciales para una persona existente: hashea la
// contraseña con bcrypt y persiste. Devuelve ErrDuplicate si el nombre de
// usuario ya existe.
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.userRepo.GetByUsername(in.Username)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	person, err := uc.personRepo.GetByID(in.PersonID)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, domain.ErrPersonNotFound
	}
	class, err := uc.catalogRepo.GetClassByID(person.ClassID)
	if err != nil {
		return nil, err
	}
	if class == nil {
		return nil, domain.ErrNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		PersonID:     person.ID,
		Username:     in.Username,
		PasswordHash: string(hash),
		Class:        class.Description,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica usuario/contraseña contra el hash bcrypt, genera el JWT y
// retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.PersonID, user.Class, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		PersonID:  u.PersonID,
		Username:  u.Username,
		Class:     u.Class,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
