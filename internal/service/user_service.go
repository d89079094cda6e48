package service

import (
	"context"
	"errors"

	"github.com/cl7paBka/goar-tomsk-web/internal/models"
	"github.com/cl7paBka/goar-tomsk-web/internal/repository"
	"github.com/cl7paBka/goar-tomsk-web/internal/schema"

	"go.uber.org/zap"
)

type RegisterUserInput struct {
	Name  string
	Phone string
	Email string
	Role  models.Role
}

// RegisterResult — конверт ответа регистрации: статус + созданный пользователь.
type RegisterResult struct {
	Status int             `json:"status"`
	User   schema.UserRead `json:"user"`
}

type UpdateUserInput struct {
	Name  *string
	Phone *string
	Email *string
}

type UserService struct {
	users     repository.UserRepo
	addresses repository.AddressRepo

	log *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) *UserService {
	return &UserService{
		users:     repo.Users,
		addresses: repo.Addresses,
		log:       log,
	}
}

// Register создаёт пользователя. Дубликат телефона или email — конфликт:
// сначала явная проверка, затем уникальные индексы БД как последний рубеж
// (гонка двух одновременных регистраций).
func (s *UserService) Register(ctx context.Context, in RegisterUserInput) (*RegisterResult, error) {
	exists, err := s.users.ExistsByPhoneOrEmail(ctx, in.Phone, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserExists
	}

	role := in.Role
	if role == "" {
		role = models.RoleCustomer
	}

	u := &models.User{
		Name:  in.Name,
		Phone: in.Phone,
		Email: in.Email,
		Role:  role,
	}

	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(repository.TranslateError(err), repository.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	s.log.Info("Зарегистрирован новый пользователь",
		zap.Uint("user_id", u.ID),
		zap.String("phone", u.Phone),
	)

	// Новая строка ещё не имеет связей — проецируем без адресов и заказов.
	return &RegisterResult{
		Status: 200,
		User:   schema.ToUserRead(u),
	}, nil
}

// Login не реализован: выпуск токенов и сессии — отдельный сервис.
func (s *UserService) Login(ctx context.Context) error {
	return ErrNotImplemented
}

func (s *UserService) GetMe(ctx context.Context) (*schema.UserRead, error) {
	userID, _, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	read := schema.ToUserRead(u)
	return &read, nil
}

func (s *UserService) UpdateMe(ctx context.Context, in UpdateUserInput) (*schema.UserRead, error) {
	userID, _, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Phone != nil {
		fields["phone"] = *in.Phone
	}
	if in.Email != nil {
		fields["email"] = *in.Email
	}

	if err := s.users.UpdateFields(ctx, userID, fields); err != nil {
		if errors.Is(repository.TranslateError(err), repository.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	return s.GetMe(ctx)
}

func (s *UserService) DeleteMe(ctx context.Context) error {
	userID, _, err := requireAuth(ctx)
	if err != nil {
		return err
	}

	ok, err := s.users.Delete(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUserNotFound
	}

	s.log.Info("Пользователь удалён вместе с адресами и заказами", zap.Uint("user_id", userID))
	return nil
}

type CreateAddressInput struct {
	Street         string
	Intercom       *string
	Floor          *int
	Apartment      *string
	IsPrivateHouse bool
}

func (s *UserService) ListAddresses(ctx context.Context) ([]schema.AddressRead, error) {
	userID, _, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.addresses.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]schema.AddressRead, 0, len(list))
	for i := range list {
		out = append(out, schema.ToAddressRead(&list[i]))
	}
	return out, nil
}

func (s *UserService) AddAddress(ctx context.Context, in CreateAddressInput) (*schema.AddressRead, error) {
	userID, _, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}

	a := &models.UserAddress{
		UserID:         userID,
		Street:         in.Street,
		Intercom:       in.Intercom,
		Floor:          in.Floor,
		Apartment:      in.Apartment,
		IsPrivateHouse: in.IsPrivateHouse,
	}

	if err := s.addresses.Create(ctx, a); err != nil {
		if errors.Is(repository.TranslateError(err), repository.ErrForeignKey) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	read := schema.ToAddressRead(a)
	return &read, nil
}

func (s *UserService) DeleteAddress(ctx context.Context, addressID uint) error {
	userID, _, err := requireAuth(ctx)
	if err != nil {
		return err
	}

	ok, err := s.addresses.DeleteForUser(ctx, addressID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrAddressNotFound
	}
	return nil
}
