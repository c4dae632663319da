package location

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"forecastapi.app/internal/ports"
	"forecastapi.app/pkg/errors"
	"forecastapi.app/pkg/validation"
)

type UseCase struct {
	userRepo      ports.UserRepository
	favoriteRepo  ports.FavoriteCityRepository
	cityValidator ports.CityValidator
	catalog       *Catalog
	logger        ports.Logger
}

type UseCaseDependencies struct {
	UserRepo      ports.UserRepository
	FavoriteRepo  ports.FavoriteCityRepository
	CityValidator ports.CityValidator
	Catalog       *Catalog
	Logger        ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.UserRepo == nil {
		return nil, errors.NewValidationError("user repository is required")
	}
	if deps.FavoriteRepo == nil {
		return nil, errors.NewValidationError("favorite city repository is required")
	}
	if deps.CityValidator == nil {
		return nil, errors.NewValidationError("city validator is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	catalog := deps.Catalog
	if catalog == nil {
		catalog = NewCatalog(nil, nil)
	}

	return &UseCase{
		userRepo:      deps.UserRepo,
		favoriteRepo:  deps.FavoriteRepo,
		cityValidator: deps.CityValidator,
		catalog:       catalog,
		logger:        deps.Logger,
	}, nil
}

func (uc *UseCase) validateCreateProfileParams(params CreateProfileParams) error {
	if !validation.IsNotEmpty(params.Username) {
		return errors.NewValidationError("username is required")
	}
	if !validation.IsValidUsername(params.Username) {
		return errors.NewValidationError("username must be 3-32 characters of letters, digits, '.', '_' or '-'")
	}
	if !validation.IsNotEmpty(params.Email) {
		return errors.NewValidationError("email is required")
	}
	if !validation.IsValidEmail(params.Email) {
		return errors.NewValidationError("invalid email format")
	}
	if !validation.IsNotEmpty(params.DefaultCity) {
		return errors.NewValidationError("default city is required")
	}
	return nil
}

// CreateProfile registers a new user with a default city
func (uc *UseCase) CreateProfile(ctx context.Context, params CreateProfileParams) (*Profile, error) {
	params.Username = strings.TrimSpace(params.Username)
	params.Email = strings.TrimSpace(params.Email)
	params.DefaultCity = strings.TrimSpace(params.DefaultCity)

	if err := uc.validateCreateProfileParams(params); err != nil {
		return nil, err
	}

	existing, err := uc.userRepo.FindByUsername(ctx, params.Username)
	if err != nil && !errors.IsNotFoundError(err) {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if existing != nil {
		return nil, errors.NewAlreadyExistsError("username already taken")
	}

	now := time.Now()
	user := &ports.UserData{
		Username:    params.Username,
		Email:       params.Email,
		DefaultCity: params.DefaultCity,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.userRepo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}

	uc.logger.Info("Profile created",
		ports.F("username", user.Username),
		ports.F("defaultCity", user.DefaultCity))

	return uc.convertFromPortsUser(user), nil
}

// GetProfile returns the profile of a user
func (uc *UseCase) GetProfile(ctx context.Context, username string) (*Profile, error) {
	username = strings.TrimSpace(username)
	if !validation.IsNotEmpty(username) {
		return nil, errors.NewValidationError("username is required")
	}

	user, err := uc.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return uc.convertFromPortsUser(user), nil
}

// SetDefaultCity changes the city used for a user's implicit overview
func (uc *UseCase) SetDefaultCity(ctx context.Context, username, city string) (*Profile, error) {
	city = strings.TrimSpace(city)
	if !validation.IsNotEmpty(city) {
		return nil, errors.NewValidationError("city is required")
	}

	profile, err := uc.GetProfile(ctx, username)
	if err != nil {
		return nil, err
	}

	if err := uc.userRepo.UpdateDefaultCity(ctx, profile.Username, city); err != nil {
		return nil, fmt.Errorf("update default city: %w", err)
	}

	uc.logger.Debug("Default city updated",
		ports.F("username", profile.Username),
		ports.F("city", city))

	profile.DefaultCity = city
	profile.UpdatedAt = time.Now()
	return profile, nil
}

// DefaultCity returns the city the user's overview should be fetched for
func (uc *UseCase) DefaultCity(ctx context.Context, username string) (string, error) {
	profile, err := uc.GetProfile(ctx, username)
	if err != nil {
		return "", err
	}
	if !profile.HasDefaultCity() {
		return "", errors.NewValidationError("user has no default city")
	}
	return profile.DefaultCity, nil
}

// AddFavorite saves a city for a user after resolving it to its canonical name.
// Duplicates are rejected case-insensitively on both the typed and canonical name.
func (uc *UseCase) AddFavorite(ctx context.Context, params AddFavoriteParams) (*FavoriteCity, error) {
	city := strings.TrimSpace(params.City)
	if !validation.IsNotEmpty(city) {
		return nil, errors.NewValidationError("city name cannot be empty")
	}

	profile, err := uc.GetProfile(ctx, params.Username)
	if err != nil {
		return nil, err
	}

	if err := uc.ensureNotSaved(ctx, profile.Username, city); err != nil {
		return nil, err
	}

	info, err := uc.cityValidator.ValidateCity(ctx, city)
	if err != nil {
		uc.logger.Warn("City validation failed",
			ports.F("city", city),
			ports.F("error", err))
		return nil, fmt.Errorf("validate city %s: %w", city, err)
	}

	if !strings.EqualFold(info.Name, city) {
		if err := uc.ensureNotSaved(ctx, profile.Username, info.Name); err != nil {
			return nil, err
		}
	}

	favorite := &ports.FavoriteCityData{
		Username:  profile.Username,
		CityName:  info.Name,
		Latitude:  info.Latitude,
		Longitude: info.Longitude,
		AddedAt:   time.Now(),
	}
	if err := uc.favoriteRepo.Add(ctx, favorite); err != nil {
		return nil, fmt.Errorf("add favorite city: %w", err)
	}

	uc.logger.Info("Favorite city added",
		ports.F("username", profile.Username),
		ports.F("city", favorite.CityName))

	return uc.convertFromPortsFavorite(favorite), nil
}

// ListFavorites returns a user's saved cities, newest first
func (uc *UseCase) ListFavorites(ctx context.Context, username string) ([]*FavoriteCity, error) {
	profile, err := uc.GetProfile(ctx, username)
	if err != nil {
		return nil, err
	}

	stored, err := uc.favoriteRepo.ListByUsername(ctx, profile.Username)
	if err != nil {
		return nil, fmt.Errorf("list favorite cities: %w", err)
	}

	favorites := make([]*FavoriteCity, 0, len(stored))
	for _, f := range stored {
		favorites = append(favorites, uc.convertFromPortsFavorite(f))
	}
	sort.SliceStable(favorites, func(i, j int) bool {
		return favorites[i].AddedAt.After(favorites[j].AddedAt)
	})

	return favorites, nil
}

// RemoveFavorite deletes one of the user's saved cities
func (uc *UseCase) RemoveFavorite(ctx context.Context, username string, id uint) error {
	if id == 0 {
		return errors.NewValidationError("city ID is required")
	}

	profile, err := uc.GetProfile(ctx, username)
	if err != nil {
		return err
	}

	if err := uc.favoriteRepo.Delete(ctx, profile.Username, id); err != nil {
		return fmt.Errorf("remove favorite city: %w", err)
	}

	uc.logger.Debug("Favorite city removed",
		ports.F("username", profile.Username),
		ports.F("id", id))
	return nil
}

// Suggest returns catalog cities matching what the user has typed so far
func (uc *UseCase) Suggest(prefix string, limit int) []string {
	return uc.catalog.Suggest(prefix, limit)
}

func (uc *UseCase) ensureNotSaved(ctx context.Context, username, city string) error {
	existing, err := uc.favoriteRepo.FindByName(ctx, username, city)
	if err != nil && !errors.IsNotFoundError(err) {
		return fmt.Errorf("check existing favorite: %w", err)
	}
	if existing != nil {
		return errors.NewAlreadyExistsError("city already added")
	}
	return nil
}

func (uc *UseCase) convertFromPortsUser(data *ports.UserData) *Profile {
	return &Profile{
		ID:          data.ID,
		Username:    data.Username,
		Email:       data.Email,
		DefaultCity: data.DefaultCity,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func (uc *UseCase) convertFromPortsFavorite(data *ports.FavoriteCityData) *FavoriteCity {
	return &FavoriteCity{
		ID:        data.ID,
		Username:  data.Username,
		Name:      data.CityName,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		AddedAt:   data.AddedAt,
	}
}
