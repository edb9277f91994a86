package fieldops

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"solartech.app/field-service/pkg/common"
	"solartech.app/field-service/pkg/models"
)

type UserInput struct {
	Username    string
	Password    string
	Role        models.Role
	Name        string
	Email       string
	Phone       string
	CompanyID   *string
	CompanyName *string

	// ExistingID carries a server-issued identifier; when empty a local
	// one is generated.
	ExistingID string
}

type UserUpdate struct {
	Name         *string
	Email        *string
	Phone        *string
	Password     *string
	LastLocation *models.TechnicianLocation
}

func (e *Engine) addUser(ctx context.Context, input UserInput) (models.User, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFieldCore,
		zap.String(common.LoggerFieldFSCategory, common.LoggerCategoryUser),
	)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.actor == nil {
		return models.User{}, ErrNotAuthenticated
	}
	switch e.actor.Role {
	case models.RoleMaster:
		// any role
	case models.RoleCompany:
		// company actors register technicians for their own firm only
		if input.Role != models.RoleTechnician {
			return models.User{}, ErrForbidden
		}
		input.CompanyID = e.actor.CompanyID
		input.CompanyName = e.actor.CompanyName
	default:
		return models.User{}, ErrForbidden
	}

	if input.Username == "" || input.Name == "" {
		return models.User{}, fmt.Errorf("%w: username and name are required", ErrValidation)
	}
	if !input.Role.Valid() {
		return models.User{}, fmt.Errorf("%w: unknown role %q", ErrValidation, input.Role)
	}
	if !pairedRef(input.CompanyID, input.CompanyName) {
		return models.User{}, fmt.Errorf("%w: companyId and companyName must be set together", ErrValidation)
	}
	for _, existing := range e.users {
		if existing.Username == input.Username {
			return models.User{}, fmt.Errorf("%w: username %q already in use", ErrValidation, input.Username)
		}
	}

	id := input.ExistingID
	if id == "" {
		id = uuid.NewString()
	}
	user := models.User{
		ID:          id,
		Username:    input.Username,
		Password:    input.Password,
		Role:        input.Role,
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		CompanyID:   input.CompanyID,
		CompanyName: input.CompanyName,
		CreatedAt:   time.Now().UnixMilli(),
	}

	e.users[user.ID] = user
	e.persistUsers(ctx)

	logger.Info("Added user", zap.String("id", user.ID), zap.String("role", string(user.Role)))
	return user, nil
}

func (e *Engine) updateUser(ctx context.Context, id string, upd UserUpdate) (models.User, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFieldCore,
		zap.String(common.LoggerFieldFSCategory, common.LoggerCategoryUser),
	)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.actor == nil {
		return models.User{}, ErrNotAuthenticated
	}
	user, ok := e.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	if e.actor.Role == models.RoleCompany && !sameRef(user.CompanyID, e.actor.CompanyID) {
		return models.User{}, ErrForbidden
	}
	if e.actor.Role == models.RoleTechnician && id != e.actor.ID {
		return models.User{}, ErrForbidden
	}

	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.Email != nil {
		user.Email = *upd.Email
	}
	if upd.Phone != nil {
		user.Phone = *upd.Phone
	}
	if upd.Password != nil {
		user.Password = *upd.Password
	}
	if upd.LastLocation != nil {
		user.LastLocation = upd.LastLocation
	}

	e.users[id] = user
	e.persistUsers(ctx)

	logger.Info("Updated user", zap.String("id", id))
	return user, nil
}

func (e *Engine) deleteUser(ctx context.Context, id string) error {
	logger := common.GetLoggerWith(
		common.LoggerNameFieldCore,
		zap.String(common.LoggerFieldFSCategory, common.LoggerCategoryUser),
	)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.actor == nil {
		return ErrNotAuthenticated
	}
	user, ok := e.users[id]
	if !ok {
		return ErrNotFound
	}
	switch e.actor.Role {
	case models.RoleMaster:
		// any user
	case models.RoleCompany:
		if user.Role != models.RoleTechnician || !sameRef(user.CompanyID, e.actor.CompanyID) {
			return ErrForbidden
		}
	default:
		return ErrForbidden
	}

	delete(e.users, id)
	e.persistUsers(ctx)

	logger.Info("Deleted user", zap.String("id", id))
	return nil
}

func (e *Engine) visibleUsers() []models.User {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return VisibleUsers(e.actor, e.userList())
}

func (e *Engine) usersByCompany(companyID string) []models.User {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return common.Filter(e.userList(), func(u models.User) bool {
		return u.CompanyID != nil && *u.CompanyID == companyID
	})
}

type IUserImpl struct {
	engine *Engine
}

func (iu *IUserImpl) Add(ctx context.Context, input UserInput) (models.User, error) {
	return iu.engine.addUser(ctx, input)
}

func (iu *IUserImpl) Update(ctx context.Context, id string, upd UserUpdate) (models.User, error) {
	return iu.engine.updateUser(ctx, id, upd)
}

func (iu *IUserImpl) Delete(ctx context.Context, id string) error {
	return iu.engine.deleteUser(ctx, id)
}

func (iu *IUserImpl) Visible() []models.User {
	return iu.engine.visibleUsers()
}

func (iu *IUserImpl) ByCompany(companyID string) []models.User {
	return iu.engine.usersByCompany(companyID)
}

func (e *Engine) GetIUser() IUser {
	return &IUserImpl{engine: e}
}
