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

type CompanyInput struct {
	Name     string
	Address  string
	Phone    string
	Email    string
	Username string
	Password string
}

type CompanyUpdate struct {
	Name    *string
	Address *string
	Phone   *string
	Email   *string
}

// addCompany creates the firm together with its paired company login
// account. Master only.
func (e *Engine) addCompany(ctx context.Context, input CompanyInput) (models.Company, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFieldCore,
		zap.String(common.LoggerFieldFSCategory, common.LoggerCategoryCompany),
	)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.actor == nil {
		return models.Company{}, ErrNotAuthenticated
	}
	if e.actor.Role != models.RoleMaster {
		return models.Company{}, ErrForbidden
	}
	if input.Name == "" || input.Username == "" || input.Password == "" {
		return models.Company{}, fmt.Errorf("%w: name, username and password are required", ErrValidation)
	}

	now := time.Now().UnixMilli()
	company := models.Company{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Address:   input.Address,
		Phone:     input.Phone,
		Email:     input.Email,
		Username:  input.Username,
		Password:  input.Password,
		CreatedAt: now,
	}
	account := models.User{
		ID:          uuid.NewString(),
		Username:    input.Username,
		Password:    input.Password,
		Role:        models.RoleCompany,
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		CompanyID:   models.StrPtr(company.ID),
		CompanyName: models.StrPtr(company.Name),
		CreatedAt:   now,
	}

	e.companies[company.ID] = company
	e.users[account.ID] = account
	e.persistCompanies(ctx)
	e.persistUsers(ctx)

	logger.Info("Added company with paired login",
		zap.String("companyId", company.ID),
		zap.String("accountId", account.ID))
	return company, nil
}

func (e *Engine) updateCompany(ctx context.Context, id string, upd CompanyUpdate) (models.Company, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFieldCore,
		zap.String(common.LoggerFieldFSCategory, common.LoggerCategoryCompany),
	)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.actor == nil {
		return models.Company{}, ErrNotAuthenticated
	}
	ownCompany := e.actor.Role == models.RoleCompany &&
		e.actor.CompanyID != nil && *e.actor.CompanyID == id
	if e.actor.Role != models.RoleMaster && !ownCompany {
		return models.Company{}, ErrForbidden
	}
	company, ok := e.companies[id]
	if !ok {
		return models.Company{}, ErrNotFound
	}

	if upd.Name != nil {
		company.Name = *upd.Name
	}
	if upd.Address != nil {
		company.Address = *upd.Address
	}
	if upd.Phone != nil {
		company.Phone = *upd.Phone
	}
	if upd.Email != nil {
		company.Email = *upd.Email
	}

	e.companies[id] = company
	e.persistCompanies(ctx)

	logger.Info("Updated company", zap.String("id", id))
	return company, nil
}

// deleteCompany removes the firm only; its interventions keep their
// dangling company reference. There is no cascade.
func (e *Engine) deleteCompany(ctx context.Context, id string) error {
	logger := common.GetLoggerWith(
		common.LoggerNameFieldCore,
		zap.String(common.LoggerFieldFSCategory, common.LoggerCategoryCompany),
	)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.actor == nil {
		return ErrNotAuthenticated
	}
	if e.actor.Role != models.RoleMaster {
		return ErrForbidden
	}
	if _, ok := e.companies[id]; !ok {
		return ErrNotFound
	}

	delete(e.companies, id)
	e.persistCompanies(ctx)

	logger.Info("Deleted company", zap.String("id", id))
	return nil
}

func (e *Engine) visibleCompanies() []models.Company {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return VisibleCompanies(e.actor, e.companyList())
}

func (e *Engine) companyByID(id string) (models.Company, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	c, ok := e.companies[id]
	return c, ok
}

type ICompanyImpl struct {
	engine *Engine
}

func (ic *ICompanyImpl) Add(ctx context.Context, input CompanyInput) (models.Company, error) {
	return ic.engine.addCompany(ctx, input)
}

func (ic *ICompanyImpl) Update(ctx context.Context, id string, upd CompanyUpdate) (models.Company, error) {
	return ic.engine.updateCompany(ctx, id, upd)
}

func (ic *ICompanyImpl) Delete(ctx context.Context, id string) error {
	return ic.engine.deleteCompany(ctx, id)
}

func (ic *ICompanyImpl) Visible() []models.Company {
	return ic.engine.visibleCompanies()
}

func (ic *ICompanyImpl) ByID(id string) (models.Company, bool) {
	return ic.engine.companyByID(id)
}

func (e *Engine) GetICompany() ICompany {
	return &ICompanyImpl{engine: e}
}
