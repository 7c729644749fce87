package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/idprov/clientadmin/internal/admin/domain"
	"github.com/idprov/clientadmin/internal/admin/store"
	"github.com/idprov/clientadmin/pkg/slogx"
)

// ResourceService manages identity resources, api resources and api scopes.
// Resources are not ownership-scoped; any authenticated administrator may
// manage them.
type ResourceService struct {
	Store store.Store
}

func (s *ResourceService) mapResourceErr(err error, kind string, id int64) error {
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: %s %d", ErrNotFound, kind, id)
	}
	if errors.Is(err, store.ErrAlreadyExists) {
		return fmt.Errorf("%w: %s name already in use", ErrConflict, kind)
	}
	return err
}

func (s *ResourceService) QueryIdentityResourcePage(ctx context.Context, q store.PageQuery) (store.Page[domain.IdentityResource], error) {
	if err := validatePageQuery(q); err != nil {
		return store.Page[domain.IdentityResource]{}, err
	}
	return s.Store.Resources().QueryIdentityResourcePage(ctx, q)
}

func (s *ResourceService) GetIdentityResource(ctx context.Context, id int64) (domain.IdentityResource, error) {
	r, err := s.Store.Resources().GetIdentityResource(ctx, id)
	if err != nil {
		return domain.IdentityResource{}, s.mapResourceErr(err, "identity resource", id)
	}
	return r, nil
}

// SaveIdentityResource inserts when r.ID is zero, updates otherwise. Returns
// the record id.
func (s *ResourceService) SaveIdentityResource(ctx context.Context, r domain.IdentityResource) (int64, error) {
	if r.Name == "" {
		return 0, fmt.Errorf("%w: resource name is required", ErrInvalidArgument)
	}
	if r.ID == 0 {
		r.Created = time.Now().UTC()
	}
	id, err := s.Store.Resources().SaveIdentityResource(ctx, r)
	if err != nil {
		return 0, s.mapResourceErr(err, "identity resource", r.ID)
	}
	slogx.FromContext(ctx).Info("identity resource saved", "id", id, "name", r.Name)
	return id, nil
}

func (s *ResourceService) QueryApiResourcePage(ctx context.Context, q store.PageQuery) (store.Page[domain.ApiResource], error) {
	if err := validatePageQuery(q); err != nil {
		return store.Page[domain.ApiResource]{}, err
	}
	return s.Store.Resources().QueryApiResourcePage(ctx, q)
}

func (s *ResourceService) GetApiResource(ctx context.Context, id int64) (domain.ApiResource, error) {
	r, err := s.Store.Resources().GetApiResource(ctx, id)
	if err != nil {
		return domain.ApiResource{}, s.mapResourceErr(err, "api resource", id)
	}
	return r, nil
}

func (s *ResourceService) SaveApiResource(ctx context.Context, r domain.ApiResource) (int64, error) {
	if r.Name == "" {
		return 0, fmt.Errorf("%w: resource name is required", ErrInvalidArgument)
	}
	if r.ID == 0 {
		r.Created = time.Now().UTC()
	}
	id, err := s.Store.Resources().SaveApiResource(ctx, r)
	if err != nil {
		return 0, s.mapResourceErr(err, "api resource", r.ID)
	}
	slogx.FromContext(ctx).Info("api resource saved", "id", id, "name", r.Name)
	return id, nil
}

func (s *ResourceService) QueryApiScopePage(ctx context.Context, q store.PageQuery) (store.Page[domain.ApiScope], error) {
	if err := validatePageQuery(q); err != nil {
		return store.Page[domain.ApiScope]{}, err
	}
	return s.Store.Resources().QueryApiScopePage(ctx, q)
}

func (s *ResourceService) GetApiScope(ctx context.Context, id int64) (domain.ApiScope, error) {
	r, err := s.Store.Resources().GetApiScope(ctx, id)
	if err != nil {
		return domain.ApiScope{}, s.mapResourceErr(err, "api scope", id)
	}
	return r, nil
}

func (s *ResourceService) SaveApiScope(ctx context.Context, sc domain.ApiScope) (int64, error) {
	if sc.Name == "" {
		return 0, fmt.Errorf("%w: scope name is required", ErrInvalidArgument)
	}
	if sc.ID == 0 {
		sc.Created = time.Now().UTC()
	}
	id, err := s.Store.Resources().SaveApiScope(ctx, sc)
	if err != nil {
		return 0, s.mapResourceErr(err, "api scope", sc.ID)
	}
	slogx.FromContext(ctx).Info("api scope saved", "id", id, "name", sc.Name)
	return id, nil
}
