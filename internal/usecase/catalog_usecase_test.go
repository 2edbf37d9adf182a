package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/isafmcl/Integra-o-com-ERP/internal/domain/model"
	"github.com/isafmcl/Integra-o-com-ERP/internal/usecase"
)

func TestCatalogUsecase_ListProducts_NegativeSkip(t *testing.T) {
	uc := usecase.NewCatalogUsecase(new(ProductRepoMock))

	_, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{Skip: -1})
	assertErrContains(t, err, "skip must be >= 0")
}

func TestCatalogUsecase_ListProducts_InvalidLimit(t *testing.T) {
	uc := usecase.NewCatalogUsecase(new(ProductRepoMock))

	_, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{Limit: -5})
	assertErrContains(t, err, "invalid limit")

	_, err = uc.ListProducts(context.Background(), usecase.ListProductsInput{Limit: usecase.MaxProductLimit + 1})
	assertErrContains(t, err, "invalid limit")
}

func TestCatalogUsecase_ListProducts_DefaultLimit(t *testing.T) {
	pRepo := new(ProductRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo)

	pRepo.On("List", mock.Anything, 0, usecase.DefaultProductLimit).
		Return([]model.Product{{ID: 1, Name: "Widget"}}, nil)

	out, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{})
	assert.NoError(t, err)
	assert.Equal(t, 1, len(out))

	pRepo.AssertExpectations(t)
}

func TestCatalogUsecase_ListProducts_RepoFailure(t *testing.T) {
	pRepo := new(ProductRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo)

	pRepo.On("List", mock.Anything, 0, usecase.DefaultProductLimit).
		Return(nil, errors.New("connection refused"))

	_, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{})
	assertErrContains(t, err, "db error")

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 500, he.Status)
}
