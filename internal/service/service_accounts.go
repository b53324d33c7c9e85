package service

import (
	"context"

	"github.com/MKhiriev/mailspring-api/internal/logger"
	"github.com/MKhiriev/mailspring-api/internal/store"
	"github.com/MKhiriev/mailspring-api/models"
)

const accountsField = "accounts"

type accountService struct {
	documents store.ConfigDocumentStorage
}

func NewAccountService(documents store.ConfigDocumentStorage) AccountService {
	return &accountService{documents: documents}
}

func (s *accountService) GetAccounts(ctx context.Context) (models.Accounts, error) {
	log := logger.FromContext(ctx)

	path := s.documents.Locate(ctx)
	exists, err := s.documents.Exists(ctx, path)
	if err != nil {
		return models.Accounts{}, err
	}
	if !exists {
		log.Debug().Str("path", path).Msg("no config document, reporting no accounts")
		return models.NewEmptyAccounts(), nil
	}

	doc, err := s.documents.Load(ctx, path)
	if err != nil {
		return models.Accounts{}, err
	}

	namespace, ok := doc.Namespace(store.WildcardKey)
	if !ok {
		return models.NewEmptyAccounts(), nil
	}

	accounts, ok := namespace.Field(accountsField)
	if !ok {
		return models.NewEmptyAccounts(), nil
	}

	return models.Accounts{Accounts: accounts}, nil
}
