package service

import (
	"context"
	"time"

	"plot-editor-be/internal/dto"
	"plot-editor-be/internal/entity"
	"plot-editor-be/internal/pkg/serverutils"
	"plot-editor-be/internal/repository/specification"
	"plot-editor-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IRelationService interface {
	GetAllByWork(ctx context.Context, userId uuid.UUID, workId uuid.UUID) ([]*dto.ShowRelationResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateRelationRequest) (*dto.CreateRelationResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateRelationRequest) (*dto.UpdateRelationResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type relationService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewRelationService(uowFactory unitofwork.RepositoryFactory) IRelationService {
	return &relationService{
		uowFactory: uowFactory,
	}
}

func (s *relationService) GetAllByWork(ctx context.Context, userId uuid.UUID, workId uuid.UUID) ([]*dto.ShowRelationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	relations, err := uow.RelationRepository().FindAll(ctx,
		specification.ByWorkID{WorkID: workId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ShowRelationResponse, len(relations))
	for i, rel := range relations {
		result[i] = &dto.ShowRelationResponse{
			Id:              rel.Id,
			WorkId:          rel.WorkId,
			FromCharacterId: rel.FromCharacterId,
			ToCharacterId:   rel.ToCharacterId,
			RelationName:    rel.RelationName,
		}
	}
	return result, nil
}

func (s *relationService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateRelationRequest) (*dto.CreateRelationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Both endpoints must exist in the same work before the edge is stored.
	for _, charId := range []uuid.UUID{req.FromCharacterId, req.ToCharacterId} {
		character, err := uow.CharacterRepository().FindOne(ctx,
			specification.ByID{ID: charId},
			specification.UserOwnedBy{UserID: userId},
			specification.ByWorkID{WorkID: req.WorkId},
		)
		if err != nil {
			return nil, err
		}
		if character == nil {
			return nil, serverutils.NewNotFoundError("character not found in work")
		}
	}

	relation := entity.Relation{
		Id:              uuid.New(),
		WorkId:          req.WorkId,
		UserId:          userId,
		FromCharacterId: req.FromCharacterId,
		ToCharacterId:   req.ToCharacterId,
		RelationName:    req.RelationName,
		CreatedAt:       time.Now(),
	}
	if err := uow.RelationRepository().Create(ctx, &relation); err != nil {
		return nil, err
	}

	return &dto.CreateRelationResponse{Id: relation.Id}, nil
}

func (s *relationService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateRelationRequest) (*dto.UpdateRelationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	relation, err := uow.RelationRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if relation == nil {
		return nil, serverutils.NewNotFoundError("relation not found")
	}

	relation.RelationName = req.RelationName
	if err := uow.RelationRepository().Update(ctx, relation); err != nil {
		return nil, err
	}
	return &dto.UpdateRelationResponse{Id: relation.Id}, nil
}

func (s *relationService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	relation, err := uow.RelationRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if relation == nil {
		return serverutils.NewNotFoundError("relation not found")
	}
	return uow.RelationRepository().Delete(ctx, id)
}
