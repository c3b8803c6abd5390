package service

import (
	"context"
	"time"

	"plot-editor-be/internal/constant"
	"plot-editor-be/internal/dto"
	"plot-editor-be/internal/entity"
	"plot-editor-be/internal/pkg/serverutils"
	"plot-editor-be/internal/repository/specification"
	"plot-editor-be/internal/repository/unitofwork"
	"plot-editor-be/pkg/summary"

	"github.com/google/uuid"
)

type ICharacterService interface {
	GetAllByWork(ctx context.Context, userId uuid.UUID, workId uuid.UUID) ([]*dto.ShowCharacterResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateCharacterRequest) (*dto.CreateCharacterResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowCharacterResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateCharacterRequest) (*dto.UpdateCharacterResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	GetDialogues(ctx context.Context, userId uuid.UUID, id uuid.UUID) ([]dto.CharacterDialogueLine, error)
}

type characterService struct {
	uowFactory unitofwork.RepositoryFactory
	aggregator *summary.Aggregator
}

func NewCharacterService(
	uowFactory unitofwork.RepositoryFactory,
	aggregator *summary.Aggregator,
) ICharacterService {
	return &characterService{
		uowFactory: uowFactory,
		aggregator: aggregator,
	}
}

func toShowCharacterResponse(c *entity.Character) *dto.ShowCharacterResponse {
	return &dto.ShowCharacterResponse{
		Id:         c.Id,
		WorkId:     c.WorkId,
		Name:       c.Name,
		Color:      c.Color,
		Properties: c.Properties,
		Memo:       c.Memo,
		AiSummary:  c.AiSummary,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func (s *characterService) GetAllByWork(ctx context.Context, userId uuid.UUID, workId uuid.UUID) ([]*dto.ShowCharacterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	characters, err := uow.CharacterRepository().FindAll(ctx,
		specification.ByWorkID{WorkID: workId},
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ShowCharacterResponse, len(characters))
	for i, c := range characters {
		result[i] = toShowCharacterResponse(c)
	}
	return result, nil
}

func (s *characterService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateCharacterRequest) (*dto.CreateCharacterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	work, err := uow.WorkRepository().FindOne(ctx,
		specification.ByID{ID: req.WorkId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if work == nil {
		return nil, serverutils.NewNotFoundError("work not found")
	}

	character := entity.Character{
		Id:         uuid.New(),
		WorkId:     req.WorkId,
		UserId:     userId,
		Name:       req.Name,
		Color:      req.Color,
		Properties: req.Properties,
		Memo:       req.Memo,
		CreatedAt:  time.Now(),
	}
	if err := uow.CharacterRepository().Create(ctx, &character); err != nil {
		return nil, err
	}

	return &dto.CreateCharacterResponse{Id: character.Id}, nil
}

func (s *characterService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowCharacterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	character, err := uow.CharacterRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if character == nil {
		return nil, serverutils.NewNotFoundError("character not found")
	}
	return toShowCharacterResponse(character), nil
}

func (s *characterService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateCharacterRequest) (*dto.UpdateCharacterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	character, err := uow.CharacterRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if character == nil {
		return nil, serverutils.NewNotFoundError("character not found")
	}

	now := time.Now()
	character.Name = req.Name
	character.Color = req.Color
	character.Properties = req.Properties
	character.Memo = req.Memo
	character.AiSummary = req.AiSummary
	character.UpdatedAt = &now

	if err := uow.CharacterRepository().Update(ctx, character); err != nil {
		return nil, err
	}
	return &dto.UpdateCharacterResponse{Id: character.Id}, nil
}

func (s *characterService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	character, err := uow.CharacterRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if character == nil {
		return serverutils.NewNotFoundError("character not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	if err := uow.RelationRepository().DeleteAllByCharacterId(ctx, id); err != nil {
		uow.Rollback()
		return err
	}
	if err := uow.CharacterRepository().Delete(ctx, id); err != nil {
		uow.Rollback()
		return err
	}
	return uow.Commit()
}

func (s *characterService) GetDialogues(ctx context.Context, userId uuid.UUID, id uuid.UUID) ([]dto.CharacterDialogueLine, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	character, err := uow.CharacterRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if character == nil {
		return nil, serverutils.NewNotFoundError("character not found")
	}

	work, err := uow.WorkRepository().FindOne(ctx,
		specification.ByID{ID: character.WorkId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if work == nil {
		return nil, serverutils.NewNotFoundError("work not found")
	}

	// The dialogue viewer always wants attributed lines, even for works
	// whose summarization path uses full chapter text.
	signal, err := s.aggregator.CollectCharacterSignal(ctx, userId, work.Id, character.Name, constant.WorkTypePlot)
	if err != nil {
		return nil, err
	}

	lines := make([]dto.CharacterDialogueLine, len(signal.Dialogues))
	for i, d := range signal.Dialogues {
		lines[i] = dto.CharacterDialogueLine{
			EpisodeTitle: d.EpisodeTitle,
			PlotTitle:    d.PlotTitle,
			PlotId:       d.PlotId,
			Text:         d.Text,
		}
	}
	return lines, nil
}
