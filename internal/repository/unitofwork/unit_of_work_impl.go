package unitofwork

import (
	"context"
	"fmt"

	"plot-editor-be/internal/repository/contract"
	"plot-editor-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) WorkRepository() contract.WorkRepository {
	return implementation.NewWorkRepository(u.getDB())
}

func (u *UnitOfWorkImpl) EpisodeRepository() contract.EpisodeRepository {
	return implementation.NewEpisodeRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PlotRepository() contract.PlotRepository {
	return implementation.NewPlotRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CharacterRepository() contract.CharacterRepository {
	return implementation.NewCharacterRepository(u.getDB())
}

func (u *UnitOfWorkImpl) RelationRepository() contract.RelationRepository {
	return implementation.NewRelationRepository(u.getDB())
}

func (u *UnitOfWorkImpl) GraphLayoutRepository() contract.GraphLayoutRepository {
	return implementation.NewGraphLayoutRepository(u.getDB())
}
