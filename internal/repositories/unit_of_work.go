package repositories

import (
	"context"

	"gorm.io/gorm"
)

type repositorySet struct {
	db *gorm.DB
}

// NewRepositories binds every repository to db.
func NewRepositories(db *gorm.DB) Repositories {
	return &repositorySet{db: db}
}

func (r *repositorySet) Accounts() AccountRepositoryInterface {
	return NewAccountRepository(r.db)
}

func (r *repositorySet) Transactions() TransactionRepositoryInterface {
	return NewTransactionRepository(r.db)
}

func (r *repositorySet) Installments() InstallmentRepositoryInterface {
	return NewInstallmentRepository(r.db)
}

func (r *repositorySet) Statements() StatementRepositoryInterface {
	return NewStatementRepository(r.db)
}

func (r *repositorySet) Snapshots() SnapshotRepositoryInterface {
	return NewSnapshotRepository(r.db)
}

func (r *repositorySet) Categories() CategoryRepositoryInterface {
	return NewCategoryRepository(r.db)
}

func (r *repositorySet) AuditLogs() AuditLogRepositoryInterface {
	return NewAuditLogRepository(r.db)
}

type gormUnitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork creates a unit of work over db.
func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &gormUnitOfWork{db: db}
}

// WithinTransaction implements UnitOfWork
func (u *gormUnitOfWork) WithinTransaction(ctx context.Context, fn func(repos Repositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
