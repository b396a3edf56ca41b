package repository

import (
	"go-inventory-hub/internal/ledger"
	"go-inventory-hub/internal/model"
)

type TransactionRepository interface {
	// Append assigns the next sequential id and stores the transaction.
	Append(tx model.Transaction) model.Transaction
	FindAll() []model.Transaction
	FindByID(id int) (*model.Transaction, error)
	Count() int
}

type transactionRepo struct {
	log memLog[model.Transaction]
}

func NewTransactionRepo() TransactionRepository {
	return &transactionRepo{}
}

func (r *transactionRepo) Append(tx model.Transaction) model.Transaction {
	tx.Items = append([]model.LineItem(nil), tx.Items...)
	return r.log.append(func(seq int) model.Transaction {
		tx.ID = seq
		return tx
	})
}

func (r *transactionRepo) FindAll() []model.Transaction {
	all := r.log.all()
	for i := range all {
		all[i].Items = append([]model.LineItem(nil), all[i].Items...)
	}
	return all
}

func (r *transactionRepo) FindByID(id int) (*model.Transaction, error) {
	tx, ok := r.log.at(id)
	if !ok {
		return nil, ledger.NotFound("transaction %d not found", id)
	}
	tx.Items = append([]model.LineItem(nil), tx.Items...)
	return &tx, nil
}

func (r *transactionRepo) Count() int {
	return r.log.count(nil)
}
