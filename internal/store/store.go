// Package store persists the form list and the FSO feed as whole JSON
// documents in the kv layer, mirroring how the mobile client kept them in
// device storage. Each sub-store owns one key and rewrites the full array
// on mutation; writes are funneled through one process.
package store

import (
	"github.com/fieldops/fieldforms/internal/kv"
)

type Store interface {
	Form() Form
	FSO() FSO
	Close() error
}

type DataStore struct {
	form Form
	fso  FSO
	db   kv.KV
}

func NewStore(db kv.KV) Store {
	return &DataStore{
		form: NewForm(db),
		fso:  NewFSO(db),
		db:   db,
	}
}

func (s *DataStore) Form() Form {
	return s.form
}

func (s *DataStore) FSO() FSO {
	return s.fso
}

func (s *DataStore) Close() error {
	return s.db.Close()
}
