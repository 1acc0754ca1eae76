package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/autoshowroom/backend/internal/db/dbtest"
	"github.com/autoshowroom/backend/internal/models"
	"github.com/autoshowroom/backend/internal/mykafka"
	"github.com/autoshowroom/backend/internal/repo"
)

type published struct {
	Topic string
	Key   string
	Event mykafka.Event
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []published
	err    error
}

func (p *recordingPublisher) PublishEvent(_ context.Context, topic, key string, ev mykafka.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, published{Topic: topic, Key: key, Event: ev})
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Event.Type)
	}
	return out
}

type fakeIndex struct {
	docs      map[uint]models.Product
	searchIDs []uint
	searchErr error
	deleted   []uint
}

func newFakeIndex() *fakeIndex {
	return &fakeIndex{docs: map[uint]models.Product{}}
}

func (x *fakeIndex) IndexProduct(_ context.Context, p models.Product) error {
	x.docs[p.ID] = p
	return nil
}

func (x *fakeIndex) DeleteProduct(_ context.Context, id uint) error {
	delete(x.docs, id)
	x.deleted = append(x.deleted, id)
	return nil
}

func (x *fakeIndex) Search(context.Context, string, int) ([]uint, error) {
	return x.searchIDs, x.searchErr
}

var errStoreDown = errors.New("store down")

type brokenUserRepo struct{ UserRepo }

func (brokenUserRepo) EmailOrPhoneTaken(context.Context, string, string) (bool, error) {
	return false, errStoreDown
}

func (brokenUserRepo) FindUserByIdentifier(context.Context, string) (*models.User, error) {
	return nil, errStoreDown
}

func newStore(t *testing.T) *repo.GormRepo {
	return repo.New(dbtest.New(t))
}
