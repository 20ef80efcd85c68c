// Package memory es el storage en memoria usado en dev (sin DB_DSN) y en tests.
// Replica las reglas que Postgres aplica por constraint: FKs, ids únicos,
// borrado en cascada desde el ave y bulk todo-o-nada.
package memory

import (
	"sync"

	"mew-mate-api/internal/domain/birds"
	"mew-mate-api/internal/domain/falconers"
	"mew-mate-api/internal/domain/logbook"
)

// Store comparte un único lock entre tablas para poder validar referencias
// cruzadas (ave -> halconero, sesión -> pesaje) de forma atómica.
type Store struct {
	mu sync.RWMutex

	falconers map[string]falconers.Falconer
	birds     map[string]birds.Bird

	weights   map[string]logbook.Weight
	feedings  map[string]logbook.Feeding
	hunts     map[string]logbook.Hunt
	trainings map[string]logbook.Training
}

func NewStore() *Store {
	return &Store{
		falconers: make(map[string]falconers.Falconer),
		birds:     make(map[string]birds.Bird),
		weights:   make(map[string]logbook.Weight),
		feedings:  make(map[string]logbook.Feeding),
		hunts:     make(map[string]logbook.Hunt),
		trainings: make(map[string]logbook.Training),
	}
}

func (s *Store) Falconers() *FalconersRepo { return &FalconersRepo{s: s} }

func (s *Store) Birds() *BirdsRepo { return &BirdsRepo{s: s} }

func (s *Store) Weights() *EntryRepo[logbook.Weight] {
	return &EntryRepo[logbook.Weight]{s: s, table: func(s *Store) map[string]logbook.Weight { return s.weights }}
}

func (s *Store) Feedings() *EntryRepo[logbook.Feeding] {
	return &EntryRepo[logbook.Feeding]{s: s, table: func(s *Store) map[string]logbook.Feeding { return s.feedings }}
}

func (s *Store) Hunts() *EntryRepo[logbook.Hunt] {
	return &EntryRepo[logbook.Hunt]{s: s, table: func(s *Store) map[string]logbook.Hunt { return s.hunts }}
}

func (s *Store) Trainings() *EntryRepo[logbook.Training] {
	return &EntryRepo[logbook.Training]{s: s, table: func(s *Store) map[string]logbook.Training { return s.trainings }}
}

// deleteBirdLocked borra el ave y todo lo que cuelga de ella. Requiere s.mu tomado.
func (s *Store) deleteBirdLocked(id string) {
	delete(s.birds, id)
	deleteByBird(s.feedings, id)
	deleteByBird(s.hunts, id)
	deleteByBird(s.trainings, id)
	deleteByBird(s.weights, id)
}

func deleteByBird[T logbook.Entry[T]](m map[string]T, birdID string) {
	for k, e := range m {
		if e.EntryBirdID() == birdID {
			delete(m, k)
		}
	}
}
