/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package store persists sampled populations in a SQLite database.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/popsynth/binpop/data"
	"github.com/popsynth/binpop/table"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schema string

// ErrNotFound is returned when a population id does not exist.
var ErrNotFound = errors.New("population not found")

// Meta identifies where a stored population came from.
type Meta struct {
	Sampler string
	Seed    int64
	// Index is the position of the population in its batch.
	Index int
}

// Store provides a SQLite-backed store of populations.
type Store struct {
	db *sql.DB
}

// Open opens a SQLite store at the provided path, creating
// the schema if needed.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite db")
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping sqlite db")
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "create schema")
	}

	return &Store{db: db}, nil
}

// Close closes the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SavePopulation stores pop and returns its id.
func (s *Store) SavePopulation(ctx context.Context, meta Meta, pop *table.Population) (int64, error) {
	if pop == nil || pop.Binaries == nil {
		return 0, errors.New("population has no binaries table")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, errors.Wrap(err, "begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	b := pop.Binaries
	res, err := tx.ExecContext(ctx,
		`INSERT INTO populations (sampler, seed, idx, size, sampled_mass, binaries) VALUES (?, ?, ?, ?, ?, ?)`,
		meta.Sampler, meta.Seed, meta.Index, pop.Size, pop.SampledMass, b.Len())
	if err != nil {
		return 0, errors.Wrap(err, "insert population")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, errors.Wrap(err, "population id")
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO binaries (population_id, position, mass1, mass2, porb, ecc, tphysf, kstar1, kstar2, metallicity)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, errors.Wrap(err, "prepare binaries insert")
	}
	defer stmt.Close()

	for i := 0; i < b.Len(); i++ {
		r := b.Row(i)
		if _, err := stmt.ExecContext(ctx, id, i,
			r.Mass1, r.Mass2, r.Porb, r.Ecc, r.TPhysf, r.Kstar1, r.Kstar2, r.Metallicity); err != nil {
			return 0, errors.Wrapf(err, "insert binary %d", i)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, errors.Wrap(err, "commit population")
	}
	return id, nil
}

// LoadPopulation reads back the population stored under id.
func (s *Store) LoadPopulation(ctx context.Context, id int64) (Meta, *table.Population, error) {
	var (
		meta Meta
		pop  table.Population
		n    int
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT sampler, seed, idx, size, sampled_mass, binaries FROM populations WHERE id = ?`, id).
		Scan(&meta.Sampler, &meta.Seed, &meta.Index, &pop.Size, &pop.SampledMass, &n)
	if errors.Is(err, sql.ErrNoRows) {
		return Meta{}, nil, errors.Wrapf(ErrNotFound, "id %d", id)
	}
	if err != nil {
		return Meta{}, nil, errors.Wrap(err, "query population")
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT mass1, mass2, porb, ecc, tphysf, kstar1, kstar2, metallicity
		 FROM binaries WHERE population_id = ? ORDER BY position`, id)
	if err != nil {
		return Meta{}, nil, errors.Wrap(err, "query binaries")
	}
	defer rows.Close()

	binaries := make([]table.Binary, 0, n)
	for rows.Next() {
		var r table.Binary
		if err := rows.Scan(&r.Mass1, &r.Mass2, &r.Porb, &r.Ecc, &r.TPhysf, &r.Kstar1, &r.Kstar2, &r.Metallicity); err != nil {
			return Meta{}, nil, errors.Wrap(err, "scan binary")
		}
		binaries = append(binaries, r)
	}
	if err := rows.Err(); err != nil {
		return Meta{}, nil, errors.Wrap(err, "read binaries")
	}

	pop.Binaries, err = fromRows(binaries)
	if err != nil {
		return Meta{}, nil, err
	}
	return meta, &pop, nil
}

// fromRows transposes rows into a column table.
func fromRows(rows []table.Binary) (*table.InitialBinaryTable, error) {
	n := len(rows)
	mass1, mass2 := make(data.Vector, n), make(data.Vector, n)
	porb, ecc := make(data.Vector, n), make(data.Vector, n)
	tphysf, met := make(data.Vector, n), make(data.Vector, n)
	kstar1, kstar2 := make([]int, n), make([]int, n)
	for i, r := range rows {
		mass1[i], mass2[i] = r.Mass1, r.Mass2
		porb[i], ecc[i] = r.Porb, r.Ecc
		tphysf[i], met[i] = r.TPhysf, r.Metallicity
		kstar1[i], kstar2[i] = r.Kstar1, r.Kstar2
	}
	return table.MultipleBinary(mass1, mass2, porb, ecc, tphysf, kstar1, kstar2, met)
}

// PopulationIDs returns the ids of every stored population in order.
func (s *Store) PopulationIDs(ctx context.Context) ([]int64, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM populations ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "query populations")
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, errors.Wrap(err, "scan population id")
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
