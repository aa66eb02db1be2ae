// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosteam/mdl/if97"
	"github.com/cpmech/gosteam/mdl/steam"
	"github.com/cpmech/gosteam/tab"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Run holds information about one saved run
type Run struct {
	ID      string    // run identifier
	Title   string    // title of steam tables
	Created time.Time // creation time (UTC)
}

// Store persists generated steam tables in SQLite
type Store struct {
	db *sql.DB
}

// schema of the database
const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	title      TEXT NOT NULL,
	created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS tables (
	run_id    TEXT NOT NULL,
	name      TEXT NOT NULL,
	kind      TEXT NOT NULL,
	fixed     REAL NOT NULL,
	quantity  TEXT NOT NULL,
	discarded INTEGER NOT NULL,
	PRIMARY KEY (run_id, name),
	FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS states (
	run_id      TEXT NOT NULL,
	table_name  TEXT NOT NULL,
	idx         INTEGER NOT NULL,
	pressure    REAL NOT NULL,
	temperature REAL NOT NULL,
	enthalpy    REAL NOT NULL,
	entropy     REAL NOT NULL,
	volume      REAL NOT NULL,
	quality     REAL NOT NULL,
	region      INTEGER NOT NULL,
	PRIMARY KEY (run_id, table_name, idx),
	FOREIGN KEY (run_id, table_name) REFERENCES tables(run_id, name) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS saturation (
	run_id      TEXT NOT NULL,
	table_name  TEXT NOT NULL,
	idx         INTEGER NOT NULL,
	pressure    REAL NOT NULL,
	temperature REAL NOT NULL,
	vf REAL NOT NULL, vg REAL NOT NULL,
	hf REAL NOT NULL, hg REAL NOT NULL,
	sf REAL NOT NULL, sg REAL NOT NULL,
	PRIMARY KEY (run_id, table_name, idx),
	FOREIGN KEY (run_id, table_name) REFERENCES tables(run_id, name) ON DELETE CASCADE
);
`

// Open opens (or creates) a database file
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, chk.Err("database path is required\n")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, chk.Err("cannot open database %q:\n%v", path, err)
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, chk.Err("cannot connect to database %q:\n%v", path, err)
	}
	if _, err = db.Exec(schema); err != nil {
		db.Close()
		return nil, chk.Err("cannot create schema:\n%v", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database
func (o *Store) Close() error {
	if o == nil || o.db == nil {
		return nil
	}
	return o.db.Close()
}

// SaveRun saves all tables of one run and returns the run identifier
func (o *Store) SaveRun(ctx context.Context, title string, tables []*tab.Table, sats []*tab.SatTable) (id string, err error) {
	tx, err := o.db.BeginTx(ctx, nil)
	if err != nil {
		return "", chk.Err("cannot begin transaction:\n%v", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	id = uuid.NewString()
	if _, err = tx.ExecContext(ctx, `INSERT INTO runs (id, title, created_at) VALUES (?, ?, ?)`,
		id, title, time.Now().UTC().UnixMilli()); err != nil {
		return "", chk.Err("cannot insert run:\n%v", err)
	}

	// states
	for _, t := range tables {
		if _, err = tx.ExecContext(ctx, `INSERT INTO tables (run_id, name, kind, fixed, quantity, discarded) VALUES (?, ?, ?, ?, ?, ?)`,
			id, t.Name, t.Kind, t.Fixed, t.Quantity.String(), t.Discarded); err != nil {
			return "", chk.Err("cannot insert table %q:\n%v", t.Name, err)
		}
		for i, s := range t.States {
			if _, err = tx.ExecContext(ctx, `INSERT INTO states (run_id, table_name, idx, pressure, temperature, enthalpy, entropy, volume, quality, region)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				id, t.Name, i, s.Pressure, s.Temperature, s.SpecificEnthalpy, s.SpecificEntropy, s.SpecificVolume, s.Quality, int(s.Region)); err != nil {
				return "", chk.Err("cannot insert state %d of table %q:\n%v", i, t.Name, err)
			}
		}
	}

	// saturation
	for _, t := range sats {
		if _, err = tx.ExecContext(ctx, `INSERT INTO tables (run_id, name, kind, fixed, quantity, discarded) VALUES (?, ?, ?, ?, ?, ?)`,
			id, t.Name, tab.KindSaturation, 0.0, steam.Temperature.String(), t.Discarded); err != nil {
			return "", chk.Err("cannot insert table %q:\n%v", t.Name, err)
		}
		for i, p := range t.Points {
			if _, err = tx.ExecContext(ctx, `INSERT INTO saturation (run_id, table_name, idx, pressure, temperature, vf, vg, hf, hg, sf, sg)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				id, t.Name, i, p.Pressure, p.Temperature, p.Liquid.V, p.Gas.V, p.Liquid.H, p.Gas.H, p.Liquid.S, p.Gas.S); err != nil {
				return "", chk.Err("cannot insert point %d of table %q:\n%v", i, t.Name, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return "", chk.Err("cannot commit run:\n%v", err)
	}
	return id, nil
}

// Runs returns all saved runs, most recent first
func (o *Store) Runs(ctx context.Context) (runs []Run, err error) {
	rows, err := o.db.QueryContext(ctx, `SELECT id, title, created_at FROM runs ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, chk.Err("cannot query runs:\n%v", err)
	}
	defer rows.Close()
	for rows.Next() {
		var r Run
		var created int64
		if err = rows.Scan(&r.ID, &r.Title, &created); err != nil {
			return nil, chk.Err("cannot scan run:\n%v", err)
		}
		r.Created = time.UnixMilli(created).UTC()
		runs = append(runs, r)
	}
	if err = rows.Err(); err != nil {
		return nil, chk.Err("cannot iterate runs:\n%v", err)
	}
	return
}

// LoadTable loads an isotherm or isobar table of a run
func (o *Store) LoadTable(ctx context.Context, runID, name string) (*tab.Table, error) {
	t := &tab.Table{Name: name}
	var qty string
	err := o.db.QueryRowContext(ctx, `SELECT kind, fixed, quantity, discarded FROM tables WHERE run_id = ? AND name = ?`,
		runID, name).Scan(&t.Kind, &t.Fixed, &qty, &t.Discarded)
	if err == sql.ErrNoRows {
		return nil, chk.Err("cannot find table %q of run %q\n", name, runID)
	}
	if err != nil {
		return nil, chk.Err("cannot query table %q:\n%v", name, err)
	}
	if t.Kind == tab.KindSaturation {
		return nil, chk.Err("table %q is a saturation table\n", name)
	}
	if t.Quantity, err = steam.ParseQuantity(qty); err != nil {
		return nil, err
	}
	rows, err := o.db.QueryContext(ctx, `SELECT pressure, temperature, enthalpy, entropy, volume, quality, region
		FROM states WHERE run_id = ? AND table_name = ? ORDER BY idx`, runID, name)
	if err != nil {
		return nil, chk.Err("cannot query states of table %q:\n%v", name, err)
	}
	defer rows.Close()
	for rows.Next() {
		var s steam.State
		var region int
		if err = rows.Scan(&s.Pressure, &s.Temperature, &s.SpecificEnthalpy, &s.SpecificEntropy, &s.SpecificVolume, &s.Quality, &region); err != nil {
			return nil, chk.Err("cannot scan state:\n%v", err)
		}
		s.Region = if97.Region(region)
		t.States = append(t.States, s)
	}
	if err = rows.Err(); err != nil {
		return nil, chk.Err("cannot iterate states:\n%v", err)
	}
	return t, nil
}

// LoadSatTable loads a saturation table of a run
func (o *Store) LoadSatTable(ctx context.Context, runID, name string) (*tab.SatTable, error) {
	t := &tab.SatTable{Name: name}
	var kind string
	err := o.db.QueryRowContext(ctx, `SELECT kind, discarded FROM tables WHERE run_id = ? AND name = ?`,
		runID, name).Scan(&kind, &t.Discarded)
	if err == sql.ErrNoRows {
		return nil, chk.Err("cannot find table %q of run %q\n", name, runID)
	}
	if err != nil {
		return nil, chk.Err("cannot query table %q:\n%v", name, err)
	}
	if kind != tab.KindSaturation {
		return nil, chk.Err("table %q is not a saturation table\n", name)
	}
	rows, err := o.db.QueryContext(ctx, `SELECT pressure, temperature, vf, vg, hf, hg, sf, sg
		FROM saturation WHERE run_id = ? AND table_name = ? ORDER BY idx`, runID, name)
	if err != nil {
		return nil, chk.Err("cannot query points of table %q:\n%v", name, err)
	}
	defer rows.Close()
	for rows.Next() {
		var p steam.Saturated
		if err = rows.Scan(&p.Pressure, &p.Temperature, &p.Liquid.V, &p.Gas.V, &p.Liquid.H, &p.Gas.H, &p.Liquid.S, &p.Gas.S); err != nil {
			return nil, chk.Err("cannot scan point:\n%v", err)
		}
		p.Evaporation = p.Gas.Sub(p.Liquid)
		t.Points = append(t.Points, p)
	}
	if err = rows.Err(); err != nil {
		return nil, chk.Err("cannot iterate points:\n%v", err)
	}
	return t, nil
}
