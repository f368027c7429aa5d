package catalog

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

func NewSQLite(path string) (*SQLiteCatalog, error) {
	rawDB, err := sql.Open("sqlite3", path)
	return &SQLiteCatalog{rawDB: rawDB}, err
}

type SQLiteCatalog struct {
	rawDB *sql.DB
}

func (c *SQLiteCatalog) Init() error {
	_, err := c.rawDB.Exec(
		"CREATE TABLE IF NOT EXISTS runs (" +
			"id INTEGER PRIMARY KEY AUTOINCREMENT, " +
			"runid TEXT, " +
			"command TEXT, " +
			"setname TEXT, " +
			"outcome TEXT, " +
			"leftovers INTEGER, " +
			"duration INTEGER, " +
			"created INTEGER" +
			")")
	if err != nil {
		return err
	}
	log.Debug().Msg("catalog schema initialised")
	return nil
}

func (c *SQLiteCatalog) AddRun(run *Run) error {
	if run.Created == 0 {
		run.Created = time.Now().Unix()
	}
	result, err := c.rawDB.Exec(
		"INSERT INTO runs (runid, command, setname, outcome, leftovers, duration, created) VALUES(?, ?, ?, ?, ?, ?, ?)",
		run.RunID, run.Command, run.Set, run.Outcome, run.Leftovers, int64(run.Duration/time.Second), run.Created)
	if err != nil {
		return err
	}
	run.ID, err = result.LastInsertId()
	return err
}

func (c *SQLiteCatalog) GetRuns(runID string) ([]*Run, error) {
	rows, err := c.rawDB.Query(
		"SELECT id, runid, command, setname, outcome, leftovers, duration, created FROM runs WHERE runid=? ORDER BY id",
		runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run := &Run{}
		var seconds int64
		if err := rows.Scan(&run.ID, &run.RunID, &run.Command, &run.Set, &run.Outcome, &run.Leftovers, &seconds, &run.Created); err != nil {
			return nil, err
		}
		run.Duration = time.Duration(seconds) * time.Second
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func (c *SQLiteCatalog) Close() error {
	return c.rawDB.Close()
}
