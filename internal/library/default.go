package library

import (
	"database/sql"
	"encoding/json"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

type DefaultLibrary struct {
	db *sql.DB
}

func (l *DefaultLibrary) Init(file string) error {
	db, err := sql.Open("sqlite3", file)
	if err != nil {
		return errors.Wrap(err, "unable to open library")
	}

	initStatement := `
	create table if not exists songs
	  (
		  sum text not null primary key,
		  path text,
		  title text,
		  song blob
	  );
	`
	if _, err = db.Exec(initStatement); nil != err {
		db.Close()
		return errors.Wrap(err, "unable to create library")
	}

	l.db = db
	return nil
}

func (l *DefaultLibrary) Deinit() {
	if nil != l.db {
		l.db.Close()
	}
}

func (l *DefaultLibrary) Save(e *Entry) error {
	data, err := json.Marshal(e.Song)
	if nil != err {
		return errors.Wrap(err, "unable to marshal song")
	}
	_, err = l.db.Exec("insert or replace into songs(sum, path, title, song) values(?, ?, ?, ?)",
		e.Sum, e.Path, e.Title, data)
	return errors.Wrapf(err, "unable to save %v", e.Path)
}

func (l *DefaultLibrary) Load(sum string) (*Entry, error) {
	e := Entry{Sum: sum}
	var data []byte
	err := l.db.QueryRow("select path, title, song from songs where sum = ?", sum).Scan(&e.Path, &e.Title, &data)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	} else if nil != err {
		return nil, errors.Wrap(err, "unable to load song")
	}
	if err := json.Unmarshal(data, &e.Song); nil != err {
		return nil, errors.Wrap(err, "unable to unmarshal song")
	}
	return &e, nil
}

func (l *DefaultLibrary) List() ([]Entry, error) {
	entries := []Entry{}
	rows, err := l.db.Query("select sum, path, title from songs order by title, path")
	if nil != err {
		return nil, errors.Wrap(err, "unable to list songs")
	}
	defer rows.Close()
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Sum, &e.Path, &e.Title); nil != err {
			return nil, errors.Wrap(err, "unable to read song")
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
