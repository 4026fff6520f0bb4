package sqlstore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/IlyaKhml/prydwen-hsr-char-parser/collector"
	"github.com/IlyaKhml/prydwen-hsr-char-parser/parse/hsr"
	"github.com/IlyaKhml/prydwen-hsr-char-parser/sqldb"
	"go.uber.org/zap"
)

const tableName = "character_builds"

var (
	keyField  = sqldb.Field{Title: "character", Type: "TEXT PRIMARY KEY"}
	columns   = []sqldb.Field{keyField, {Title: "element", Type: "TEXT"}, {Title: "data", Type: "TEXT NOT NULL"}}
	dataOnly  = []sqldb.Field{{Title: "data"}}
	tableMeta = sqldb.TableMetaData{TableName: tableName, ColumnNames: columns}
)

// SqlStore 把整条记录序列化为 JSON 存进 SQLite，一个角色一行
type SqlStore struct {
	db     *sqldb.Sqldb
	logger *zap.Logger
}

func New(opts ...Option) (*SqlStore, error) {
	options := defaultOptions
	for _, opt := range opts {
		opt(&options)
	}

	if options.sqlUrl != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(options.sqlUrl), 0o755); err != nil {
			return nil, err
		}
	}
	db, err := sqldb.New(
		sqldb.WithSqlUrl(options.sqlUrl),
		sqldb.WithLogger(options.logger),
	)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", options.sqlUrl, err)
	}
	if err := db.CreateTable(tableMeta); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}
	return &SqlStore{db: db, logger: options.logger}, nil
}

func (s *SqlStore) Put(character string, build *hsr.CharacterBuild) error {
	data, err := json.Marshal(build)
	if err != nil {
		return fmt.Errorf("encode %s: %w", character, err)
	}
	t := tableMeta
	t.Args = []interface{}{character, string(build.Element), string(data)}
	t.DataCount = 1
	t.Replace = true
	if err := s.db.Insert(t); err != nil {
		return err
	}
	s.logger.Info("saved", zap.String("table", tableName), zap.String("character", character),
		zap.String("size", fmt.Sprintf("%.2f KB", float64(len(data))/1024)))
	return nil
}

func (s *SqlStore) Get(character string) (*hsr.CharacterBuild, error) {
	values, err := s.db.Select(sqldb.TableMetaData{TableName: tableName, ColumnNames: dataOnly}, keyField, character)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, collector.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var raw []byte
	switch v := values[0].(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return nil, fmt.Errorf("decode %s: unexpected column type %T", character, v)
	}

	var b hsr.CharacterBuild
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("decode %s: %w", character, err)
	}
	return &b, nil
}

func (s *SqlStore) List() ([]string, error) {
	return s.db.Column(tableName, keyField.Title)
}

func (s *SqlStore) Close() error {
	return s.db.Close()
}
