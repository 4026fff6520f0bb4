package sqldb

/** 本模块是一个更加底层的模块，只进行数据的存储
**	使用原生的 SQLite 语句与数据库交互（modernc.org/sqlite，无需 cgo）
 */

import (
	"database/sql"
	"errors"
	"strings"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// DBer 数据库的接口
type DBer interface {
	CreateTable(t TableMetaData) error
	Insert(t TableMetaData) error
	Select(t TableMetaData, where Field, arg interface{}) ([]interface{}, error)
	Column(tableName string, column string) ([]string, error)
}

// Sqldb : DBer 的实现
type Sqldb struct {
	options
	db *sql.DB
}

func New(opts ...Option) (*Sqldb, error) {
	options := defaultOptions
	for _, opt := range opts {
		opt(&options)
	}
	d := &Sqldb{}
	d.options = options
	if err := d.OpenDB(); err != nil {
		return nil, err
	}
	return d, nil
}

// OpenDB 打开 sqlUrl 指向的数据库文件（":memory:" 为内存库）
func (d *Sqldb) OpenDB() error {
	db, err := sql.Open("sqlite", d.sqlUrl)
	if err != nil {
		return err
	}
	// SQLite 同一时间只允许一个写连接
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return err
	}
	d.db = db
	return nil
}

func (d *Sqldb) Close() error {
	return d.db.Close()
}

type Field struct {
	Title string // 字段名
	Type  string // 字段属性(类型)
}

type TableMetaData struct {
	TableName   string
	ColumnNames []Field       // 标题字段
	Args        []interface{} // 要插入的数据
	DataCount   int           // 插入数据的数量
	Replace     bool          // 主键冲突时覆盖旧数据
}

// CreateTable 拼接建表语句并执行
func (d *Sqldb) CreateTable(t TableMetaData) error {
	if len(t.ColumnNames) == 0 {
		return errors.New("column can not be empty")
	}

	sql := `CREATE TABLE IF NOT EXISTS ` + t.TableName + " ("
	for _, t := range t.ColumnNames {
		sql += t.Title + ` ` + t.Type + `,`
	}
	sql = sql[:len(sql)-1] + `);`

	d.logger.Debug("create table", zap.String("sql", sql))

	_, err := d.db.Exec(sql)
	return err
}

func (d *Sqldb) Insert(t TableMetaData) error {
	if len(t.ColumnNames) == 0 {
		return errors.New("empty columns")
	}

	sql := `INSERT INTO `
	if t.Replace {
		sql = `INSERT OR REPLACE INTO `
	}
	sql += t.TableName + `(`
	for _, v := range t.ColumnNames {
		sql += v.Title + ","
	}
	sql = sql[:len(sql)-1] + `) VALUES `
	blank := ",(" + strings.Repeat(",?", len(t.ColumnNames))[1:] + ")"
	sql += strings.Repeat(blank, t.DataCount)[1:] + `;`

	d.logger.Debug("insert table", zap.String("sql", sql))

	_, err := d.db.Exec(sql, t.Args...)
	return err
}

// Select 按 where 字段查询一行，返回 ColumnNames 对应的值；没有数据时返回 sql.ErrNoRows
func (d *Sqldb) Select(t TableMetaData, where Field, arg interface{}) ([]interface{}, error) {
	if len(t.ColumnNames) == 0 {
		return nil, errors.New("empty columns")
	}

	titles := make([]string, len(t.ColumnNames))
	for i, v := range t.ColumnNames {
		titles[i] = v.Title
	}
	sql := `SELECT ` + strings.Join(titles, ",") + ` FROM ` + t.TableName + ` WHERE ` + where.Title + ` = ?;`

	d.logger.Debug("select table", zap.String("sql", sql))

	values := make([]interface{}, len(titles))
	ptrs := make([]interface{}, len(titles))
	for i := range values {
		ptrs[i] = &values[i]
	}
	if err := d.db.QueryRow(sql, arg).Scan(ptrs...); err != nil {
		return nil, err
	}
	return values, nil
}

// Column 读取整列的文本值，按该列排序
func (d *Sqldb) Column(tableName string, column string) ([]string, error) {
	sql := `SELECT ` + column + ` FROM ` + tableName + ` ORDER BY ` + column + `;`
	d.logger.Debug("select column", zap.String("sql", sql))

	rows, err := d.db.Query(sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
