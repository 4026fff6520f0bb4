package sqldb

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSqldb(t *testing.T) {
	d, err := New()
	require.NoError(t, err)
	defer d.Close()

	key := Field{Title: "name", Type: "TEXT PRIMARY KEY"}
	table := TableMetaData{
		TableName:   "cones",
		ColumnNames: []Field{key, {Title: "rarity", Type: "INTEGER"}},
	}
	require.NoError(t, d.CreateTable(table))
	require.NoError(t, d.CreateTable(table), "IF NOT EXISTS")

	insert := table
	insert.Args = []interface{}{"Swordplay", 4, "Cruising in the Stellar Sea", 5}
	insert.DataCount = 2
	require.NoError(t, d.Insert(insert))

	// 主键冲突
	dup := table
	dup.Args = []interface{}{"Swordplay", 3}
	dup.DataCount = 1
	assert.Error(t, d.Insert(dup))
	dup.Replace = true
	require.NoError(t, d.Insert(dup))

	values, err := d.Select(TableMetaData{TableName: "cones", ColumnNames: []Field{{Title: "rarity"}}}, key, "Swordplay")
	require.NoError(t, err)
	assert.EqualValues(t, 3, values[0])

	_, err = d.Select(TableMetaData{TableName: "cones", ColumnNames: []Field{{Title: "rarity"}}}, key, "Nowhere")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	names, err := d.Column("cones", "name")
	require.NoError(t, err)
	assert.Equal(t, []string{"Cruising in the Stellar Sea", "Swordplay"}, names)

	assert.Error(t, d.CreateTable(TableMetaData{TableName: "empty"}))
	assert.Error(t, d.Insert(TableMetaData{TableName: "empty"}))
}
