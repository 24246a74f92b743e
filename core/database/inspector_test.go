package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE test_items (id INTEGER PRIMARY KEY, name TEXT NOT NULL, description TEXT)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "test_items")
	assert.NoError(t, err)
	assert.Len(t, columns, 3)

	colMap := make(map[string]ColumnInfo)
	for _, col := range columns {
		colMap[col.Field] = col
	}

	assert.Equal(t, "integer", colMap["id"].Type)
	assert.Equal(t, "PRI", colMap["id"].Key)
	assert.Equal(t, "text", colMap["name"].Type)
	assert.Equal(t, "NO", colMap["name"].Null)
	assert.Equal(t, "YES", colMap["description"].Null)

	// PRAGMA table_info returns an empty result for unknown tables.
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestGetTableColumns_MySQL(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	t.Run("Normalizes", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
			AddRow("Item_Key", "VARCHAR(255)", "NO", "PRI", nil, "").
			AddRow("display_name", "TEXT", "YES", "", nil, "")
		mock.ExpectQuery("SHOW COLUMNS FROM `catalog_items`").WillReturnRows(rows)

		cols, err := GetTableColumns(db, "catalog_items")
		require.NoError(t, err)
		require.Len(t, cols, 2)
		assert.Equal(t, "item_key", cols[0].Field)
		assert.Equal(t, "varchar(255)", cols[0].Type)
	})

	t.Run("QueryError", func(t *testing.T) {
		mock.ExpectQuery("SHOW COLUMNS FROM `missing`").WillReturnError(assert.AnError)

		_, err := GetTableColumns(db, "missing")
		assert.ErrorContains(t, err, "failed to get columns for table missing")
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMissingColumns(t *testing.T) {
	cols := []ColumnInfo{{Field: "item_key"}, {Field: "display_name"}}
	assert.Empty(t, MissingColumns(cols, []string{"item_key", "Display_Name"}))
	assert.Equal(t, []string{"mod"}, MissingColumns(cols, []string{"item_key", "mod"}))
}
